package repository

import (
	"sort"
	"sync"

	"golang.org/x/xerrors"

	"github.com/gaslex/goapi/base/ctx"
	"github.com/gaslex/goapi/domain"
	"github.com/gaslex/goapi/domain/ad"
)

// memoryImpl keeps ads in process memory. It backs the api when no mongo
// uri is configured and applies the same conditional updates as the mongo
// repo, each under one lock.
type memoryImpl struct {
	mu  sync.RWMutex
	ads map[string]*ad.Ad
}

func NewMemory(seed ...*ad.Ad) ad.Repo {
	im := &memoryImpl{ads: map[string]*ad.Ad{}}
	for _, a := range seed {
		im.ads[a.Id] = clone(a)
	}
	return im
}

func (im *memoryImpl) FindAll(c ctx.Ctx) ([]*ad.Ad, error) {
	im.mu.RLock()
	defer im.mu.RUnlock()
	res := make([]*ad.Ad, 0, len(im.ads))
	for _, a := range im.ads {
		res = append(res, clone(a))
	}
	sort.SliceStable(res, func(i, j int) bool {
		if res[i].Timestamp.Equal(res[j].Timestamp) {
			return res[i].Id < res[j].Id
		}
		return res[i].Timestamp.After(res[j].Timestamp)
	})
	return res, nil
}

func (im *memoryImpl) FindOne(c ctx.Ctx, id string) (*ad.Ad, error) {
	im.mu.RLock()
	defer im.mu.RUnlock()
	a, ok := im.ads[id]
	if !ok {
		return nil, xerrors.Errorf("ad %s: %w", id, domain.ErrNotFound)
	}
	return clone(a), nil
}

func (im *memoryImpl) FindEngaged(c ctx.Ctx, w domain.Pubkey) (*ad.Ad, error) {
	all, _ := im.FindAll(c)
	for _, a := range all {
		if a.HasEngaged(w) {
			return a, nil
		}
	}
	return nil, xerrors.Errorf("no engagement for %s: %w", w, domain.ErrNotFound)
}

func (im *memoryImpl) CountUsed(c ctx.Ctx, w domain.Pubkey) (int, error) {
	im.mu.RLock()
	defer im.mu.RUnlock()
	n := 0
	for _, a := range im.ads {
		if a.HasUsed(w) {
			n++
		}
	}
	return n, nil
}

func (im *memoryImpl) Create(c ctx.Ctx, a *ad.Ad) error {
	im.mu.Lock()
	defer im.mu.Unlock()
	if _, ok := im.ads[a.Id]; ok {
		return xerrors.Errorf("ad %s: %w", a.Id, domain.ErrConflict)
	}
	im.ads[a.Id] = clone(a)
	return nil
}

func (im *memoryImpl) AddEngagement(c ctx.Ctx, id string, w domain.Pubkey) error {
	im.mu.Lock()
	defer im.mu.Unlock()
	a, ok := im.ads[id]
	if !ok || a.HasUsed(w) {
		return xerrors.Errorf("ad %s: %w", id, domain.ErrNotFound)
	}
	if !a.HasEngaged(w) {
		a.EngagedUsers = append(a.EngagedUsers, w)
	}
	return nil
}

func (im *memoryImpl) ConsumeEngagement(c ctx.Ctx, id string, w domain.Pubkey) error {
	im.mu.Lock()
	defer im.mu.Unlock()
	a, ok := im.ads[id]
	if !ok || !a.HasEngaged(w) {
		return xerrors.Errorf("ad %s not engaged by %s: %w", id, w, domain.ErrNotFound)
	}
	engaged := a.EngagedUsers[:0]
	for _, v := range a.EngagedUsers {
		if v != w {
			engaged = append(engaged, v)
		}
	}
	a.EngagedUsers = engaged
	if !a.HasUsed(w) {
		a.UsedAds = append(a.UsedAds, w)
	}
	return nil
}

func (im *memoryImpl) EnsureIndexes(c ctx.Ctx) error {
	return nil
}

func clone(a *ad.Ad) *ad.Ad {
	cp := *a
	cp.EngagedUsers = append([]domain.Pubkey{}, a.EngagedUsers...)
	cp.UsedAds = append([]domain.Pubkey{}, a.UsedAds...)
	if a.ContentUrl != nil {
		u := *a.ContentUrl
		cp.ContentUrl = &u
	}
	return &cp
}
