package repository

import (
	"sync"
	"time"

	"golang.org/x/xerrors"

	"github.com/gaslex/goapi/base/ctx"
	"github.com/gaslex/goapi/domain"
	"github.com/gaslex/goapi/domain/wallet"
)

// sessionRepo is the process local session registry. Sessions own a
// balance refresher goroutine in this process so they are not shared.
type sessionRepo struct {
	mu       sync.Mutex
	sessions map[string]*wallet.Session
}

func NewSessionRepo() wallet.SessionRepo {
	return &sessionRepo{sessions: map[string]*wallet.Session{}}
}

func (r *sessionRepo) Create(c ctx.Ctx, s *wallet.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[s.Id]; ok {
		return xerrors.Errorf("session %s: %w", s.Id, domain.ErrConflict)
	}
	r.sessions[s.Id] = s.Clone()
	return nil
}

func (r *sessionRepo) Get(c ctx.Ctx, id string) (*wallet.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, xerrors.Errorf("session %s: %w", id, domain.ErrNotFound)
	}
	return s.Clone(), nil
}

// Update applies fn to a copy of the session and stores it if fn succeeds
func (r *sessionRepo) Update(c ctx.Ctx, id string, fn func(*wallet.Session) error) (*wallet.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, xerrors.Errorf("session %s: %w", id, domain.ErrNotFound)
	}
	next := s.Clone()
	if err := fn(next); err != nil {
		return nil, err
	}
	next.Id = id
	r.sessions[id] = next
	return next.Clone(), nil
}

func (r *sessionRepo) Delete(c ctx.Ctx, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; !ok {
		return xerrors.Errorf("session %s: %w", id, domain.ErrNotFound)
	}
	delete(r.sessions, id)
	return nil
}

func (r *sessionRepo) TryAcquire(c ctx.Ctx, id string) (*wallet.Session, error) {
	return r.Update(c, id, func(s *wallet.Session) error {
		if s.Busy {
			return xerrors.Errorf("session %s: %w", id, domain.ErrSessionBusy)
		}
		s.Busy = true
		return nil
	})
}

func (r *sessionRepo) Release(c ctx.Ctx, id string) error {
	_, err := r.Update(c, id, func(s *wallet.Session) error {
		s.Busy = false
		return nil
	})
	return err
}

func (r *sessionRepo) FindExpired(c ctx.Ctx, now time.Time) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	res := []string{}
	for id, s := range r.sessions {
		if !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt) {
			res = append(res, id)
		}
	}
	return res, nil
}
