package usecase

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/xerrors"

	"github.com/gaslex/goapi/base/ctx"
	"github.com/gaslex/goapi/base/log"
	"github.com/gaslex/goapi/base/validator"
	"github.com/gaslex/goapi/domain"
	"github.com/gaslex/goapi/domain/ad"
	"github.com/gaslex/goapi/service/cache"
)

const listKey = "list"

type impl struct {
	repo  ad.Repo
	cache cache.Service
	now   func() time.Time
}

// New returns the local sponsor usecase. The ad list is served through
// adCache and dropped on every write.
func New(repo ad.Repo, adCache cache.Service) ad.Usecase {
	return &impl{repo: repo, cache: adCache, now: time.Now}
}

func (im *impl) GetAds(c ctx.Ctx) ([]*ad.Ad, error) {
	res := []*ad.Ad{}
	if err := im.cache.GetByFunc(c, listKey, &res, func() (interface{}, error) {
		ads, err := im.repo.FindAll(c)
		if err != nil {
			return nil, err
		}
		return &ads, nil
	}); err != nil {
		c.WithField("err", err).Error("cache.GetByFunc failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) FindOne(c ctx.Ctx, id string) (*ad.Ad, error) {
	return im.repo.FindOne(c, id)
}

// Engage adds w to the engaged users of ad id. Repeated engagement is a
// no-op. A wallet that already used the ad is refused.
func (im *impl) Engage(c ctx.Ctx, w domain.Pubkey, id string) error {
	if !validator.IsValidPubkey(w.String()) {
		return xerrors.Errorf("userPubkey %q: %w", w, domain.ErrBadParamInput)
	}
	if len(id) == 0 {
		return xerrors.Errorf("empty adId: %w", domain.ErrBadParamInput)
	}

	a, err := im.repo.FindOne(c, id)
	if err != nil {
		return err
	}
	if a.HasUsed(w) {
		return xerrors.Errorf("ad %s: %w", id, domain.ErrAlreadyUsed)
	}

	if err := im.repo.AddEngagement(c, id, w); xerrors.Is(err, domain.ErrNotFound) {
		// the ad exists, so the condition lost a race with a transfer
		return xerrors.Errorf("ad %s: %w", id, domain.ErrAlreadyUsed)
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"adId":   id,
			"pubkey": w,
		}).Error("repo.AddEngagement failed")
		return err
	}

	im.invalidate(c)
	return nil
}

// ConsumeEngagement moves w from the engaged to the used users of ad id and
// drops the cached list.
func (im *impl) ConsumeEngagement(c ctx.Ctx, id string, w domain.Pubkey) error {
	if err := im.repo.ConsumeEngagement(c, id, w); err != nil {
		return err
	}
	im.invalidate(c)
	return nil
}

func (im *impl) Create(c ctx.Ctx, a *ad.Ad) error {
	if len(a.Id) == 0 {
		a.Id = newAdId()
	}
	if a.Timestamp.IsZero() {
		a.Timestamp = im.now().UTC()
	}
	if a.EngagedUsers == nil {
		a.EngagedUsers = []domain.Pubkey{}
	}
	if a.UsedAds == nil {
		a.UsedAds = []domain.Pubkey{}
	}
	if err := im.repo.Create(c, a); err != nil {
		c.WithFields(log.Fields{
			"err":  err,
			"adId": a.Id,
		}).Error("repo.Create failed")
		return err
	}
	im.invalidate(c)
	return nil
}

func (im *impl) invalidate(c ctx.Ctx) {
	if err := im.cache.Del(c, listKey); err != nil {
		c.WithField("err", err).Warn("cache.Del failed")
	}
}

func newAdId() string {
	return uuid.New().String()
}
