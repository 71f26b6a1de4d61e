package repository

import (
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/xerrors"

	"github.com/gaslex/goapi/base/ctx"
	"github.com/gaslex/goapi/domain"
	"github.com/gaslex/goapi/domain/ad"
	"github.com/gaslex/goapi/service/query"
)

var adIndexes = []query.Index{
	{Keys: []string{"id"}, Unique: true},
	{Keys: []string{"-timestamp"}},
	{Keys: []string{"engagedUsers"}},
	{Keys: []string{"usedAds"}},
}

type impl struct {
	q query.Mongo
}

func New(q query.Mongo) ad.Repo {
	return &impl{q}
}

func (im *impl) FindAll(c ctx.Ctx) ([]*ad.Ad, error) {
	res := []*ad.Ad{}

	// to prevent scancol error
	qry := bson.M{"timestamp": bson.M{"$exists": true}}

	if err := im.q.Search(c, domain.TableAds, 0, 0, "-timestamp", qry, &res); err != nil {
		c.WithField("err", err).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) FindOne(c ctx.Ctx, id string) (*ad.Ad, error) {
	res := &ad.Ad{}
	if err := im.q.FindOne(c, domain.TableAds, bson.M{"id": id}, res); err == query.ErrNotFound {
		return nil, xerrors.Errorf("ad %s: %w", id, domain.ErrNotFound)
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) FindEngaged(c ctx.Ctx, w domain.Pubkey) (*ad.Ad, error) {
	res := &ad.Ad{}
	if err := im.q.FindOne(c, domain.TableAds, bson.M{"engagedUsers": w}, res); err == query.ErrNotFound {
		return nil, xerrors.Errorf("no engagement for %s: %w", w, domain.ErrNotFound)
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) CountUsed(c ctx.Ctx, w domain.Pubkey) (int, error) {
	n, err := im.q.Count(c, domain.TableAds, bson.M{"usedAds": w})
	if err != nil {
		c.WithField("err", err).Error("q.Count failed")
		return 0, err
	}
	return n, nil
}

func (im *impl) Create(c ctx.Ctx, a *ad.Ad) error {
	copy := *a
	if copy.EngagedUsers == nil {
		copy.EngagedUsers = []domain.Pubkey{}
	}
	if copy.UsedAds == nil {
		copy.UsedAds = []domain.Pubkey{}
	}
	if err := im.q.Insert(c, domain.TableAds, &copy); err == query.ErrDuplicateKey {
		return xerrors.Errorf("ad %s: %w", a.Id, domain.ErrConflict)
	} else if err != nil {
		c.WithField("err", err).Error("q.Insert failed")
		return err
	}
	return nil
}

func (im *impl) AddEngagement(c ctx.Ctx, id string, w domain.Pubkey) error {
	selector := bson.M{"id": id, "usedAds": bson.M{"$ne": w}}
	update := bson.M{"$addToSet": bson.M{"engagedUsers": w}}
	if err := im.q.CustomPatch(c, domain.TableAds, selector, update, false); err == query.ErrNotFound {
		return xerrors.Errorf("ad %s: %w", id, domain.ErrNotFound)
	} else if err != nil {
		c.WithField("err", err).Error("q.CustomPatch failed")
		return err
	}
	return nil
}

func (im *impl) ConsumeEngagement(c ctx.Ctx, id string, w domain.Pubkey) error {
	selector := bson.M{"id": id, "engagedUsers": w}
	update := bson.M{
		"$pull":     bson.M{"engagedUsers": w},
		"$addToSet": bson.M{"usedAds": w},
	}
	if err := im.q.CustomPatch(c, domain.TableAds, selector, update, false); err == query.ErrNotFound {
		return xerrors.Errorf("ad %s not engaged by %s: %w", id, w, domain.ErrNotFound)
	} else if err != nil {
		c.WithField("err", err).Error("q.CustomPatch failed")
		return err
	}
	return nil
}

func (im *impl) EnsureIndexes(c ctx.Ctx) error {
	return im.q.EnsureIndexes(c, domain.TableAds, adIndexes)
}
