package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/gaslex/goapi/base/ctx"
	"github.com/gaslex/goapi/domain"
	"github.com/gaslex/goapi/domain/ad"
	"github.com/gaslex/goapi/domain/keys"
	"github.com/gaslex/goapi/service/cache"
	"github.com/gaslex/goapi/service/cache/provider/primitive"
	"github.com/gaslex/goapi/stores/ad/repository"
)

const (
	alice = domain.Pubkey("9WzDXwBbmkg8ZTbNMqUxvQRAyrZzDsGYdLVL9zYtAWWM")
	bob   = domain.Pubkey("4WxHcApXLCLscq3JHkiNZpdvowu5oiiL9e5R4X8ZV6KE")
)

type adUsecaseSuite struct {
	suite.Suite
	repo ad.Repo
	im   ad.Usecase
}

func TestAdUsecaseSuite(t *testing.T) {
	suite.Run(t, new(adUsecaseSuite))
}

func (s *adUsecaseSuite) SetupTest() {
	now := time.Now()
	s.repo = repository.NewMemory(
		&ad.Ad{Id: "a1", Title: "first", Type: ad.TypeText, Timestamp: now.Add(-time.Minute)},
		&ad.Ad{Id: "a2", Title: "second", Type: ad.TypeText, Timestamp: now, UsedAds: []domain.Pubkey{bob}},
	)
	s.im = New(s.repo, cache.New(cache.ServiceConfig{
		Ttl:   time.Minute,
		Pfx:   keys.PfxAds,
		Cache: primitive.NewPrimitive("ads", 1),
	}))
}

func (s *adUsecaseSuite) TestGetAdsNewestFirst() {
	ads, err := s.im.GetAds(ctx.Background())
	s.Require().NoError(err)
	s.Require().Len(ads, 2)
	s.Equal("a2", ads[0].Id)
	s.Equal("a1", ads[1].Id)
}

func (s *adUsecaseSuite) TestEngageIsIdempotentAndRefreshesList() {
	c := ctx.Background()
	_, err := s.im.GetAds(c)
	s.Require().NoError(err)

	s.NoError(s.im.Engage(c, alice, "a1"))
	s.NoError(s.im.Engage(c, alice, "a1"))

	ads, err := s.im.GetAds(c)
	s.Require().NoError(err)
	s.Equal([]domain.Pubkey{alice}, ads[1].EngagedUsers)
}

func (s *adUsecaseSuite) TestEngageRefusesUsedAd() {
	err := s.im.Engage(ctx.Background(), bob, "a2")
	s.ErrorIs(err, domain.ErrAlreadyUsed)

	a, err := s.repo.FindOne(ctx.Background(), "a2")
	s.Require().NoError(err)
	s.False(a.HasEngaged(bob))
}

func (s *adUsecaseSuite) TestEngageRejectsBadInput() {
	c := ctx.Background()
	s.ErrorIs(s.im.Engage(c, "not-a-key", "a1"), domain.ErrBadParamInput)
	s.ErrorIs(s.im.Engage(c, alice, ""), domain.ErrBadParamInput)
	s.ErrorIs(s.im.Engage(c, alice, "missing"), domain.ErrNotFound)
}

func (s *adUsecaseSuite) TestCreateFillsDefaults() {
	c := ctx.Background()
	a := &ad.Ad{Title: "third", Type: ad.TypeText}
	s.Require().NoError(s.im.Create(c, a))
	s.NotEmpty(a.Id)
	s.False(a.Timestamp.IsZero())
	s.NotNil(a.EngagedUsers)
	s.NotNil(a.UsedAds)

	ads, err := s.im.GetAds(c)
	s.Require().NoError(err)
	s.Len(ads, 3)
	s.Equal(a.Id, ads[0].Id)
}

func (s *adUsecaseSuite) TestConsumeEngagementRefreshesList() {
	c := ctx.Background()
	s.Require().NoError(s.im.Engage(c, alice, "a1"))
	ads, err := s.im.GetAds(c)
	s.Require().NoError(err)
	s.Equal([]domain.Pubkey{alice}, ads[1].EngagedUsers)

	s.Require().NoError(s.im.ConsumeEngagement(c, "a1", alice))

	ads, err = s.im.GetAds(c)
	s.Require().NoError(err)
	s.Empty(ads[1].EngagedUsers)
	s.Equal([]domain.Pubkey{alice}, ads[1].UsedAds)
}
