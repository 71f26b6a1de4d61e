package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/gaslex/goapi/base/ctx"
	"github.com/gaslex/goapi/domain"
	"github.com/gaslex/goapi/domain/ad"
	"github.com/gaslex/goapi/domain/keys"
	mAd "github.com/gaslex/goapi/domain/ad/mocks"
	"github.com/gaslex/goapi/domain/chain"
	mChain "github.com/gaslex/goapi/domain/chain/mocks"
	"github.com/gaslex/goapi/domain/transfer"
	"github.com/gaslex/goapi/domain/wallet"
	mWallet "github.com/gaslex/goapi/domain/wallet/mocks"
	"github.com/gaslex/goapi/service/cache"
	"github.com/gaslex/goapi/service/cache/provider/primitive"
	"github.com/gaslex/goapi/stores/ad/repository"
	ad_usecase "github.com/gaslex/goapi/stores/ad/usecase"
)

const (
	sessionId = "s1"
	alice     = domain.Pubkey("9WzDXwBbmkg8ZTbNMqUxvQRAyrZzDsGYdLVL9zYtAWWM")
	bob       = domain.Pubkey("7EcDhSYGxXyscszYEp35KHN8vvw3svAuLKTzXwCFLtV")
	recipient = "4WxHcApXLCLscq3JHkiNZpdvowu5oiiL9e5R4X8ZV6KE"
)

type transferSuite struct {
	suite.Suite
	wallets *mWallet.Usecase
	ledger  *mChain.Ledger
	ads     ad.Repo
	sponsor ad.Usecase
	session *wallet.Session
	im      transfer.Usecase
}

func TestTransferSuite(t *testing.T) {
	suite.Run(t, new(transferSuite))
}

func (s *transferSuite) SetupTest() {
	s.wallets = &mWallet.Usecase{}
	s.ledger = &mChain.Ledger{}
	s.session = &wallet.Session{Id: sessionId, Pubkey: alice, Network: domain.NetworkDevnet}
	s.ads = repository.NewMemory(
		&ad.Ad{Id: "a1", Timestamp: time.Now()},
		&ad.Ad{Id: "a2", Timestamp: time.Now().Add(-time.Hour)},
	)
	s.sponsor = ad_usecase.New(s.ads, cache.New(cache.ServiceConfig{
		Ttl:   time.Minute,
		Pfx:   keys.PfxAds,
		Cache: primitive.NewPrimitive("ads", 1),
	}))
	s.im = New(s.wallets, s.ads, s.sponsor, s.ledger)
}

func (s *transferSuite) TearDownTest() {
	s.wallets.AssertExpectations(s.T())
	s.ledger.AssertExpectations(s.T())
}

func (s *transferSuite) expectConnected() {
	s.wallets.On("Get", mock.Anything, sessionId).Return(s.session, nil).Once()
}

func (s *transferSuite) expectAcquired() {
	s.wallets.On("Acquire", mock.Anything, sessionId).Return(s.session, nil).Once()
	s.wallets.On("Release", mock.Anything, sessionId).Return().Once()
}

func (s *transferSuite) expectSent(lamports uint64) {
	s.ledger.On("Transfer", mock.Anything, domain.NetworkDevnet, alice, domain.Pubkey(recipient), lamports).
		Return(&chain.Receipt{Signature: "sig", Lamports: lamports, ConfirmedAt: time.Now()}, nil).Once()
	s.wallets.On("RecordHistory", mock.Anything, sessionId, mock.MatchedBy(func(e *wallet.HistoryEntry) bool {
		return e.Kind == wallet.HistoryKindTransfer && e.Signature == "sig" && e.Lamports == lamports
	})).Return(nil).Once()
	s.wallets.On("RefreshBalance", mock.Anything, sessionId).Return(s.session, nil).Once()
}

func (s *transferSuite) engage(id string) {
	s.Require().NoError(s.ads.AddEngagement(ctx.Background(), id, alice))
}

func (s *transferSuite) TestNotConnected() {
	s.wallets.On("Get", mock.Anything, sessionId).Return(nil, domain.ErrWalletNotConnected).Once()

	_, err := s.im.AttemptGatedTransfer(ctx.Background(), sessionId, &transfer.Request{Recipient: recipient, Amount: "1"})
	s.ErrorIs(err, domain.ErrWalletNotConnected)
}

func (s *transferSuite) TestInputRejectedBeforeNetwork() {
	cases := []struct {
		name string
		req  *transfer.Request
		want error
	}{
		{"empty amount", &transfer.Request{Recipient: recipient}, domain.ErrBadParamInput},
		{"empty recipient", &transfer.Request{Amount: "1"}, domain.ErrBadParamInput},
		{"zero", &transfer.Request{Recipient: recipient, Amount: "0"}, domain.ErrInvalidAmount},
		{"negative", &transfer.Request{Recipient: recipient, Amount: "-1"}, domain.ErrInvalidAmount},
		{"not a number", &transfer.Request{Recipient: recipient, Amount: "abc"}, domain.ErrInvalidAmount},
		{"bad recipient", &transfer.Request{Recipient: "nope", Amount: "1"}, domain.ErrInvalidRecipient},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.expectConnected()
			_, err := s.im.AttemptGatedTransfer(ctx.Background(), sessionId, tc.req)
			s.ErrorIs(err, tc.want)
		})
	}
}

func (s *transferSuite) TestBusy() {
	s.expectConnected()
	s.wallets.On("Acquire", mock.Anything, sessionId).Return(nil, domain.ErrSessionBusy).Once()

	_, err := s.im.AttemptGatedTransfer(ctx.Background(), sessionId, &transfer.Request{Recipient: recipient, Amount: "1"})
	s.ErrorIs(err, domain.ErrSessionBusy)
}

func (s *transferSuite) TestNotEngaged() {
	s.expectConnected()
	s.expectAcquired()

	_, err := s.im.AttemptGatedTransfer(ctx.Background(), sessionId, &transfer.Request{Recipient: recipient, Amount: "1"})
	s.ErrorIs(err, domain.ErrNotEngaged)
}

func (s *transferSuite) TestSuccessConsumesEngagement() {
	s.engage("a2")
	s.Require().NoError(s.ads.AddEngagement(ctx.Background(), "a1", bob))
	s.expectConnected()
	s.expectAcquired()
	s.expectSent(500_000_000)

	res, err := s.im.AttemptGatedTransfer(ctx.Background(), sessionId, &transfer.Request{Recipient: recipient, Amount: "0.5"})
	s.Require().NoError(err)
	s.Equal("0.5 SOL sent!", res.Message)
	s.Equal("a2", res.AdId)
	s.Equal("sig", res.Receipt.Signature)

	a, err := s.ads.FindOne(ctx.Background(), "a2")
	s.Require().NoError(err)
	s.False(a.HasEngaged(alice))
	s.True(a.HasUsed(alice))

	other, err := s.ads.FindOne(ctx.Background(), "a1")
	s.Require().NoError(err)
	s.Equal([]domain.Pubkey{bob}, other.EngagedUsers)
	s.Empty(other.UsedAds)
	s.False(other.HasEngaged(alice))
	s.False(other.HasUsed(alice))
}

func (s *transferSuite) TestSuccessRefreshesCachedAdList() {
	s.engage("a1")
	ads, err := s.sponsor.GetAds(ctx.Background())
	s.Require().NoError(err)
	s.Equal([]domain.Pubkey{alice}, ads[0].EngagedUsers)

	s.expectConnected()
	s.expectAcquired()
	s.expectSent(1_000_000_000)
	_, err = s.im.AttemptGatedTransfer(ctx.Background(), sessionId, &transfer.Request{Recipient: recipient, Amount: "1"})
	s.Require().NoError(err)

	ads, err = s.sponsor.GetAds(ctx.Background())
	s.Require().NoError(err)
	s.Equal("a1", ads[0].Id)
	s.Empty(ads[0].EngagedUsers)
	s.Equal([]domain.Pubkey{alice}, ads[0].UsedAds)
}

func (s *transferSuite) TestEngagementIsSingleUse() {
	s.engage("a1")
	s.expectConnected()
	s.expectAcquired()
	s.expectSent(1_000_000_000)

	_, err := s.im.AttemptGatedTransfer(ctx.Background(), sessionId, &transfer.Request{Recipient: recipient, Amount: "1"})
	s.Require().NoError(err)

	s.expectConnected()
	s.expectAcquired()
	_, err = s.im.AttemptGatedTransfer(ctx.Background(), sessionId, &transfer.Request{Recipient: recipient, Amount: "1"})
	s.ErrorIs(err, domain.ErrAlreadyUsed)
}

func (s *transferSuite) TestEachEngagementPaysForOneTransfer() {
	s.engage("a1")
	s.engage("a2")
	for i := 0; i < 2; i++ {
		s.expectConnected()
		s.expectAcquired()
		s.expectSent(1_000_000_000)
		_, err := s.im.AttemptGatedTransfer(ctx.Background(), sessionId, &transfer.Request{Recipient: recipient, Amount: "1"})
		s.Require().NoError(err)
	}

	n, err := s.ads.CountUsed(ctx.Background(), alice)
	s.Require().NoError(err)
	s.Equal(2, n)
}

func (s *transferSuite) TestLedgerFailureLeavesEngagement() {
	s.engage("a1")
	s.expectConnected()
	s.expectAcquired()
	s.ledger.On("Transfer", mock.Anything, domain.NetworkDevnet, alice, domain.Pubkey(recipient), uint64(1_000_000_000)).
		Return(nil, errors.New("insufficient funds")).Once()

	_, err := s.im.AttemptGatedTransfer(ctx.Background(), sessionId, &transfer.Request{Recipient: recipient, Amount: "1"})
	s.ErrorIs(err, domain.ErrTransferFailed)

	a, err := s.ads.FindOne(ctx.Background(), "a1")
	s.Require().NoError(err)
	s.True(a.HasEngaged(alice))
	s.False(a.HasUsed(alice))
}

func (s *transferSuite) TestConsumeFailureIsPersistenceError() {
	repo := &mAd.Repo{}
	s.im = New(s.wallets, repo, repo, s.ledger)
	repo.On("FindEngaged", mock.Anything, alice).Return(&ad.Ad{Id: "a1"}, nil).Once()
	repo.On("ConsumeEngagement", mock.Anything, "a1", alice).Return(errors.New("write concern")).Once()
	s.expectConnected()
	s.expectAcquired()
	s.ledger.On("Transfer", mock.Anything, domain.NetworkDevnet, alice, domain.Pubkey(recipient), uint64(1_000_000_000)).
		Return(&chain.Receipt{Signature: "sig"}, nil).Once()

	_, err := s.im.AttemptGatedTransfer(ctx.Background(), sessionId, &transfer.Request{Recipient: recipient, Amount: "1"})
	s.ErrorIs(err, domain.ErrPersistenceFailed)
	repo.AssertExpectations(s.T())
}
