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
	"github.com/gaslex/goapi/domain/chain"
	mChain "github.com/gaslex/goapi/domain/chain/mocks"
	mDomain "github.com/gaslex/goapi/domain/mocks"
	"github.com/gaslex/goapi/domain/wallet"
	mWallet "github.com/gaslex/goapi/domain/wallet/mocks"
	"github.com/gaslex/goapi/service/cache"
	"github.com/gaslex/goapi/service/cache/provider/primitive"
	mNotify "github.com/gaslex/goapi/service/notify/mocks"
	"github.com/gaslex/goapi/stores/ad/repository"
)

const (
	sessionId   = "session-1"
	feeLamports = uint64(100_000_000)
)

type submissionSuite struct {
	suite.Suite
	wallets  *mWallet.Usecase
	ledger   *mChain.Ledger
	web      *mDomain.WebResourceUseCase
	notifier *mNotify.Notifier
	repo     ad.Repo
	im       ad.SubmissionUsecase
	session  *wallet.Session
}

func TestSubmissionSuite(t *testing.T) {
	suite.Run(t, new(submissionSuite))
}

func (s *submissionSuite) SetupTest() {
	s.wallets = &mWallet.Usecase{}
	s.ledger = &mChain.Ledger{}
	s.web = &mDomain.WebResourceUseCase{}
	s.notifier = &mNotify.Notifier{}
	s.repo = repository.NewMemory()
	s.session = &wallet.Session{Id: sessionId, Pubkey: alice, Network: domain.NetworkDevnet}

	ads := New(s.repo, cache.New(cache.ServiceConfig{
		Ttl:   time.Minute,
		Pfx:   "ads",
		Cache: primitive.NewPrimitive("ads", 1),
	}))
	s.im = NewSubmission(&SubmissionCfg{
		Wallets:     s.wallets,
		Ledger:      s.ledger,
		Ads:         ads,
		WebResource: s.web,
		Notifier:    s.notifier,
		FeeLamports: feeLamports,
		Treasury:    domain.TreasuryPubkey,
	})
}

func (s *submissionSuite) TearDownTest() {
	s.wallets.AssertExpectations(s.T())
	s.ledger.AssertExpectations(s.T())
	s.web.AssertExpectations(s.T())
	s.notifier.AssertExpectations(s.T())
}

func (s *submissionSuite) expectSession() {
	s.wallets.On("Acquire", mock.Anything, sessionId).Return(s.session, nil).Once()
	s.wallets.On("Release", mock.Anything, sessionId).Return().Once()
}

func (s *submissionSuite) expectFeePaid() {
	s.ledger.On("Transfer", mock.Anything, domain.NetworkDevnet, alice, domain.TreasuryPubkey, feeLamports).
		Return(&chain.Receipt{Signature: "sig-fee", Lamports: feeLamports, ConfirmedAt: time.Now()}, nil).Once()
	s.wallets.On("RecordHistory", mock.Anything, sessionId, mock.MatchedBy(func(e *wallet.HistoryEntry) bool {
		return e.Kind == wallet.HistoryKindAdFee && e.Signature == "sig-fee" && e.To == domain.TreasuryPubkey
	})).Return(nil).Once()
	s.wallets.On("RefreshBalance", mock.Anything, sessionId).Return(s.session, nil).Once()
}

func (s *submissionSuite) TestPayFixedFee() {
	s.expectSession()
	s.expectFeePaid()

	res, err := s.im.PayFixedFee(ctx.Background(), sessionId)
	s.Require().NoError(err)
	s.Equal("sig-fee", res.Signature)
	s.Equal(feeLamports, res.Lamports)
	s.Equal("Gas fee paid successfully!", res.Message)
}

func (s *submissionSuite) TestPayFixedFeeBusy() {
	s.wallets.On("Acquire", mock.Anything, sessionId).Return(nil, domain.ErrSessionBusy).Once()

	_, err := s.im.PayFixedFee(ctx.Background(), sessionId)
	s.ErrorIs(err, domain.ErrSessionBusy)
}

func (s *submissionSuite) TestSubmitTextAd() {
	s.expectSession()
	s.expectFeePaid()
	s.notifier.On("NotifyAdSubmitted", mock.Anything, mock.AnythingOfType("*ad.Ad")).Return(nil).Once()

	a, err := s.im.SubmitAd(ctx.Background(), sessionId, &ad.Submission{
		Title:       "Buy my token",
		Description: "the best one",
		Link:        "https://example.com",
		Type:        ad.TypeText,
	})
	s.Require().NoError(err)
	s.Nil(a.ContentUrl)
	s.Equal(alice, a.Submitter)

	stored, err := s.repo.FindOne(ctx.Background(), a.Id)
	s.Require().NoError(err)
	s.Empty(stored.EngagedUsers)
	s.Empty(stored.UsedAds)
}

func (s *submissionSuite) TestSubmitImageAd() {
	content := []byte("png bytes")
	s.web.On("ValidateAdContent", mock.Anything, "image", content).Return(nil).Once()
	s.expectSession()
	s.expectFeePaid()
	s.web.On("StoreAdContent", mock.Anything, "image", content).
		Return(&domain.WebResource{Url: "https://cdn.example/ads/x.png"}, nil).Once()
	s.notifier.On("NotifyAdSubmitted", mock.Anything, mock.Anything).Return(errors.New("discord down")).Once()

	a, err := s.im.SubmitAd(ctx.Background(), sessionId, &ad.Submission{
		Title:       "Look",
		Description: "an image",
		Link:        "https://example.com",
		Type:        ad.TypeImage,
		Content:     content,
	})
	s.Require().NoError(err)
	s.Equal("https://cdn.example/ads/x.png", *a.ContentUrl)
}

func (s *submissionSuite) TestSubmitInvalidFormPaysNothing() {
	_, err := s.im.SubmitAd(ctx.Background(), sessionId, &ad.Submission{
		Title: "no link",
		Type:  ad.TypeText,
	})
	s.ErrorIs(err, domain.ErrBadParamInput)

	_, err = s.im.SubmitAd(ctx.Background(), sessionId, &ad.Submission{
		Title:       "t",
		Description: "d",
		Link:        "https://example.com",
		Type:        "audio",
	})
	s.ErrorIs(err, domain.ErrInvalidAdType)
}

func (s *submissionSuite) TestSubmitMismatchedContentPaysNothing() {
	content := []byte("plain text")
	s.web.On("ValidateAdContent", mock.Anything, "video", content).Return(domain.ErrContentMismatch).Once()

	_, err := s.im.SubmitAd(ctx.Background(), sessionId, &ad.Submission{
		Title:       "t",
		Description: "d",
		Link:        "https://example.com",
		Type:        ad.TypeVideo,
		Content:     content,
	})
	s.ErrorIs(err, domain.ErrContentMismatch)
}

func (s *submissionSuite) TestSubmitFeeFailureWritesNothing() {
	s.expectSession()
	s.ledger.On("Transfer", mock.Anything, domain.NetworkDevnet, alice, domain.TreasuryPubkey, feeLamports).
		Return(nil, errors.New("blockhash not found")).Once()

	_, err := s.im.SubmitAd(ctx.Background(), sessionId, &ad.Submission{
		Title:       "t",
		Description: "d",
		Link:        "https://example.com",
		Type:        ad.TypeText,
	})
	s.ErrorIs(err, domain.ErrTransferFailed)

	all, err := s.repo.FindAll(ctx.Background())
	s.Require().NoError(err)
	s.Empty(all)
}

func (s *submissionSuite) TestSubmitUploadFailure() {
	content := []byte("mp4 bytes")
	s.web.On("ValidateAdContent", mock.Anything, "video", content).Return(nil).Once()
	s.expectSession()
	s.expectFeePaid()
	s.web.On("StoreAdContent", mock.Anything, "video", content).Return(nil, domain.ErrUploadFailed).Once()

	_, err := s.im.SubmitAd(ctx.Background(), sessionId, &ad.Submission{
		Title:       "t",
		Description: "d",
		Link:        "https://example.com",
		Type:        ad.TypeVideo,
		Content:     content,
	})
	s.ErrorIs(err, domain.ErrUploadFailed)
}
