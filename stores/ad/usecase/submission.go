package usecase

import (
	"time"

	govalidator "github.com/go-playground/validator/v10"
	"golang.org/x/xerrors"

	"github.com/gaslex/goapi/base/ctx"
	"github.com/gaslex/goapi/base/log"
	"github.com/gaslex/goapi/base/validator"
	"github.com/gaslex/goapi/domain"
	"github.com/gaslex/goapi/domain/ad"
	"github.com/gaslex/goapi/domain/chain"
	"github.com/gaslex/goapi/domain/wallet"
	"github.com/gaslex/goapi/service/notify"
)

const feePaidMessage = "Gas fee paid successfully!"

type SubmissionCfg struct {
	Wallets     wallet.Usecase
	Ledger      chain.Ledger
	Ads         ad.Usecase
	WebResource domain.WebResourceUseCase
	Notifier    notify.Notifier
	Validator   *govalidator.Validate
	FeeLamports uint64
	Treasury    domain.Pubkey
}

type submissionImpl struct {
	SubmissionCfg
	now func() time.Time
}

func NewSubmission(cfg *SubmissionCfg) ad.SubmissionUsecase {
	im := &submissionImpl{SubmissionCfg: *cfg, now: time.Now}
	if im.Notifier == nil {
		im.Notifier = notify.NewNop()
	}
	if im.Validator == nil {
		im.Validator = validator.New()
	}
	return im
}

func (im *submissionImpl) PayFixedFee(c ctx.Ctx, sessionId string) (*ad.FeeReceipt, error) {
	s, err := im.Wallets.Acquire(c, sessionId)
	if err != nil {
		return nil, err
	}
	defer im.Wallets.Release(c, sessionId)

	return im.payFee(c, s, "")
}

// SubmitAd runs validate, pay, upload, insert. Nothing is written unless the
// fee was paid.
func (im *submissionImpl) SubmitAd(c ctx.Ctx, sessionId string, sub *ad.Submission) (*ad.Ad, error) {
	if sub == nil {
		return nil, xerrors.Errorf("empty submission: %w", domain.ErrBadParamInput)
	}
	if !sub.Type.IsValid() {
		return nil, xerrors.Errorf("type %q: %w", sub.Type, domain.ErrInvalidAdType)
	}
	if err := im.Validator.Struct(sub); err != nil {
		return nil, xerrors.Errorf("%v: %w", err, domain.ErrBadParamInput)
	}
	if sub.Type.HasContent() {
		if err := im.WebResource.ValidateAdContent(c, string(sub.Type), sub.Content); err != nil {
			return nil, err
		}
	}

	s, err := im.Wallets.Acquire(c, sessionId)
	if err != nil {
		return nil, err
	}
	defer im.Wallets.Release(c, sessionId)

	id := newAdId()
	fee, err := im.payFee(c, s, id)
	if err != nil {
		return nil, err
	}
	c = ctx.WithValue(c, "feeSignature", fee.Signature)

	// the fee is spent, the remaining steps must not be cut short by the client
	dc := ctx.Detach(c)

	a := &ad.Ad{
		Id:          id,
		Title:       sub.Title,
		Description: sub.Description,
		Link:        sub.Link,
		Type:        sub.Type,
		Submitter:   s.Pubkey,
		Timestamp:   im.now().UTC(),
	}
	if sub.Type.HasContent() {
		res, err := im.WebResource.StoreAdContent(dc, string(sub.Type), sub.Content)
		if err != nil {
			dc.WithField("err", err).Error("webResource.StoreAdContent failed after fee payment")
			return nil, err
		}
		a.ContentUrl = &res.Url
	}

	if err := im.Ads.Create(dc, a); err != nil {
		dc.WithFields(log.Fields{
			"err":  err,
			"adId": a.Id,
		}).Error("ads.Create failed after fee payment")
		return nil, xerrors.Errorf("%v: %w", err, domain.ErrPersistenceFailed)
	}

	if err := im.Notifier.NotifyAdSubmitted(dc, a); err != nil {
		dc.WithField("err", err).Warn("notifier.NotifyAdSubmitted failed")
	}
	return a, nil
}

func (im *submissionImpl) payFee(c ctx.Ctx, s *wallet.Session, adId string) (*ad.FeeReceipt, error) {
	receipt, err := im.Ledger.Transfer(ctx.Detach(c), s.Network, s.Pubkey, im.Treasury, im.FeeLamports)
	if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"pubkey": s.Pubkey,
		}).Error("ledger.Transfer fee failed")
		return nil, chain.TransferErr(err)
	}

	if err := im.Wallets.RecordHistory(c, s.Id, &wallet.HistoryEntry{
		Kind:      wallet.HistoryKindAdFee,
		Signature: receipt.Signature,
		To:        im.Treasury,
		Lamports:  receipt.Lamports,
		AdId:      adId,
		CreatedAt: receipt.ConfirmedAt,
	}); err != nil {
		c.WithField("err", err).Warn("wallets.RecordHistory failed")
	}
	if _, err := im.Wallets.RefreshBalance(c, s.Id); err != nil {
		c.WithField("err", err).Warn("wallets.RefreshBalance failed")
	}

	return &ad.FeeReceipt{
		Signature: receipt.Signature,
		Lamports:  receipt.Lamports,
		Message:   feePaidMessage,
	}, nil
}
