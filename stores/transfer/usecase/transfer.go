package usecase

import (
	"strings"

	"golang.org/x/xerrors"

	"github.com/gaslex/goapi/base/ctx"
	"github.com/gaslex/goapi/base/log"
	"github.com/gaslex/goapi/base/metrics"
	"github.com/gaslex/goapi/base/validator"
	"github.com/gaslex/goapi/domain"
	"github.com/gaslex/goapi/domain/ad"
	"github.com/gaslex/goapi/domain/chain"
	"github.com/gaslex/goapi/domain/transfer"
	"github.com/gaslex/goapi/domain/wallet"
)

var met = metrics.New("transfer")

type impl struct {
	wallets  wallet.Usecase
	ads      ad.Repo
	consumer ad.Consumer
	ledger   chain.Ledger
}

// New reads eligibility from ads and consumes engagements through consumer,
// which keeps the cached ad list in step.
func New(wallets wallet.Usecase, ads ad.Repo, consumer ad.Consumer, ledger chain.Ledger) transfer.Usecase {
	return &impl{wallets, ads, consumer, ledger}
}

// AttemptGatedTransfer checks input, takes the session busy flag, finds an
// unconsumed engagement, transfers and finally consumes the engagement.
func (im *impl) AttemptGatedTransfer(c ctx.Ctx, sessionId string, req *transfer.Request) (*transfer.Result, error) {
	s, err := im.wallets.Get(c, sessionId)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, xerrors.Errorf("empty request: %w", domain.ErrBadParamInput)
	}
	amount := strings.TrimSpace(req.Amount)
	recipient := strings.TrimSpace(req.Recipient)
	if len(amount) == 0 || len(recipient) == 0 {
		return nil, xerrors.Errorf("recipient and amount are required: %w", domain.ErrBadParamInput)
	}
	lamports, err := chain.ParseSol(amount)
	if err != nil {
		return nil, err
	}
	if !validator.IsValidPubkey(recipient) {
		return nil, xerrors.Errorf("%q: %w", recipient, domain.ErrInvalidRecipient)
	}
	to := domain.Pubkey(recipient)

	if s, err = im.wallets.Acquire(c, sessionId); err != nil {
		return nil, err
	}
	defer im.wallets.Release(c, sessionId)

	c = ctx.WithValues(c, map[string]interface{}{
		"sessionId": sessionId,
		"pubkey":    s.Pubkey,
	})

	engaged, err := im.eligibleAd(c, s.Pubkey)
	if err != nil {
		met.BumpSum("rejected", 1, "reason", reason(err))
		return nil, err
	}

	// the transfer and the consumption must not be cut short by the client
	dc := ctx.Detach(c)

	receipt, err := im.ledger.Transfer(dc, s.Network, s.Pubkey, to, lamports)
	if err != nil {
		dc.WithFields(log.Fields{
			"err":  err,
			"adId": engaged.Id,
		}).Error("ledger.Transfer failed")
		met.BumpSum("failed", 1)
		return nil, chain.TransferErr(err)
	}

	if err := im.consumer.ConsumeEngagement(dc, engaged.Id, s.Pubkey); err != nil {
		// funds moved but the engagement is still open
		dc.WithFields(log.Fields{
			"err":       err,
			"adId":      engaged.Id,
			"signature": receipt.Signature,
		}).Error("consumer.ConsumeEngagement failed after transfer")
		met.BumpSum("inconsistent", 1)
		return nil, xerrors.Errorf("%v: %w", err, domain.ErrPersistenceFailed)
	}

	if err := im.wallets.RecordHistory(dc, sessionId, &wallet.HistoryEntry{
		Kind:      wallet.HistoryKindTransfer,
		Signature: receipt.Signature,
		To:        to,
		Lamports:  lamports,
		AdId:      engaged.Id,
		CreatedAt: receipt.ConfirmedAt,
	}); err != nil {
		dc.WithField("err", err).Warn("wallets.RecordHistory failed")
	}
	if _, err := im.wallets.RefreshBalance(dc, sessionId); err != nil {
		dc.WithField("err", err).Warn("wallets.RefreshBalance failed")
	}

	met.BumpSum("sent", 1)
	met.BumpSum("lamports", float64(lamports))
	return &transfer.Result{
		Receipt: receipt,
		AdId:    engaged.Id,
		Message: amount + " SOL sent!",
	}, nil
}

// eligibleAd returns an ad w engaged with and has not used yet
func (im *impl) eligibleAd(c ctx.Ctx, w domain.Pubkey) (*ad.Ad, error) {
	a, err := im.ads.FindEngaged(c, w)
	if err == nil {
		return a, nil
	} else if !xerrors.Is(err, domain.ErrNotFound) {
		c.WithField("err", err).Error("ads.FindEngaged failed")
		return nil, err
	}

	used, err := im.ads.CountUsed(c, w)
	if err != nil {
		c.WithField("err", err).Error("ads.CountUsed failed")
		return nil, err
	}
	if used > 0 {
		return nil, domain.ErrAlreadyUsed
	}
	return nil, domain.ErrNotEngaged
}

func reason(err error) string {
	switch {
	case xerrors.Is(err, domain.ErrAlreadyUsed):
		return "already_used"
	case xerrors.Is(err, domain.ErrNotEngaged):
		return "not_engaged"
	}
	return "error"
}
