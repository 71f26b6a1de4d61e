package chain

import (
	"time"

	"golang.org/x/xerrors"

	"github.com/gaslex/goapi/base/ctx"
	"github.com/gaslex/goapi/domain"
)

type ConfirmationStatus string

const (
	StatusProcessed ConfirmationStatus = "processed"
	StatusConfirmed ConfirmationStatus = "confirmed"
	StatusFinalized ConfirmationStatus = "finalized"
)

// Receipt describes a confirmed transfer
type Receipt struct {
	Signature   string             `json:"signature"`
	Network     domain.Network     `json:"network"`
	From        domain.Pubkey      `json:"from"`
	To          domain.Pubkey      `json:"to"`
	Lamports    uint64             `json:"lamports"`
	Slot        uint64             `json:"slot"`
	Status      ConfirmationStatus `json:"status"`
	ConfirmedAt time.Time          `json:"confirmedAt"`
}

type NetworkInfo struct {
	Name    domain.Network `json:"name"`
	Label   string         `json:"label"`
	Default bool           `json:"default"`
}

// Ledger reads balances from and submits transfers to a cluster.
// Transfer returns only after the transaction reached the configured
// commitment, or with an error if it failed or timed out.
type Ledger interface {
	Networks() []NetworkInfo
	GetBalance(c ctx.Ctx, network domain.Network, owner domain.Pubkey) (uint64, error)
	Transfer(c ctx.Ctx, network domain.Network, from, to domain.Pubkey, lamports uint64) (*Receipt, error)
}

// Keystore holds the signing keys of the wallets this service may act for
type Keystore interface {
	Has(owner domain.Pubkey) bool
	Pubkeys() []domain.Pubkey
}

// TransferErr classifies a Ledger.Transfer failure. Input rejections keep
// their kind, everything else becomes domain.ErrTransferFailed.
func TransferErr(err error) error {
	for _, kind := range []error{
		domain.ErrTransferFailed,
		domain.ErrWalletNotConnected,
		domain.ErrInvalidRecipient,
		domain.ErrInvalidAmount,
		domain.ErrInvalidNetwork,
	} {
		if xerrors.Is(err, kind) {
			return err
		}
	}
	return xerrors.Errorf("%v: %w", err, domain.ErrTransferFailed)
}
