package chain

import (
	"math"
	"math/big"

	"github.com/shopspring/decimal"
	"golang.org/x/xerrors"

	"github.com/gaslex/goapi/domain"
)

const (
	// LamportsPerSol is the number of base units in one SOL
	LamportsPerSol = 1_000_000_000
	solDecimals    = 9
)

var maxLamports = decimal.NewFromBigInt(new(big.Int).SetUint64(math.MaxUint64), 0)

// ParseSol converts a decimal SOL amount into lamports. The amount must be
// positive and expressible in whole lamports.
func ParseSol(amount string) (uint64, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return 0, xerrors.Errorf("%q: %w", amount, domain.ErrInvalidAmount)
	}
	return SolToLamports(d)
}

func SolToLamports(sol decimal.Decimal) (uint64, error) {
	lamports := sol.Shift(solDecimals)
	if !lamports.IsPositive() {
		return 0, xerrors.Errorf("%s must be positive: %w", sol, domain.ErrInvalidAmount)
	}
	if !lamports.Equal(lamports.Truncate(0)) {
		return 0, xerrors.Errorf("%s has more than %d decimals: %w", sol, solDecimals, domain.ErrInvalidAmount)
	}
	if lamports.GreaterThan(maxLamports) {
		return 0, xerrors.Errorf("%s overflows: %w", sol, domain.ErrInvalidAmount)
	}
	return lamports.BigInt().Uint64(), nil
}

func LamportsToSol(lamports uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(lamports), -solDecimals)
}

// FormatSol renders lamports as a SOL amount without trailing zeros
func FormatSol(lamports uint64) string {
	return LamportsToSol(lamports).String()
}
