package domain

import (
	"math/big"
	"time"

	"github.com/shopspring/decimal"
	"github.com/nftbay/auction-api/base/ctx"
)

// RateQuote is one answer from the settlement-asset price feed. Answer is
// expressed in the feed's own fixed-point precision (Decimals fractional
// digits of the reference currency per whole settlement unit).
type RateQuote struct {
	Answer    *big.Int
	Decimals  int32
	UpdatedAt time.Time
}

// PriceFeedUseCase gates raw feed reads behind the freshness and positivity
// checks and owns the unit conversion into reference-currency amounts.
type PriceFeedUseCase interface {
	// LatestRate returns the current quote or ErrOracleUnavailable when the
	// feed answer is non-positive or older than the configured bound.
	LatestRate(c ctx.Ctx) (*RateQuote, error)

	// ConvertToReference converts a settlement amount in smallest units
	// (18 decimals) into reference-currency smallest units (18 decimals),
	// flooring toward zero.
	ConvertToReference(c ctx.Ctx, amount *big.Int) (*big.Int, error)

	// DisplayRate returns the latest quote as a decimal in whole reference
	// units, for logging and activity records.
	DisplayRate(c ctx.Ctx) (decimal.Decimal, error)
}
