package pricefeed

import (
	"math/big"
	"time"

	"github.com/nftbay/auction-api/base/ctx"
)

// RoundData is one raw aggregator round.
type RoundData struct {
	Answer    *big.Int
	UpdatedAt time.Time
}

// PriceFeed reads a single settlement-asset/reference-currency aggregator.
// Staleness and sign checks belong to the usecase layer, not here.
type PriceFeed interface {
	LatestRoundData(c ctx.Ctx) (*RoundData, error)
	Decimals(c ctx.Ctx) (int32, error)
}
