package domain

import (
	"math/big"

	"github.com/nftbay/auction-api/base/ctx"
)

// SettlementLedger moves settlement-asset value between accounts. Amounts
// are in smallest units. Transfers either complete or fail with no effect.
type SettlementLedger interface {
	Transfer(c ctx.Ctx, chainId ChainId, from, to Address, amount *big.Int) error
}
