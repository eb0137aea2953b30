package auction

import (
	"math/big"
	"time"
)

const (
	// MaxPriceBits caps startPrice width at construction. With durations
	// capped below 2^35 seconds the interpolation's intermediate product
	// stays under 2^163 bits, far from any practical big.Int limit while
	// still rejecting garbage input.
	MaxPriceBits = 128

	// MaxDuration is ten years in seconds.
	MaxDuration = int64(10 * 365 * 24 * 3600)
)

// PriceAt returns the listing price at the given instant. The price decays
// linearly from StartPrice to EndPrice over the decay window and is clamped
// outside it. Pure integer arithmetic: the spread is multiplied by the
// elapsed seconds before dividing by the duration, and the division floors,
// so intermediate truncation always lands toward EndPrice and the result is
// reproducible bit for bit.
func PriceAt(a *Auction, now time.Time) *big.Int {
	elapsed := now.Unix() - a.StartTime.Unix()
	if elapsed <= 0 {
		return new(big.Int).Set(a.StartPrice)
	}
	if elapsed >= a.Duration {
		return new(big.Int).Set(a.EndPrice)
	}

	spread := new(big.Int).Sub(a.StartPrice, a.EndPrice)
	decay := spread.Mul(spread, big.NewInt(elapsed))
	decay.Quo(decay, big.NewInt(a.Duration))

	price := new(big.Int).Sub(a.StartPrice, decay)

	// the clamps are unreachable for valid listings, kept as invariants
	if price.Cmp(a.EndPrice) < 0 {
		return new(big.Int).Set(a.EndPrice)
	}
	if price.Cmp(a.StartPrice) > 0 {
		return new(big.Int).Set(a.StartPrice)
	}
	return price
}
