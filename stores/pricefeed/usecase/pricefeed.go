package usecase

import (
	"math/big"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nftbay/auction-api/base/ctx"
	"github.com/nftbay/auction-api/base/log"
	"github.com/nftbay/auction-api/domain"
	"github.com/nftbay/auction-api/service/pricefeed"
)

type impl struct {
	feed   pricefeed.PriceFeed
	maxAge time.Duration
}

type PriceFeedUseCaseCfg struct {
	Feed pricefeed.PriceFeed

	// MaxAge bounds how stale a feed answer may be before it is rejected
	MaxAge time.Duration
}

func New(cfg *PriceFeedUseCaseCfg) domain.PriceFeedUseCase {
	return &impl{
		feed:   cfg.Feed,
		maxAge: cfg.MaxAge,
	}
}

func (im *impl) LatestRate(c ctx.Ctx) (*domain.RateQuote, error) {
	round, err := im.feed.LatestRoundData(c)
	if err != nil {
		c.WithField("err", err).Error("feed.LatestRoundData failed")
		return nil, domain.ErrOracleUnavailable
	}

	if round.Answer == nil || round.Answer.Sign() <= 0 {
		c.WithField("answer", round.Answer).Warn("feed returned non-positive answer")
		return nil, domain.ErrOracleUnavailable
	}

	if im.maxAge > 0 {
		if age := time.Since(round.UpdatedAt); age > im.maxAge {
			c.WithFields(log.Fields{
				"updatedAt": round.UpdatedAt,
				"age":       age.String(),
				"maxAge":    im.maxAge.String(),
			}).Warn("feed answer too old")
			return nil, domain.ErrOracleUnavailable
		}
	}

	decimals, err := im.feed.Decimals(c)
	if err != nil {
		c.WithField("err", err).Error("feed.Decimals failed")
		return nil, domain.ErrOracleUnavailable
	}

	return &domain.RateQuote{
		Answer:    round.Answer,
		Decimals:  decimals,
		UpdatedAt: round.UpdatedAt,
	}, nil
}

// ConvertToReference scales amount by the latest rate. The whole-unit rate
// is answer / 10^feedDecimals and reference amounts carry
// 18 - feedDecimals fractional digits, so
//
//	amount * answer * 10^(18-feedDecimals) / 10^18 / 10^feedDecimals
//
// which collapses to a single floor division by 10^(2*feedDecimals),
// computed multiply-first so truncation happens exactly once, toward zero.
// For an 8-decimal feed one whole settlement unit at 2000.00000000 yields
// 2000 * 10^10.
func (im *impl) ConvertToReference(c ctx.Ctx, amount *big.Int) (*big.Int, error) {
	if amount == nil || amount.Sign() < 0 {
		return nil, domain.ErrInvalidParameters
	}

	quote, err := im.LatestRate(c)
	if err != nil {
		return nil, err
	}

	res := new(big.Int).Mul(amount, quote.Answer)
	res.Quo(res, new(big.Int).Exp(domain.Big10, big.NewInt(2*int64(quote.Decimals)), nil))
	return res, nil
}

func (im *impl) DisplayRate(c ctx.Ctx) (decimal.Decimal, error) {
	quote, err := im.LatestRate(c)
	if err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromBigInt(quote.Answer, -quote.Decimals), nil
}
