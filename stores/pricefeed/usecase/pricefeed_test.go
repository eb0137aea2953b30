package usecase

import (
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/nftbay/auction-api/base/ctx"
	"github.com/nftbay/auction-api/domain"
	"github.com/nftbay/auction-api/service/pricefeed"
	"github.com/nftbay/auction-api/service/pricefeed/mocks"
)

type pricefeedUseCaseSuite struct {
	suite.Suite

	c    ctx.Ctx
	feed *mocks.PriceFeed
	im   domain.PriceFeedUseCase
}

func (s *pricefeedUseCaseSuite) SetupTest() {
	s.c = ctx.Background()
	s.feed = &mocks.PriceFeed{}
	s.im = New(&PriceFeedUseCaseCfg{
		Feed:   s.feed,
		MaxAge: time.Hour,
	})
}

func (s *pricefeedUseCaseSuite) mockRound(answer *big.Int, updatedAt time.Time, decimals int32) {
	s.feed.On("LatestRoundData", s.c).Return(&pricefeed.RoundData{
		Answer:    answer,
		UpdatedAt: updatedAt,
	}, nil)
	s.feed.On("Decimals", s.c).Return(decimals, nil)
}

func eth(f string) *big.Int {
	r, ok := new(big.Rat).SetString(f)
	if !ok {
		panic("bad rat: " + f)
	}
	r.Mul(r, new(big.Rat).SetInt64(1e18))
	return r.Num()
}

func (s *pricefeedUseCaseSuite) TestLatestRate() {
	now := time.Now()
	s.mockRound(big.NewInt(2000_0000_0000), now, 8)

	quote, err := s.im.LatestRate(s.c)
	s.Nil(err)
	s.Equal(int64(2000_0000_0000), quote.Answer.Int64())
	s.Equal(int32(8), quote.Decimals)
	s.Equal(now, quote.UpdatedAt)
}

func (s *pricefeedUseCaseSuite) TestLatestRateRejectsNonPositive() {
	s.mockRound(big.NewInt(0), time.Now(), 8)

	_, err := s.im.LatestRate(s.c)
	s.ErrorIs(err, domain.ErrOracleUnavailable)
}

func (s *pricefeedUseCaseSuite) TestLatestRateRejectsStale() {
	s.mockRound(big.NewInt(2000_0000_0000), time.Now().Add(-2*time.Hour), 8)

	_, err := s.im.LatestRate(s.c)
	s.ErrorIs(err, domain.ErrOracleUnavailable)
}

func (s *pricefeedUseCaseSuite) TestConvertToReference() {
	// 2000.00000000 reference units per settlement unit; reference amounts
	// carry ten fractional digits with an eight-decimal feed
	s.mockRound(big.NewInt(2000_0000_0000), time.Now(), 8)

	tenDecimals := func(whole int64) *big.Int {
		return new(big.Int).Mul(big.NewInt(whole), big.NewInt(1e10))
	}

	for _, t := range []struct {
		desc   string
		amount *big.Int
		exp    *big.Int
	}{
		{desc: "one whole unit", amount: eth("1"), exp: tenDecimals(2000)},
		{desc: "mid-auction price", amount: eth("0.55"), exp: tenDecimals(1100)},
		{desc: "hundredth of a unit", amount: eth("0.01"), exp: tenDecimals(20)},
		{desc: "zero", amount: big.NewInt(0), exp: big.NewInt(0)},
		{desc: "single smallest unit floors to zero", amount: big.NewInt(1), exp: big.NewInt(0)},
	} {
		res, err := s.im.ConvertToReference(s.c, t.amount)
		s.Nil(err, t.desc)
		s.Zero(t.exp.Cmp(res), t.desc)
	}
}

func (s *pricefeedUseCaseSuite) TestConvertToReferenceRejectsNegative() {
	_, err := s.im.ConvertToReference(s.c, big.NewInt(-1))
	s.ErrorIs(err, domain.ErrInvalidParameters)
}

func (s *pricefeedUseCaseSuite) TestDisplayRate() {
	s.mockRound(big.NewInt(2000_5000_0000), time.Now(), 8)

	rate, err := s.im.DisplayRate(s.c)
	s.Nil(err)
	s.Equal("2000.5", rate.String())
}

func TestPricefeedUseCaseSuite(t *testing.T) {
	suite.Run(t, new(pricefeedUseCaseSuite))
}
