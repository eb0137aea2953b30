package auction

import (
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/nftbay/auction-api/domain"
)

type pricingSuite struct {
	suite.Suite

	start time.Time
}

func TestPricingSuite(t *testing.T) {
	suite.Run(t, new(pricingSuite))
}

func (s *pricingSuite) SetupTest() {
	s.start = time.Unix(1700000000, 0)
}

func (s *pricingSuite) listing(startPrice, endPrice *big.Int, duration int64) *Auction {
	return &Auction{
		Id:         1,
		ChainId:    1,
		Seller:     "0x939ae6a4c8dfdbb1f7085189574f0a938013952a",
		NftAddress: "0x5af0d9827e0c53e4799bb226655a1de152a425a5",
		TokenId:    "1",
		StartPrice: startPrice,
		EndPrice:   endPrice,
		StartTime:  s.start,
		Duration:   duration,
	}
}

func eth(f string) *big.Int {
	d, ok := new(big.Rat).SetString(f)
	if !ok {
		panic("bad rat " + f)
	}
	wei := new(big.Rat).Mul(d, new(big.Rat).SetInt64(1e18))
	if !wei.IsInt() {
		panic("not an integral wei amount " + f)
	}
	return wei.Num()
}

func (s *pricingSuite) TestClampsOutsideWindow() {
	a := s.listing(eth("1.0"), eth("0.1"), 3600)

	tests := []struct {
		desc string
		at   time.Time
		exp  *big.Int
	}{
		{
			desc: "before start returns start price",
			at:   s.start.Add(-10 * time.Minute),
			exp:  eth("1.0"),
		},
		{
			desc: "exactly at start returns start price",
			at:   s.start,
			exp:  eth("1.0"),
		},
		{
			desc: "exactly at end of window returns end price",
			at:   s.start.Add(3600 * time.Second),
			exp:  eth("0.1"),
		},
		{
			desc: "long after end returns end price",
			at:   s.start.Add(240 * time.Hour),
			exp:  eth("0.1"),
		},
	}
	for _, t := range tests {
		s.Zero(t.exp.Cmp(PriceAt(a, t.at)), t.desc)
	}
}

func (s *pricingSuite) TestLinearMidpoint() {
	// 1.0 -> 0.1 over an hour; halfway in, price is exactly 0.55
	a := s.listing(eth("1.0"), eth("0.1"), 3600)
	got := PriceAt(a, s.start.Add(1800*time.Second))
	s.Zero(eth("0.55").Cmp(got))
}

func (s *pricingSuite) TestFloorsTowardEndPrice() {
	// spread 10 over 3 seconds: decay floors, price stays high
	a := s.listing(big.NewInt(10), big.NewInt(0), 3)

	s.Zero(big.NewInt(7).Cmp(PriceAt(a, s.start.Add(1*time.Second))))
	s.Zero(big.NewInt(4).Cmp(PriceAt(a, s.start.Add(2*time.Second))))
}

func (s *pricingSuite) TestMonotoneNonIncreasingWithinWindow() {
	a := s.listing(eth("1.0"), eth("0.1"), 3600)

	prev := PriceAt(a, s.start)
	for sec := int64(1); sec <= 3600; sec += 7 {
		cur := PriceAt(a, s.start.Add(time.Duration(sec)*time.Second))
		s.True(cur.Cmp(prev) <= 0, "price increased at %ds", sec)
		s.True(cur.Cmp(a.EndPrice) >= 0, "price under end price at %ds", sec)
		s.True(cur.Cmp(a.StartPrice) <= 0, "price over start price at %ds", sec)
		prev = cur
	}
	s.Zero(a.EndPrice.Cmp(PriceAt(a, s.start.Add(3600*time.Second))))
}

func (s *pricingSuite) TestPureAndRepeatable() {
	a := s.listing(eth("1.0"), eth("0.1"), 3600)
	at := s.start.Add(1234 * time.Second)

	first := PriceAt(a, at)
	for i := 0; i < 5; i++ {
		s.Zero(first.Cmp(PriceAt(a, at)))
	}
	// result is a copy, mutating it must not touch the listing
	first.SetInt64(0)
	s.Zero(eth("1.0").Cmp(a.StartPrice))
}

func (s *pricingSuite) TestValidate() {
	huge := new(big.Int).Lsh(domain.Big1, 130)

	tests := []struct {
		desc   string
		mutate func(*Auction)
		expErr error
	}{
		{
			desc:   "valid listing",
			mutate: func(a *Auction) {},
			expErr: nil,
		},
		{
			desc:   "zero end price is allowed",
			mutate: func(a *Auction) { a.EndPrice = big.NewInt(0) },
			expErr: nil,
		},
		{
			desc:   "start price below end price",
			mutate: func(a *Auction) { a.StartPrice = eth("0.05") },
			expErr: domain.ErrInvalidParameters,
		},
		{
			desc:   "zero duration",
			mutate: func(a *Auction) { a.Duration = 0 },
			expErr: domain.ErrInvalidParameters,
		},
		{
			desc:   "negative duration",
			mutate: func(a *Auction) { a.Duration = -1 },
			expErr: domain.ErrInvalidParameters,
		},
		{
			desc:   "zero start price",
			mutate: func(a *Auction) { a.StartPrice, a.EndPrice = big.NewInt(0), big.NewInt(0) },
			expErr: domain.ErrInvalidParameters,
		},
		{
			desc:   "negative end price",
			mutate: func(a *Auction) { a.EndPrice = big.NewInt(-1) },
			expErr: domain.ErrInvalidParameters,
		},
		{
			desc:   "malformed token id",
			mutate: func(a *Auction) { a.TokenId = "not-a-number" },
			expErr: domain.ErrInvalidParameters,
		},
		{
			desc:   "missing seller",
			mutate: func(a *Auction) { a.Seller = "" },
			expErr: domain.ErrInvalidParameters,
		},
		{
			desc:   "start price wider than the guard",
			mutate: func(a *Auction) { a.StartPrice = huge },
			expErr: domain.ErrInvalidParameters,
		},
		{
			desc:   "duration over the cap",
			mutate: func(a *Auction) { a.Duration = MaxDuration + 1 },
			expErr: domain.ErrInvalidParameters,
		},
	}
	for _, t := range tests {
		a := s.listing(eth("1.0"), eth("0.1"), 3600)
		t.mutate(a)
		s.Equal(t.expErr, a.Validate(), t.desc)
	}
}
