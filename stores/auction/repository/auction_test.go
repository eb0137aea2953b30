package repository

import (
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/nftbay/auction-api/base/ctx"
	"github.com/nftbay/auction-api/domain"
	"github.com/nftbay/auction-api/domain/auction"
)

type auctionRepoSuite struct {
	suite.Suite

	im auction.Repo
}

func (s *auctionRepoSuite) SetupTest() {
	s.im = NewAuctionRepo()
}

func (s *auctionRepoSuite) newAuction() *auction.Auction {
	return &auction.Auction{
		ChainId:    1,
		Seller:     domain.Address("0xAbCd000000000000000000000000000000000001"),
		NftAddress: domain.Address("0xDeAd000000000000000000000000000000000002"),
		TokenId:    domain.TokenId("1"),
		StartPrice: big.NewInt(1000),
		EndPrice:   big.NewInt(100),
		StartTime:  time.Now(),
		Duration:   3600,
	}
}

func (s *auctionRepoSuite) TestCreateAssignsMonotonicIds() {
	c := ctx.Background()

	a1 := s.newAuction()
	id1, err := s.im.Create(c, a1)
	s.Nil(err)
	s.Equal(auction.Id(1), id1)
	s.Equal(id1, a1.Id)

	a2 := s.newAuction()
	a2.TokenId = domain.TokenId("2")
	id2, err := s.im.Create(c, a2)
	s.Nil(err)
	s.Equal(auction.Id(2), id2)
}

func (s *auctionRepoSuite) TestCreateRejectsInvalid() {
	c := ctx.Background()

	a := s.newAuction()
	a.StartPrice = big.NewInt(0)
	_, err := s.im.Create(c, a)
	s.ErrorIs(err, domain.ErrInvalidParameters)
}

func (s *auctionRepoSuite) TestOneActiveListingPerAsset() {
	c := ctx.Background()

	id1, err := s.im.Create(c, s.newAuction())
	s.Nil(err)

	// same asset, different address casing
	dup := s.newAuction()
	dup.NftAddress = dup.NftAddress.ToLower()
	_, err = s.im.Create(c, dup)
	s.ErrorIs(err, domain.ErrDuplicateActiveListing)

	// ending the listing frees the asset
	s.Nil(s.im.MarkEnded(c, id1, nil))
	id2, err := s.im.Create(c, s.newAuction())
	s.Nil(err)
	s.Equal(auction.Id(2), id2)
}

func (s *auctionRepoSuite) TestFindOne() {
	c := ctx.Background()

	_, err := s.im.FindOne(c, 42)
	s.ErrorIs(err, domain.ErrNotFound)

	id, err := s.im.Create(c, s.newAuction())
	s.Nil(err)

	a, err := s.im.FindOne(c, id)
	s.Nil(err)
	s.Equal(id, a.Id)
	s.False(a.Ended)
	s.Equal("0xabcd000000000000000000000000000000000001", a.Seller.ToLowerStr())
}

func (s *auctionRepoSuite) TestFindOneReturnsSnapshot() {
	c := ctx.Background()

	id, err := s.im.Create(c, s.newAuction())
	s.Nil(err)

	a, err := s.im.FindOne(c, id)
	s.Nil(err)
	a.StartPrice.SetInt64(7)
	a.Ended = true

	again, err := s.im.FindOne(c, id)
	s.Nil(err)
	s.Equal(int64(1000), again.StartPrice.Int64())
	s.False(again.Ended)
}

func (s *auctionRepoSuite) TestFindAll() {
	c := ctx.Background()

	a1 := s.newAuction()
	_, err := s.im.Create(c, a1)
	s.Nil(err)

	a2 := s.newAuction()
	a2.TokenId = domain.TokenId("2")
	a2.Seller = domain.Address("0xBeEf000000000000000000000000000000000003")
	id2, err := s.im.Create(c, a2)
	s.Nil(err)

	all, err := s.im.FindAll(c)
	s.Nil(err)
	s.Len(all, 2)
	// newest first
	s.Equal(id2, all[0].Id)

	bySeller, err := s.im.FindAll(c, auction.WithSeller(a2.Seller))
	s.Nil(err)
	s.Len(bySeller, 1)
	s.Equal(id2, bySeller[0].Id)

	s.Nil(s.im.MarkEnded(c, id2, nil))
	live, err := s.im.FindAll(c, auction.WithEnded(false))
	s.Nil(err)
	s.Len(live, 1)
	s.Equal(a1.Id, live[0].Id)
}

func (s *auctionRepoSuite) TestMarkEnded() {
	c := ctx.Background()

	s.ErrorIs(s.im.MarkEnded(c, 42, nil), domain.ErrNotFound)

	id, err := s.im.Create(c, s.newAuction())
	s.Nil(err)

	winner := domain.Address("0xCaFe000000000000000000000000000000000004")
	s.Nil(s.im.MarkEnded(c, id, &winner))

	a, err := s.im.FindOne(c, id)
	s.Nil(err)
	s.True(a.Ended)
	s.Require().NotNil(a.Winner)
	s.Equal(winner.ToLower(), *a.Winner)

	// terminal transition happens exactly once
	s.ErrorIs(s.im.MarkEnded(c, id, nil), domain.ErrAuctionEnded)
}

func TestAuctionRepoSuite(t *testing.T) {
	suite.Run(t, new(auctionRepoSuite))
}
