package auction

import (
	"time"

	"github.com/nftbay/auction-api/base/ctx"
	"github.com/nftbay/auction-api/domain"
)

type ActivityType string

const (
	ActivityTypeCreated   ActivityType = "created"
	ActivityTypeSold      ActivityType = "sold"
	ActivityTypeCancelled ActivityType = "cancelled"
)

// Activity is one append-only record of a listing transition, persisted for
// query and audit. The registry, not this log, is the source of truth.
type Activity struct {
	AuctionId  Id             `json:"auctionId" bson:"auctionId"`
	Type       ActivityType   `json:"type" bson:"type"`
	ChainId    domain.ChainId `json:"chainId" bson:"chainId"`
	NftAddress domain.Address `json:"nftAddress" bson:"nftAddress"`
	TokenId    domain.TokenId `json:"tokenId" bson:"tokenId"`
	Seller     domain.Address `json:"seller" bson:"seller"`
	// Buyer is set on sold records only
	Buyer *domain.Address `json:"buyer,omitempty" bson:"buyer,omitempty"`
	// Price is the settled or listed price in smallest units, decimal string
	Price string `json:"price" bson:"price"`
	// PriceInUsd is the reference-currency value at event time, zero when
	// the oracle was unavailable
	PriceInUsd float64 `json:"priceInUsd" bson:"priceInUsd"`
	// TxHash is the custody transfer of a sold record
	TxHash *domain.TxHash `json:"txHash,omitempty" bson:"txHash,omitempty"`
	Time   time.Time      `json:"time" bson:"time"`
}

type ActivityFindAllOptions struct {
	AuctionId *Id
	Type      *ActivityType
	Seller    *domain.Address
}

type ActivityFindAllOptionsFunc func(*ActivityFindAllOptions) error

func GetActivityFindAllOptions(opts ...ActivityFindAllOptionsFunc) (ActivityFindAllOptions, error) {
	res := ActivityFindAllOptions{}
	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}
	return res, nil
}

func ActivityWithAuctionId(id Id) ActivityFindAllOptionsFunc {
	return func(options *ActivityFindAllOptions) error {
		options.AuctionId = &id
		return nil
	}
}

func ActivityWithType(t ActivityType) ActivityFindAllOptionsFunc {
	return func(options *ActivityFindAllOptions) error {
		options.Type = &t
		return nil
	}
}

func ActivityWithSeller(seller domain.Address) ActivityFindAllOptionsFunc {
	return func(options *ActivityFindAllOptions) error {
		options.Seller = seller.ToLowerPtr()
		return nil
	}
}

type ActivityRepo interface {
	Insert(c ctx.Ctx, activity *Activity) error
	FindAll(c ctx.Ctx, opts ...ActivityFindAllOptionsFunc) ([]*Activity, error)
}
