package auction

import (
	"math/big"
	"time"

	"github.com/nftbay/auction-api/base/ctx"
	"github.com/nftbay/auction-api/domain"
)

// Id is a registry-assigned listing id. Ids increase monotonically and are
// never reused, so an id keeps resolving after its listing ended.
type Id uint64

// Auction is one asset's listing record, from creation to termination.
// Every field except Ended and Winner is immutable after creation.
type Auction struct {
	Id         Id              `json:"id"`
	ChainId    domain.ChainId  `json:"chainId"`
	Seller     domain.Address  `json:"seller"`
	NftAddress domain.Address  `json:"nftAddress"`
	TokenId    domain.TokenId  `json:"tokenId"`
	StartPrice *big.Int        `json:"startPrice"`
	EndPrice   *big.Int        `json:"endPrice"`
	StartTime  time.Time       `json:"startTime"`
	Duration   int64           `json:"duration"` // seconds, > 0
	Ended      bool            `json:"ended"`
	Winner     *domain.Address `json:"winner,omitempty"`
}

// AssetId identifies the auctioned asset. At most one non-ended listing may
// exist per asset.
type AssetId struct {
	ChainId    domain.ChainId `json:"chainId"`
	NftAddress domain.Address `json:"nftAddress"`
	TokenId    domain.TokenId `json:"tokenId"`
}

func (a *Auction) ToAssetId() AssetId {
	return AssetId{
		ChainId:    a.ChainId,
		NftAddress: a.NftAddress.ToLower(),
		TokenId:    a.TokenId,
	}
}

func (a *Auction) LowerCase() {
	a.Seller = a.Seller.ToLower()
	a.NftAddress = a.NftAddress.ToLower()
	if a.Winner != nil {
		a.Winner = a.Winner.ToLowerPtr()
	}
}

// Snapshot returns a deep copy so callers cannot observe or mutate registry
// state through shared pointers.
func (a *Auction) Snapshot() *Auction {
	cp := *a
	cp.StartPrice = new(big.Int).Set(a.StartPrice)
	cp.EndPrice = new(big.Int).Set(a.EndPrice)
	if a.Winner != nil {
		w := *a.Winner
		cp.Winner = &w
	}
	return &cp
}

// Validate rejects malformed construction input with ErrInvalidParameters.
// The width caps keep the interpolation's intermediate product
// (startPrice-endPrice)*elapsed well inside big.Int-practical bounds and
// reject nonsense parameters outright.
func (a *Auction) Validate() error {
	if a.Seller.IsEmpty() || a.NftAddress.IsEmpty() {
		return domain.ErrInvalidParameters
	}
	if _, err := a.TokenId.ToBigInt(); err != nil {
		return domain.ErrInvalidParameters
	}
	if a.StartPrice == nil || a.EndPrice == nil {
		return domain.ErrInvalidParameters
	}
	if a.StartPrice.Sign() <= 0 || a.EndPrice.Sign() < 0 {
		return domain.ErrInvalidParameters
	}
	if a.StartPrice.Cmp(a.EndPrice) < 0 {
		return domain.ErrInvalidParameters
	}
	if a.Duration <= 0 || a.Duration > MaxDuration {
		return domain.ErrInvalidParameters
	}
	if a.StartPrice.BitLen() > MaxPriceBits {
		return domain.ErrInvalidParameters
	}
	return nil
}

// Repo is the listing registry: the single owner of listing state and of
// the terminal-once transition.
type Repo interface {
	// Create validates and stores a new listing, assigning its id. Fails
	// with ErrDuplicateActiveListing while the asset has a non-ended
	// listing, ErrInvalidParameters on malformed input.
	Create(c ctx.Ctx, a *Auction) (Id, error)

	// FindOne returns a read-only snapshot, ErrNotFound for unknown ids.
	FindOne(c ctx.Ctx, id Id) (*Auction, error)

	// FindAll returns snapshots matching the options, newest id first.
	FindAll(c ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Auction, error)

	// MarkEnded flips the listing to its terminal state, recording winner
	// when the listing ended via purchase. Fails with ErrAuctionEnded if
	// already terminal, ErrNotFound for unknown ids.
	MarkEnded(c ctx.Ctx, id Id, winner *domain.Address) error
}

// CreateAuctionPayload carries caller input for CreateAuction.
type CreateAuctionPayload struct {
	ChainId    domain.ChainId
	Seller     domain.Address
	NftAddress domain.Address
	TokenId    domain.TokenId
	StartPrice *big.Int
	EndPrice   *big.Int
	Duration   int64
}

// UseCase orchestrates pricing, the registry, asset custody and settlement.
// State-changing operations are serialized per listing; all effects of one
// call commit together or not at all.
type UseCase interface {
	CreateAuction(c ctx.Ctx, payload *CreateAuctionPayload) (*Auction, error)
	GetAuction(c ctx.Ctx, id Id) (*Auction, error)
	GetAuctions(c ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Auction, error)
	GetCurrentPrice(c ctx.Ctx, id Id) (*big.Int, error)
	GetCurrentPriceUsd(c ctx.Ctx, id Id) (*big.Int, error)
	Buy(c ctx.Ctx, id Id, buyer domain.Address, payment *big.Int) (*Auction, error)
	CancelAuction(c ctx.Ctx, id Id, caller domain.Address) error
	GetActivities(c ctx.Ctx, id Id) ([]*Activity, error)
}

type FindAllOptions struct {
	Seller     *domain.Address
	NftAddress *domain.Address
	ChainId    *domain.ChainId
	Ended      *bool
}

type FindAllOptionsFunc func(*FindAllOptions) error

func GetFindAllOptions(opts ...FindAllOptionsFunc) (FindAllOptions, error) {
	res := FindAllOptions{}
	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}
	return res, nil
}

func WithSeller(seller domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Seller = seller.ToLowerPtr()
		return nil
	}
}

func WithNftAddress(addr domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.NftAddress = addr.ToLowerPtr()
		return nil
	}
}

func WithChainId(chainId domain.ChainId) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.ChainId = &chainId
		return nil
	}
}

func WithEnded(ended bool) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Ended = &ended
		return nil
	}
}
