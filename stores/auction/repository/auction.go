package repository

import (
	"sort"
	"sync"

	"github.com/nftbay/auction-api/base/ctx"
	"github.com/nftbay/auction-api/base/log"
	"github.com/nftbay/auction-api/domain"
	"github.com/nftbay/auction-api/domain/auction"
)

// auctionRepoImpl is the listing registry. Listings live in process behind
// one mutex: every mutation is a critical section, so create/markEnded are
// atomic and readers always observe a committed snapshot. Ids increase
// monotonically and are never reused.
type auctionRepoImpl struct {
	mu     sync.RWMutex
	nextId auction.Id
	byId   map[auction.Id]*auction.Auction
	active map[auction.AssetId]auction.Id
}

func NewAuctionRepo() auction.Repo {
	return &auctionRepoImpl{
		nextId: 1,
		byId:   make(map[auction.Id]*auction.Auction),
		active: make(map[auction.AssetId]auction.Id),
	}
}

func (im *auctionRepoImpl) Create(c ctx.Ctx, a *auction.Auction) (auction.Id, error) {
	if err := a.Validate(); err != nil {
		c.WithFields(log.Fields{
			"err":        err,
			"nftAddress": a.NftAddress,
			"tokenId":    a.TokenId,
		}).Warn("rejected invalid listing")
		return 0, err
	}

	stored := a.Snapshot()
	stored.LowerCase()
	stored.Ended = false
	stored.Winner = nil

	im.mu.Lock()
	defer im.mu.Unlock()

	assetId := stored.ToAssetId()
	if _, ok := im.active[assetId]; ok {
		return 0, domain.ErrDuplicateActiveListing
	}

	stored.Id = im.nextId
	im.nextId++
	im.byId[stored.Id] = stored
	im.active[assetId] = stored.Id

	a.Id = stored.Id
	return stored.Id, nil
}

func (im *auctionRepoImpl) FindOne(c ctx.Ctx, id auction.Id) (*auction.Auction, error) {
	im.mu.RLock()
	defer im.mu.RUnlock()

	a, ok := im.byId[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return a.Snapshot(), nil
}

func (im *auctionRepoImpl) FindAll(c ctx.Ctx, opts ...auction.FindAllOptionsFunc) ([]*auction.Auction, error) {
	options, err := auction.GetFindAllOptions(opts...)
	if err != nil {
		return nil, err
	}

	im.mu.RLock()
	defer im.mu.RUnlock()

	res := []*auction.Auction{}
	for _, a := range im.byId {
		if options.Seller != nil && !a.Seller.Equals(*options.Seller) {
			continue
		}
		if options.NftAddress != nil && !a.NftAddress.Equals(*options.NftAddress) {
			continue
		}
		if options.ChainId != nil && a.ChainId != *options.ChainId {
			continue
		}
		if options.Ended != nil && a.Ended != *options.Ended {
			continue
		}
		res = append(res, a.Snapshot())
	}

	sort.Slice(res, func(i, j int) bool { return res[i].Id > res[j].Id })
	return res, nil
}

func (im *auctionRepoImpl) MarkEnded(c ctx.Ctx, id auction.Id, winner *domain.Address) error {
	im.mu.Lock()
	defer im.mu.Unlock()

	a, ok := im.byId[id]
	if !ok {
		return domain.ErrNotFound
	}
	if a.Ended {
		return domain.ErrAuctionEnded
	}

	a.Ended = true
	if winner != nil {
		a.Winner = winner.ToLowerPtr()
	}
	delete(im.active, a.ToAssetId())
	return nil
}
