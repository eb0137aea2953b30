package usecase

import (
	"math/big"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nftbay/auction-api/base/ctx"
	"github.com/nftbay/auction-api/base/log"
	"github.com/nftbay/auction-api/domain"
	"github.com/nftbay/auction-api/domain/auction"
)

type impl struct {
	auctionRepo  auction.Repo
	activityRepo auction.ActivityRepo
	custody      domain.NftCustody
	settlement   domain.SettlementLedger
	pricefeed    domain.PriceFeedUseCase

	// operator is the custody account buyers approve and the escrow account
	// payments settle through
	operator domain.Address

	// locks serializes state-changing calls per listing id
	locksMu sync.Mutex
	locks   map[auction.Id]*sync.Mutex
}

type AuctionUseCaseCfg struct {
	AuctionRepo  auction.Repo
	ActivityRepo auction.ActivityRepo
	Custody      domain.NftCustody
	Settlement   domain.SettlementLedger
	Pricefeed    domain.PriceFeedUseCase
	Operator     domain.Address
}

func New(cfg *AuctionUseCaseCfg) auction.UseCase {
	return &impl{
		auctionRepo:  cfg.AuctionRepo,
		activityRepo: cfg.ActivityRepo,
		custody:      cfg.Custody,
		settlement:   cfg.Settlement,
		pricefeed:    cfg.Pricefeed,
		operator:     cfg.Operator.ToLower(),
		locks:        make(map[auction.Id]*sync.Mutex),
	}
}

func (im *impl) lockListing(id auction.Id) func() {
	im.locksMu.Lock()
	l, ok := im.locks[id]
	if !ok {
		l = &sync.Mutex{}
		im.locks[id] = l
	}
	im.locksMu.Unlock()

	l.Lock()
	return l.Unlock
}

func (im *impl) CreateAuction(c ctx.Ctx, payload *auction.CreateAuctionPayload) (*auction.Auction, error) {
	a := &auction.Auction{
		ChainId:    payload.ChainId,
		Seller:     payload.Seller.ToLower(),
		NftAddress: payload.NftAddress.ToLower(),
		TokenId:    payload.TokenId,
		StartPrice: payload.StartPrice,
		EndPrice:   payload.EndPrice,
		StartTime:  time.Now(),
		Duration:   payload.Duration,
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}

	owner, err := im.custody.OwnerOf(c, a.ChainId, a.NftAddress, a.TokenId)
	if err != nil {
		c.WithFields(log.Fields{
			"err":        err,
			"nftAddress": a.NftAddress,
			"tokenId":    a.TokenId,
		}).Error("custody.OwnerOf failed")
		return nil, err
	}
	if !owner.Equals(a.Seller) {
		return nil, domain.ErrUnauthorized
	}

	approved, err := im.custody.IsApprovedForAll(c, a.ChainId, a.NftAddress, a.Seller, im.operator)
	if err != nil {
		c.WithFields(log.Fields{
			"err":        err,
			"nftAddress": a.NftAddress,
			"seller":     a.Seller,
		}).Error("custody.IsApprovedForAll failed")
		return nil, err
	}
	if !approved {
		return nil, domain.ErrUnauthorized
	}

	id, err := im.auctionRepo.Create(c, a)
	if err != nil {
		return nil, err
	}

	im.recordActivity(c, a, auction.ActivityTypeCreated, nil, a.StartPrice, nil)

	c.WithFields(log.Fields{
		"auctionId":  id,
		"seller":     a.Seller,
		"nftAddress": a.NftAddress,
		"tokenId":    a.TokenId,
	}).Info("auction created")
	return a.Snapshot(), nil
}

func (im *impl) GetAuction(c ctx.Ctx, id auction.Id) (*auction.Auction, error) {
	return im.auctionRepo.FindOne(c, id)
}

func (im *impl) GetAuctions(c ctx.Ctx, opts ...auction.FindAllOptionsFunc) ([]*auction.Auction, error) {
	return im.auctionRepo.FindAll(c, opts...)
}

func (im *impl) GetCurrentPrice(c ctx.Ctx, id auction.Id) (*big.Int, error) {
	a, err := im.auctionRepo.FindOne(c, id)
	if err != nil {
		return nil, err
	}
	if a.Ended {
		return nil, domain.ErrAuctionEnded
	}
	return auction.PriceAt(a, time.Now()), nil
}

func (im *impl) GetCurrentPriceUsd(c ctx.Ctx, id auction.Id) (*big.Int, error) {
	price, err := im.GetCurrentPrice(c, id)
	if err != nil {
		return nil, err
	}
	return im.pricefeed.ConvertToReference(c, price)
}

// Buy settles a purchase at the price quoted from a single clock read. The
// token moves first; value moves only after custody succeeded, and the
// terminal registry transition commits last. A settlement failure hands the
// token back to the seller, so every failure path leaves both the registry
// and custody as they were.
func (im *impl) Buy(c ctx.Ctx, id auction.Id, buyer domain.Address, payment *big.Int) (*auction.Auction, error) {
	if buyer.IsEmpty() || buyer.Equals(domain.EmptyAddress) || payment == nil || payment.Sign() < 0 {
		return nil, domain.ErrInvalidParameters
	}
	buyer = buyer.ToLower()

	defer im.lockListing(id)()

	a, err := im.auctionRepo.FindOne(c, id)
	if err != nil {
		return nil, err
	}
	if a.Ended {
		return nil, domain.ErrAuctionEnded
	}

	price := auction.PriceAt(a, time.Now())
	if payment.Cmp(price) < 0 {
		c.WithFields(log.Fields{
			"auctionId": id,
			"payment":   payment.String(),
			"price":     price.String(),
		}).Warn("insufficient payment")
		return nil, domain.ErrInsufficientPayment
	}

	txHash, err := im.custody.TransferFrom(c, a.ChainId, a.NftAddress, a.Seller, buyer, a.TokenId)
	if err != nil {
		c.WithFields(log.Fields{
			"err":       err,
			"auctionId": id,
			"buyer":     buyer,
		}).Error("custody.TransferFrom failed")
		return nil, err
	}

	if err := im.settlement.Transfer(c, a.ChainId, im.operator, a.Seller, price); err != nil {
		c.WithFields(log.Fields{
			"err":       err,
			"auctionId": id,
			"seller":    a.Seller,
			"price":     price.String(),
		}).Error("seller payout failed")
		im.returnToken(c, a, buyer)
		return nil, err
	}

	if excess := new(big.Int).Sub(payment, price); excess.Sign() > 0 {
		if err := im.settlement.Transfer(c, a.ChainId, im.operator, buyer, excess); err != nil {
			c.WithFields(log.Fields{
				"err":       err,
				"auctionId": id,
				"buyer":     buyer,
				"excess":    excess.String(),
			}).Error("buyer refund failed")
			im.returnToken(c, a, buyer)
			return nil, err
		}
	}

	if err := im.auctionRepo.MarkEnded(c, id, &buyer); err != nil {
		c.WithFields(log.Fields{
			"err":       err,
			"auctionId": id,
		}).Error("auctionRepo.MarkEnded failed")
		return nil, err
	}

	a.Ended = true
	a.Winner = &buyer
	im.recordActivity(c, a, auction.ActivityTypeSold, &buyer, price, &txHash)

	c.WithFields(log.Fields{
		"auctionId": id,
		"buyer":     buyer,
		"price":     price.String(),
	}).Info("auction sold")
	return a, nil
}

func (im *impl) CancelAuction(c ctx.Ctx, id auction.Id, caller domain.Address) error {
	defer im.lockListing(id)()

	a, err := im.auctionRepo.FindOne(c, id)
	if err != nil {
		return err
	}
	if a.Ended {
		return domain.ErrAuctionEnded
	}
	if !a.Seller.Equals(caller) {
		return domain.ErrUnauthorized
	}

	if err := im.auctionRepo.MarkEnded(c, id, nil); err != nil {
		c.WithFields(log.Fields{
			"err":       err,
			"auctionId": id,
		}).Error("auctionRepo.MarkEnded failed")
		return err
	}

	a.Ended = true
	im.recordActivity(c, a, auction.ActivityTypeCancelled, nil, nil, nil)

	c.WithFields(log.Fields{
		"auctionId": id,
		"seller":    a.Seller,
	}).Info("auction cancelled")
	return nil
}

func (im *impl) GetActivities(c ctx.Ctx, id auction.Id) ([]*auction.Activity, error) {
	if _, err := im.auctionRepo.FindOne(c, id); err != nil {
		return nil, err
	}
	return im.activityRepo.FindAll(c, auction.ActivityWithAuctionId(id))
}

// returnToken undoes a custody transfer whose settlement leg failed, so
// that the still-active listing and the token holder agree again.
func (im *impl) returnToken(c ctx.Ctx, a *auction.Auction, buyer domain.Address) {
	if _, err := im.custody.TransferFrom(c, a.ChainId, a.NftAddress, buyer, a.Seller, a.TokenId); err != nil {
		c.WithFields(log.Fields{
			"err":       err,
			"auctionId": a.Id,
			"buyer":     buyer,
			"seller":    a.Seller,
		}).Error("token return failed, custody out of sync with listing")
	}
}

// recordActivity appends to the audit log on a best-effort basis. Log
// failures never fail the operation that produced them.
func (im *impl) recordActivity(c ctx.Ctx, a *auction.Auction, t auction.ActivityType, buyer *domain.Address, price *big.Int, txHash *domain.TxHash) {
	activity := &auction.Activity{
		AuctionId:  a.Id,
		Type:       t,
		ChainId:    a.ChainId,
		NftAddress: a.NftAddress,
		TokenId:    a.TokenId,
		Seller:     a.Seller,
		Buyer:      buyer,
		TxHash:     txHash,
		Time:       time.Now(),
	}
	if price != nil {
		activity.Price = price.String()
		if rate, err := im.pricefeed.DisplayRate(c); err == nil {
			activity.PriceInUsd = rate.Mul(decimal.NewFromBigInt(price, -18)).InexactFloat64()
		}
	}

	if err := im.activityRepo.Insert(c, activity); err != nil {
		c.WithFields(log.Fields{
			"err":       err,
			"auctionId": a.Id,
			"type":      t,
		}).Warn("activityRepo.Insert failed")
	}
}
