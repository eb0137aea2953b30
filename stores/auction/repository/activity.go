package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/nftbay/auction-api/base/ctx"
	"github.com/nftbay/auction-api/base/log"
	"github.com/nftbay/auction-api/domain"
	"github.com/nftbay/auction-api/domain/auction"
	"github.com/nftbay/auction-api/service/query"
)

type activityRepoImpl struct {
	q query.Mongo
}

func NewActivityRepo(q query.Mongo) auction.ActivityRepo {
	return &activityRepoImpl{q: q}
}

func (im *activityRepoImpl) Insert(c ctx.Ctx, activity *auction.Activity) error {
	activity.Seller = activity.Seller.ToLower()
	activity.NftAddress = activity.NftAddress.ToLower()
	if activity.Buyer != nil {
		activity.Buyer = activity.Buyer.ToLowerPtr()
	}

	if err := im.q.Insert(c, domain.TableAuctionActivities, activity); err != nil {
		c.WithFields(log.Fields{
			"err":       err,
			"auctionId": activity.AuctionId,
			"type":      activity.Type,
		}).Error("q.Insert failed")
		return err
	}
	return nil
}

func (im *activityRepoImpl) makeQuery(optFns ...auction.ActivityFindAllOptionsFunc) (bson.M, error) {
	opts, err := auction.GetActivityFindAllOptions(optFns...)
	if err != nil {
		return nil, err
	}

	qry := bson.M{}
	if opts.AuctionId != nil {
		qry["auctionId"] = *opts.AuctionId
	}
	if opts.Type != nil {
		qry["type"] = *opts.Type
	}
	if opts.Seller != nil {
		qry["seller"] = *opts.Seller
	}
	return qry, nil
}

func (im *activityRepoImpl) FindAll(c ctx.Ctx, optFns ...auction.ActivityFindAllOptionsFunc) ([]*auction.Activity, error) {
	qry, err := im.makeQuery(optFns...)
	if err != nil {
		c.WithField("err", err).Error("makeQuery failed")
		return nil, err
	}

	res := []*auction.Activity{}
	if err := im.q.Search(c, domain.TableAuctionActivities, 0, 0, "-time", qry, &res); err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}
