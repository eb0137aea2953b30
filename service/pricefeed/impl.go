package pricefeed

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/nftbay/auction-api/base/abi"
	"github.com/nftbay/auction-api/base/ctx"
	"github.com/nftbay/auction-api/base/log"
	"github.com/nftbay/auction-api/domain"
	"github.com/nftbay/auction-api/service/cache"
	"github.com/nftbay/auction-api/service/cache/provider/primitive"
	"github.com/nftbay/auction-api/service/chain"
)

type impl struct {
	chainClient chain.Client
	chainId     domain.ChainId
	feedAddress common.Address
	cache       cache.Service
}

// New reads the aggregator proxy at feedAddress on the given chain. The
// feed's decimals are immutable per proxy so they are cached aggressively.
func New(chainClient chain.Client, chainId domain.ChainId, feedAddress domain.Address) PriceFeed {
	return &impl{
		chainClient: chainClient,
		chainId:     chainId,
		feedAddress: common.HexToAddress(string(feedAddress)),
		cache: cache.New(cache.ServiceConfig{
			Ttl:   24 * time.Hour,
			Pfx:   "pricefeed_cache",
			Cache: primitive.NewPrimitive("pricefeed_cache", 1),
		}),
	}
}

func (im *impl) LatestRoundData(c ctx.Ctx) (*RoundData, error) {
	res, err := im.chainClient.Call(c, int32(im.chainId), im.feedAddress, nil, abi.ChainlinkFeedABI, "latestRoundData")
	if err != nil {
		c.WithFields(log.Fields{
			"err":  err,
			"feed": im.feedAddress.Hex(),
		}).Error("latestRoundData failed")
		return nil, err
	}

	answer := res[1].(*big.Int)
	updatedAt := res[3].(*big.Int)
	return &RoundData{
		Answer:    answer,
		UpdatedAt: time.Unix(updatedAt.Int64(), 0),
	}, nil
}

func (im *impl) Decimals(c ctx.Ctx) (int32, error) {
	var decimals int32

	key := cache.Key(im.feedAddress.Hex(), "decimals")
	if err := im.cache.GetByFunc(c, key, &decimals, func() (interface{}, error) {
		res, err := im.chainClient.Call(c, int32(im.chainId), im.feedAddress, nil, abi.ChainlinkFeedABI, "decimals")
		if err != nil {
			c.WithFields(log.Fields{
				"err":  err,
				"feed": im.feedAddress.Hex(),
			}).Error("decimals failed")
			return nil, err
		}
		d := int32(res[0].(uint8))
		return &d, nil
	}); err != nil {
		c.WithFields(log.Fields{
			"err":  err,
			"feed": im.feedAddress.Hex(),
		}).Error("cache.GetByFunc failed")
		return 0, err
	}

	return decimals, nil
}
