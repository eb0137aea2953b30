package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/nftbay/auction-api/base/ctx"
	"github.com/nftbay/auction-api/base/database/mongoclient"
	"github.com/nftbay/auction-api/base/log"
	"github.com/nftbay/auction-api/domain"
	hcdomain "github.com/nftbay/auction-api/domain/healthcheck"
	"github.com/nftbay/auction-api/service/chain"
)

type impl struct {
	mgoClient    *mongoclient.Client
	chainService chain.Client
	chainIds     []domain.ChainId
}

func New(mgoClient *mongoclient.Client, chainService chain.Client, chainIds []domain.ChainId) hcdomain.HealthCheckRepo {
	return &impl{
		mgoClient:    mgoClient,
		chainService: chainService,
		chainIds:     chainIds,
	}
}

func (im *impl) PingDB(context ctx.Ctx) error {
	ctx, cancel := ctx.WithTimeout(context, 2*time.Second)
	defer cancel()
	if err := im.mgoClient.Ping(ctx, readpref.Primary()); err != nil {
		context.WithField("err", err).Error("ping mongo error")
		return err
	}
	return nil
}

func (im *impl) PingChains(context ctx.Ctx) error {
	ctx, cancel := ctx.WithTimeout(context, 5*time.Second)
	defer cancel()
	for _, chainId := range im.chainIds {
		if _, err := im.chainService.BlockNumber(ctx, int32(chainId)); err != nil {
			context.WithFields(log.Fields{
				"err":     err,
				"chainId": chainId,
			}).Error("ping rpc error")
			return err
		}
	}
	return nil
}
