package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/nftbay/auction-api/base/ctx"
	"github.com/nftbay/auction-api/base/database/mongoclient"
	"github.com/nftbay/auction-api/base/log"
	bValidator "github.com/nftbay/auction-api/base/validator"
	"github.com/nftbay/auction-api/domain"
	mmiddleware "github.com/nftbay/auction-api/middleware"
	"github.com/nftbay/auction-api/service/chain"
	"github.com/nftbay/auction-api/service/chain/contract"
	pricefeed_service "github.com/nftbay/auction-api/service/pricefeed"
	"github.com/nftbay/auction-api/service/query"
	auction_delivery "github.com/nftbay/auction-api/stores/auction/delivery/http"
	auction_repository "github.com/nftbay/auction-api/stores/auction/repository"
	auction_usecase "github.com/nftbay/auction-api/stores/auction/usecase"
	hc_delivery "github.com/nftbay/auction-api/stores/healthcheck/delivery/http"
	hc_repo "github.com/nftbay/auction-api/stores/healthcheck/repository"
	hc_usecase "github.com/nftbay/auction-api/stores/healthcheck/usecase"
	pricefeed_usecase "github.com/nftbay/auction-api/stores/pricefeed/usecase"
)

var configFile = pflag.String("config", "configs/config.yaml", "path to config file")

func init() {
	pflag.Parse()
	viper.SetConfigType("yaml")
	viper.SetConfigFile(*configFile)
	if err := viper.ReadInConfig(); err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())
	mmiddleware.SetupCache()

	context := ctx.Background()

	// init mongo client
	context.Info("init mongo")
	uri := viper.GetString("mongo.uri")
	authDBName := viper.GetString("mongo.authDBName")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	q := query.New(mongoClient)

	// init chain service
	networks := viper.Sub("networks")
	keys := networks.AllSettings()
	rpcs := make(map[int32]string)
	chainIds := []domain.ChainId{}
	for k := range keys {
		chainId := networks.GetInt32(fmt.Sprintf("%s.chainId", k))
		rpcUrl := networks.GetString(fmt.Sprintf("%s.rpcUrl", k))
		rpcs[chainId] = rpcUrl
		chainIds = append(chainIds, domain.ChainId(chainId))
	}
	chainService, err := chain.NewClient(context, &chain.ClientCfg{
		RpcUrls:     rpcs,
		OperatorKey: viper.GetString("operator.privateKey"),
	})
	if err != nil {
		context.WithField("err", err).Warn("chainService started with error")
	}
	operator := domain.Address(chainService.Operator().Hex())
	erc721Service := contract.NewErc721(chainService)
	settlementService := contract.NewNativeSettlement(chainService)
	feedService := pricefeed_service.New(
		chainService,
		domain.ChainId(viper.GetInt32("pricefeed.chainId")),
		domain.Address(viper.GetString("pricefeed.address")),
	)

	// construct repository, usecase and delivery
	hcRepo := hc_repo.New(mongoClient, chainService, chainIds)
	auctionRepo := auction_repository.NewAuctionRepo()
	activityRepo := auction_repository.NewActivityRepo(q)

	hc := hc_usecase.New(hcRepo)
	feed := pricefeed_usecase.New(&pricefeed_usecase.PriceFeedUseCaseCfg{
		Feed:   feedService,
		MaxAge: viper.GetDuration("pricefeed.maxAge"),
	})
	auction := auction_usecase.New(&auction_usecase.AuctionUseCaseCfg{
		AuctionRepo:  auctionRepo,
		ActivityRepo: activityRepo,
		Custody:      erc721Service,
		Settlement:   settlementService,
		Pricefeed:    feed,
		Operator:     operator,
	})

	hc_delivery.New(e, hc)
	auction_delivery.New(e, auction)

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
