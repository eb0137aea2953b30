package http

import (
	"math/big"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/nftbay/auction-api/base/ctx"
	"github.com/nftbay/auction-api/base/delivery"
	"github.com/nftbay/auction-api/base/validator"
	"github.com/nftbay/auction-api/domain"
	"github.com/nftbay/auction-api/domain/auction"
	"github.com/nftbay/auction-api/middleware"
)

type handler struct {
	au auction.UseCase
}

func New(e *echo.Echo, au auction.UseCase) {
	h := &handler{au: au}

	g := e.Group("/auctions")
	g.POST("", h.createAuction)
	g.GET("", h.getAuctions)
	g.GET("/:id", h.getAuction)
	g.GET("/:id/price", h.getCurrentPrice)
	g.GET("/:id/price/usd", h.getCurrentPriceUsd)
	g.GET("/:id/activities", h.getActivities, middleware.CacheHttp(30*time.Second))
	g.POST("/:id/buy", h.buy)
	g.POST("/:id/cancel", h.cancelAuction)

	e.GET("/account/:account/auctions", h.getAuctionsBySeller, middleware.IsValidAddress("account"))
}

func parseId(c echo.Context) (auction.Id, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, domain.ErrInvalidParameters
	}
	return auction.Id(id), nil
}

func parsePrice(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, domain.ErrInvalidNumberFormat
	}
	return v, nil
}

func (h *handler) createAuction(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		ChainId    domain.ChainId `json:"chainId" validate:"required"`
		Seller     string         `json:"seller" validate:"required"`
		NftAddress string         `json:"nftAddress" validate:"required"`
		TokenId    string         `json:"tokenId" validate:"required"`
		StartPrice string         `json:"startPrice" validate:"required"`
		EndPrice   string         `json:"endPrice"`
		Duration   int64          `json:"duration" validate:"required"`
	}

	p := &payload{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if !validator.IsValidAddress(p.Seller) || !validator.IsValidAddress(p.NftAddress) {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidAddress)
	}

	startPrice, err := parsePrice(p.StartPrice)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	endPrice := big.NewInt(0)
	if p.EndPrice != "" {
		if endPrice, err = parsePrice(p.EndPrice); err != nil {
			return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
		}
	}

	a, err := h.au.CreateAuction(ctx, &auction.CreateAuctionPayload{
		ChainId:    p.ChainId,
		Seller:     domain.Address(p.Seller),
		NftAddress: domain.Address(p.NftAddress),
		TokenId:    domain.TokenId(p.TokenId),
		StartPrice: startPrice,
		EndPrice:   endPrice,
		Duration:   p.Duration,
	})
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, a)
}

func (h *handler) getAuctions(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Seller     *string         `query:"seller"`
		NftAddress *string         `query:"nftAddress"`
		ChainId    *domain.ChainId `query:"chainId"`
		Ended      *bool           `query:"ended"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	opts := []auction.FindAllOptionsFunc{}
	if p.Seller != nil {
		opts = append(opts, auction.WithSeller(domain.Address(*p.Seller)))
	}
	if p.NftAddress != nil {
		opts = append(opts, auction.WithNftAddress(domain.Address(*p.NftAddress)))
	}
	if p.ChainId != nil {
		opts = append(opts, auction.WithChainId(*p.ChainId))
	}
	if p.Ended != nil {
		opts = append(opts, auction.WithEnded(*p.Ended))
	}

	res, err := h.au.GetAuctions(ctx, opts...)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) getAuctionsBySeller(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	seller := domain.Address(c.Param("account"))
	res, err := h.au.GetAuctions(ctx, auction.WithSeller(seller))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) getAuction(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := parseId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	a, err := h.au.GetAuction(ctx, id)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, a)
}

type priceResp struct {
	AuctionId auction.Id `json:"auctionId"`
	Price     string     `json:"price"`
}

func (h *handler) getCurrentPrice(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := parseId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	price, err := h.au.GetCurrentPrice(ctx, id)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, priceResp{id, price.String()})
}

func (h *handler) getCurrentPriceUsd(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := parseId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	price, err := h.au.GetCurrentPriceUsd(ctx, id)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, priceResp{id, price.String()})
}

func (h *handler) getActivities(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := parseId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.au.GetActivities(ctx, id)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) buy(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := parseId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	type payload struct {
		Buyer   string `json:"buyer" validate:"required"`
		Payment string `json:"payment" validate:"required"`
	}

	p := &payload{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if !validator.IsValidAddress(p.Buyer) {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidAddress)
	}

	payment, err := parsePrice(p.Payment)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	a, err := h.au.Buy(ctx, id, domain.Address(p.Buyer), payment)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, a)
}

func (h *handler) cancelAuction(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := parseId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	type payload struct {
		Caller string `json:"caller" validate:"required"`
	}

	p := &payload{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if !validator.IsValidAddress(p.Caller) {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidAddress)
	}

	if err := h.au.CancelAuction(ctx, id, domain.Address(p.Caller)); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}
