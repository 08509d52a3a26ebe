package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/prompthub/marketplace/base/ctx"
	"github.com/prompthub/marketplace/base/delivery"
	"github.com/prompthub/marketplace/domain"
	"github.com/prompthub/marketplace/domain/listing"
)

type handler struct {
	listing listing.UseCase
}

type listingResp struct {
	*listing.Listing
	DisplayPrice string `json:"displayPrice"`
}

func makeListingResp(l *listing.Listing) *listingResp {
	return &listingResp{l, l.DisplayPrice()}
}

// New registers listing and settlement endpoints
func New(e *echo.Echo, listing listing.UseCase, authMiddleware ...echo.MiddlewareFunc) {
	h := &handler{listing}

	g := e.Group("/listings")
	g.GET("", h.findAll)
	g.GET("/:promptId", h.get)
	g.POST("", h.create, authMiddleware...)
	g.PATCH("/:promptId", h.update, authMiddleware...)
	g.POST("/:promptId/purchase", h.purchase, authMiddleware...)
	g.DELETE("/:promptId", h.delist, authMiddleware...)
}

func (h *handler) findAll(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Seller   domain.Address `query:"seller"`
		IsActive *bool          `query:"isActive"`
		Offset   int32          `query:"offset"`
		Limit    int32          `query:"limit"`
		Sort     string         `query:"sort"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	opts := []listing.FindAllOptionsFunc{}
	if !p.Seller.IsEmpty() {
		opts = append(opts, listing.WithSeller(p.Seller))
	}
	if p.IsActive != nil {
		opts = append(opts, listing.WithIsActive(*p.IsActive))
	}
	if p.Limit > 0 {
		opts = append(opts, listing.WithPagination(p.Offset, p.Limit))
	}
	if p.Sort != "" {
		opts = append(opts, listing.WithSort(p.Sort))
	}

	res, err := h.listing.FindAll(ctx, opts...)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	resp := make([]*listingResp, 0, len(res))
	for _, l := range res {
		resp = append(resp, makeListingResp(l))
	}
	return delivery.MakeJsonResp(c, http.StatusOK, resp)
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id := listing.Id{PromptId: domain.PromptId(c.Param("promptId"))}

	res, err := h.listing.Get(ctx, id)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, makeListingResp(res))
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	type params struct {
		PromptId    domain.PromptId `json:"promptId" validate:"required"`
		Price       uint64          `json:"price" validate:"required"`
		Description string          `json:"description"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.listing.Create(ctx, address, p.PromptId, p.Price, p.Description)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, makeListingResp(res))
}

func (h *handler) update(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)
	promptId := domain.PromptId(c.Param("promptId"))

	p := &listing.Terms{}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	if err := h.listing.Update(ctx, address, promptId, *p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) purchase(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)
	promptId := domain.PromptId(c.Param("promptId"))

	res, err := h.listing.Purchase(ctx, address, promptId)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) delist(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)
	promptId := domain.PromptId(c.Param("promptId"))

	if err := h.listing.Delist(ctx, address, promptId); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}
