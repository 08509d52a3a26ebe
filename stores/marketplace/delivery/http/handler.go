package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/prompthub/marketplace/base/ctx"
	"github.com/prompthub/marketplace/base/delivery"
	"github.com/prompthub/marketplace/domain"
	"github.com/prompthub/marketplace/domain/marketplace"
)

type handler struct {
	marketplace marketplace.UseCase
}

// New registers marketplace config endpoints
func New(e *echo.Echo, marketplace marketplace.UseCase, authMiddleware ...echo.MiddlewareFunc) {
	h := &handler{marketplace}

	g := e.Group("/marketplace")
	g.GET("/config", h.getConfig)
	g.POST("/config", h.initialize, authMiddleware...)
	g.DELETE("/config", h.close, authMiddleware...)
}

func (h *handler) getConfig(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	cfg, err := h.marketplace.Get(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, cfg)
}

func (h *handler) initialize(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	type params struct {
		FeeBps domain.Bps `json:"feeBps"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	cfg, err := h.marketplace.Initialize(ctx, address, p.FeeBps)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, cfg)
}

func (h *handler) close(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	if err := h.marketplace.Close(ctx, address); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}
