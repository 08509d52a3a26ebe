package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/prompthub/marketplace/base/ctx"
	"github.com/prompthub/marketplace/base/delivery"
	"github.com/prompthub/marketplace/domain"
	"github.com/prompthub/marketplace/domain/ledger"
	"github.com/prompthub/marketplace/middleware"
)

type handler struct {
	ledger ledger.UseCase
}

// New registers balance endpoints. Deposits are admin-only.
func New(e *echo.Echo, ledger ledger.UseCase, adminMiddleware ...echo.MiddlewareFunc) {
	h := &handler{ledger}

	g := e.Group("/balances")
	g.GET("/:address", h.getBalance, middleware.IsValidAddress("address"))
	g.POST("/deposit", h.deposit, adminMiddleware...)
}

func (h *handler) getBalance(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := domain.Address(c.Param("address"))

	b, err := h.ledger.Get(ctx, address)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, b)
}

func (h *handler) deposit(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Address domain.Address `json:"address"`
		Amount  uint64         `json:"amount"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	if err := h.ledger.Deposit(ctx, p.Address, p.Amount); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, "ok")
}
