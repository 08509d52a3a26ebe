package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/prompthub/marketplace/base/ctx"
	"github.com/prompthub/marketplace/base/delivery"
	"github.com/prompthub/marketplace/domain"
	"github.com/prompthub/marketplace/domain/account"
	"github.com/prompthub/marketplace/middleware"
)

type handler struct {
	account account.Usecase
}

// New registers account endpoints
func New(e *echo.Echo, account account.Usecase) {
	h := &handler{account}

	g := e.Group("/accounts")
	g.GET("/:address", h.get, middleware.IsValidAddress("address"))
	g.GET("/:address/nonce", h.getNonce, middleware.IsValidAddress("address"))
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := domain.Address(c.Param("address"))

	res, err := h.account.Get(ctx, address)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) getNonce(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := domain.Address(c.Param("address"))

	nonce, err := h.account.GetNonce(ctx, address)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nonce)
}
