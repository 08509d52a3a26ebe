package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/prompthub/marketplace/base/ctx"
	"github.com/prompthub/marketplace/base/delivery"
	"github.com/prompthub/marketplace/domain"
	"github.com/prompthub/marketplace/domain/prompt"
)

type handler struct {
	prompt prompt.UseCase
}

// New registers prompt registry endpoints
func New(e *echo.Echo, prompt prompt.UseCase, authMiddleware ...echo.MiddlewareFunc) {
	h := &handler{prompt}

	g := e.Group("/prompts")
	g.GET("", h.findAll)
	g.GET("/:promptId", h.get)
	g.POST("", h.register, authMiddleware...)
}

func (h *handler) findAll(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Creator domain.Address `query:"creator"`
		Offset  int32          `query:"offset"`
		Limit   int32          `query:"limit"`
		Sort    string         `query:"sort"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	opts := []prompt.FindAllOptionsFunc{}
	if !p.Creator.IsEmpty() {
		opts = append(opts, prompt.WithCreator(p.Creator))
	}
	if p.Limit > 0 {
		opts = append(opts, prompt.WithPagination(p.Offset, p.Limit))
	}
	if p.Sort != "" {
		opts = append(opts, prompt.WithSort(p.Sort))
	}

	res, err := h.prompt.FindAll(ctx, opts...)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id := prompt.Id{PromptId: domain.PromptId(c.Param("promptId"))}

	res, err := h.prompt.Get(ctx, id)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) register(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	type params struct {
		MintId      domain.MintId `json:"mintId"`
		MetadataUri string        `json:"metadataUri" validate:"required"`
		RoyaltyBps  domain.Bps    `json:"royaltyBps"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.prompt.Register(ctx, address, p.MintId, p.MetadataUri, p.RoyaltyBps)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, res)
}
