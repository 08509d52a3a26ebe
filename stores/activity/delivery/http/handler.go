package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/prompthub/marketplace/base/ctx"
	"github.com/prompthub/marketplace/base/delivery"
	"github.com/prompthub/marketplace/domain"
	"github.com/prompthub/marketplace/domain/activity"
	"github.com/prompthub/marketplace/domain/event"
)

type handler struct {
	activity activity.UseCase
}

// New registers activity feed endpoints
func New(e *echo.Echo, activity activity.UseCase) {
	h := &handler{activity}

	e.GET("/activities", h.findAll)
}

func (h *handler) findAll(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		PromptId domain.PromptId `query:"promptId"`
		Account  domain.Address  `query:"account"`
		Types    string          `query:"types"`
		Offset   int32           `query:"offset"`
		Limit    int32           `query:"limit"`
		Sort     string          `query:"sort"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	opts := []activity.FindAllOptionsFunc{}
	if p.PromptId != "" {
		opts = append(opts, activity.WithPromptId(p.PromptId))
	}
	if !p.Account.IsEmpty() {
		opts = append(opts, activity.WithAccount(p.Account))
	}
	if p.Types != "" {
		types := []event.Type{}
		for _, t := range strings.Split(p.Types, ",") {
			types = append(types, event.Type(t))
		}
		opts = append(opts, activity.WithTypes(types...))
	}
	if p.Limit > 0 {
		opts = append(opts, activity.WithPagination(p.Offset, p.Limit))
	}
	if p.Sort != "" {
		opts = append(opts, activity.WithSort(p.Sort))
	}

	res, err := h.activity.FindAll(ctx, opts...)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
