package activity

import (
	"github.com/prompthub/marketplace/base/ctx"
	"github.com/prompthub/marketplace/domain"
	"github.com/prompthub/marketplace/domain/event"
)

type FindAllOptions struct {
	PromptId *domain.PromptId
	Account  *domain.Address
	Types    []event.Type
	Offset   *int32
	Limit    *int32
	Sort     *string
}

type FindAllOptionsFunc func(*FindAllOptions) error

func GetFindAllOptions(opts ...FindAllOptionsFunc) (FindAllOptions, error) {
	res := FindAllOptions{}

	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}

	return res, nil
}

func WithPromptId(id domain.PromptId) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.PromptId = &id
		return nil
	}
}

func WithAccount(account domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Account = account.ToLowerPtr()
		return nil
	}
}

func WithTypes(types ...event.Type) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Types = types
		return nil
	}
}

func WithPagination(offset int32, limit int32) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Offset = &offset
		options.Limit = &limit
		return nil
	}
}

func WithSort(sort string) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Sort = &sort
		return nil
	}
}

// Repo is the append-only feed of marketplace events
type Repo interface {
	Insert(ctx ctx.Ctx, ev *event.Event) error
	FindAll(ctx ctx.Ctx, opts ...FindAllOptionsFunc) ([]*event.Event, error)
	Count(ctx ctx.Ctx, opts ...FindAllOptionsFunc) (int, error)
}

type UseCase interface {
	FindAll(ctx ctx.Ctx, opts ...FindAllOptionsFunc) ([]*event.Event, error)
}
