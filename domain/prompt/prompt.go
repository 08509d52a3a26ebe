package prompt

import (
	"time"

	"github.com/prompthub/marketplace/base/ctx"
	"github.com/prompthub/marketplace/domain"
)

// MaxMetadataUriLen bounds the stored metadata uri in bytes
const MaxMetadataUriLen = 200

// Prompt is the registry record of one uniquely-owned item. Immutable after
// creation except for the settlement bookkeeping fields.
type Prompt struct {
	PromptId     domain.PromptId `json:"promptId" bson:"promptId"`
	MintId       domain.MintId   `json:"mintId" bson:"mintId"`
	Creator      domain.Address  `json:"creator" bson:"creator"`
	MetadataUri  string          `json:"metadataUri" bson:"metadataUri"`
	RoyaltyBps   domain.Bps      `json:"royaltyBps" bson:"royaltyBps"`
	SalesCount   int64           `json:"salesCount" bson:"salesCount"`
	RevenueTotal uint64          `json:"revenueTotal" bson:"revenueTotal"`
	CreatedAt    time.Time       `json:"createdAt" bson:"createdAt"`
}

func (p *Prompt) ToId() Id {
	return Id{PromptId: p.PromptId}
}

type Id struct {
	PromptId domain.PromptId `json:"promptId" bson:"promptId"`
}

type FindAllOptions struct {
	Creator *domain.Address
	Offset  *int32
	Limit   *int32
	Sort    *string
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

func WithCreator(creator domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Creator = creator.ToLowerPtr()
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

type Repo interface {
	FindAll(ctx ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Prompt, error)
	FindOne(ctx ctx.Ctx, id Id) (*Prompt, error)
	// Create fails with domain.ErrConflict if the prompt already exists
	Create(ctx ctx.Ctx, p *Prompt) error
	// RecordSale bumps salesCount by one and revenueTotal by price
	RecordSale(ctx ctx.Ctx, id Id, price uint64) error
}

type UseCase interface {
	Register(ctx ctx.Ctx, creator domain.Address, mintId domain.MintId, metadataUri string, royaltyBps domain.Bps) (*Prompt, error)
	Get(ctx ctx.Ctx, id Id) (*Prompt, error)
	FindAll(ctx ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Prompt, error)
}
