package listing

import (
	"math/big"
	"time"

	"github.com/shopspring/decimal"

	"github.com/prompthub/marketplace/base/ctx"
	"github.com/prompthub/marketplace/domain"
)

// priceDecimals is the display exponent of the base value unit
const priceDecimals = 9

// Listing is one sale instance of a prompt. Active means custody is held in
// escrow; the flag flips to false exactly once, on purchase or delist.
// Re-listing a prompt starts a fresh instance.
type Listing struct {
	PromptId    domain.PromptId `json:"promptId" bson:"promptId"`
	Instance    string          `json:"instance" bson:"instance"`
	Seller      domain.Address  `json:"seller" bson:"seller"`
	Price       uint64          `json:"price" bson:"price"`
	Description string          `json:"description" bson:"description"`
	IsActive    bool            `json:"isActive" bson:"isActive"`
	ListedAt    time.Time       `json:"listedAt" bson:"listedAt"`
	ClosedAt    *time.Time      `json:"closedAt" bson:"closedAt"`
}

func (l *Listing) ToId() Id {
	return Id{PromptId: l.PromptId}
}

// DisplayPrice renders the base-unit price as a decimal string
func (l *Listing) DisplayPrice() string {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(l.Price), -priceDecimals).String()
}

type Id struct {
	PromptId domain.PromptId `json:"promptId" bson:"promptId"`
}

// Terms are the seller-mutable fields of an active listing
type Terms struct {
	Price       *uint64 `json:"price"`
	Description *string `json:"description"`
}

type Patchable struct {
	Price       *uint64    `json:"price" bson:"price,omitempty"`
	Description *string    `json:"description" bson:"description,omitempty"`
	IsActive    *bool      `json:"isActive" bson:"isActive,omitempty"`
	ClosedAt    *time.Time `json:"closedAt" bson:"closedAt,omitempty"`
}

// SettlementReceipt reports the three-way split of one purchase
type SettlementReceipt struct {
	PromptId     domain.PromptId `json:"promptId"`
	Instance     string          `json:"instance"`
	Buyer        domain.Address  `json:"buyer"`
	Seller       domain.Address  `json:"seller"`
	Creator      domain.Address  `json:"creator"`
	Admin        domain.Address  `json:"admin"`
	Price        uint64          `json:"price"`
	PlatformFee  uint64          `json:"platformFee"`
	Royalty      uint64          `json:"royalty"`
	SellerAmount uint64          `json:"sellerAmount"`
}

type FindAllOptions struct {
	Seller   *domain.Address
	IsActive *bool
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

func WithSeller(seller domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Seller = seller.ToLowerPtr()
		return nil
	}
}

func WithIsActive(isActive bool) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.IsActive = &isActive
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
	FindAll(ctx ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Listing, error)
	FindOne(ctx ctx.Ctx, id Id) (*Listing, error)
	Upsert(ctx ctx.Ctx, l *Listing) error
	Update(ctx ctx.Ctx, id Id, patchable Patchable) error
}

type UseCase interface {
	Create(ctx ctx.Ctx, seller domain.Address, promptId domain.PromptId, price uint64, description string) (*Listing, error)
	Update(ctx ctx.Ctx, seller domain.Address, promptId domain.PromptId, terms Terms) error
	Purchase(ctx ctx.Ctx, buyer domain.Address, promptId domain.PromptId) (*SettlementReceipt, error)
	Delist(ctx ctx.Ctx, seller domain.Address, promptId domain.PromptId) error
	Get(ctx ctx.Ctx, id Id) (*Listing, error)
	FindAll(ctx ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Listing, error)
}
