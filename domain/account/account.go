package account

import (
	"time"

	"github.com/prompthub/marketplace/base/ctx"
	"github.com/prompthub/marketplace/domain"
)

// Account is auto-created the first time a principal authenticates
type Account struct {
	Address   domain.Address `json:"address" bson:"address"`
	Nonce     int            `json:"nonce" bson:"nonce"`
	CreatedAt time.Time      `json:"createdAt" bson:"createdAt"`
}

type Repo interface {
	Get(ctx ctx.Ctx, address domain.Address) (*Account, error)
	Insert(ctx ctx.Ctx, a *Account) error
	UpdateNonce(ctx ctx.Ctx, address domain.Address, nonce int) error
}

type Usecase interface {
	Get(ctx ctx.Ctx, address domain.Address) (*Account, error)
	Create(ctx ctx.Ctx, address domain.Address) (*Account, error)
	// GetNonce returns the current signing nonce, creating the account if needed
	GetNonce(ctx ctx.Ctx, address domain.Address) (int, error)
	// RotateNonce replaces the nonce after a successful signature check
	RotateNonce(ctx ctx.Ctx, address domain.Address) error
}
