package ledger

import (
	"github.com/prompthub/marketplace/base/ctx"
	"github.com/prompthub/marketplace/domain"
)

// Balance is the fungible value held by one principal
type Balance struct {
	Address domain.Address `json:"address" bson:"address"`
	Amount  uint64         `json:"amount" bson:"amount"`
}

// Repo moves value between principals. Transfer either fully applies or
// leaves both balances untouched; callers needing multi-transfer atomicity
// run inside a query.Mongo transaction.
type Repo interface {
	// Get returns a zero balance for an unknown address
	Get(ctx ctx.Ctx, address domain.Address) (*Balance, error)
	Deposit(ctx ctx.Ctx, address domain.Address, amount uint64) error
	// Transfer fails with domain.ErrInsufficientFunds when the source
	// balance is below amount
	Transfer(ctx ctx.Ctx, from, to domain.Address, amount uint64) error
}

type UseCase interface {
	Get(ctx ctx.Ctx, address domain.Address) (*Balance, error)
	Deposit(ctx ctx.Ctx, address domain.Address, amount uint64) error
}
