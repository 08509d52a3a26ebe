package marketplace

import (
	"time"

	"github.com/prompthub/marketplace/base/ctx"
	"github.com/prompthub/marketplace/domain"
)

// Config is the process-wide marketplace singleton. Created once via
// Initialize, destroyed only via Close by its admin.
type Config struct {
	Admin     domain.Address `json:"admin" bson:"admin"`
	FeeBps    domain.Bps     `json:"feeBps" bson:"feeBps"`
	Treasury  uint64         `json:"treasury" bson:"treasury"`
	CreatedAt time.Time      `json:"createdAt" bson:"createdAt"`
}

type Repo interface {
	Get(ctx ctx.Ctx) (*Config, error)
	// Create fails with domain.ErrConflict if the singleton already exists
	Create(ctx ctx.Ctx, cfg *Config) error
	Remove(ctx ctx.Ctx) error
	// AddTreasury accumulates collected platform fees
	AddTreasury(ctx ctx.Ctx, amount uint64) error
}

type UseCase interface {
	Initialize(ctx ctx.Ctx, admin domain.Address, feeBps domain.Bps) (*Config, error)
	Close(ctx ctx.Ctx, caller domain.Address) error
	Get(ctx ctx.Ctx) (*Config, error)
}
