package usecase

import (
	"time"

	"github.com/prompthub/marketplace/base/ctx"
	"github.com/prompthub/marketplace/base/log"
	"github.com/prompthub/marketplace/domain"
	"github.com/prompthub/marketplace/domain/marketplace"
)

type MarketplaceUseCaseCfg struct {
	MarketplaceRepo marketplace.Repo
}

type impl struct {
	marketplace marketplace.Repo
}

func New(cfg *MarketplaceUseCaseCfg) marketplace.UseCase {
	return &impl{
		marketplace: cfg.MarketplaceRepo,
	}
}

func (im *impl) Initialize(c ctx.Ctx, admin domain.Address, feeBps domain.Bps) (*marketplace.Config, error) {
	if feeBps > domain.MaxFeeBps {
		return nil, domain.ErrInvalidFee
	}
	if admin.IsEmpty() {
		return nil, domain.ErrInvalidAddress
	}

	cfg := &marketplace.Config{
		Admin:     admin.ToLower(),
		FeeBps:    feeBps,
		Treasury:  0,
		CreatedAt: time.Now(),
	}

	if err := im.marketplace.Create(c, cfg); err != nil {
		if err != domain.ErrConflict {
			c.WithFields(log.Fields{
				"admin":  admin,
				"feeBps": feeBps,
				"err":    err,
			}).Error("failed to marketplace.Create")
		}
		return nil, err
	}

	return cfg, nil
}

func (im *impl) Close(c ctx.Ctx, caller domain.Address) error {
	cfg, err := im.marketplace.Get(c)
	if err != nil {
		return err
	}

	if !cfg.Admin.Equals(caller) {
		return domain.ErrUnauthorized
	}

	if err := im.marketplace.Remove(c); err != nil {
		c.WithFields(log.Fields{
			"caller": caller,
			"err":    err,
		}).Error("failed to marketplace.Remove")
		return err
	}

	return nil
}

func (im *impl) Get(c ctx.Ctx) (*marketplace.Config, error) {
	return im.marketplace.Get(c)
}
