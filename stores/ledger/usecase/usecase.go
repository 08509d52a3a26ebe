package usecase

import (
	"github.com/prompthub/marketplace/base/ctx"
	"github.com/prompthub/marketplace/base/log"
	"github.com/prompthub/marketplace/domain"
	"github.com/prompthub/marketplace/domain/ledger"
)

type LedgerUseCaseCfg struct {
	LedgerRepo ledger.Repo
}

type impl struct {
	ledger ledger.Repo
}

func New(cfg *LedgerUseCaseCfg) ledger.UseCase {
	return &impl{
		ledger: cfg.LedgerRepo,
	}
}

func (im *impl) Get(c ctx.Ctx, address domain.Address) (*ledger.Balance, error) {
	return im.ledger.Get(c, address)
}

func (im *impl) Deposit(c ctx.Ctx, address domain.Address, amount uint64) error {
	if address.IsEmpty() {
		return domain.ErrInvalidAddress
	}
	if amount == 0 {
		return domain.ErrBadParamInput
	}

	if err := im.ledger.Deposit(c, address, amount); err != nil {
		c.WithFields(log.Fields{
			"address": address,
			"amount":  amount,
			"err":     err,
		}).Error("failed to ledger.Deposit")
		return err
	}
	return nil
}
