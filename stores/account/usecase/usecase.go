package usecase

import (
	"math/rand"
	"time"

	"github.com/prompthub/marketplace/base/ctx"
	"github.com/prompthub/marketplace/domain"
	"github.com/prompthub/marketplace/domain/account"
)

const nonceRange = 1000000

type AccountUseCaseCfg struct {
	AccountRepo account.Repo
}

type impl struct {
	repo account.Repo
}

func New(cfg *AccountUseCaseCfg) account.Usecase {
	return &impl{
		repo: cfg.AccountRepo,
	}
}

func (im *impl) Get(c ctx.Ctx, address domain.Address) (*account.Account, error) {
	return im.repo.Get(c, address)
}

func (im *impl) Create(c ctx.Ctx, address domain.Address) (*account.Account, error) {
	if address.IsEmpty() {
		return nil, domain.ErrInvalidAddress
	}
	a := &account.Account{
		Address:   address.ToLower(),
		Nonce:     genNonce(),
		CreatedAt: time.Now(),
	}
	if err := im.repo.Insert(c, a); err != nil {
		c.WithField("err", err).Error("repo.Insert failed")
		return nil, err
	}
	return a, nil
}

func (im *impl) GetNonce(c ctx.Ctx, address domain.Address) (int, error) {
	a, err := im.repo.Get(c, address)
	if err == domain.ErrNotFound {
		a, err = im.Create(c, address)
		if err != nil {
			c.WithField("err", err).Error("create account failed")
			return 0, err
		}
		c.Info("created new account")
	} else if err != nil {
		c.WithField("err", err).Error("get account failed")
		return 0, err
	}
	return a.Nonce, nil
}

func (im *impl) RotateNonce(c ctx.Ctx, address domain.Address) error {
	if err := im.repo.UpdateNonce(c, address, genNonce()); err != nil {
		c.WithField("err", err).Error("repo.UpdateNonce failed")
		return err
	}
	return nil
}

func genNonce() int {
	return int(rand.Int31n(nonceRange))
}
