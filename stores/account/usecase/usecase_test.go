package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/prompthub/marketplace/base/ctx"
	"github.com/prompthub/marketplace/domain"
	"github.com/prompthub/marketplace/domain/account"
	mAccount "github.com/prompthub/marketplace/domain/account/mocks"
)

var address = domain.Address("0xce4468e7ce84aceb74363f4ea64e5a038176f369")

func TestGetNonce(t *testing.T) {
	c := ctx.Background()

	repo := &mAccount.Repo{}
	repo.On("Get", mock.Anything, address).Return(&account.Account{Address: address, Nonce: 42}, nil)

	u := New(&AccountUseCaseCfg{AccountRepo: repo})

	nonce, err := u.GetNonce(c, address)
	assert.NoError(t, err)
	assert.Equal(t, 42, nonce)
}

func TestGetNonceCreatesAccount(t *testing.T) {
	c := ctx.Background()

	repo := &mAccount.Repo{}
	repo.On("Get", mock.Anything, address).Return(nil, domain.ErrNotFound)
	repo.On("Insert", mock.Anything, mock.Anything).Return(nil)

	u := New(&AccountUseCaseCfg{AccountRepo: repo})

	_, err := u.GetNonce(c, address)
	assert.NoError(t, err)
	repo.AssertCalled(t, "Insert", mock.Anything, mock.MatchedBy(func(a *account.Account) bool {
		return a.Address == address && a.Nonce >= 0
	}))
}

func TestRotateNonce(t *testing.T) {
	c := ctx.Background()

	repo := &mAccount.Repo{}
	repo.On("UpdateNonce", mock.Anything, address, mock.Anything).Return(nil)

	u := New(&AccountUseCaseCfg{AccountRepo: repo})

	assert.NoError(t, u.RotateNonce(c, address))
	repo.AssertExpectations(t)
}

func TestCreateEmptyAddress(t *testing.T) {
	c := ctx.Background()

	u := New(&AccountUseCaseCfg{AccountRepo: &mAccount.Repo{}})

	_, err := u.Create(c, "")
	assert.Equal(t, domain.ErrInvalidAddress, err)
}
