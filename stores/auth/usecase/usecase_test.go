package usecase_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/prompthub/marketplace/base/ctx"
	"github.com/prompthub/marketplace/base/ethereum"
	"github.com/prompthub/marketplace/domain"
	mAccount "github.com/prompthub/marketplace/domain/account/mocks"
	"github.com/prompthub/marketplace/stores/auth/usecase"
)

const signingMsgTemplate = "Welcome!\n\nNonce: %s"

func TestSignAndParseToken(t *testing.T) {
	privateKey, publicKey, err := ethereum.GenerateKey()
	require.NoError(t, err)
	address := domain.Address(crypto.PubkeyToAddress(*publicKey).Hex())

	nonce := 123456
	message := []byte(fmt.Sprintf(signingMsgTemplate, "123456"))
	signature, err := crypto.Sign(accounts.TextHash(message), privateKey)
	require.NoError(t, err)

	mockAccountUC := &mAccount.Usecase{}
	mockAccountUC.On("GetNonce", mock.Anything, address).Return(nonce, nil)
	mockAccountUC.On("RotateNonce", mock.Anything, address).Return(nil)

	c := ctx.Background()
	u := usecase.New(&usecase.AuthUseCaseCfg{
		JwtSecret:          "jwt-secret",
		SigningMsgTemplate: signingMsgTemplate,
		Account:            mockAccountUC,
	})

	tkn, err := u.SignToken(c, address, hexutil.Encode(signature))
	require.NoError(t, err)
	assert.NotEmpty(t, tkn)

	ads, err := u.ParseToken(c, tkn)
	require.NoError(t, err)
	assert.Equal(t, address.ToLowerStr(), ads)

	mockAccountUC.AssertCalled(t, "RotateNonce", mock.Anything, address)
}

func TestSignTokenBadSignature(t *testing.T) {
	privateKey, _, err := ethereum.GenerateKey()
	require.NoError(t, err)
	_, otherPublicKey, err := ethereum.GenerateKey()
	require.NoError(t, err)
	address := domain.Address(crypto.PubkeyToAddress(*otherPublicKey).Hex())

	message := []byte(fmt.Sprintf(signingMsgTemplate, "123456"))
	signature, err := crypto.Sign(accounts.TextHash(message), privateKey)
	require.NoError(t, err)

	mockAccountUC := &mAccount.Usecase{}
	mockAccountUC.On("GetNonce", mock.Anything, address).Return(123456, nil)

	c := ctx.Background()
	u := usecase.New(&usecase.AuthUseCaseCfg{
		JwtSecret:          "jwt-secret",
		SigningMsgTemplate: signingMsgTemplate,
		Account:            mockAccountUC,
	})

	_, err = u.SignToken(c, address, hexutil.Encode(signature))
	assert.Equal(t, domain.ErrInvalidSignature, err)

	// a failed signature check must not burn the nonce
	mockAccountUC.AssertNotCalled(t, "RotateNonce", mock.Anything, mock.Anything)
}

func TestParseTokenWrongSecret(t *testing.T) {
	privateKey, publicKey, err := ethereum.GenerateKey()
	require.NoError(t, err)
	address := domain.Address(crypto.PubkeyToAddress(*publicKey).Hex())

	message := []byte(fmt.Sprintf(signingMsgTemplate, "123456"))
	signature, err := crypto.Sign(accounts.TextHash(message), privateKey)
	require.NoError(t, err)

	mockAccountUC := &mAccount.Usecase{}
	mockAccountUC.On("GetNonce", mock.Anything, address).Return(123456, nil)
	mockAccountUC.On("RotateNonce", mock.Anything, address).Return(nil)

	c := ctx.Background()
	u := usecase.New(&usecase.AuthUseCaseCfg{
		JwtSecret:          "jwt-secret",
		SigningMsgTemplate: signingMsgTemplate,
		Account:            mockAccountUC,
	})
	tkn, err := u.SignToken(c, address, hexutil.Encode(signature))
	require.NoError(t, err)

	other := usecase.New(&usecase.AuthUseCaseCfg{
		JwtSecret:          "other-secret",
		SigningMsgTemplate: signingMsgTemplate,
		Account:            mockAccountUC,
	})
	_, err = other.ParseToken(c, tkn)
	assert.Error(t, err)

	// tampering with the payload invalidates the token
	parts := strings.Split(tkn, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + ".eyJkYXRhIjoiMHgwMCJ9." + parts[2]
	_, err = u.ParseToken(c, tampered)
	assert.Error(t, err)
}
