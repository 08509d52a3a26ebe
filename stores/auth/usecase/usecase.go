package usecase

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt"

	"github.com/prompthub/marketplace/base/ctx"
	"github.com/prompthub/marketplace/base/ethereum"
	"github.com/prompthub/marketplace/domain"
	"github.com/prompthub/marketplace/domain/account"
)

type AuthUseCaseCfg struct {
	JwtSecret          string
	SigningMsgTemplate string
	Account            account.Usecase
}

type impl struct {
	jwtSecret          []byte
	signingMsgTemplate string
	account            account.Usecase
}

func New(cfg *AuthUseCaseCfg) domain.AuthUsecase {
	return &impl{
		jwtSecret:          []byte(cfg.JwtSecret),
		signingMsgTemplate: cfg.SigningMsgTemplate,
		account:            cfg.Account,
	}
}

func (im *impl) SignToken(c ctx.Ctx, address domain.Address, signature string) (string, error) {
	nonce, err := im.account.GetNonce(c, address)
	if err != nil {
		return "", err
	}

	msg := []byte(fmt.Sprintf(im.signingMsgTemplate, strconv.Itoa(nonce)))
	if valid, err := ethereum.ValidateMsgSignature(msg, signature, string(address)); err != nil {
		c.WithField("err", err).Error("ValidateMsgSignature failed")
		return "", err
	} else if !valid {
		return "", domain.ErrInvalidSignature
	}

	// a nonce signs in at most once
	if err := im.account.RotateNonce(c, address); err != nil {
		return "", err
	}

	claims := domain.JwtCustomClaims{
		Address: address.ToLowerStr(),
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(24 * time.Hour).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	ss, err := token.SignedString(im.jwtSecret)
	if err != nil {
		c.WithField("err", err).Error("token.SignedString failed")
		return "", err
	}
	return ss, nil
}

func (im *impl) ParseToken(c ctx.Ctx, str string) (string, error) {
	token, err := jwt.ParseWithClaims(str, &domain.JwtCustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return im.jwtSecret, nil
	})
	if err != nil {
		return "", err
	}

	if claims, ok := token.Claims.(*domain.JwtCustomClaims); ok && token.Valid {
		return claims.Address, nil
	}

	return "", domain.ErrInvalidSignature
}
