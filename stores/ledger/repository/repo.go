package repository

import (
	"math"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/prompthub/marketplace/base/ctx"
	"github.com/prompthub/marketplace/base/log"
	"github.com/prompthub/marketplace/domain"
	"github.com/prompthub/marketplace/domain/ledger"
	"github.com/prompthub/marketplace/service/query"
)

type impl struct {
	query query.Mongo
}

// New creates new balance repo
func New(query query.Mongo) ledger.Repo {
	return &impl{
		query: query,
	}
}

func (im *impl) Get(c ctx.Ctx, address domain.Address) (*ledger.Balance, error) {
	b := &ledger.Balance{}
	err := im.query.FindOne(c, domain.TableBalances, bson.M{"address": address.ToLower()}, b)
	if err == query.ErrNotFound {
		return &ledger.Balance{Address: address.ToLower(), Amount: 0}, nil
	} else if err != nil {
		c.WithFields(log.Fields{
			"address": address,
			"err":     err,
		}).Error("find balance failed")
		return nil, err
	}
	return b, nil
}

func (im *impl) Deposit(c ctx.Ctx, address domain.Address, amount uint64) error {
	// mongo stores the amount as a signed 64-bit integer
	if amount > math.MaxInt64 {
		return domain.ErrBadParamInput
	}

	selector := bson.M{"address": address.ToLower()}
	updater := bson.M{
		"$inc":         bson.M{"amount": int64(amount)},
		"$setOnInsert": bson.M{"address": address.ToLower()},
	}
	if err := im.query.CustomPatch(c, domain.TableBalances, selector, updater, true); err != nil {
		c.WithFields(log.Fields{
			"address": address,
			"amount":  amount,
			"err":     err,
		}).Error("deposit failed")
		return err
	}
	return nil
}

// Transfer debits `from` with a guarded decrement, the selector only matches
// while the balance still covers amount
func (im *impl) Transfer(c ctx.Ctx, from, to domain.Address, amount uint64) error {
	if amount == 0 {
		return nil
	}
	if amount > math.MaxInt64 {
		return domain.ErrBadParamInput
	}

	fromSelector := bson.M{
		"address": from.ToLower(),
		"amount":  bson.M{"$gte": int64(amount)},
	}
	debit := bson.M{"$inc": bson.M{"amount": -int64(amount)}}
	if err := im.query.CustomPatch(c, domain.TableBalances, fromSelector, debit, false); err != nil {
		if err == query.ErrNotFound {
			return domain.ErrInsufficientFunds
		}
		c.WithFields(log.Fields{
			"from":   from,
			"amount": amount,
			"err":    err,
		}).Error("debit balance failed")
		return err
	}

	if err := im.Deposit(c, to, amount); err != nil {
		c.WithFields(log.Fields{
			"to":     to,
			"amount": amount,
			"err":    err,
		}).Error("credit balance failed")
		return err
	}

	return nil
}
