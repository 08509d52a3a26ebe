package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/prompthub/marketplace/base/ctx"
	"github.com/prompthub/marketplace/base/log"
	"github.com/prompthub/marketplace/domain"
	"github.com/prompthub/marketplace/domain/custody"
	"github.com/prompthub/marketplace/service/query"
)

type impl struct {
	query query.Mongo
}

// New creates new holding repo
func New(query query.Mongo) custody.Repo {
	return &impl{
		query: query,
	}
}

func (im *impl) Get(c ctx.Ctx, id custody.Id) (*custody.Holding, error) {
	h := &custody.Holding{}
	selector := bson.M{"promptId": id.PromptId, "owner": id.Owner.ToLower()}
	err := im.query.FindOne(c, domain.TableHoldings, selector, h)
	if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"id":  id,
			"err": err,
		}).Error("find holding failed")
		return nil, err
	}
	return h, nil
}

func (im *impl) Mint(c ctx.Ctx, promptId domain.PromptId, owner domain.Address) error {
	h := &custody.Holding{
		PromptId: promptId,
		Owner:    owner.ToLower(),
		Amount:   1,
	}
	if err := im.query.Insert(c, domain.TableHoldings, h); err != nil {
		if err == query.ErrDuplicateKey {
			return domain.ErrConflict
		}
		c.WithFields(log.Fields{
			"promptId": promptId,
			"owner":    owner,
			"err":      err,
		}).Error("insert holding failed")
		return err
	}
	return nil
}

func (im *impl) Transfer(c ctx.Ctx, promptId domain.PromptId, from, to domain.Address) error {
	return im.transfer(c, promptId, from, to)
}

func (im *impl) TransferFromEscrow(c ctx.Ctx, grant custody.Grant, to domain.Address) error {
	return im.transfer(c, grant.PromptId(), grant.Escrow(), to)
}

// transfer moves the single unit with a guarded decrement, the selector only
// matches while `from` still holds it
func (im *impl) transfer(c ctx.Ctx, promptId domain.PromptId, from, to domain.Address) error {
	fromSelector := bson.M{
		"promptId": promptId,
		"owner":    from.ToLower(),
		"amount":   bson.M{"$gte": int64(1)},
	}
	decrement := bson.M{"$inc": bson.M{"amount": int64(-1)}}
	if err := im.query.CustomPatch(c, domain.TableHoldings, fromSelector, decrement, false); err != nil {
		if err == query.ErrNotFound {
			return domain.ErrUnauthorized
		}
		c.WithFields(log.Fields{
			"promptId": promptId,
			"from":     from,
			"err":      err,
		}).Error("decrement holding failed")
		return err
	}

	toSelector := bson.M{"promptId": promptId, "owner": to.ToLower()}
	increment := bson.M{
		"$inc": bson.M{"amount": int64(1)},
		"$setOnInsert": bson.M{
			"promptId": promptId,
			"owner":    to.ToLower(),
		},
	}
	if err := im.query.CustomPatch(c, domain.TableHoldings, toSelector, increment, true); err != nil {
		c.WithFields(log.Fields{
			"promptId": promptId,
			"to":       to,
			"err":      err,
		}).Error("increment holding failed")
		return err
	}

	return nil
}
