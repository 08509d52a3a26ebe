package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/prompthub/marketplace/base/ctx"
	"github.com/prompthub/marketplace/base/log"
	"github.com/prompthub/marketplace/domain"
	"github.com/prompthub/marketplace/domain/keys"
	"github.com/prompthub/marketplace/domain/prompt"
	"github.com/prompthub/marketplace/service/cache"
	"github.com/prompthub/marketplace/service/cache/provider"
	"github.com/prompthub/marketplace/service/cache/provider/compound"
	"github.com/prompthub/marketplace/service/cache/provider/primitive"
	redisCache "github.com/prompthub/marketplace/service/cache/provider/redis"
	"github.com/prompthub/marketplace/service/query"
	"github.com/prompthub/marketplace/service/redis"
)

type impl struct {
	query       query.Mongo
	promptCache cache.Service
}

// New creates new prompt repo
func New(query query.Mongo, redis redis.Service) prompt.Repo {
	cacheProviders := []provider.Provider{
		primitive.NewPrimitive("prompt", 64),
	}

	if redis != nil {
		cacheProviders = append(cacheProviders, redisCache.NewRedis(redis))
	}

	return &impl{
		query: query,
		promptCache: cache.New(cache.ServiceConfig{
			Ttl:   time.Minute,
			Pfx:   keys.PfxPrompt,
			Cache: compound.NewCompound(cacheProviders),
		}),
	}
}

func makeFindAllQuery(opts prompt.FindAllOptions) (bson.M, int, int, string) {
	q := bson.M{}
	offset := 0
	limit := 0
	sort := "-createdAt"

	if opts.Creator != nil {
		q["creator"] = *opts.Creator
	}
	if opts.Offset != nil {
		offset = int(*opts.Offset)
	}
	if opts.Limit != nil {
		limit = int(*opts.Limit)
	}
	if opts.Sort != nil {
		sort = *opts.Sort
	}

	return q, offset, limit, sort
}

func (im *impl) FindAll(c ctx.Ctx, optFns ...prompt.FindAllOptionsFunc) ([]*prompt.Prompt, error) {
	opts, err := prompt.GetFindAllOptions(optFns...)
	if err != nil {
		return nil, err
	}

	q, offset, limit, sort := makeFindAllQuery(opts)

	res := []*prompt.Prompt{}
	if err := im.query.Search(c, domain.TablePrompts, offset, limit, sort, q, &res); err != nil {
		c.WithFields(log.Fields{
			"query": q,
			"err":   err,
		}).Error("search prompts failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) FindOne(c ctx.Ctx, id prompt.Id) (*prompt.Prompt, error) {
	res := &prompt.Prompt{}

	if err := im.promptCache.GetByFunc(c, id.PromptId.String(), res, func() (interface{}, error) {
		return im.findOne(c, id)
	}); err != nil {
		if err != domain.ErrNotFound {
			c.WithFields(log.Fields{
				"id":  id,
				"err": err,
			}).Error("promptCache.GetByFunc failed")
		}
		return nil, err
	}

	return res, nil
}

func (im *impl) findOne(c ctx.Ctx, id prompt.Id) (*prompt.Prompt, error) {
	p := &prompt.Prompt{}
	err := im.query.FindOne(c, domain.TablePrompts, bson.M{"promptId": id.PromptId}, p)
	if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"id":  id,
			"err": err,
		}).Error("find prompt failed")
		return nil, err
	}
	return p, nil
}

func (im *impl) Create(c ctx.Ctx, p *prompt.Prompt) error {
	p.Creator = p.Creator.ToLower()
	if err := im.query.Insert(c, domain.TablePrompts, p); err != nil {
		if err == query.ErrDuplicateKey {
			return domain.ErrConflict
		}
		c.WithFields(log.Fields{
			"promptId": p.PromptId,
			"err":      err,
		}).Error("insert prompt failed")
		return err
	}
	return nil
}

func (im *impl) RecordSale(c ctx.Ctx, id prompt.Id, price uint64) error {
	selector := bson.M{"promptId": id.PromptId}
	res := &prompt.Prompt{}
	incs := bson.M{
		"salesCount":   int64(1),
		"revenueTotal": int64(price),
	}
	if err := im.query.IncrementMany(c, domain.TablePrompts, selector, incs, nil, res); err != nil {
		c.WithFields(log.Fields{
			"id":    id,
			"price": price,
			"err":   err,
		}).Error("record sale failed")
		return err
	}
	if err := im.promptCache.Del(c, id.PromptId.String()); err != nil {
		c.WithFields(log.Fields{
			"id":  id,
			"err": err,
		}).Error("promptCache.Del failed")
	}
	return nil
}
