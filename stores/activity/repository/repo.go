package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/prompthub/marketplace/base/ctx"
	"github.com/prompthub/marketplace/base/log"
	"github.com/prompthub/marketplace/domain"
	"github.com/prompthub/marketplace/domain/activity"
	"github.com/prompthub/marketplace/domain/event"
	"github.com/prompthub/marketplace/service/query"
)

type impl struct {
	query query.Mongo
}

// New creates new activity repo
func New(query query.Mongo) activity.Repo {
	return &impl{
		query: query,
	}
}

func makeFindAllQuery(opts activity.FindAllOptions) (bson.M, int, int, string) {
	q := bson.M{}
	offset := 0
	limit := 0
	sort := "-createdAt"

	if opts.PromptId != nil {
		q["promptId"] = *opts.PromptId
	}
	if opts.Account != nil {
		// an account shows up in the feed as creator, seller, or buyer
		q["$or"] = bson.A{
			bson.M{"creator": *opts.Account},
			bson.M{"seller": *opts.Account},
			bson.M{"buyer": *opts.Account},
		}
	}
	if len(opts.Types) > 0 {
		q["type"] = bson.M{"$in": opts.Types}
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

func (im *impl) Insert(c ctx.Ctx, ev *event.Event) error {
	if err := im.query.Insert(c, domain.TableActivities, ev); err != nil {
		c.WithFields(log.Fields{
			"eventId": ev.EventId,
			"err":     err,
		}).Error("insert activity failed")
		return err
	}
	return nil
}

func (im *impl) FindAll(c ctx.Ctx, optFns ...activity.FindAllOptionsFunc) ([]*event.Event, error) {
	opts, err := activity.GetFindAllOptions(optFns...)
	if err != nil {
		return nil, err
	}

	q, offset, limit, sort := makeFindAllQuery(opts)

	res := []*event.Event{}
	if err := im.query.Search(c, domain.TableActivities, offset, limit, sort, q, &res); err != nil {
		c.WithFields(log.Fields{
			"query": q,
			"err":   err,
		}).Error("search activities failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) Count(c ctx.Ctx, optFns ...activity.FindAllOptionsFunc) (int, error) {
	opts, err := activity.GetFindAllOptions(optFns...)
	if err != nil {
		return 0, err
	}

	q, _, _, _ := makeFindAllQuery(opts)

	cnt, err := im.query.Count(c, domain.TableActivities, q)
	if err != nil {
		c.WithFields(log.Fields{
			"query": q,
			"err":   err,
		}).Error("count activities failed")
		return 0, err
	}
	return cnt, nil
}
