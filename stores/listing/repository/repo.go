package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/prompthub/marketplace/base/ctx"
	"github.com/prompthub/marketplace/base/database/mongoclient"
	"github.com/prompthub/marketplace/base/log"
	"github.com/prompthub/marketplace/domain"
	"github.com/prompthub/marketplace/domain/listing"
	"github.com/prompthub/marketplace/service/query"
)

type impl struct {
	query query.Mongo
}

// New creates new listing repo
func New(query query.Mongo) listing.Repo {
	return &impl{
		query: query,
	}
}

func makeFindAllQuery(opts listing.FindAllOptions) (bson.M, int, int, string) {
	q := bson.M{}
	offset := 0
	limit := 0
	sort := "-listedAt"

	if opts.Seller != nil {
		q["seller"] = *opts.Seller
	}
	if opts.IsActive != nil {
		q["isActive"] = *opts.IsActive
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

func (im *impl) FindAll(c ctx.Ctx, optFns ...listing.FindAllOptionsFunc) ([]*listing.Listing, error) {
	opts, err := listing.GetFindAllOptions(optFns...)
	if err != nil {
		return nil, err
	}

	q, offset, limit, sort := makeFindAllQuery(opts)

	res := []*listing.Listing{}
	if err := im.query.Search(c, domain.TableListings, offset, limit, sort, q, &res); err != nil {
		c.WithFields(log.Fields{
			"query": q,
			"err":   err,
		}).Error("search listings failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) FindOne(c ctx.Ctx, id listing.Id) (*listing.Listing, error) {
	l := &listing.Listing{}
	err := im.query.FindOne(c, domain.TableListings, bson.M{"promptId": id.PromptId}, l)
	if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"id":  id,
			"err": err,
		}).Error("find listing failed")
		return nil, err
	}
	return l, nil
}

// Upsert replaces the previous instance for the prompt, if any. One listing
// document per prompt; history lives in the activity feed.
func (im *impl) Upsert(c ctx.Ctx, l *listing.Listing) error {
	l.Seller = l.Seller.ToLower()
	if err := im.query.Upsert(c, domain.TableListings, bson.M{"promptId": l.PromptId}, l); err != nil {
		c.WithFields(log.Fields{
			"promptId": l.PromptId,
			"err":      err,
		}).Error("upsert listing failed")
		return err
	}
	return nil
}

func (im *impl) Update(c ctx.Ctx, id listing.Id, patchable listing.Patchable) error {
	updater, err := mongoclient.MakeBsonM(&patchable)
	if err != nil {
		c.WithFields(log.Fields{
			"id":  id,
			"err": err,
		}).Error("make bsonM failed")
		return err
	}
	if err := im.query.Patch(c, domain.TableListings, bson.M{"promptId": id.PromptId}, updater); err != nil {
		if err == query.ErrNotFound {
			return domain.ErrNotFound
		}
		c.WithFields(log.Fields{
			"id":  id,
			"err": err,
		}).Error("patch listing failed")
		return err
	}
	return nil
}
