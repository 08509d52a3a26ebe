package repository

import (
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/prompthub/marketplace/base/ctx"
	"github.com/prompthub/marketplace/base/log"
	"github.com/prompthub/marketplace/domain"
	"github.com/prompthub/marketplace/domain/keys"
	"github.com/prompthub/marketplace/domain/marketplace"
	"github.com/prompthub/marketplace/service/cache"
	"github.com/prompthub/marketplace/service/cache/provider/primitive"
	"github.com/prompthub/marketplace/service/query"
)

// singletonKey pins the config collection to at most one document, backed by
// a unique index on `key`
const singletonKey = "config"

type configDoc struct {
	Key                string `bson:"key"`
	marketplace.Config `bson:",inline"`
}

type impl struct {
	query       query.Mongo
	configCache cache.Service
}

// New creates new marketplace config repo
func New(query query.Mongo) marketplace.Repo {
	return &impl{
		query: query,
		configCache: cache.New(cache.ServiceConfig{
			Ttl:   time.Minute,
			Pfx:   keys.PfxMarketplaceConfig,
			Cache: primitive.NewPrimitive("marketplaceConfig", 16),
		}),
	}
}

func (im *impl) Get(c ctx.Ctx) (*marketplace.Config, error) {
	res := &marketplace.Config{}

	if err := im.configCache.GetByFunc(c, singletonKey, res, func() (interface{}, error) {
		return im.get(c)
	}); err != nil {
		if err != domain.ErrNotFound {
			c.WithFields(log.Fields{
				"err": err,
			}).Error("configCache.GetByFunc failed")
		}
		return nil, err
	}

	return res, nil
}

func (im *impl) get(c ctx.Ctx) (*marketplace.Config, error) {
	doc := &configDoc{}
	err := im.query.FindOne(c, domain.TableMarketplaceConfigs, bson.M{"key": singletonKey}, doc)
	if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"err": err,
		}).Error("find marketplace config failed")
		return nil, err
	}
	return &doc.Config, nil
}

func (im *impl) Create(c ctx.Ctx, cfg *marketplace.Config) error {
	cfg.Admin = cfg.Admin.ToLower()
	doc := &configDoc{Key: singletonKey, Config: *cfg}
	if err := im.query.Insert(c, domain.TableMarketplaceConfigs, doc); err != nil {
		if err == query.ErrDuplicateKey {
			return domain.ErrConflict
		}
		c.WithFields(log.Fields{
			"admin": cfg.Admin,
			"err":   err,
		}).Error("insert marketplace config failed")
		return err
	}
	if err := im.configCache.Del(c, singletonKey); err != nil {
		c.WithFields(log.Fields{
			"err": err,
		}).Error("configCache.Del failed")
	}
	return nil
}

func (im *impl) AddTreasury(c ctx.Ctx, amount uint64) error {
	// mongo stores the counter as a signed 64-bit integer
	if amount > math.MaxInt64 {
		return domain.ErrBadParamInput
	}

	selector := bson.M{"key": singletonKey}
	updater := bson.M{"$inc": bson.M{"treasury": int64(amount)}}
	if err := im.query.CustomPatch(c, domain.TableMarketplaceConfigs, selector, updater, false); err != nil {
		if err == query.ErrNotFound {
			return domain.ErrNotFound
		}
		c.WithFields(log.Fields{
			"amount": amount,
			"err":    err,
		}).Error("add treasury failed")
		return err
	}
	if err := im.configCache.Del(c, singletonKey); err != nil {
		c.WithFields(log.Fields{
			"err": err,
		}).Error("configCache.Del failed")
	}
	return nil
}

func (im *impl) Remove(c ctx.Ctx) error {
	if err := im.query.Remove(c, domain.TableMarketplaceConfigs, bson.M{"key": singletonKey}); err != nil {
		if err == query.ErrNotFound {
			return domain.ErrNotFound
		}
		c.WithFields(log.Fields{
			"err": err,
		}).Error("remove marketplace config failed")
		return err
	}
	if err := im.configCache.Del(c, singletonKey); err != nil {
		c.WithFields(log.Fields{
			"err": err,
		}).Error("configCache.Del failed")
	}
	return nil
}
