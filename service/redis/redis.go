package redis

import (
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/prompthub/marketplace/base/ctx"
)

// Forever means the key will not expire
const Forever = time.Duration(-1)

var (
	// ErrNotFound is returned when the key does not exist
	ErrNotFound = redis.ErrNil

	// ErrNoTTL is returned by TTL when the key exists but has no associated expire
	ErrNoTTL = redisError("key has no ttl")

	// ErrExpireNotExistOrTimeout is returned by Expire when the key does not
	// exist or the timeout could not be set
	ErrExpireNotExistOrTimeout = redisError("key not exist or timeout not set")

	// ErrGapTime is returned when no pool is available
	ErrGapTime = redisError("gap time")
)

type redisError string

func (e redisError) Error() string { return string(e) }

// MVal is the value type of MGet, Valid is false when the key does not exist
type MVal struct {
	Valid bool
	Value []byte
}

// Service provides interface for redis commands
type Service interface {
	Get(context ctx.Ctx, key string) (val []byte, err error)
	MGet(context ctx.Ctx, keys []string) ([]MVal, error)
	Set(context ctx.Ctx, key string, val []byte, expire time.Duration) error
	SetNX(context ctx.Ctx, key string, val []byte, expire time.Duration) error
	Del(context ctx.Ctx, keys ...string) (int, error)
	Exists(context ctx.Ctx, key string) (bool, error)
	Expire(context ctx.Ctx, key string, ttl time.Duration) error
	TTL(context ctx.Ctx, key string) (int, error)
	Incr(context ctx.Ctx, key string) (int64, error)
	Incrby(context ctx.Ctx, key string, val int) (int64, error)
}
