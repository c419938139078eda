package auth

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	helperAuth "devcamper_backend/internals/helpers/auth"
)

// UserCache keeps resolved principals between requests. Writers of user
// rows call Invalidate.
type UserCache interface {
	Get(ctx context.Context, id uuid.UUID) (*helperAuth.Principal, bool)
	Set(ctx context.Context, p *helperAuth.Principal) error
	Invalidate(ctx context.Context, id uuid.UUID) error
}

// NewUserCache returns NopCache when rdb is nil.
func NewUserCache(rdb *redis.Client, ttl time.Duration) UserCache {
	if rdb == nil {
		return NopCache{}
	}
	return &RedisUserCache{rdb: rdb, ttl: ttl}
}

type NopCache struct{}

func (NopCache) Get(context.Context, uuid.UUID) (*helperAuth.Principal, bool) { return nil, false }
func (NopCache) Set(context.Context, *helperAuth.Principal) error { return nil }
func (NopCache) Invalidate(context.Context, uuid.UUID) error { return nil }

type RedisUserCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func userKey(id uuid.UUID) string { return "devcamper:user:" + id.String() }

func (r *RedisUserCache) Get(ctx context.Context, id uuid.UUID) (*helperAuth.Principal, bool) {
	raw, err := r.rdb.Get(ctx, userKey(id)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("[WARN] user cache get %s: %v", id, err)
		}
		return nil, false
	}
	var p helperAuth.Principal
	if err := sonic.Unmarshal(raw, &p); err != nil {
		return nil, false
	}
	return &p, true
}

func (r *RedisUserCache) Set(ctx context.Context, p *helperAuth.Principal) error {
	raw, err := sonic.Marshal(p)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, userKey(p.ID), raw, r.ttl).Err()
}

func (r *RedisUserCache) Invalidate(ctx context.Context, id uuid.UUID) error {
	return r.rdb.Del(ctx, userKey(id)).Err()
}
