package database

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"devcamper_backend/internals/configs"
)

// ConnectRedis returns nil when REDIS_ADDR is unset; callers treat a nil
// client as "cache disabled".
func ConnectRedis(cfg configs.Config) *redis.Client {
	if cfg.RedisAddr == "" {
		log.Println("[INFO] REDIS_ADDR not set, user cache disabled")
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("[WARN] Redis ping failed, user cache disabled: %v", err)
		_ = rdb.Close()
		return nil
	}

	log.Println("Redis connection successfully opened.")
	return rdb
}
