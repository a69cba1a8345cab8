package cache

import (
	"context"
	"fmt"
	"time"

	"granitereply/infrastructure/configuration"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects to Redis. Redis is optional infrastructure; callers
// treat a nil client as "cache disabled".
func NewRedisClient(ctx context.Context) (*redis.Client, error) {
	cfg := configuration.C.RedisClient
	if cfg.Host == "" {
		return nil, fmt.Errorf("redis host not configured")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Username: cfg.Username,
		Password: cfg.Password,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}
