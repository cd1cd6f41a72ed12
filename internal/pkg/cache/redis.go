package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Pesokrava/tournament_registry/internal/config"
	"github.com/Pesokrava/tournament_registry/internal/pkg/logger"
	"github.com/Pesokrava/tournament_registry/internal/pkg/retry"
)

// NewRedisClient creates a Redis client and verifies it with a ping
func NewRedisClient(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return client, nil
}

// WaitForRedis waits for Redis to become available with retries
func WaitForRedis(cfg *config.Config, log *logger.Logger, maxRetries int, retryDelay time.Duration) (*redis.Client, error) {
	var client *redis.Client

	err := retry.Do(context.Background(), retry.Policy{
		Attempts: maxRetries,
		Backoff:  retryDelay,
		OnRetry: func(attempt int, err error, wait time.Duration) {
			log.WithFields(map[string]any{
				"attempt": attempt,
				"addr":    cfg.GetRedisAddr(),
			}).Warnf("Redis not ready: %v", err)
		},
	}, func(ctx context.Context) error {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		var err error
		client, err = NewRedisClient(pingCtx, cfg)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis after %d retries: %w", maxRetries, err)
	}

	return client, nil
}
