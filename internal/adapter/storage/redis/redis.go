package redis

import (
	"context"
	"fmt"
	"time"

	"p2p-offerbook/config"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const clientName = "offerbook"

// NewClient connects to the Redis instance shared with the price feed
// process and the filter rule publisher.
func NewClient(ctx context.Context, cfg config.RedisConfig, log zerolog.Logger) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		ClientName:   clientName,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", cfg.Addr(), err)
	}

	log.Info().Str("addr", cfg.Addr()).Int("db", cfg.DB).Msg("Redis connection established")
	return client, nil
}

// HealthCheck implements ports.HealthChecker. The price feed and filter
// rules go stale while Redis is down, so it reports the round trip time too.
type HealthCheck struct {
	client *goredis.Client
	slow   time.Duration
}

func NewHealthCheck(client *goredis.Client) *HealthCheck {
	return &HealthCheck{client: client, slow: 500 * time.Millisecond}
}

func (h *HealthCheck) Ping(ctx context.Context) error {
	start := time.Now()
	if err := h.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("ping redis: %w", err)
	}
	if took := time.Since(start); took > h.slow {
		return fmt.Errorf("redis round trip %s exceeds %s", took.Round(time.Millisecond), h.slow)
	}
	return nil
}

func (h *HealthCheck) Name() string {
	return "redis"
}
