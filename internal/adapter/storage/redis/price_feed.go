package redis

import (
	"context"
	"fmt"
	"sync"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	// PriceFeedCurrencyKey holds the currency the market price feed follows.
	PriceFeedCurrencyKey = "offerbook:pricefeed:currency"
	// PriceFeedChannel announces currency changes to the price feed process.
	PriceFeedChannel = "offerbook:pricefeed"
)

// PriceFeedPublisher implements ports.PriceFeed. SetCurrencyCode only records
// the latest code; Run writes it to Redis and announces it on a channel.
// Intermediate codes set faster than Redis accepts them are skipped.
type PriceFeedPublisher struct {
	client *goredis.Client
	log    zerolog.Logger

	mu      sync.Mutex
	pending string
	current string
	wake    chan struct{}
}

// NewPriceFeedPublisher creates a publisher. Call Run to start publishing.
func NewPriceFeedPublisher(client *goredis.Client, log zerolog.Logger) *PriceFeedPublisher {
	return &PriceFeedPublisher{
		client: client,
		log:    log,
		wake:   make(chan struct{}, 1),
	}
}

// SetCurrencyCode never blocks.
func (p *PriceFeedPublisher) SetCurrencyCode(code string) {
	p.mu.Lock()
	p.pending = code
	p.mu.Unlock()

	select {
	case p.wake <- struct{}{}:
	default:
	}
}

// CurrencyCode is the last code written to Redis.
func (p *PriceFeedPublisher) CurrencyCode() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

// Run publishes until ctx is done.
func (p *PriceFeedPublisher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-p.wake:
			if err := p.flush(ctx); err != nil && ctx.Err() == nil {
				p.log.Warn().Err(err).Msg("price feed publish failed")
			}
		}
	}
}

func (p *PriceFeedPublisher) flush(ctx context.Context) error {
	p.mu.Lock()
	code := p.pending
	unchanged := code == p.current
	p.mu.Unlock()
	if code == "" || unchanged {
		return nil
	}

	_, err := p.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.Set(ctx, PriceFeedCurrencyKey, code, 0)
		pipe.Publish(ctx, PriceFeedChannel, code)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis price feed publish: %w", err)
	}

	p.mu.Lock()
	p.current = code
	p.mu.Unlock()

	p.log.Debug().Str("currency", code).Msg("price feed currency published")
	return nil
}
