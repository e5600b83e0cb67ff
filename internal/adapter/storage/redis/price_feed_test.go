package redis_test

import (
	"context"
	"testing"
	"time"

	"p2p-offerbook/internal/adapter/storage/redis"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceFeedPublisher(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	defer client.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sub := client.Subscribe(ctx, redis.PriceFeedChannel)
	defer sub.Close()
	_, err := sub.Receive(ctx)
	require.NoError(t, err)

	pub := redis.NewPriceFeedPublisher(client, zerolog.Nop())
	done := make(chan error, 1)
	go func() { done <- pub.Run(ctx) }()

	pub.SetCurrencyCode("EUR")

	select {
	case msg := <-sub.Channel():
		assert.Equal(t, "EUR", msg.Payload)
	case <-time.After(2 * time.Second):
		t.Fatal("no price feed announcement")
	}

	require.Eventually(t, func() bool { return pub.CurrencyCode() == "EUR" }, time.Second, 10*time.Millisecond)
	stored, err := mr.Get(redis.PriceFeedCurrencyKey)
	require.NoError(t, err)
	assert.Equal(t, "EUR", stored)

	pub.SetCurrencyCode("USD")
	require.Eventually(t, func() bool { return pub.CurrencyCode() == "USD" }, time.Second, 10*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}

func TestPriceFeedPublisher_SetNeverBlocks(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	defer client.Close()

	pub := redis.NewPriceFeedPublisher(client, zerolog.Nop())
	for _, code := range []string{"EUR", "USD", "GBP", "XMR"} {
		pub.SetCurrencyCode(code)
	}
	assert.Empty(t, pub.CurrencyCode(), "nothing written before Run")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = pub.Run(ctx) }()

	require.Eventually(t, func() bool { return pub.CurrencyCode() == "XMR" }, time.Second, 10*time.Millisecond)
}
