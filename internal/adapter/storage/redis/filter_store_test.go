package redis_test

import (
	"context"
	"testing"

	"p2p-offerbook/internal/adapter/storage/redis"
	"p2p-offerbook/internal/core/domain"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterRuleStore(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	defer client.Close()

	store := redis.NewFilterRuleStore(client)
	ctx := context.Background()

	t.Run("no rules published", func(t *testing.T) {
		rules, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Nil(t, rules)
	})

	t.Run("publish and load", func(t *testing.T) {
		err := store.Publish(ctx, &domain.FilterRules{
			BannedOfferIDs:      []string{"X"},
			BannedNodeAddresses: []string{"badpeer"},
		})
		require.NoError(t, err)

		rules, err := store.Load(ctx)
		require.NoError(t, err)
		require.NotNil(t, rules)
		assert.True(t, rules.IsOfferBanned("X"))
		assert.True(t, rules.IsNodeBanned("badpeer", ".onion"))
	})

	t.Run("publish nil clears", func(t *testing.T) {
		require.NoError(t, store.Publish(ctx, nil))
		rules, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Nil(t, rules)
	})

	t.Run("corrupt document", func(t *testing.T) {
		require.NoError(t, mr.Set(redis.FilterRulesKey, "{broken"))
		_, err := store.Load(ctx)
		assert.Error(t, err)
	})
}
