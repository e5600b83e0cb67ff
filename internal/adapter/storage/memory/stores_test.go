package memory

import (
	"context"
	"errors"
	"testing"

	"p2p-offerbook/internal/core/domain"
	"p2p-offerbook/internal/core/ports/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUserStore_Reload(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserProfileRepository(ctrl)
	store := NewUserStore(repo, me)
	ctx := context.Background()

	assert.Empty(t, store.PaymentAccounts())

	repo.EXPECT().Load(ctx, "me.onion").Return(&domain.UserProfile{
		NodeAddress:         domain.NodeAddress{HostName: "ignored.onion"},
		AcceptedArbitrators: []domain.NodeAddress{{HostName: "arb.onion", Port: 9999}},
		PaymentAccounts:     []domain.PaymentAccount{{ID: "acc", PaymentMethodID: domain.Sepa}},
	}, nil)
	require.NoError(t, store.Reload(ctx))

	assert.Equal(t, me, store.NodeAddress(), "node address comes from config")
	assert.Len(t, store.AcceptedArbitratorAddresses(), 1)
	assert.Len(t, store.PaymentAccounts(), 1)

	repo.EXPECT().Load(ctx, "me.onion").Return(nil, nil)
	require.NoError(t, store.Reload(ctx))
	assert.Len(t, store.PaymentAccounts(), 1, "missing profile keeps the last one")

	repo.EXPECT().Load(ctx, "me.onion").Return(nil, errors.New("db down"))
	assert.Error(t, store.Reload(ctx))
}

func TestTradeLedger_Reload(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockClosedTradeRepository(ctrl)
	ledger := NewTradeLedger(repo)
	ctx := context.Background()

	repo.EXPECT().List(ctx).Return([]domain.ClosedTrade{{ID: "t1"}, {ID: "t2"}}, nil)
	require.NoError(t, ledger.Reload(ctx))
	assert.Len(t, ledger.ClosedTrades(), 2)

	repo.EXPECT().List(ctx).Return(nil, errors.New("db down"))
	assert.Error(t, ledger.Reload(ctx))
	assert.Len(t, ledger.ClosedTrades(), 2, "cache kept on error")
}

func TestFilterCache_Reload(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockFilterRuleRepository(ctrl)
	cache := NewFilterCache(repo)
	ctx := context.Background()

	assert.Nil(t, cache.Filter())

	rules := &domain.FilterRules{BannedOfferIDs: []string{"X"}}
	repo.EXPECT().Load(ctx).Return(rules, nil)
	require.NoError(t, cache.Reload(ctx))
	assert.True(t, cache.Filter().IsOfferBanned("X"))

	repo.EXPECT().Load(ctx).Return(nil, errors.New("redis down"))
	assert.Error(t, cache.Reload(ctx))
	assert.Same(t, rules, cache.Filter(), "last rules stay in force")

	repo.EXPECT().Load(ctx).Return(nil, nil)
	require.NoError(t, cache.Reload(ctx))
	assert.Nil(t, cache.Filter(), "withdrawn rules are cleared")
}
