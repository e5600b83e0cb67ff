package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"p2p-offerbook/internal/core/domain"
	"p2p-offerbook/internal/core/ports"
	"p2p-offerbook/internal/core/ports/mocks"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var me = domain.NodeAddress{HostName: "me.onion", Port: 9999}

func newOffer(id string, maker domain.NodeAddress, price string) *domain.Offer {
	p := decimal.RequireFromString(price)
	return &domain.Offer{
		ID:                 id,
		Direction:          domain.DirectionSell,
		CurrencyCode:       "EUR",
		Amount:             decimal.NewFromInt(1),
		MinAmount:          decimal.NewFromInt(1),
		Price:              &p,
		PaymentMethodID:    domain.Sepa,
		OffererNodeAddress: maker,
		ProtocolVersion:    1,
		CreatedAt:          time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func setupOfferBook(t *testing.T) (*OfferBook, *mocks.MockOfferRepository) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockOfferRepository(ctrl)
	return NewOfferBook(repo, NewUserStore(nil, me), zerolog.Nop()), repo
}

func TestOfferBook_PublishAndReplace(t *testing.T) {
	book, repo := setupOfferBook(t)
	ctx := context.Background()
	repo.EXPECT().Upsert(ctx, gomock.Any()).Return(nil).Times(3)

	var changes []ports.OfferChange
	book.Subscribe(func(c ports.OfferChange) { changes = append(changes, c) })

	a := newOffer("a", domain.NodeAddress{HostName: "peer.onion"}, "100")
	b := newOffer("b", domain.NodeAddress{HostName: "peer.onion"}, "200")
	require.NoError(t, book.Publish(ctx, a, b))

	a2 := newOffer("a", domain.NodeAddress{HostName: "peer.onion"}, "101")
	require.NoError(t, book.Publish(ctx, a2))

	offers := book.Offers()
	require.Len(t, offers, 2)
	assert.Same(t, a2, offers[0], "replacement keeps arrival position")
	assert.Same(t, b, offers[1])

	require.Len(t, changes, 2)
	assert.Equal(t, []*domain.Offer{a, b}, changes[0].Added)
	assert.Equal(t, []*domain.Offer{a}, changes[1].Removed)
	assert.Equal(t, []*domain.Offer{a2}, changes[1].Added)
}

func TestOfferBook_Publish_PersistError(t *testing.T) {
	book, repo := setupOfferBook(t)
	repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

	err := book.Publish(context.Background(), newOffer("a", me, "1"))
	assert.ErrorContains(t, err, "persist offer a")
	assert.Empty(t, book.Offers())
}

func TestOfferBook_IsMyOffer(t *testing.T) {
	book, _ := setupOfferBook(t)

	assert.True(t, book.IsMyOffer(newOffer("mine", me, "1")))
	assert.False(t, book.IsMyOffer(newOffer("theirs", domain.NodeAddress{HostName: "peer.onion", Port: 9999}, "1")))
}

func TestOfferBook_RemoveOffer(t *testing.T) {
	book, repo := setupOfferBook(t)
	ctx := context.Background()
	mine := newOffer("mine", me, "1")
	theirs := newOffer("theirs", domain.NodeAddress{HostName: "peer.onion"}, "1")

	repo.EXPECT().Upsert(ctx, gomock.Any()).Return(nil).Times(2)
	require.NoError(t, book.Publish(ctx, mine, theirs))

	err := book.RemoveOffer(ctx, theirs)
	assert.ErrorContains(t, err, "not published by this node")

	repo.EXPECT().Delete(ctx, "mine").Return(nil)
	require.NoError(t, book.RemoveOffer(ctx, mine))
	assert.Equal(t, []*domain.Offer{theirs}, book.Offers())

	err = book.RemoveOffer(ctx, mine)
	assert.ErrorContains(t, err, "no longer in the offer book")
}

func TestOfferBook_RemoveOffer_RepoError(t *testing.T) {
	book, repo := setupOfferBook(t)
	ctx := context.Background()
	mine := newOffer("mine", me, "1")

	repo.EXPECT().Upsert(ctx, mine).Return(nil)
	require.NoError(t, book.Publish(ctx, mine))

	repo.EXPECT().Delete(ctx, "mine").Return(errors.New("locked by trade"))
	err := book.RemoveOffer(ctx, mine)
	assert.ErrorContains(t, err, "locked by trade")
	assert.Len(t, book.Offers(), 1)
}

func TestOfferBook_Reload(t *testing.T) {
	book, repo := setupOfferBook(t)
	ctx := context.Background()
	assert.False(t, book.IsBootstrapped())

	a := newOffer("a", me, "1")
	b := newOffer("b", me, "2")
	repo.EXPECT().List(ctx).Return([]*domain.Offer{a, b}, nil)
	require.NoError(t, book.Reload(ctx))
	assert.True(t, book.IsBootstrapped())
	assert.Len(t, book.Offers(), 2)

	var changes []ports.OfferChange
	book.Subscribe(func(c ports.OfferChange) { changes = append(changes, c) })

	unchangedA := newOffer("a", me, "1")
	b2 := newOffer("b", me, "3")
	c := newOffer("c", me, "4")
	repo.EXPECT().List(ctx).Return([]*domain.Offer{unchangedA, b2, c}, nil)
	require.NoError(t, book.Reload(ctx))

	require.Len(t, changes, 1)
	assert.Equal(t, []*domain.Offer{b}, changes[0].Removed)
	assert.Equal(t, []*domain.Offer{b2, c}, changes[0].Added)

	repo.EXPECT().List(ctx).Return([]*domain.Offer{c}, nil)
	require.NoError(t, book.Reload(ctx))
	assert.Equal(t, []*domain.Offer{c}, book.Offers())
}

func TestOfferBook_Reload_Error(t *testing.T) {
	book, repo := setupOfferBook(t)
	repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("timeout"))

	assert.Error(t, book.Reload(context.Background()))
	assert.False(t, book.IsBootstrapped())
}

func TestOfferBook_Unsubscribe(t *testing.T) {
	book := NewOfferBook(nil, NewUserStore(nil, me), zerolog.Nop())
	calls := 0
	sub := book.Subscribe(func(ports.OfferChange) { calls++ })

	require.NoError(t, book.Publish(context.Background(), newOffer("a", me, "1")))
	sub.Unsubscribe()
	sub.Unsubscribe()
	require.NoError(t, book.Publish(context.Background(), newOffer("b", me, "1")))

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, book.listeners.len())
}

func TestBootstrapCheck(t *testing.T) {
	book, repo := setupOfferBook(t)
	ctx := context.Background()
	hc := NewBootstrapCheck(book)
	assert.Equal(t, "offer_book", hc.Name())
	assert.EqualError(t, hc.Ping(ctx), "offer book not bootstrapped")

	repo.EXPECT().List(ctx).Return(nil, nil)
	require.NoError(t, book.Reload(ctx))
	assert.NoError(t, hc.Ping(ctx))
}
