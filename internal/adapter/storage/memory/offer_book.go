package memory

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"p2p-offerbook/internal/core/domain"
	"p2p-offerbook/internal/core/ports"

	"github.com/rs/zerolog"
)

// OfferBook implements ports.OfferSource over the offers the node received.
// Offers are replaced, never mutated: a republished offer is reported as a
// removal of the old pointer plus an addition of the new one.
type OfferBook struct {
	repo ports.OfferRepository
	user ports.UserAccount
	log  zerolog.Logger

	mu     sync.RWMutex
	offers map[string]*domain.Offer
	order  []string

	bootstrapped atomic.Bool
	listeners    listeners[ports.OfferChange]
}

// NewOfferBook creates an empty offer book. repo may be nil, in which case
// nothing is persisted.
func NewOfferBook(repo ports.OfferRepository, user ports.UserAccount, log zerolog.Logger) *OfferBook {
	return &OfferBook{
		repo:   repo,
		user:   user,
		log:    log,
		offers: make(map[string]*domain.Offer),
	}
}

// Offers returns the offers in arrival order.
func (b *OfferBook) Offers() []*domain.Offer {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]*domain.Offer, 0, len(b.order))
	for _, id := range b.order {
		out = append(out, b.offers[id])
	}
	return out
}

// Subscribe registers fn for offer changes.
func (b *OfferBook) Subscribe(fn func(ports.OfferChange)) ports.Subscription {
	return b.listeners.subscribe(fn)
}

// IsMyOffer is true for offers published by the local node.
func (b *OfferBook) IsMyOffer(offer *domain.Offer) bool {
	return offer.OffererNodeAddress == b.user.NodeAddress()
}

// IsBootstrapped is true once the first full offer set was loaded.
func (b *OfferBook) IsBootstrapped() bool {
	return b.bootstrapped.Load()
}

// Publish adds or replaces offers and persists them.
func (b *OfferBook) Publish(ctx context.Context, offers ...*domain.Offer) error {
	if b.repo != nil {
		for _, o := range offers {
			if err := b.repo.Upsert(ctx, o); err != nil {
				return fmt.Errorf("persist offer %s: %w", o.ID, err)
			}
		}
	}
	b.apply(offers, nil)
	return nil
}

// RemoveOffer withdraws one of the local user's offers.
func (b *OfferBook) RemoveOffer(ctx context.Context, offer *domain.Offer) error {
	if !b.IsMyOffer(offer) {
		return fmt.Errorf("offer %s was not published by this node", offer.ID)
	}

	b.mu.RLock()
	_, known := b.offers[offer.ID]
	b.mu.RUnlock()
	if !known {
		return fmt.Errorf("offer %s is no longer in the offer book", offer.ID)
	}

	if b.repo != nil {
		if err := b.repo.Delete(ctx, offer.ID); err != nil {
			return fmt.Errorf("remove offer %s: %w", offer.ID, err)
		}
	}
	b.apply(nil, []string{offer.ID})
	b.log.Info().Str("offer_id", offer.ID).Msg("own offer removed")
	return nil
}

// Reload reconciles the book with the repository and marks it bootstrapped.
func (b *OfferBook) Reload(ctx context.Context) error {
	if b.repo == nil {
		b.bootstrapped.Store(true)
		return nil
	}
	stored, err := b.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("reload offers: %w", err)
	}

	keep := make(map[string]struct{}, len(stored))
	for _, o := range stored {
		keep[o.ID] = struct{}{}
	}

	b.mu.RLock()
	var gone []string
	for _, id := range b.order {
		if _, ok := keep[id]; !ok {
			gone = append(gone, id)
		}
	}
	var changed []*domain.Offer
	for _, o := range stored {
		if cur, ok := b.offers[o.ID]; !ok || !sameOffer(cur, o) {
			changed = append(changed, o)
		}
	}
	b.mu.RUnlock()

	b.apply(changed, gone)
	if !b.bootstrapped.Swap(true) {
		b.log.Info().Int("offers", len(stored)).Msg("offer book bootstrapped")
	}
	return nil
}

func (b *OfferBook) apply(upserts []*domain.Offer, removals []string) {
	var change ports.OfferChange

	b.mu.Lock()
	for _, id := range removals {
		if old, ok := b.offers[id]; ok {
			delete(b.offers, id)
			b.order = without(b.order, id)
			change.Removed = append(change.Removed, old)
		}
	}
	for _, o := range upserts {
		if old, ok := b.offers[o.ID]; ok {
			change.Removed = append(change.Removed, old)
		} else {
			b.order = append(b.order, o.ID)
		}
		b.offers[o.ID] = o
		change.Added = append(change.Added, o)
	}
	b.mu.Unlock()

	if len(change.Added) > 0 || len(change.Removed) > 0 {
		b.listeners.notify(change)
	}
}

// sameOffer compares the fields a republish may change.
func sameOffer(a, b *domain.Offer) bool {
	samePrice := (a.Price == nil && b.Price == nil) ||
		(a.Price != nil && b.Price != nil && a.Price.Equal(*b.Price))
	return samePrice &&
		a.Amount.Equal(b.Amount) &&
		a.MinAmount.Equal(b.MinAmount) &&
		a.UseMarketBasedPrice == b.UseMarketBasedPrice &&
		a.MarketPriceMargin.Equal(b.MarketPriceMargin)
}

func without(ids []string, id string) []string {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
