package integration

import (
	"context"
	"sort"
	"sync"

	"p2p-offerbook/internal/core/domain"
)

// --- In-memory OfferRepository ---

type inMemoryOfferRepo struct {
	mu     sync.Mutex
	offers map[string]*domain.Offer
}

func newInMemoryOfferRepo() *inMemoryOfferRepo {
	return &inMemoryOfferRepo{offers: make(map[string]*domain.Offer)}
}

func (r *inMemoryOfferRepo) List(_ context.Context) ([]*domain.Offer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.Offer, 0, len(r.offers))
	for _, o := range r.offers {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *inMemoryOfferRepo) Upsert(_ context.Context, o *domain.Offer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.offers[o.ID] = o
	return nil
}

func (r *inMemoryOfferRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.offers, id)
	return nil
}

func (r *inMemoryOfferRepo) has(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.offers[id]
	return ok
}

// --- In-memory PreferenceRepository ---

type inMemoryPreferenceRepo struct {
	mu    sync.Mutex
	prefs map[string]domain.Preferences
}

func newInMemoryPreferenceRepo() *inMemoryPreferenceRepo {
	return &inMemoryPreferenceRepo{prefs: make(map[string]domain.Preferences)}
}

func (r *inMemoryPreferenceRepo) Load(_ context.Context, owner string) (*domain.Preferences, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.prefs[owner]
	if !ok {
		return nil, nil
	}
	out := p.Clone()
	return &out, nil
}

func (r *inMemoryPreferenceRepo) Save(_ context.Context, owner string, prefs domain.Preferences) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.prefs[owner] = prefs.Clone()
	return nil
}

func (r *inMemoryPreferenceRepo) get(owner string) (domain.Preferences, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.prefs[owner]
	return p, ok
}

// --- In-memory ClosedTradeRepository ---

type inMemoryClosedTradeRepo struct {
	mu     sync.Mutex
	trades []domain.ClosedTrade
}

func (r *inMemoryClosedTradeRepo) List(_ context.Context) ([]domain.ClosedTrade, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.ClosedTrade(nil), r.trades...), nil
}

func (r *inMemoryClosedTradeRepo) add(t domain.ClosedTrade) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.trades = append(r.trades, t)
}

// --- In-memory UserProfileRepository ---

type inMemoryUserProfileRepo struct {
	mu       sync.Mutex
	profiles map[string]domain.UserProfile
}

func newInMemoryUserProfileRepo() *inMemoryUserProfileRepo {
	return &inMemoryUserProfileRepo{profiles: make(map[string]domain.UserProfile)}
}

func (r *inMemoryUserProfileRepo) Load(_ context.Context, host string) (*domain.UserProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.profiles[host]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *inMemoryUserProfileRepo) put(host string, p domain.UserProfile) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[host] = p
}
