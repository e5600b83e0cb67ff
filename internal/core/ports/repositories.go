package ports

import (
	"context"

	"p2p-offerbook/internal/core/domain"
)

// OfferRepository persists the offers received from the network.
type OfferRepository interface {
	List(ctx context.Context) ([]*domain.Offer, error)
	Upsert(ctx context.Context, offer *domain.Offer) error
	Delete(ctx context.Context, id string) error
}

// PreferenceRepository persists user preferences per owner.
type PreferenceRepository interface {
	// Load returns nil, nil when the owner has no saved preferences.
	Load(ctx context.Context, owner string) (*domain.Preferences, error)
	Save(ctx context.Context, owner string, prefs domain.Preferences) error
}

// ClosedTradeRepository reads the local trade history.
type ClosedTradeRepository interface {
	List(ctx context.Context) ([]domain.ClosedTrade, error)
}

// UserProfileRepository reads the local node's profile.
type UserProfileRepository interface {
	// Load returns nil, nil when no profile exists for the host.
	Load(ctx context.Context, host string) (*domain.UserProfile, error)
}

// FilterRuleRepository reads the ban rules. Returns nil, nil when none are published.
type FilterRuleRepository interface {
	Load(ctx context.Context) (*domain.FilterRules, error)
}
