package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"p2p-offerbook/internal/core/domain"
	"p2p-offerbook/internal/core/ports"

	"github.com/rs/zerolog"
)

// PreferenceStore implements ports.PreferenceStore. Setters update memory and
// notify listeners immediately; Run writes dirty state to the repository in
// the background so no setter waits on the database.
type PreferenceStore struct {
	repo  ports.PreferenceRepository
	owner string
	log   zerolog.Logger

	mu    sync.RWMutex
	prefs domain.Preferences
	dirty bool

	listeners listeners[domain.PreferenceChange]
}

// NewPreferenceStore creates a store holding defaults until Load is called.
func NewPreferenceStore(repo ports.PreferenceRepository, owner string, defaults domain.Preferences, log zerolog.Logger) *PreferenceStore {
	return &PreferenceStore{
		repo:  repo,
		owner: owner,
		log:   log,
		prefs: defaults.Clone(),
	}
}

// Load replaces the defaults with the persisted document, if any.
func (s *PreferenceStore) Load(ctx context.Context) error {
	if s.repo == nil {
		return nil
	}
	stored, err := s.repo.Load(ctx, s.owner)
	if err != nil {
		return fmt.Errorf("load preferences: %w", err)
	}
	if stored == nil {
		s.log.Info().Str("owner", s.owner).Msg("no saved preferences, using defaults")
		return nil
	}

	s.mu.Lock()
	if len(stored.TradeCurrencies) == 0 {
		stored.TradeCurrencies = s.prefs.TradeCurrencies
	}
	s.prefs = stored.Clone()
	s.dirty = false
	s.mu.Unlock()
	return nil
}

// Preferences returns a copy of the current settings.
func (s *PreferenceStore) Preferences() domain.Preferences {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prefs.Clone()
}

func (s *PreferenceStore) SetScreenCurrencyCode(direction domain.Direction, code string) {
	s.update(domain.PrefScreenCurrency, func(p *domain.Preferences) bool {
		slot := &p.SellScreenCurrencyCode
		if direction == domain.DirectionBuy {
			slot = &p.BuyScreenCurrencyCode
		}
		if *slot == code {
			return false
		}
		*slot = code
		return true
	})
}

func (s *PreferenceStore) SetUseStickyMarketPrice(sticky bool) {
	s.update(domain.PrefStickyMarketPrice, func(p *domain.Preferences) bool {
		if p.UseStickyMarketPrice == sticky {
			return false
		}
		p.UseStickyMarketPrice = sticky
		return true
	})
}

func (s *PreferenceStore) SetShowOwnOffersInOfferBook(show bool) {
	s.update(domain.PrefShowOwnOffers, func(p *domain.Preferences) bool {
		if p.ShowOwnOffersInOfferBook == show {
			return false
		}
		p.ShowOwnOffersInOfferBook = show
		return true
	})
}

func (s *PreferenceStore) SetTradeCurrencies(currencies []domain.TradeCurrency) {
	s.update(domain.PrefTradeCurrencies, func(p *domain.Preferences) bool {
		p.TradeCurrencies = append([]domain.TradeCurrency(nil), currencies...)
		return true
	})
}

func (s *PreferenceStore) SetIgnoreTradersList(hosts []string) {
	s.update(domain.PrefIgnoreList, func(p *domain.Preferences) bool {
		p.IgnoreTradersList = append([]string(nil), hosts...)
		return true
	})
}

// Subscribe registers fn for preference changes.
func (s *PreferenceStore) Subscribe(fn func(domain.PreferenceChange)) ports.Subscription {
	return s.listeners.subscribe(fn)
}

// Flush writes the settings if they changed since the last write.
func (s *PreferenceStore) Flush(ctx context.Context) error {
	s.mu.Lock()
	if !s.dirty || s.repo == nil {
		s.mu.Unlock()
		return nil
	}
	snapshot := s.prefs.Clone()
	s.dirty = false
	s.mu.Unlock()

	if err := s.repo.Save(ctx, s.owner, snapshot); err != nil {
		s.mu.Lock()
		s.dirty = true
		s.mu.Unlock()
		return fmt.Errorf("save preferences: %w", err)
	}
	return nil
}

// Run flushes every interval and once more on shutdown.
func (s *PreferenceStore) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := s.Flush(shutdownCtx); err != nil {
				s.log.Error().Err(err).Msg("final preference flush failed")
			}
			return nil
		case <-ticker.C:
			if err := s.Flush(ctx); err != nil {
				s.log.Warn().Err(err).Msg("preference flush failed")
			}
		}
	}
}

func (s *PreferenceStore) update(change domain.PreferenceChange, mutate func(*domain.Preferences) bool) {
	s.mu.Lock()
	changed := mutate(&s.prefs)
	if changed {
		s.dirty = true
	}
	s.mu.Unlock()

	if changed {
		s.listeners.notify(change)
	}
}
