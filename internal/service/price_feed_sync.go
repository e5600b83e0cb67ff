package service

import (
	"p2p-offerbook/internal/core/domain"
	"p2p-offerbook/internal/core/ports"

	"github.com/rs/zerolog"
)

// PriceFeedSynchronizer keeps the shared price feed on the currency the
// visible view is showing.
type PriceFeedSynchronizer struct {
	feed    ports.PriceFeed
	prefs   ports.PreferenceStore
	catalog ports.CurrencyCatalog
	log     zerolog.Logger
}

// NewPriceFeedSynchronizer creates a synchronizer for one view.
func NewPriceFeedSynchronizer(
	feed ports.PriceFeed,
	prefs ports.PreferenceStore,
	catalog ports.CurrencyCatalog,
	log zerolog.Logger,
) *PriceFeedSynchronizer {
	return &PriceFeedSynchronizer{
		feed:    feed,
		prefs:   prefs,
		catalog: catalog,
		log:     log,
	}
}

// Sync pushes the currency of interest to the feed and returns the pushed
// code. Nothing is pushed while the view's tab is hidden or the user pinned
// the market price (sticky).
func (s *PriceFeedSynchronizer) Sync(tabSelected bool, state domain.SelectionState) (string, bool) {
	if !tabSelected || s.prefs.Preferences().UseStickyMarketPrice {
		return "", false
	}

	code := state.TradeCurrency.Code
	if state.ShowAllTradeCurrencies {
		code = s.catalog.DefaultCurrency().Code
	}

	s.feed.SetCurrencyCode(code)
	s.log.Debug().Str("currency", code).Str("direction", string(state.Direction)).Msg("price feed currency set")
	return code, true
}
