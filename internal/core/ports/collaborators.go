package ports

import (
	"context"

	"p2p-offerbook/internal/core/domain"
)

// Subscription is a registered listener. Unsubscribe is idempotent.
type Subscription interface {
	Unsubscribe()
}

// SubscriptionFunc adapts a plain function to Subscription.
type SubscriptionFunc func()

func (f SubscriptionFunc) Unsubscribe() { f() }

// OfferChange is one mutation of the offer sequence. An offer replaced by the
// network shows up in both Removed and Added.
type OfferChange struct {
	Added   []*domain.Offer
	Removed []*domain.Offer
}

// OfferSource is the live offer sequence distributed by the p2p network.
// Listeners are invoked outside of the source's own locks, in order.
type OfferSource interface {
	Offers() []*domain.Offer
	Subscribe(fn func(OfferChange)) Subscription
	IsMyOffer(offer *domain.Offer) bool
	// RemoveOffer withdraws one of the local user's offers. The returned error
	// carries a human readable message.
	RemoveOffer(ctx context.Context, offer *domain.Offer) error
	IsBootstrapped() bool
}

// CurrencyCatalog knows every tradable currency.
type CurrencyCatalog interface {
	Lookup(code string) (domain.TradeCurrency, bool)
	IsCryptoCurrency(code string) bool
	DefaultCurrency() domain.TradeCurrency
}

// PreferenceStore holds the user's mutable settings. Setters never block on
// persistence; listeners are invoked outside of the store's locks.
type PreferenceStore interface {
	Preferences() domain.Preferences
	SetScreenCurrencyCode(direction domain.Direction, code string)
	SetUseStickyMarketPrice(sticky bool)
	SetShowOwnOffersInOfferBook(show bool)
	SetTradeCurrencies(currencies []domain.TradeCurrency)
	SetIgnoreTradersList(hosts []string)
	Subscribe(fn func(domain.PreferenceChange)) Subscription
}

// PriceFeed is the market price subscription shared by all screens.
type PriceFeed interface {
	SetCurrencyCode(code string)
}

// Navigator moves the presentation to another screen.
type Navigator interface {
	NavigateToCurrencySettings(direction domain.Direction)
}

// UserAccount exposes the local user's trading setup.
type UserAccount interface {
	NodeAddress() domain.NodeAddress
	AcceptedArbitratorAddresses() []domain.NodeAddress
	PaymentAccounts() []domain.PaymentAccount
}

// FilterProvider returns the ban rules currently in force, or nil.
type FilterProvider interface {
	Filter() *domain.FilterRules
}

// ClosedTradeSource returns the local trade history.
type ClosedTradeSource interface {
	ClosedTrades() []domain.ClosedTrade
}
