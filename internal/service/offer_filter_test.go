package service

import (
	"testing"

	"p2p-offerbook/internal/core/domain"

	"github.com/stretchr/testify/assert"
)

func filterContext(sel domain.SelectionState, tracked ...string) FilterContext {
	return FilterContext{
		Direction:            sel.Direction,
		Selection:            sel,
		TrackedCurrencyCodes: trackedCodeSet(trackedPrefs(tracked...).TradeCurrencies),
		ShowOwnOffers:        true,
	}
}

func TestIsOfferVisible(t *testing.T) {
	eur := domain.NewFiatCurrency("EUR", "Euro")
	sepa, _ := domain.LookupPaymentMethod(domain.Sepa)

	showAll := domain.SelectionState{Direction: domain.DirectionBuy, TradeCurrency: eur, ShowAllTradeCurrencies: true, ShowAllPaymentMethods: true}
	onlyEUR := domain.SelectionState{Direction: domain.DirectionBuy, TradeCurrency: eur, ShowAllPaymentMethods: true}
	onlySepa := domain.SelectionState{Direction: domain.DirectionBuy, TradeCurrency: eur, ShowAllTradeCurrencies: true, PaymentMethod: sepa}

	tests := []struct {
		name  string
		offer *domain.Offer
		sel   domain.SelectionState
		want  bool
	}{
		{"counter offer in tracked currency", testOffer("1", domain.DirectionSell, "USD", "1", domain.Sepa), showAll, true},
		{"same direction never listed", testOffer("2", domain.DirectionBuy, "USD", "1", domain.Sepa), showAll, false},
		{"untracked currency hidden under all", testOffer("3", domain.DirectionSell, "GBP", "1", domain.Sepa), showAll, false},
		{"specific currency matches", testOffer("4", domain.DirectionSell, "EUR", "1", domain.Sepa), onlyEUR, true},
		{"specific currency mismatch", testOffer("5", domain.DirectionSell, "USD", "1", domain.Sepa), onlyEUR, false},
		{"specific currency ignores tracking", testOffer("6", domain.DirectionSell, "EUR", "1", domain.Sepa), onlyEUR, true},
		{"payment method matches", testOffer("7", domain.DirectionSell, "USD", "1", domain.Sepa), onlySepa, true},
		{"payment method mismatch", testOffer("8", domain.DirectionSell, "USD", "1", domain.Swish), onlySepa, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsOfferVisible(tt.offer, filterContext(tt.sel, "USD")))
		})
	}
}

func TestIsOfferVisible_OwnOffers(t *testing.T) {
	sel := domain.SelectionState{Direction: domain.DirectionBuy, ShowAllTradeCurrencies: true, ShowAllPaymentMethods: true}
	mine := testOffer("mine", domain.DirectionSell, "EUR", "1", domain.Sepa)

	fc := filterContext(sel, "EUR")
	fc.IsMyOffer = func(o *domain.Offer) bool { return o.ID == "mine" }

	assert.True(t, IsOfferVisible(mine, fc))

	fc.ShowOwnOffers = false
	assert.False(t, IsOfferVisible(mine, fc))
	assert.True(t, IsOfferVisible(testOffer("other", domain.DirectionSell, "EUR", "1", domain.Sepa), fc))
}
