package service

import (
	"p2p-offerbook/internal/core/domain"
)

// FilterContext is the input snapshot one visibility evaluation reads.
// It is rebuilt whenever an input changes and never mutated afterwards.
type FilterContext struct {
	Direction            domain.Direction
	Selection            domain.SelectionState
	TrackedCurrencyCodes map[string]struct{}
	ShowOwnOffers        bool
	IsMyOffer            func(*domain.Offer) bool
}

// IsOfferVisible decides whether offer is listed in the view described by fc.
// A view lists counter-offers: a BUY view shows SELL offers and vice versa.
func IsOfferVisible(offer *domain.Offer, fc FilterContext) bool {
	if offer.Direction == fc.Direction {
		return false
	}

	if fc.Selection.ShowAllTradeCurrencies {
		if _, ok := fc.TrackedCurrencyCodes[offer.CurrencyCode]; !ok {
			return false
		}
	} else if offer.CurrencyCode != fc.Selection.TradeCurrency.Code {
		return false
	}

	if !fc.Selection.ShowAllPaymentMethods && offer.PaymentMethodID != fc.Selection.PaymentMethod.ID {
		return false
	}

	if fc.ShowOwnOffers || fc.IsMyOffer == nil {
		return true
	}
	return !fc.IsMyOffer(offer)
}

func trackedCodeSet(currencies []domain.TradeCurrency) map[string]struct{} {
	set := make(map[string]struct{}, len(currencies))
	for _, c := range currencies {
		set[c.Code] = struct{}{}
	}
	return set
}
