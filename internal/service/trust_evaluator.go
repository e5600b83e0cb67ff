package service

import (
	"p2p-offerbook/internal/core/domain"
	"p2p-offerbook/internal/core/ports"
)

// TrustEvaluator answers the advisory questions the presentation asks before
// letting the user take an offer. None of them affect visibility.
type TrustEvaluator struct {
	user            ports.UserAccount
	prefs           ports.PreferenceStore
	filters         ports.FilterProvider
	trades          ports.ClosedTradeSource
	hostSuffix      string
	protocolVersion int
}

// NewTrustEvaluator creates an evaluator. hostSuffix is stripped from host
// names before ban and ignore list comparisons.
func NewTrustEvaluator(
	user ports.UserAccount,
	prefs ports.PreferenceStore,
	filters ports.FilterProvider,
	trades ports.ClosedTradeSource,
	hostSuffix string,
	protocolVersion int,
) *TrustEvaluator {
	return &TrustEvaluator{
		user:            user,
		prefs:           prefs,
		filters:         filters,
		trades:          trades,
		hostSuffix:      hostSuffix,
		protocolVersion: protocolVersion,
	}
}

// HasMatchingArbitrator is true if the offer names at least one arbitrator
// the user accepted.
func (e *TrustEvaluator) HasMatchingArbitrator(offer *domain.Offer) bool {
	accepted := make(map[domain.NodeAddress]struct{})
	for _, a := range e.user.AcceptedArbitratorAddresses() {
		accepted[a] = struct{}{}
	}
	for _, a := range offer.ArbitratorNodeAddresses {
		if _, ok := accepted[a]; ok {
			return true
		}
	}
	return false
}

// HasAcceptedArbitrators is false until the user accepted any arbitrator.
func (e *TrustEvaluator) HasAcceptedArbitrators() bool {
	return len(e.user.AcceptedArbitratorAddresses()) > 0
}

// IsIgnored is true if the publisher is on the user's ignore list.
func (e *TrustEvaluator) IsIgnored(offer *domain.Offer) bool {
	host := e.publisherHost(offer)
	for _, entry := range e.prefs.Preferences().IgnoreTradersList {
		if domain.NormalizeHostName(entry, e.hostSuffix) == host {
			return true
		}
	}
	return false
}

// IsOfferBanned is false when no filter rules are in force.
func (e *TrustEvaluator) IsOfferBanned(offer *domain.Offer) bool {
	return e.filters.Filter().IsOfferBanned(offer.ID)
}

// IsNodeBanned is false when no filter rules are in force.
func (e *TrustEvaluator) IsNodeBanned(offer *domain.Offer) bool {
	return e.filters.Filter().IsNodeBanned(e.publisherHost(offer), e.hostSuffix)
}

// HasSameProtocolVersion is true if the offer was made by a compatible client.
func (e *TrustEvaluator) HasSameProtocolVersion(offer *domain.Offer) bool {
	return offer.ProtocolVersion == e.protocolVersion
}

// NumPastTrades counts distinct closed trades with the offer's publisher.
func (e *TrustEvaluator) NumPastTrades(offer *domain.Offer) int {
	host := e.publisherHost(offer)
	seen := make(map[string]struct{})
	for _, t := range e.trades.ClosedTrades() {
		if t.TradingPeerNodeAddress == nil {
			continue
		}
		if t.TradingPeerNodeAddress.HostNameWithoutPostFix(e.hostSuffix) == host {
			seen[t.ID] = struct{}{}
		}
	}
	return len(seen)
}

// HasPaymentAccount is true once any payment account is set up.
func (e *TrustEvaluator) HasPaymentAccount() bool {
	return len(e.user.PaymentAccounts()) > 0
}

// IsAnyPaymentAccountValidForOffer is true if one of the user's accounts uses
// the offer's payment method, supports its currency and, when the offer
// restricts bank countries, sits in an accepted country.
func (e *TrustEvaluator) IsAnyPaymentAccountValidForOffer(offer *domain.Offer) bool {
	for _, acc := range e.user.PaymentAccounts() {
		if acc.PaymentMethodID != offer.PaymentMethodID || !acc.SupportsCurrency(offer.CurrencyCode) {
			continue
		}
		if len(offer.AcceptedCountryCodes) == 0 {
			return true
		}
		if acc.CountryCode != nil && contains(offer.AcceptedCountryCodes, *acc.CountryCode) {
			return true
		}
	}
	return false
}

// HasPaymentAccountForCurrency: with all currencies shown any account will do.
func (e *TrustEvaluator) HasPaymentAccountForCurrency(state domain.SelectionState) bool {
	accounts := e.user.PaymentAccounts()
	if state.ShowAllTradeCurrencies {
		return len(accounts) > 0
	}
	for _, acc := range accounts {
		if acc.SupportsCurrency(state.TradeCurrency.Code) {
			return true
		}
	}
	return false
}

// Flags evaluates every advisory predicate for one row.
func (e *TrustEvaluator) Flags(offer *domain.Offer, isMyOffer bool) ports.OfferFlags {
	return ports.OfferFlags{
		IsMyOffer:              isMyOffer,
		HasMatchingArbitrator:  e.HasMatchingArbitrator(offer),
		IsIgnored:              e.IsIgnored(offer),
		IsOfferBanned:          e.IsOfferBanned(offer),
		IsNodeBanned:           e.IsNodeBanned(offer),
		HasSameProtocolVersion: e.HasSameProtocolVersion(offer),
		HasValidPaymentAccount: e.IsAnyPaymentAccountValidForOffer(offer),
	}
}

func (e *TrustEvaluator) publisherHost(offer *domain.Offer) string {
	return offer.OffererNodeAddress.HostNameWithoutPostFix(e.hostSuffix)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
