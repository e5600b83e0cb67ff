package ports

import (
	"context"
	"time"

	"p2p-offerbook/internal/core/domain"

	"github.com/shopspring/decimal"
)

// TokenService handles JWT token operations for the node operator.
type TokenService interface {
	Generate(subject string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	Subject string
}

// --- Offer book ---

// OfferBook is the presentation-facing API of the BUY and SELL views.
type OfferBook interface {
	State(direction domain.Direction) (*ViewState, error)
	Rows(direction domain.Direction) ([]OfferRow, error)
	TradeCurrencies(direction domain.Direction) ([]domain.CurrencySelection, error)
	PaymentMethods() []domain.PaymentMethodSelection
	SelectCurrency(direction domain.Direction, code string) (*SelectionResult, error)
	SelectPaymentMethod(direction domain.Direction, id string) (*ViewState, error)
	SetTabSelected(direction domain.Direction, selected bool) (*ViewState, error)
	RemoveOffer(ctx context.Context, offerID string) error
	Observe(direction domain.Direction, fn func(ViewEvent)) (Subscription, error)
}

// ViewState is the derived UI state of one view.
type ViewState struct {
	Selection                    domain.SelectionState
	PriceSortOrder               domain.SortOrder
	TabSelected                  bool
	Active                       bool
	VisibleOffers                int
	IsBootstrapped               bool
	HasPaymentAccount            bool
	HasPaymentAccountForCurrency bool
	HasAcceptedArbitrators       bool
}

// SelectionResult is returned by a currency selection. NavigateTo is set when
// the edit entry was chosen and the selection itself did not change.
type SelectionResult struct {
	State      ViewState
	NavigateTo string
}

// ViewEventKind is the type of a pushed view event.
type ViewEventKind string

const (
	ViewChanged   ViewEventKind = "view_changed"
	ViewNavigate  ViewEventKind = "navigate"
	ViewSelection ViewEventKind = "selection_changed"
)

// ViewEvent is pushed to observers of a view.
type ViewEvent struct {
	Kind      ViewEventKind    `json:"type"`
	Direction domain.Direction `json:"direction"`
	Target    string           `json:"target,omitempty"`
	Visible   int              `json:"visible"`
}

// OfferRow is one visible offer plus everything needed to render it.
type OfferRow struct {
	Offer          *domain.Offer
	Amount         AmountDisplay
	Price          PriceDisplay
	Volume         VolumeDisplay
	PaymentMethod  PaymentMethodDisplay
	DirectionLabel DirectionDisplay
	Flags          OfferFlags
	NumPastTrades  int
}

// AmountDisplay: a single amount when Min equals Max.
type AmountDisplay struct {
	Min     decimal.Decimal
	Max     decimal.Decimal
	IsRange bool
}

// PriceDisplay: Price is nil when not available ("N/A").
type PriceDisplay struct {
	Price       *decimal.Decimal
	MarketBased bool
	Margin      decimal.Decimal
}

// VolumeDisplay: Min/Max nil when not available. CurrencyPostfix is set while
// all currencies are shown, since rows then mix currencies.
type VolumeDisplay struct {
	Min             *decimal.Decimal
	Max             *decimal.Decimal
	IsRange         bool
	CurrencyPostfix string
}

// PaymentMethodDisplay holds label and tooltip inputs.
type PaymentMethodDisplay struct {
	MethodID             string
	CurrencyCode         string
	CountryCode          *string
	BankID               *string
	AcceptedCountryCodes []string
	AcceptedBankIDs      []string
}

// DirectionDisplay is the taker side label input.
type DirectionDisplay struct {
	Direction    domain.Direction
	CurrencyCode string
}

// OfferFlags are the advisory trust and ban flags.
type OfferFlags struct {
	IsMyOffer              bool
	HasMatchingArbitrator  bool
	IsIgnored              bool
	IsOfferBanned          bool
	IsNodeBanned           bool
	HasSameProtocolVersion bool
	HasValidPaymentAccount bool
}
