package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Direction is the side of an offer from the maker's point of view.
type Direction string

const (
	DirectionBuy  Direction = "BUY"
	DirectionSell Direction = "SELL"
)

// ParseDirection accepts BUY or SELL in any case.
func ParseDirection(s string) (Direction, error) {
	switch Direction(strings.ToUpper(strings.TrimSpace(s))) {
	case DirectionBuy:
		return DirectionBuy, nil
	case DirectionSell:
		return DirectionSell, nil
	default:
		return "", fmt.Errorf("unknown direction %q", s)
	}
}

// Opposite returns the counter direction (what a taker of the offer does).
func (d Direction) Opposite() Direction {
	if d == DirectionBuy {
		return DirectionSell
	}
	return DirectionBuy
}

// Offer is a published standing order. Offers are never mutated once published;
// the offer source replaces or removes them instead.
type Offer struct {
	ID                      string
	Direction               Direction
	CurrencyCode            string
	Amount                  decimal.Decimal  // max trade amount, in BTC
	MinAmount               decimal.Decimal  // min trade amount, in BTC
	Price                   *decimal.Decimal // nil when a market based price is not available
	UseMarketBasedPrice     bool
	MarketPriceMargin       decimal.Decimal // fraction, e.g. 0.01 for +1%
	PaymentMethodID         string
	CountryCode             *string
	BankID                  *string
	AcceptedCountryCodes    []string
	AcceptedBankIDs         []string
	ArbitratorNodeAddresses []NodeAddress
	OffererNodeAddress      NodeAddress
	ProtocolVersion         int
	CreatedAt               time.Time
}

// MirroredDirection is the direction shown to the taker.
func (o *Offer) MirroredDirection() Direction {
	return o.Direction.Opposite()
}

// HasAmountRange reports whether the offer accepts partial amounts.
func (o *Offer) HasAmountRange() bool {
	return !o.Amount.Equal(o.MinAmount)
}

// Volume is Amount x Price in the offer currency, or nil without a price.
func (o *Offer) Volume() *decimal.Decimal {
	return o.volumeFor(o.Amount)
}

// MinVolume is MinAmount x Price in the offer currency, or nil without a price.
func (o *Offer) MinVolume() *decimal.Decimal {
	return o.volumeFor(o.MinAmount)
}

func (o *Offer) volumeFor(amount decimal.Decimal) *decimal.Decimal {
	if o.Price == nil {
		return nil
	}
	v := amount.Mul(*o.Price)
	return &v
}
