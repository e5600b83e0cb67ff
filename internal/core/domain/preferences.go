package domain

// Preferences is the persisted user settings the offer book reads.
type Preferences struct {
	BuyScreenCurrencyCode    string          `json:"buy_screen_currency_code"`
	SellScreenCurrencyCode   string          `json:"sell_screen_currency_code"`
	UseStickyMarketPrice     bool            `json:"use_sticky_market_price"`
	ShowOwnOffersInOfferBook bool            `json:"show_own_offers_in_offer_book"`
	IgnoreTradersList        []string        `json:"ignore_traders_list"`
	TradeCurrencies          []TradeCurrency `json:"trade_currencies"`
}

// ScreenCurrencyCode returns the persisted selection slot of the given view.
func (p Preferences) ScreenCurrencyCode(d Direction) string {
	if d == DirectionBuy {
		return p.BuyScreenCurrencyCode
	}
	return p.SellScreenCurrencyCode
}

// Clone returns a deep copy.
func (p Preferences) Clone() Preferences {
	out := p
	out.IgnoreTradersList = append([]string(nil), p.IgnoreTradersList...)
	out.TradeCurrencies = append([]TradeCurrency(nil), p.TradeCurrencies...)
	return out
}

// PreferenceChange names which preference changed.
type PreferenceChange int

const (
	PrefTradeCurrencies PreferenceChange = iota
	PrefShowOwnOffers
	PrefStickyMarketPrice
	PrefIgnoreList
	PrefScreenCurrency
)
