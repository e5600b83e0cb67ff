package dto

// SelectCurrencyRequest selects an entry of the currency list. Code is a
// currency code or one of the SHOW_ALL and EDIT entries.
type SelectCurrencyRequest struct {
	Code string `json:"code" binding:"required,currency_code"`
}

// SelectPaymentMethodRequest selects a payment method id or SHOW_ALL.
type SelectPaymentMethodRequest struct {
	ID string `json:"id" binding:"required,safe_id,max=40"`
}

// TabRequest records whether the view's tab is on screen.
type TabRequest struct {
	Selected *bool `json:"selected" binding:"required"`
}

// PreferencesPatch updates the offer book related preferences. Absent fields
// are left unchanged.
type PreferencesPatch struct {
	UseStickyMarketPrice     *bool    `json:"use_sticky_market_price,omitempty"`
	ShowOwnOffersInOfferBook *bool    `json:"show_own_offers_in_offer_book,omitempty"`
	IgnoreTradersList        []string `json:"ignore_traders_list,omitempty" binding:"omitempty,max=500,dive,host_name"`
	TradeCurrencies          []string `json:"trade_currencies,omitempty" binding:"omitempty,max=200,dive,currency_code"`
}

// ViewStateResponse is the derived state of one offer book view.
type ViewStateResponse struct {
	Direction                    string `json:"direction"`
	CurrencyCode                 string `json:"currency_code"`
	RepresentativeCurrency       string `json:"representative_currency"`
	ShowAllTradeCurrencies       bool   `json:"show_all_trade_currencies"`
	PaymentMethod                string `json:"payment_method"`
	ShowAllPaymentMethods        bool   `json:"show_all_payment_methods"`
	PriceSortOrder               string `json:"price_sort_order"`
	TabSelected                  bool   `json:"tab_selected"`
	Active                       bool   `json:"active"`
	VisibleOffers                int    `json:"visible_offers"`
	IsBootstrapped               bool   `json:"is_bootstrapped"`
	HasPaymentAccount            bool   `json:"has_payment_account"`
	HasPaymentAccountForCurrency bool   `json:"has_payment_account_for_currency"`
	HasAcceptedArbitrators       bool   `json:"has_accepted_arbitrators"`
	NavigateTo                   string `json:"navigate_to,omitempty"`
}

// CurrencyEntry is one entry of the selectable currency list.
type CurrencyEntry struct {
	Code   string `json:"code"`
	Name   string `json:"name,omitempty"`
	Crypto bool   `json:"crypto"`
	Kind   string `json:"kind"`
}

// PaymentMethodEntry is one entry of the selectable payment method list.
type PaymentMethodEntry struct {
	ID                  string  `json:"id"`
	Kind                string  `json:"kind"`
	MaxTradePeriodHours float64 `json:"max_trade_period_hours,omitempty"`
	MaxTradeLimit       string  `json:"max_trade_limit,omitempty"`
}

// OfferRowResponse is one visible offer with its display values.
type OfferRowResponse struct {
	ID                   string        `json:"id"`
	Direction            string        `json:"direction"`
	CurrencyCode         string        `json:"currency_code"`
	Amount               string        `json:"amount"`
	MinAmount            string        `json:"min_amount"`
	AmountIsRange        bool          `json:"amount_is_range"`
	Price                *string       `json:"price"`
	MarketBasedPrice     bool          `json:"market_based_price"`
	MarketPriceMargin    string        `json:"market_price_margin,omitempty"`
	Volume               *string       `json:"volume"`
	MinVolume            *string       `json:"min_volume"`
	VolumeIsRange        bool          `json:"volume_is_range"`
	VolumeCurrency       string        `json:"volume_currency,omitempty"`
	PaymentMethod        string        `json:"payment_method"`
	CountryCode          *string       `json:"country_code,omitempty"`
	BankID               *string       `json:"bank_id,omitempty"`
	AcceptedCountryCodes []string      `json:"accepted_country_codes,omitempty"`
	AcceptedBankIDs      []string      `json:"accepted_bank_ids,omitempty"`
	OffererAddress       string        `json:"offerer_address"`
	NumPastTrades        int           `json:"num_past_trades"`
	Flags                OfferFlagsDTO `json:"flags"`
	CreatedAt            string        `json:"created_at"`
}

// OfferFlagsDTO carries the advisory trust and ban flags.
type OfferFlagsDTO struct {
	IsMyOffer              bool `json:"is_my_offer"`
	HasMatchingArbitrator  bool `json:"has_matching_arbitrator"`
	IsIgnored              bool `json:"is_ignored"`
	IsOfferBanned          bool `json:"is_offer_banned"`
	IsNodeBanned           bool `json:"is_node_banned"`
	HasSameProtocolVersion bool `json:"has_same_protocol_version"`
	HasValidPaymentAccount bool `json:"has_valid_payment_account"`
}
