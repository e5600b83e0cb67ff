// Package catalog is the static list of currencies the node can trade.
package catalog

import (
	"sort"
	"strings"

	"p2p-offerbook/internal/core/domain"
)

var fiat = []domain.TradeCurrency{
	domain.NewFiatCurrency("AUD", "Australian Dollar"),
	domain.NewFiatCurrency("BRL", "Brazilian Real"),
	domain.NewFiatCurrency("CAD", "Canadian Dollar"),
	domain.NewFiatCurrency("CHF", "Swiss Franc"),
	domain.NewFiatCurrency("CNY", "Chinese Yuan"),
	domain.NewFiatCurrency("EUR", "Euro"),
	domain.NewFiatCurrency("GBP", "British Pound"),
	domain.NewFiatCurrency("HKD", "Hong Kong Dollar"),
	domain.NewFiatCurrency("INR", "Indian Rupee"),
	domain.NewFiatCurrency("JPY", "Japanese Yen"),
	domain.NewFiatCurrency("MXN", "Mexican Peso"),
	domain.NewFiatCurrency("NOK", "Norwegian Krone"),
	domain.NewFiatCurrency("NZD", "New Zealand Dollar"),
	domain.NewFiatCurrency("PLN", "Polish Zloty"),
	domain.NewFiatCurrency("RUB", "Russian Ruble"),
	domain.NewFiatCurrency("SEK", "Swedish Krona"),
	domain.NewFiatCurrency("SGD", "Singapore Dollar"),
	domain.NewFiatCurrency("USD", "US Dollar"),
	domain.NewFiatCurrency("ZAR", "South African Rand"),
}

var crypto = []domain.TradeCurrency{
	domain.NewCryptoCurrency("DASH", "Dash"),
	domain.NewCryptoCurrency("DOGE", "Dogecoin"),
	domain.NewCryptoCurrency("ETH", "Ether"),
	domain.NewCryptoCurrency("LTC", "Litecoin"),
	domain.NewCryptoCurrency("XMR", "Monero"),
	domain.NewCryptoCurrency("ZEC", "Zcash"),
}

// Catalog implements ports.CurrencyCatalog.
type Catalog struct {
	byCode   map[string]domain.TradeCurrency
	fallback domain.TradeCurrency
}

// New creates a catalog. defaultCode must be a known currency; otherwise EUR
// is used.
func New(defaultCode string) *Catalog {
	c := &Catalog{byCode: make(map[string]domain.TradeCurrency, len(fiat)+len(crypto))}
	for _, tc := range fiat {
		c.byCode[tc.Code] = tc
	}
	for _, tc := range crypto {
		c.byCode[tc.Code] = tc
	}

	fallback, ok := c.byCode[strings.ToUpper(defaultCode)]
	if !ok {
		fallback = c.byCode["EUR"]
	}
	c.fallback = fallback
	return c
}

func (c *Catalog) Lookup(code string) (domain.TradeCurrency, bool) {
	tc, ok := c.byCode[code]
	return tc, ok
}

func (c *Catalog) IsCryptoCurrency(code string) bool {
	return c.byCode[code].Crypto
}

// DefaultCurrency is the currency of the user's locale.
func (c *Catalog) DefaultCurrency() domain.TradeCurrency {
	return c.fallback
}

// All returns fiat currencies first, then crypto, each sorted by code.
func (c *Catalog) All() []domain.TradeCurrency {
	out := make([]domain.TradeCurrency, 0, len(c.byCode))
	for _, tc := range c.byCode {
		out = append(out, tc)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Crypto != out[j].Crypto {
			return !out[i].Crypto
		}
		return out[i].Code < out[j].Code
	})
	return out
}

// DefaultTracked is the tracked currency list of a fresh install: the default
// currency plus the main crypto assets.
func (c *Catalog) DefaultTracked() []domain.TradeCurrency {
	tracked := []domain.TradeCurrency{c.fallback}
	for _, code := range []string{"ETH", "XMR"} {
		tracked = append(tracked, c.byCode[code])
	}
	return tracked
}
