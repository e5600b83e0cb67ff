package domain

// Boundary encodings of the two pseudo entries of the selectable currency list.
// They are only read and written at the edges (HTTP, persisted preferences);
// inside the engine a CurrencySelection carries the kind explicitly.
const (
	ShowAllFlag = "SHOW_ALL"
	EditFlag    = "EDIT"
)

// TradeCurrency is a fiat or crypto currency offers can be priced in.
type TradeCurrency struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Crypto bool   `json:"crypto"`
}

// NewFiatCurrency creates a national currency entry.
func NewFiatCurrency(code, name string) TradeCurrency {
	return TradeCurrency{Code: code, Name: name}
}

// NewCryptoCurrency creates a crypto asset entry.
func NewCryptoCurrency(code, name string) TradeCurrency {
	return TradeCurrency{Code: code, Name: name, Crypto: true}
}

// CurrencyCodes returns the codes of the given currencies, keeping order.
func CurrencyCodes(currencies []TradeCurrency) []string {
	codes := make([]string, 0, len(currencies))
	for _, c := range currencies {
		codes = append(codes, c.Code)
	}
	return codes
}
