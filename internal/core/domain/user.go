package domain

// PaymentAccount is one of the local user's configured payment accounts.
type PaymentAccount struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	PaymentMethodID string   `json:"payment_method_id"`
	CurrencyCodes   []string `json:"currency_codes"`
	CountryCode     *string  `json:"country_code,omitempty"`
}

// SupportsCurrency reports whether the account can settle in code.
func (a PaymentAccount) SupportsCurrency(code string) bool {
	for _, c := range a.CurrencyCodes {
		if c == code {
			return true
		}
	}
	return false
}

// UserProfile is the local node's identity and trading setup.
type UserProfile struct {
	NodeAddress         NodeAddress      `json:"node_address"`
	AcceptedArbitrators []NodeAddress    `json:"accepted_arbitrators"`
	PaymentAccounts     []PaymentAccount `json:"payment_accounts"`
}
