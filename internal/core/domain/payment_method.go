package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod describes how the fiat or altcoin leg of a trade is settled.
type PaymentMethod struct {
	ID             string          `json:"id"`
	MaxTradePeriod time.Duration   `json:"max_trade_period"`
	MaxTradeLimit  decimal.Decimal `json:"max_trade_limit"` // in BTC
}

const (
	OKPay              = "OK_PAY"
	PerfectMoney       = "PERFECT_MONEY"
	Sepa               = "SEPA"
	FasterPayments     = "FASTER_PAYMENTS"
	NationalBank       = "NATIONAL_BANK"
	SameBank           = "SAME_BANK"
	SpecificBanks      = "SPECIFIC_BANKS"
	Swish              = "SWISH"
	AliPay             = "ALI_PAY"
	ClearXChange       = "CLEAR_X_CHANGE"
	ChaseQuickPay      = "CHASE_QUICK_PAY"
	InteracETransfer   = "INTERAC_E_TRANSFER"
	USPostalMoneyOrder = "US_POSTAL_MONEY_ORDER"
	CashDeposit        = "CASH_DEPOSIT"
	BlockChains        = "BLOCK_CHAINS"
)

const day = 24 * time.Hour

var paymentMethods = []PaymentMethod{
	{ID: OKPay, MaxTradePeriod: day, MaxTradeLimit: decimal.RequireFromString("1")},
	{ID: PerfectMoney, MaxTradePeriod: day, MaxTradeLimit: decimal.RequireFromString("1")},
	{ID: Sepa, MaxTradePeriod: 8 * day, MaxTradeLimit: decimal.RequireFromString("1")},
	{ID: FasterPayments, MaxTradePeriod: day, MaxTradeLimit: decimal.RequireFromString("1")},
	{ID: NationalBank, MaxTradePeriod: 4 * day, MaxTradeLimit: decimal.RequireFromString("1")},
	{ID: SameBank, MaxTradePeriod: 2 * day, MaxTradeLimit: decimal.RequireFromString("1")},
	{ID: SpecificBanks, MaxTradePeriod: 4 * day, MaxTradeLimit: decimal.RequireFromString("1")},
	{ID: Swish, MaxTradePeriod: day, MaxTradeLimit: decimal.RequireFromString("0.5")},
	{ID: AliPay, MaxTradePeriod: day, MaxTradeLimit: decimal.RequireFromString("1")},
	{ID: ClearXChange, MaxTradePeriod: 4 * day, MaxTradeLimit: decimal.RequireFromString("0.5")},
	{ID: ChaseQuickPay, MaxTradePeriod: day, MaxTradeLimit: decimal.RequireFromString("0.5")},
	{ID: InteracETransfer, MaxTradePeriod: day, MaxTradeLimit: decimal.RequireFromString("0.5")},
	{ID: USPostalMoneyOrder, MaxTradePeriod: 8 * day, MaxTradeLimit: decimal.RequireFromString("1")},
	{ID: CashDeposit, MaxTradePeriod: 4 * day, MaxTradeLimit: decimal.RequireFromString("1")},
	{ID: BlockChains, MaxTradePeriod: day, MaxTradeLimit: decimal.RequireFromString("1")},
}

// AllPaymentMethods returns a copy of the supported payment methods.
func AllPaymentMethods() []PaymentMethod {
	out := make([]PaymentMethod, len(paymentMethods))
	copy(out, paymentMethods)
	return out
}

// LookupPaymentMethod finds a supported payment method by id.
func LookupPaymentMethod(id string) (PaymentMethod, bool) {
	for _, m := range paymentMethods {
		if m.ID == id {
			return m, true
		}
	}
	return PaymentMethod{}, false
}
