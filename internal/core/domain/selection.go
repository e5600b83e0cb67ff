package domain

// SelectionKind tags a selectable list entry.
type SelectionKind int

const (
	// SelectSpecific is a real currency or payment method.
	SelectSpecific SelectionKind = iota
	// SelectAll disables filtering on the dimension.
	SelectAll
	// SelectEdit asks for the currency management screen. Currency lists only.
	SelectEdit
)

func (k SelectionKind) String() string {
	switch k {
	case SelectAll:
		return "all"
	case SelectEdit:
		return "edit"
	default:
		return "specific"
	}
}

// CurrencySelection is one entry of the selectable currency list.
type CurrencySelection struct {
	kind     SelectionKind
	currency TradeCurrency
}

func AllCurrencies() CurrencySelection {
	return CurrencySelection{kind: SelectAll}
}

func EditCurrencies() CurrencySelection {
	return CurrencySelection{kind: SelectEdit}
}

func SpecificCurrency(c TradeCurrency) CurrencySelection {
	return CurrencySelection{kind: SelectSpecific, currency: c}
}

func (s CurrencySelection) Kind() SelectionKind { return s.kind }

// Currency returns the selected currency; ok is false for All and Edit.
func (s CurrencySelection) Currency() (TradeCurrency, bool) {
	return s.currency, s.kind == SelectSpecific
}

// Code is the boundary encoding: ShowAllFlag, EditFlag or the currency code.
func (s CurrencySelection) Code() string {
	switch s.kind {
	case SelectAll:
		return ShowAllFlag
	case SelectEdit:
		return EditFlag
	default:
		return s.currency.Code
	}
}

// ParseCurrencySelection decodes a boundary code. lookup resolves real codes;
// ok is false when the code is empty or unknown.
func ParseCurrencySelection(code string, lookup func(string) (TradeCurrency, bool)) (CurrencySelection, bool) {
	switch code {
	case "":
		return CurrencySelection{}, false
	case ShowAllFlag:
		return AllCurrencies(), true
	case EditFlag:
		return EditCurrencies(), true
	}
	c, ok := lookup(code)
	if !ok {
		return CurrencySelection{}, false
	}
	return SpecificCurrency(c), true
}

// PaymentMethodSelection is one entry of the selectable payment method list.
type PaymentMethodSelection struct {
	all    bool
	method PaymentMethod
}

func AllPaymentMethodsSelection() PaymentMethodSelection {
	return PaymentMethodSelection{all: true}
}

func SpecificPaymentMethod(m PaymentMethod) PaymentMethodSelection {
	return PaymentMethodSelection{method: m}
}

func (s PaymentMethodSelection) Kind() SelectionKind {
	if s.all {
		return SelectAll
	}
	return SelectSpecific
}

func (s PaymentMethodSelection) Method() (PaymentMethod, bool) {
	return s.method, !s.all
}

// ID is the boundary encoding: ShowAllFlag or the method id.
func (s PaymentMethodSelection) ID() string {
	if s.all {
		return ShowAllFlag
	}
	return s.method.ID
}

// SelectionState is the snapshot of a view's current selection.
// ShowAllTradeCurrencies is true iff the "all" entry is selected; TradeCurrency
// then holds the representative currency used for the price feed.
type SelectionState struct {
	Direction              Direction
	TradeCurrency          TradeCurrency
	ShowAllTradeCurrencies bool
	PaymentMethod          PaymentMethod
	ShowAllPaymentMethods  bool
}

// SortOrder of the price column.
type SortOrder string

const (
	SortAscending  SortOrder = "ASCENDING"
	SortDescending SortOrder = "DESCENDING"
)
