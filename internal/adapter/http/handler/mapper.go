package handler

import (
	"time"

	"p2p-offerbook/internal/adapter/http/dto"
	"p2p-offerbook/internal/core/domain"
	"p2p-offerbook/internal/core/ports"

	"github.com/shopspring/decimal"
)

func toViewStateResponse(s ports.ViewState) dto.ViewStateResponse {
	sel := s.Selection
	currency := sel.TradeCurrency.Code
	if sel.ShowAllTradeCurrencies {
		currency = domain.ShowAllFlag
	}
	method := sel.PaymentMethod.ID
	if sel.ShowAllPaymentMethods {
		method = domain.ShowAllFlag
	}

	return dto.ViewStateResponse{
		Direction:                    string(sel.Direction),
		CurrencyCode:                 currency,
		RepresentativeCurrency:       sel.TradeCurrency.Code,
		ShowAllTradeCurrencies:       sel.ShowAllTradeCurrencies,
		PaymentMethod:                method,
		ShowAllPaymentMethods:        sel.ShowAllPaymentMethods,
		PriceSortOrder:               string(s.PriceSortOrder),
		TabSelected:                  s.TabSelected,
		Active:                       s.Active,
		VisibleOffers:                s.VisibleOffers,
		IsBootstrapped:               s.IsBootstrapped,
		HasPaymentAccount:            s.HasPaymentAccount,
		HasPaymentAccountForCurrency: s.HasPaymentAccountForCurrency,
		HasAcceptedArbitrators:       s.HasAcceptedArbitrators,
	}
}

func toCurrencyEntry(sel domain.CurrencySelection) dto.CurrencyEntry {
	e := dto.CurrencyEntry{Code: sel.Code(), Kind: sel.Kind().String()}
	if c, ok := sel.Currency(); ok {
		e.Name = c.Name
		e.Crypto = c.Crypto
	}
	return e
}

func toPaymentMethodEntry(sel domain.PaymentMethodSelection) dto.PaymentMethodEntry {
	e := dto.PaymentMethodEntry{ID: sel.ID(), Kind: sel.Kind().String()}
	if m, ok := sel.Method(); ok {
		e.MaxTradePeriodHours = m.MaxTradePeriod.Hours()
		e.MaxTradeLimit = m.MaxTradeLimit.String()
	}
	return e
}

func toOfferRowResponse(r ports.OfferRow) dto.OfferRowResponse {
	o := r.Offer
	resp := dto.OfferRowResponse{
		ID:                   o.ID,
		Direction:            string(r.DirectionLabel.Direction),
		CurrencyCode:         o.CurrencyCode,
		Amount:               r.Amount.Max.String(),
		MinAmount:            r.Amount.Min.String(),
		AmountIsRange:        r.Amount.IsRange,
		Price:                decimalString(r.Price.Price),
		MarketBasedPrice:     r.Price.MarketBased,
		Volume:               decimalString(r.Volume.Max),
		MinVolume:            decimalString(r.Volume.Min),
		VolumeIsRange:        r.Volume.IsRange,
		VolumeCurrency:       r.Volume.CurrencyPostfix,
		PaymentMethod:        r.PaymentMethod.MethodID,
		CountryCode:          r.PaymentMethod.CountryCode,
		BankID:               r.PaymentMethod.BankID,
		AcceptedCountryCodes: r.PaymentMethod.AcceptedCountryCodes,
		AcceptedBankIDs:      r.PaymentMethod.AcceptedBankIDs,
		OffererAddress:       o.OffererNodeAddress.FullAddress(),
		NumPastTrades:        r.NumPastTrades,
		Flags: dto.OfferFlagsDTO{
			IsMyOffer:              r.Flags.IsMyOffer,
			HasMatchingArbitrator:  r.Flags.HasMatchingArbitrator,
			IsIgnored:              r.Flags.IsIgnored,
			IsOfferBanned:          r.Flags.IsOfferBanned,
			IsNodeBanned:           r.Flags.IsNodeBanned,
			HasSameProtocolVersion: r.Flags.HasSameProtocolVersion,
			HasValidPaymentAccount: r.Flags.HasValidPaymentAccount,
		},
		CreatedAt: o.CreatedAt.UTC().Format(time.RFC3339),
	}
	if r.Price.MarketBased {
		resp.MarketPriceMargin = r.Price.Margin.String()
	}
	return resp
}

// decimalString renders nil as JSON null ("N/A" on screen).
func decimalString(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}
