package service

import (
	"p2p-offerbook/internal/core/domain"
	"p2p-offerbook/internal/core/ports"
)

// Rows renders the visible offers with their display inputs and flags.
func (v *OfferBookView) Rows() []ports.OfferRow {
	offers, sel := v.snapshot()

	rows := make([]ports.OfferRow, 0, len(offers))
	for _, o := range offers {
		rows = append(rows, v.row(o, sel))
	}
	return rows
}

func (v *OfferBookView) row(o *domain.Offer, sel domain.SelectionState) ports.OfferRow {
	volume := ports.VolumeDisplay{
		Min:     o.MinVolume(),
		Max:     o.Volume(),
		IsRange: o.HasAmountRange() && o.Volume() != nil,
	}
	if sel.ShowAllTradeCurrencies {
		volume.CurrencyPostfix = o.CurrencyCode
	}

	return ports.OfferRow{
		Offer: o,
		Amount: ports.AmountDisplay{
			Min:     o.MinAmount,
			Max:     o.Amount,
			IsRange: o.HasAmountRange(),
		},
		Price: ports.PriceDisplay{
			Price:       o.Price,
			MarketBased: o.UseMarketBasedPrice,
			Margin:      o.MarketPriceMargin,
		},
		Volume: volume,
		PaymentMethod: ports.PaymentMethodDisplay{
			MethodID:             o.PaymentMethodID,
			CurrencyCode:         o.CurrencyCode,
			CountryCode:          o.CountryCode,
			BankID:               o.BankID,
			AcceptedCountryCodes: o.AcceptedCountryCodes,
			AcceptedBankIDs:      o.AcceptedBankIDs,
		},
		DirectionLabel: ports.DirectionDisplay{
			Direction:    o.MirroredDirection(),
			CurrencyCode: o.CurrencyCode,
		},
		Flags:         v.trust.Flags(o, v.offers.IsMyOffer(o)),
		NumPastTrades: v.trust.NumPastTrades(o),
	}
}
