package service

import (
	"testing"

	"p2p-offerbook/internal/core/domain"
	"p2p-offerbook/internal/core/ports/mocks"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestPriceFeedSynchronizer_Sync(t *testing.T) {
	usd := domain.SelectionState{Direction: domain.DirectionBuy, TradeCurrency: domain.NewFiatCurrency("USD", "US Dollar")}
	all := domain.SelectionState{Direction: domain.DirectionBuy, TradeCurrency: domain.NewFiatCurrency("USD", "US Dollar"), ShowAllTradeCurrencies: true}

	tests := []struct {
		name     string
		selected bool
		sticky   bool
		state    domain.SelectionState
		want     string
	}{
		{"specific currency", true, false, usd, "USD"},
		{"all uses default currency", true, false, all, "EUR"},
		{"hidden tab", false, false, usd, ""},
		{"sticky price", true, true, usd, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			feed := mocks.NewMockPriceFeed(ctrl)
			prefs := newFakePrefs(domain.Preferences{UseStickyMarketPrice: tt.sticky})
			if tt.want != "" {
				feed.EXPECT().SetCurrencyCode(tt.want).Times(1)
			}

			s := NewPriceFeedSynchronizer(feed, prefs, newFakeCatalog(), zerolog.Nop())
			code, pushed := s.Sync(tt.selected, tt.state)

			assert.Equal(t, tt.want != "", pushed)
			assert.Equal(t, tt.want, code)
		})
	}
}
