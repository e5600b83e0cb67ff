package service

import (
	"testing"

	"p2p-offerbook/internal/core/domain"

	"github.com/stretchr/testify/assert"
)

func TestPriceSortOrder(t *testing.T) {
	tests := []struct {
		name      string
		direction domain.Direction
		isCrypto  bool
		want      domain.SortOrder
	}{
		{"buy fiat", domain.DirectionBuy, false, domain.SortAscending},
		{"sell fiat", domain.DirectionSell, false, domain.SortDescending},
		{"buy crypto", domain.DirectionBuy, true, domain.SortDescending},
		{"sell crypto", domain.DirectionSell, true, domain.SortAscending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PriceSortOrder(tt.direction, tt.isCrypto))
		})
	}
}

func TestPriceComparator(t *testing.T) {
	cheap := testOffer("cheap", domain.DirectionSell, "EUR", "100", domain.Sepa)
	dear := testOffer("dear", domain.DirectionSell, "EUR", "200", domain.Sepa)
	noPrice := testOffer("none", domain.DirectionSell, "EUR", "", domain.Sepa)

	asc := priceComparator(domain.SortAscending)
	assert.True(t, asc(cheap, dear))
	assert.False(t, asc(dear, cheap))
	assert.True(t, asc(dear, noPrice), "missing price sorts last")
	assert.False(t, asc(noPrice, cheap))

	desc := priceComparator(domain.SortDescending)
	assert.True(t, desc(dear, cheap))
	assert.True(t, desc(cheap, noPrice), "missing price sorts last in both orders")
}

func TestPriceComparator_TieBreak(t *testing.T) {
	older := testOffer("b", domain.DirectionSell, "EUR", "100", domain.Sepa)
	newer := testOffer("a", domain.DirectionSell, "EUR", "100", domain.Sepa)
	newer.CreatedAt = older.CreatedAt.Add(1)

	less := priceComparator(domain.SortAscending)
	assert.True(t, less(older, newer))
	assert.False(t, less(newer, older))

	same := testOffer("c", domain.DirectionSell, "EUR", "100", domain.Sepa)
	assert.True(t, less(older, same), "equal time falls back to id")
}
