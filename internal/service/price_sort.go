package service

import (
	"p2p-offerbook/internal/core/domain"
)

// PriceSortOrder is the default order of the price column. The best price
// comes first: for fiat the BUY view (listing sell offers) wants the lowest
// price, for crypto assets the price is quoted the other way round.
func PriceSortOrder(direction domain.Direction, isCrypto bool) domain.SortOrder {
	compare := domain.DirectionBuy
	if isCrypto {
		compare = domain.DirectionSell
	}
	if direction == compare {
		return domain.SortAscending
	}
	return domain.SortDescending
}

// priceComparator orders offers by price. Offers without a price go last;
// ties keep the older offer first, then fall back to the id.
func priceComparator(order domain.SortOrder) func(a, b *domain.Offer) bool {
	return func(a, b *domain.Offer) bool {
		switch {
		case a.Price == nil && b.Price == nil:
			return tieBreak(a, b)
		case a.Price == nil:
			return false
		case b.Price == nil:
			return true
		}
		if cmp := a.Price.Cmp(*b.Price); cmp != 0 {
			if order == domain.SortDescending {
				return cmp > 0
			}
			return cmp < 0
		}
		return tieBreak(a, b)
	}
}

func tieBreak(a, b *domain.Offer) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.Before(b.CreatedAt)
	}
	return a.ID < b.ID
}
