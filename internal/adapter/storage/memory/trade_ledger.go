package memory

import (
	"context"
	"fmt"
	"sync"

	"p2p-offerbook/internal/core/domain"
	"p2p-offerbook/internal/core/ports"
)

// TradeLedger implements ports.ClosedTradeSource with a cached copy of the
// trade history.
type TradeLedger struct {
	repo ports.ClosedTradeRepository

	mu     sync.RWMutex
	trades []domain.ClosedTrade
}

func NewTradeLedger(repo ports.ClosedTradeRepository) *TradeLedger {
	return &TradeLedger{repo: repo}
}

func (l *TradeLedger) ClosedTrades() []domain.ClosedTrade {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]domain.ClosedTrade(nil), l.trades...)
}

// Reload replaces the cache with the repository contents.
func (l *TradeLedger) Reload(ctx context.Context) error {
	if l.repo == nil {
		return nil
	}
	trades, err := l.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("reload closed trades: %w", err)
	}
	l.mu.Lock()
	l.trades = trades
	l.mu.Unlock()
	return nil
}
