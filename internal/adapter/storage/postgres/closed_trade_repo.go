package postgres

import (
	"context"
	"fmt"
	"time"

	"p2p-offerbook/internal/core/domain"
)

// ClosedTradeRepo implements ports.ClosedTradeRepository.
type ClosedTradeRepo struct {
	pool Pool
}

// NewClosedTradeRepo creates a new ClosedTradeRepo.
func NewClosedTradeRepo(pool Pool) *ClosedTradeRepo {
	return &ClosedTradeRepo{pool: pool}
}

// List returns the trade history, most recent first.
func (r *ClosedTradeRepo) List(ctx context.Context) ([]domain.ClosedTrade, error) {
	query := `SELECT id, offer_id, peer_host, peer_port, closed_at FROM closed_trades ORDER BY closed_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list closed trades: %w", err)
	}
	defer rows.Close()

	var trades []domain.ClosedTrade
	for rows.Next() {
		var (
			t        domain.ClosedTrade
			peerHost *string
			peerPort *int
			closedAt time.Time
		)
		if err := rows.Scan(&t.ID, &t.OfferID, &peerHost, &peerPort, &closedAt); err != nil {
			return nil, fmt.Errorf("scan closed trade: %w", err)
		}
		if peerHost != nil {
			addr := domain.NodeAddress{HostName: *peerHost}
			if peerPort != nil {
				addr.Port = *peerPort
			}
			t.TradingPeerNodeAddress = &addr
		}
		t.ClosedAt = closedAt.UTC()
		trades = append(trades, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate closed trades: %w", err)
	}
	return trades, nil
}
