package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

func TestClosedTradeRepo_List(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewClosedTradeRepo(mock)
	closedAt := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)

	rows := pgxmock.NewRows([]string{"id", "offer_id", "peer_host", "peer_port", "closed_at"}).
		AddRow("t1", "o1", strPtr("peer.onion"), intPtr(9999), closedAt).
		AddRow("t2", "o2", (*string)(nil), (*int)(nil), closedAt)

	mock.ExpectQuery("SELECT .+ FROM closed_trades").WillReturnRows(rows)

	trades, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, trades, 2)

	require.NotNil(t, trades[0].TradingPeerNodeAddress)
	assert.Equal(t, "peer.onion", trades[0].TradingPeerNodeAddress.HostName)
	assert.Equal(t, 9999, trades[0].TradingPeerNodeAddress.Port)
	assert.Equal(t, closedAt, trades[0].ClosedAt)
	assert.Nil(t, trades[1].TradingPeerNodeAddress, "cancelled offers have no peer")
	assert.NoError(t, mock.ExpectationsWereMet())
}
