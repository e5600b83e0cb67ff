package postgres

import (
	"context"
	"testing"

	"p2p-offerbook/internal/core/domain"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserProfileRepo_Load(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserProfileRepo(mock)
	rows := pgxmock.NewRows([]string{"host", "port", "arbitrators", "payment_accounts"}).
		AddRow("me.onion", 9999,
			[]byte(`[{"host_name":"arb.onion","port":9999}]`),
			[]byte(`[{"id":"acc-1","name":"My SEPA","payment_method_id":"SEPA","currency_codes":["EUR"],"country_code":"DE"}]`))

	mock.ExpectQuery("SELECT .+ FROM user_profiles WHERE host").
		WithArgs("me.onion").
		WillReturnRows(rows)

	p, err := repo.Load(context.Background(), "me.onion")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, domain.NodeAddress{HostName: "me.onion", Port: 9999}, p.NodeAddress)
	assert.Equal(t, []domain.NodeAddress{{HostName: "arb.onion", Port: 9999}}, p.AcceptedArbitrators)
	require.Len(t, p.PaymentAccounts, 1)
	assert.Equal(t, domain.Sepa, p.PaymentAccounts[0].PaymentMethodID)
	assert.Equal(t, "DE", *p.PaymentAccounts[0].CountryCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserProfileRepo_Load_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserProfileRepo(mock)
	mock.ExpectQuery("SELECT .+ FROM user_profiles").
		WithArgs(pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"host", "port", "arbitrators", "payment_accounts"}))

	p, err := repo.Load(context.Background(), "ghost.onion")
	assert.NoError(t, err)
	assert.Nil(t, p)
}
