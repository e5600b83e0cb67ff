package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"p2p-offerbook/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// UserProfileRepo implements ports.UserProfileRepository.
type UserProfileRepo struct {
	pool Pool
}

// NewUserProfileRepo creates a new UserProfileRepo.
func NewUserProfileRepo(pool Pool) *UserProfileRepo {
	return &UserProfileRepo{pool: pool}
}

// Load returns nil, nil when no profile exists for host.
func (r *UserProfileRepo) Load(ctx context.Context, host string) (*domain.UserProfile, error) {
	var (
		p           domain.UserProfile
		arbitrators []byte
		accounts    []byte
	)
	err := r.pool.QueryRow(ctx,
		`SELECT host, port, arbitrators, payment_accounts FROM user_profiles WHERE host = $1`, host,
	).Scan(&p.NodeAddress.HostName, &p.NodeAddress.Port, &arbitrators, &accounts)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("load user profile: %w", err)
	}

	if err := json.Unmarshal(arbitrators, &p.AcceptedArbitrators); err != nil {
		return nil, fmt.Errorf("unmarshal arbitrators: %w", err)
	}
	if err := json.Unmarshal(accounts, &p.PaymentAccounts); err != nil {
		return nil, fmt.Errorf("unmarshal payment accounts: %w", err)
	}
	return &p, nil
}
