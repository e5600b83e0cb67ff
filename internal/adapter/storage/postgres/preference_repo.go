package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"p2p-offerbook/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// PreferenceRepo implements ports.PreferenceRepository. Preferences are stored
// as one JSON document per owner.
type PreferenceRepo struct {
	pool Pool
}

// NewPreferenceRepo creates a new PreferenceRepo.
func NewPreferenceRepo(pool Pool) *PreferenceRepo {
	return &PreferenceRepo{pool: pool}
}

// Load returns nil, nil when the owner has no saved preferences.
func (r *PreferenceRepo) Load(ctx context.Context, owner string) (*domain.Preferences, error) {
	var data []byte
	err := r.pool.QueryRow(ctx, `SELECT data FROM preferences WHERE owner = $1`, owner).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("load preferences: %w", err)
	}

	var prefs domain.Preferences
	if err := json.Unmarshal(data, &prefs); err != nil {
		return nil, fmt.Errorf("unmarshal preferences: %w", err)
	}
	return &prefs, nil
}

// Save writes the full preference document.
func (r *PreferenceRepo) Save(ctx context.Context, owner string, prefs domain.Preferences) error {
	data, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("marshal preferences: %w", err)
	}

	query := `INSERT INTO preferences (owner, data, updated_at) VALUES ($1, $2, NOW())
		ON CONFLICT (owner) DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()`

	if _, err := r.pool.Exec(ctx, query, owner, data); err != nil {
		return fmt.Errorf("save preferences: %w", err)
	}
	return nil
}
