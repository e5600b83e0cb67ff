package postgres

import (
	"context"
	"fmt"
	"strings"
)

// tables lists what Migrate creates. The node is not ready without them.
var tables = []string{"offers", "preferences", "closed_trades", "user_profiles"}

// HealthCheck implements ports.HealthChecker. It fails while the database is
// unreachable or the schema has not been applied.
type HealthCheck struct {
	pool Pool
}

func NewHealthCheck(pool Pool) *HealthCheck {
	return &HealthCheck{pool: pool}
}

func (h *HealthCheck) Ping(ctx context.Context) error {
	rows, err := h.pool.Query(ctx,
		`SELECT t FROM unnest($1::text[]) AS t WHERE to_regclass(t) IS NULL`, tables)
	if err != nil {
		return fmt.Errorf("query schema: %w", err)
	}
	defer rows.Close()

	var missing []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return fmt.Errorf("scan schema: %w", err)
		}
		missing = append(missing, name)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("query schema: %w", err)
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing tables: %s (run with --migrate)", strings.Join(missing, ", "))
	}
	return nil
}

func (h *HealthCheck) Name() string {
	return "postgresql"
}
