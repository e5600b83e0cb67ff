package ports

import "context"

// HealthChecker is one readiness check reported by GET /health. A node with
// any failing check answers 503 but keeps serving the offer book.
type HealthChecker interface {
	Ping(ctx context.Context) error
	// Name keys the check in the health response, e.g. "redis" or "offer_book".
	Name() string
}
