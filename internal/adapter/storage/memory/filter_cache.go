package memory

import (
	"context"
	"fmt"
	"sync/atomic"

	"p2p-offerbook/internal/core/domain"
	"p2p-offerbook/internal/core/ports"
)

// FilterCache implements ports.FilterProvider. The last successfully loaded
// rules stay in force while the source is unreachable.
type FilterCache struct {
	repo  ports.FilterRuleRepository
	rules atomic.Pointer[domain.FilterRules]
}

func NewFilterCache(repo ports.FilterRuleRepository) *FilterCache {
	return &FilterCache{repo: repo}
}

// Filter returns nil when no rules are in force.
func (c *FilterCache) Filter() *domain.FilterRules {
	return c.rules.Load()
}

// Reload fetches the current rules.
func (c *FilterCache) Reload(ctx context.Context) error {
	if c.repo == nil {
		return nil
	}
	rules, err := c.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("reload filter rules: %w", err)
	}
	c.rules.Store(rules)
	return nil
}
