package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"p2p-offerbook/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// FilterRulesKey holds the JSON encoded ban rules distributed by the operator.
const FilterRulesKey = "offerbook:filter:rules"

// FilterRuleStore implements ports.FilterRuleRepository on a Redis key.
type FilterRuleStore struct {
	client *goredis.Client
	key    string
}

// NewFilterRuleStore creates a new Redis-backed filter rule store.
func NewFilterRuleStore(client *goredis.Client) *FilterRuleStore {
	return &FilterRuleStore{client: client, key: FilterRulesKey}
}

// Load returns nil, nil when no rules are published.
func (s *FilterRuleStore) Load(ctx context.Context) (*domain.FilterRules, error) {
	val, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis filter rules get: %w", err)
	}

	var rules domain.FilterRules
	if err := json.Unmarshal(val, &rules); err != nil {
		return nil, fmt.Errorf("decode filter rules: %w", err)
	}
	return &rules, nil
}

// Publish replaces the rules. Nil rules clear them.
func (s *FilterRuleStore) Publish(ctx context.Context, rules *domain.FilterRules) error {
	if rules == nil {
		if err := s.client.Del(ctx, s.key).Err(); err != nil {
			return fmt.Errorf("redis filter rules del: %w", err)
		}
		return nil
	}

	data, err := json.Marshal(rules)
	if err != nil {
		return fmt.Errorf("encode filter rules: %w", err)
	}
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("redis filter rules set: %w", err)
	}
	return nil
}
