package postgres

import (
	"context"
	"fmt"
)

// schema is applied at startup. Every statement is idempotent.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS offers (
		id                     TEXT PRIMARY KEY,
		direction              TEXT NOT NULL,
		currency_code          TEXT NOT NULL,
		amount                 NUMERIC NOT NULL,
		min_amount             NUMERIC NOT NULL,
		price                  NUMERIC,
		use_market_price       BOOLEAN NOT NULL DEFAULT FALSE,
		market_price_margin    NUMERIC NOT NULL DEFAULT 0,
		payment_method_id      TEXT NOT NULL,
		country_code           TEXT,
		bank_id                TEXT,
		accepted_country_codes TEXT[] NOT NULL DEFAULT '{}',
		accepted_bank_ids      TEXT[] NOT NULL DEFAULT '{}',
		arbitrators            JSONB NOT NULL DEFAULT '[]',
		offerer_host           TEXT NOT NULL,
		offerer_port           INTEGER NOT NULL,
		protocol_version       INTEGER NOT NULL,
		created_at             TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_offers_currency ON offers (currency_code)`,
	`CREATE TABLE IF NOT EXISTS preferences (
		owner      TEXT PRIMARY KEY,
		data       JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS closed_trades (
		id        TEXT PRIMARY KEY,
		offer_id  TEXT NOT NULL,
		peer_host TEXT,
		peer_port INTEGER,
		closed_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS user_profiles (
		host             TEXT PRIMARY KEY,
		port             INTEGER NOT NULL,
		arbitrators      JSONB NOT NULL DEFAULT '[]',
		payment_accounts JSONB NOT NULL DEFAULT '[]'
	)`,
}

// Migrate creates the tables the repositories need.
func Migrate(ctx context.Context, pool Pool) error {
	for i, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("schema statement %d: %w", i, err)
		}
	}
	return nil
}
