package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"p2p-offerbook/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const offerColumns = `id, direction, currency_code, amount, min_amount, price, use_market_price,
	market_price_margin, payment_method_id, country_code, bank_id, accepted_country_codes,
	accepted_bank_ids, arbitrators, offerer_host, offerer_port, protocol_version, created_at`

// OfferRepo implements ports.OfferRepository.
type OfferRepo struct {
	pool Pool
}

// NewOfferRepo creates a new OfferRepo.
func NewOfferRepo(pool Pool) *OfferRepo {
	return &OfferRepo{pool: pool}
}

// List returns every stored offer, oldest first.
func (r *OfferRepo) List(ctx context.Context) ([]*domain.Offer, error) {
	query := `SELECT ` + offerColumns + ` FROM offers ORDER BY created_at, id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list offers: %w", err)
	}
	defer rows.Close()

	var offers []*domain.Offer
	for rows.Next() {
		o, err := scanOffer(rows)
		if err != nil {
			return nil, err
		}
		offers = append(offers, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate offers: %w", err)
	}
	return offers, nil
}

// Upsert inserts the offer or replaces the stored copy with the same id.
func (r *OfferRepo) Upsert(ctx context.Context, o *domain.Offer) error {
	arbitrators, err := json.Marshal(o.ArbitratorNodeAddresses)
	if err != nil {
		return fmt.Errorf("marshal arbitrators: %w", err)
	}

	query := `INSERT INTO offers (` + offerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		ON CONFLICT (id) DO UPDATE SET
			price = EXCLUDED.price,
			use_market_price = EXCLUDED.use_market_price,
			market_price_margin = EXCLUDED.market_price_margin,
			amount = EXCLUDED.amount,
			min_amount = EXCLUDED.min_amount`

	_, err = r.pool.Exec(ctx, query,
		o.ID, string(o.Direction), o.CurrencyCode, o.Amount, o.MinAmount, o.Price, o.UseMarketBasedPrice,
		o.MarketPriceMargin, o.PaymentMethodID, o.CountryCode, o.BankID, nonNil(o.AcceptedCountryCodes),
		nonNil(o.AcceptedBankIDs), arbitrators, o.OffererNodeAddress.HostName, o.OffererNodeAddress.Port,
		o.ProtocolVersion, o.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert offer: %w", err)
	}
	return nil
}

// Delete removes the offer. Deleting an unknown id is not an error.
func (r *OfferRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM offers WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete offer: %w", err)
	}
	return nil
}

func scanOffer(row pgx.Row) (*domain.Offer, error) {
	var (
		o           domain.Offer
		direction   string
		price       *decimal.Decimal
		arbitrators []byte
		createdAt   time.Time
	)
	err := row.Scan(
		&o.ID, &direction, &o.CurrencyCode, &o.Amount, &o.MinAmount, &price, &o.UseMarketBasedPrice,
		&o.MarketPriceMargin, &o.PaymentMethodID, &o.CountryCode, &o.BankID, &o.AcceptedCountryCodes,
		&o.AcceptedBankIDs, &arbitrators, &o.OffererNodeAddress.HostName, &o.OffererNodeAddress.Port,
		&o.ProtocolVersion, &createdAt,
	)
	if err != nil {
		return nil, fmt.Errorf("scan offer: %w", err)
	}

	o.Direction = domain.Direction(direction)
	o.Price = price
	o.CreatedAt = createdAt.UTC()
	if len(arbitrators) > 0 {
		if err := json.Unmarshal(arbitrators, &o.ArbitratorNodeAddresses); err != nil {
			return nil, fmt.Errorf("unmarshal arbitrators of offer %s: %w", o.ID, err)
		}
	}
	return &o, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
