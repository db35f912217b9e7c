package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/anyulbade/pix-brcode-service/internal/model"
)

const insertChargeSQL = `INSERT INTO charges (pix_key, key_kind, amount, merchant_name, merchant_city, payload, crc, favorite_id)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	RETURNING id, created_at`

type ChargeRepository struct {
	pool *pgxpool.Pool
}

func NewChargeRepository(pool *pgxpool.Pool) *ChargeRepository {
	return &ChargeRepository{pool: pool}
}

func chargeArgs(c *model.Charge) []any {
	amount := decimal.NullDecimal{}
	if c.Amount != nil {
		amount = decimal.NewNullDecimal(*c.Amount)
	}
	return []any{c.PixKey, c.KeyKind, amount, c.MerchantName, c.MerchantCity, c.Payload, c.CRC, c.FavoriteID}
}

func (r *ChargeRepository) Insert(ctx context.Context, c *model.Charge) error {
	return r.pool.QueryRow(ctx, insertChargeSQL, chargeArgs(c)...).Scan(&c.ID, &c.CreatedAt)
}

func (r *ChargeRepository) InsertBatch(ctx context.Context, charges []*model.Charge) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin batch transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	batch := &pgx.Batch{}
	for _, c := range charges {
		batch.Queue(insertChargeSQL, chargeArgs(c)...)
	}

	br := tx.SendBatch(ctx, batch)
	for i := range charges {
		if err := br.QueryRow().Scan(&charges[i].ID, &charges[i].CreatedAt); err != nil {
			br.Close()
			return fmt.Errorf("insert charge %d: %w", i, err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("close batch: %w", err)
	}

	return tx.Commit(ctx)
}

func (r *ChargeRepository) List(ctx context.Context, limit, offset int) ([]*model.Charge, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM charges`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count charges: %w", err)
	}

	rows, err := r.pool.Query(ctx,
		`SELECT id, pix_key, key_kind, amount, merchant_name, merchant_city, payload, crc, favorite_id, created_at
		FROM charges
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("query charges: %w", err)
	}
	defer rows.Close()

	var charges []*model.Charge
	for rows.Next() {
		c := &model.Charge{}
		var amount decimal.NullDecimal
		if err := rows.Scan(&c.ID, &c.PixKey, &c.KeyKind, &amount, &c.MerchantName, &c.MerchantCity,
			&c.Payload, &c.CRC, &c.FavoriteID, &c.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan charge: %w", err)
		}
		if amount.Valid {
			c.Amount = &amount.Decimal
		}
		charges = append(charges, c)
	}
	return charges, total, rows.Err()
}
