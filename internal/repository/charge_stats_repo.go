package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type ChargeStatsRow struct {
	KeyKind       string
	ChargeCount   int
	FixedCount    int
	OpenCount     int
	TotalAmount   decimal.Decimal
	AvgAmount     decimal.Decimal
	FromFavorites int
	DistinctKeys  int
}

type ChargeStatsRepository struct {
	pool *pgxpool.Pool
}

func NewChargeStatsRepository(pool *pgxpool.Pool) *ChargeStatsRepository {
	return &ChargeStatsRepository{pool: pool}
}

func (r *ChargeStatsRepository) Stats(ctx context.Context, keyKind, dateFrom, dateTo, sortBy, order string) ([]ChargeStatsRow, error) {
	baseQuery := `
		SELECT
			c.key_kind,
			COUNT(*) AS charge_count,
			COUNT(*) FILTER (WHERE c.amount IS NOT NULL) AS fixed_count,
			COUNT(*) FILTER (WHERE c.amount IS NULL) AS open_count,
			COALESCE(SUM(c.amount), 0) AS total_amount,
			ROUND(COALESCE(AVG(c.amount), 0), 2) AS avg_amount,
			COUNT(*) FILTER (WHERE c.favorite_id IS NOT NULL) AS from_favorites,
			COUNT(DISTINCT c.pix_key) AS distinct_keys
		FROM charges c
		WHERE ($1 = '' OR c.key_kind = $1)
			AND ($2 = '' OR c.created_at >= $2::timestamptz)
			AND ($3 = '' OR c.created_at <= $3::timestamptz)
		GROUP BY c.key_kind
	`

	validSorts := map[string]string{
		"charge_count": "charge_count",
		"total_amount": "total_amount",
		"avg_amount":   "avg_amount",
		"key_kind":     "c.key_kind",
	}

	sortCol, ok := validSorts[sortBy]
	if !ok {
		sortCol = "charge_count"
	}

	orderDir := "DESC"
	if order == "asc" {
		orderDir = "ASC"
	}

	query := fmt.Sprintf(`%s ORDER BY %s %s, c.key_kind`, baseQuery, sortCol, orderDir)

	rows, err := r.pool.Query(ctx, query, keyKind, dateFrom, dateTo)
	if err != nil {
		return nil, fmt.Errorf("query charge stats: %w", err)
	}
	defer rows.Close()

	var results []ChargeStatsRow
	for rows.Next() {
		var s ChargeStatsRow
		err := rows.Scan(
			&s.KeyKind, &s.ChargeCount, &s.FixedCount, &s.OpenCount,
			&s.TotalAmount, &s.AvgAmount, &s.FromFavorites, &s.DistinctKeys,
		)
		if err != nil {
			return nil, fmt.Errorf("scan charge stats row: %w", err)
		}
		results = append(results, s)
	}

	return results, rows.Err()
}
