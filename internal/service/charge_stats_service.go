package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/anyulbade/pix-brcode-service/internal/repository"
)

type StatsStore interface {
	Stats(ctx context.Context, keyKind, dateFrom, dateTo, sortBy, order string) ([]repository.ChargeStatsRow, error)
}

type ChargeStatsService struct {
	repo StatsStore
}

func NewChargeStatsService(repo StatsStore) *ChargeStatsService {
	return &ChargeStatsService{repo: repo}
}

type KindStats struct {
	KeyKind       string `json:"key_kind"`
	ChargeCount   int    `json:"charge_count"`
	FixedCount    int    `json:"fixed_amount_count"`
	OpenCount     int    `json:"open_amount_count"`
	TotalAmount   string `json:"total_amount"`
	AvgAmount     string `json:"avg_amount"`
	ShareOfTotal  string `json:"share_of_total_pct"`
	FromFavorites int    `json:"from_favorites"`
	DistinctKeys  int    `json:"distinct_keys"`
}

type StatsSummary struct {
	TotalCharges int    `json:"total_charges"`
	FixedCharges int    `json:"fixed_amount_charges"`
	OpenCharges  int    `json:"open_amount_charges"`
	TotalAmount  string `json:"total_amount"`
	KeyKinds     int    `json:"key_kinds"`
}

var hundred = decimal.NewFromInt(100)

func (s *ChargeStatsService) Stats(ctx context.Context, keyKind, dateFrom, dateTo, sortBy, order string) ([]KindStats, StatsSummary, error) {
	rows, err := s.repo.Stats(ctx, keyKind, dateFrom, dateTo, sortBy, order)
	if err != nil {
		return nil, StatsSummary{}, err
	}

	total := decimal.Zero
	var summary StatsSummary
	for _, row := range rows {
		total = total.Add(row.TotalAmount)
		summary.TotalCharges += row.ChargeCount
		summary.FixedCharges += row.FixedCount
		summary.OpenCharges += row.OpenCount
	}
	summary.TotalAmount = total.StringFixed(2)
	summary.KeyKinds = len(rows)

	results := make([]KindStats, len(rows))
	for i, row := range rows {
		share := decimal.Zero
		if total.IsPositive() {
			share = row.TotalAmount.Div(total).Mul(hundred)
		}
		results[i] = KindStats{
			KeyKind:       row.KeyKind,
			ChargeCount:   row.ChargeCount,
			FixedCount:    row.FixedCount,
			OpenCount:     row.OpenCount,
			TotalAmount:   row.TotalAmount.StringFixed(2),
			AvgAmount:     row.AvgAmount.StringFixed(2),
			ShareOfTotal:  share.StringFixed(2),
			FromFavorites: row.FromFavorites,
			DistinctKeys:  row.DistinctKeys,
		}
	}

	return results, summary, nil
}
