package database

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"github.com/anyulbade/pix-brcode-service/internal/brcode"
	"github.com/anyulbade/pix-brcode-service/seeddata"
)

type favoriteEntry struct {
	Label        string `json:"label"`
	PixKey       string `json:"pix_key"`
	MerchantName string `json:"merchant_name"`
	MerchantCity string `json:"merchant_city"`
}

func SeedData(ctx context.Context, pool *pgxpool.Pool) error {
	var count int
	err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM favorite_keys").Scan(&count)
	if err != nil {
		return fmt.Errorf("check existing data: %w", err)
	}
	if count > 0 {
		log.Info().Msg("seed data already exists, skipping")
		return nil
	}

	var entries []favoriteEntry
	if err := json.Unmarshal(seeddata.FavoritesJSON, &entries); err != nil {
		return fmt.Errorf("parse favorites JSON: %w", err)
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, e := range entries {
		key := brcode.ClassifyKey(e.PixKey)
		_, err := tx.Exec(ctx,
			`INSERT INTO favorite_keys (label, pix_key, key_kind, merchant_name, merchant_city)
			VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''))`,
			e.Label, key.Value, key.Kind.String(), e.MerchantName, e.MerchantCity)
		if err != nil {
			return fmt.Errorf("insert favorite %s: %w", e.Label, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit seed data: %w", err)
	}

	log.Info().Int("count", len(entries)).Msg("inserted favorite keys")
	return nil
}
