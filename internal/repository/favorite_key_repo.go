package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/anyulbade/pix-brcode-service/internal/model"
)

type FavoriteKeyRepository struct {
	pool *pgxpool.Pool
}

func NewFavoriteKeyRepository(pool *pgxpool.Pool) *FavoriteKeyRepository {
	return &FavoriteKeyRepository{pool: pool}
}

func (r *FavoriteKeyRepository) Insert(ctx context.Context, fav *model.FavoriteKey) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO favorite_keys (label, pix_key, key_kind, merchant_name, merchant_city)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`,
		fav.Label, fav.PixKey, fav.KeyKind, fav.MerchantName, fav.MerchantCity,
	).Scan(&fav.ID, &fav.CreatedAt)
}

func (r *FavoriteKeyRepository) FindByID(ctx context.Context, id string) (*model.FavoriteKey, error) {
	fav := &model.FavoriteKey{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, label, pix_key, key_kind, COALESCE(merchant_name, ''), COALESCE(merchant_city, ''), created_at
		FROM favorite_keys WHERE id = $1`, id).
		Scan(&fav.ID, &fav.Label, &fav.PixKey, &fav.KeyKind, &fav.MerchantName, &fav.MerchantCity, &fav.CreatedAt)
	if err != nil {
		return nil, err
	}
	return fav, nil
}

func (r *FavoriteKeyRepository) List(ctx context.Context, limit, offset int) ([]*model.FavoriteKey, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM favorite_keys`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count favorite keys: %w", err)
	}

	rows, err := r.pool.Query(ctx,
		`SELECT id, label, pix_key, key_kind, COALESCE(merchant_name, ''), COALESCE(merchant_city, ''), created_at
		FROM favorite_keys
		ORDER BY label
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("query favorite keys: %w", err)
	}
	defer rows.Close()

	var favs []*model.FavoriteKey
	for rows.Next() {
		fav := &model.FavoriteKey{}
		if err := rows.Scan(&fav.ID, &fav.Label, &fav.PixKey, &fav.KeyKind, &fav.MerchantName, &fav.MerchantCity, &fav.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan favorite key: %w", err)
		}
		favs = append(favs, fav)
	}
	return favs, total, rows.Err()
}

func (r *FavoriteKeyRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM favorite_keys WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
