package service

import (
	"context"

	"github.com/anyulbade/pix-brcode-service/internal/model"
)

type ChargeStore interface {
	Insert(ctx context.Context, c *model.Charge) error
	InsertBatch(ctx context.Context, charges []*model.Charge) error
	List(ctx context.Context, limit, offset int) ([]*model.Charge, int, error)
}

type FavoriteStore interface {
	Insert(ctx context.Context, fav *model.FavoriteKey) error
	FindByID(ctx context.Context, id string) (*model.FavoriteKey, error)
	List(ctx context.Context, limit, offset int) ([]*model.FavoriteKey, int, error)
	Delete(ctx context.Context, id string) error
}
