package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/anyulbade/pix-brcode-service/internal/brcode"
	"github.com/anyulbade/pix-brcode-service/internal/dto"
	"github.com/anyulbade/pix-brcode-service/internal/model"
)

type FavoriteService struct {
	store FavoriteStore
}

func NewFavoriteService(store FavoriteStore) *FavoriteService {
	return &FavoriteService{store: store}
}

func (s *FavoriteService) Create(ctx context.Context, req *dto.CreateFavoriteRequest) (*model.FavoriteKey, error) {
	if strings.TrimSpace(req.PixKey) == "" {
		return nil, brcode.ErrEmptyKey
	}
	key := brcode.ClassifyKey(req.PixKey)
	if n := brcode.CharCount(key.Value); n > brcode.MaxKeyLength {
		return nil, fmt.Errorf("%w: key has %d characters, max %d", brcode.ErrFieldTooLong, n, brcode.MaxKeyLength)
	}

	fav := &model.FavoriteKey{
		Label:        strings.TrimSpace(req.Label),
		PixKey:       key.Value,
		KeyKind:      key.Kind.String(),
		MerchantName: strings.TrimSpace(req.MerchantName),
		MerchantCity: strings.TrimSpace(req.MerchantCity),
	}
	if err := s.store.Insert(ctx, fav); err != nil {
		return nil, err
	}
	return fav, nil
}

func (s *FavoriteService) Get(ctx context.Context, id string) (*model.FavoriteKey, error) {
	return s.store.FindByID(ctx, id)
}

func (s *FavoriteService) List(ctx context.Context, limit, offset int) ([]*model.FavoriteKey, int, error) {
	return s.store.List(ctx, limit, offset)
}

func (s *FavoriteService) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}
