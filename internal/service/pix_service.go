package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/anyulbade/pix-brcode-service/internal/brcode"
	"github.com/anyulbade/pix-brcode-service/internal/dto"
	"github.com/anyulbade/pix-brcode-service/internal/model"
)

const batchWorkers = 8

type PixService struct {
	gen       *brcode.Generator
	charges   ChargeStore
	favorites FavoriteStore
}

func NewPixService(gen *brcode.Generator, charges ChargeStore, favorites FavoriteStore) *PixService {
	return &PixService{gen: gen, charges: charges, favorites: favorites}
}

func (s *PixService) Preview(req *dto.PayloadRequest) (*model.Charge, error) {
	return s.build(req)
}

func (s *PixService) Generate(ctx context.Context, req *dto.PayloadRequest) (*model.Charge, error) {
	charge, err := s.build(req)
	if err != nil {
		return nil, err
	}
	if err := s.charges.Insert(ctx, charge); err != nil {
		return nil, fmt.Errorf("record charge: %w", err)
	}

	log.Debug().
		Str("charge_id", charge.ID).
		Str("key_kind", charge.KeyKind).
		Str("crc", charge.CRC).
		Msg("pix payload generated")
	return charge, nil
}

func (s *PixService) GenerateBatch(ctx context.Context, req *dto.BatchPayloadRequest) ([]*model.Charge, []dto.ValidationError, error) {
	charges := make([]*model.Charge, len(req.Items))
	failures := make([]error, len(req.Items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(batchWorkers)
	for i := range req.Items {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			charges[i], failures[i] = s.build(&req.Items[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	var validationErrors []dto.ValidationError
	for i, err := range failures {
		if err == nil {
			continue
		}
		validationErrors = append(validationErrors, dto.ValidationError{
			Index:   i,
			Field:   FieldFor(err),
			Message: err.Error(),
		})
	}
	if len(validationErrors) > 0 {
		return nil, validationErrors, nil
	}

	if err := s.charges.InsertBatch(ctx, charges); err != nil {
		return nil, nil, fmt.Errorf("record charges: %w", err)
	}
	return charges, nil, nil
}

func (s *PixService) GenerateFromFavorite(ctx context.Context, favoriteID string, amount string) (*model.Charge, error) {
	fav, err := s.favorites.FindByID(ctx, favoriteID)
	if err != nil {
		return nil, err
	}

	charge, err := s.build(&dto.PayloadRequest{
		PixKey:       fav.PixKey,
		Amount:       amount,
		MerchantName: fav.MerchantName,
		MerchantCity: fav.MerchantCity,
	})
	if err != nil {
		return nil, err
	}
	charge.KeyKind = fav.KeyKind
	charge.FavoriteID = &fav.ID

	if err := s.charges.Insert(ctx, charge); err != nil {
		return nil, fmt.Errorf("record charge: %w", err)
	}
	return charge, nil
}

func (s *PixService) ListCharges(ctx context.Context, limit, offset int) ([]*model.Charge, int, error) {
	return s.charges.List(ctx, limit, offset)
}

func (s *PixService) build(req *dto.PayloadRequest) (*model.Charge, error) {
	p, err := s.gen.Build(brcode.Request{
		Key:          req.PixKey,
		Amount:       req.Amount,
		MerchantName: req.MerchantName,
		MerchantCity: req.MerchantCity,
	})
	if err != nil {
		return nil, err
	}

	charge := &model.Charge{
		PixKey:       p.Key.Value,
		KeyKind:      p.Key.Kind.String(),
		MerchantName: p.Merchant.Name,
		MerchantCity: p.Merchant.City,
		Payload:      p.Text,
		CRC:          p.CRC,
	}
	if p.Amount != nil {
		rounded := p.Amount.Round(2)
		charge.Amount = &rounded
	}
	return charge, nil
}

func FieldFor(err error) string {
	switch {
	case errors.Is(err, brcode.ErrEmptyKey):
		return "pix_key"
	case errors.Is(err, brcode.ErrInvalidAmount):
		return "amount"
	case errors.Is(err, brcode.ErrFieldTooLong):
		return "pix_key"
	}
	return ""
}
