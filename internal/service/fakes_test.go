package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/anyulbade/pix-brcode-service/internal/model"
)

type fakeChargeStore struct {
	mu      sync.Mutex
	charges []*model.Charge
	batches int
	err     error
}

func (f *fakeChargeStore) Insert(_ context.Context, c *model.Charge) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	c.ID = fmt.Sprintf("charge-%d", len(f.charges)+1)
	c.CreatedAt = time.Now()
	f.charges = append(f.charges, c)
	return nil
}

func (f *fakeChargeStore) InsertBatch(ctx context.Context, charges []*model.Charge) error {
	if f.err != nil {
		return f.err
	}
	f.batches++
	for _, c := range charges {
		if err := f.Insert(ctx, c); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeChargeStore) List(_ context.Context, limit, offset int) ([]*model.Charge, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if offset >= len(f.charges) {
		return nil, len(f.charges), nil
	}
	end := offset + limit
	if end > len(f.charges) {
		end = len(f.charges)
	}
	return f.charges[offset:end], len(f.charges), nil
}

type fakeFavoriteStore struct {
	mu   sync.Mutex
	favs map[string]*model.FavoriteKey
}

func newFakeFavoriteStore(favs ...*model.FavoriteKey) *fakeFavoriteStore {
	f := &fakeFavoriteStore{favs: map[string]*model.FavoriteKey{}}
	for _, fav := range favs {
		f.favs[fav.ID] = fav
	}
	return f
}

func (f *fakeFavoriteStore) Insert(_ context.Context, fav *model.FavoriteKey) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.favs {
		if existing.Label == fav.Label {
			return errors.New("duplicate label")
		}
	}
	fav.ID = fmt.Sprintf("fav-%d", len(f.favs)+1)
	fav.CreatedAt = time.Now()
	f.favs[fav.ID] = fav
	return nil
}

func (f *fakeFavoriteStore) FindByID(_ context.Context, id string) (*model.FavoriteKey, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fav, ok := f.favs[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return fav, nil
}

func (f *fakeFavoriteStore) List(_ context.Context, limit, offset int) ([]*model.FavoriteKey, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var all []*model.FavoriteKey
	for _, fav := range f.favs {
		all = append(all, fav)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Label < all[j].Label })
	if offset >= len(all) {
		return nil, len(all), nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], len(all), nil
}

func (f *fakeFavoriteStore) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.favs[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.favs, id)
	return nil
}
