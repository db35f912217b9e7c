package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anyulbade/pix-brcode-service/internal/brcode"
	"github.com/anyulbade/pix-brcode-service/internal/dto"
)

func TestFavoriteService_Create(t *testing.T) {
	svc := NewFavoriteService(newFakeFavoriteStore())

	t.Run("happy: key stored normalized", func(t *testing.T) {
		fav, err := svc.Create(context.Background(), &dto.CreateFavoriteRequest{
			Label:  " Celular ",
			PixKey: "(21) 3333-4444",
		})
		require.NoError(t, err)
		assert.Equal(t, "Celular", fav.Label)
		assert.Equal(t, "+552133334444", fav.PixKey)
		assert.Equal(t, "PHONE", fav.KeyKind)
		assert.NotEmpty(t, fav.ID)
	})

	t.Run("happy: non-ascii key measured in characters", func(t *testing.T) {
		key := strings.Repeat("ç", 70) + "@b.com"
		fav, err := svc.Create(context.Background(), &dto.CreateFavoriteRequest{Label: "acentos", PixKey: key})
		require.NoError(t, err)
		assert.Equal(t, key, fav.PixKey)
		assert.Equal(t, "EMAIL", fav.KeyKind)

		_, err = brcode.Generate(brcode.Request{Key: fav.PixKey})
		assert.NoError(t, err)
	})

	t.Run("bad: empty key", func(t *testing.T) {
		_, err := svc.Create(context.Background(), &dto.CreateFavoriteRequest{Label: "x", PixKey: " "})
		assert.ErrorIs(t, err, brcode.ErrEmptyKey)
	})

	t.Run("bad: key too long for field 26", func(t *testing.T) {
		_, err := svc.Create(context.Background(), &dto.CreateFavoriteRequest{
			Label:  "long",
			PixKey: strings.Repeat("a", 80) + "@example.com",
		})
		assert.ErrorIs(t, err, brcode.ErrFieldTooLong)
	})
}

func TestFavoriteService_ListAndDelete(t *testing.T) {
	svc := NewFavoriteService(newFakeFavoriteStore())
	ctx := context.Background()

	b, err := svc.Create(ctx, &dto.CreateFavoriteRequest{Label: "B", PixKey: "b@example.com"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, &dto.CreateFavoriteRequest{Label: "A", PixKey: "a@example.com"})
	require.NoError(t, err)

	favs, total, err := svc.List(ctx, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, favs, 2)
	assert.Equal(t, "A", favs[0].Label)

	require.NoError(t, svc.Delete(ctx, b.ID))
	_, err = svc.Get(ctx, b.ID)
	assert.Error(t, err)
}
