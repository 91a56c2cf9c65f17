package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainErrors "github.com/polkiloo/buyout/internal/domain/errors"
	"github.com/polkiloo/buyout/internal/domain/model"
	"github.com/polkiloo/buyout/internal/test"
)

func TestMarketplaceCreateNormalizes(t *testing.T) {
	repo := test.NewMarketplaceRepositoryStub()
	uc := NewMarketplaceUseCase(repo)

	m := &model.Marketplace{Title: "  Ozon ", URL: " https://ozon.ru , ,https://www.ozon.ru"}
	require.NoError(t, uc.Create(context.Background(), m))
	assert.Equal(t, "Ozon", m.Title)
	assert.Equal(t, "https://ozon.ru,https://www.ozon.ru", m.URL)

	err := uc.Create(context.Background(), &model.Marketplace{Title: "Ozon"})
	require.ErrorIs(t, err, domainErrors.ErrAlreadyExists)

	err = uc.Create(context.Background(), &model.Marketplace{Title: " "})
	require.ErrorIs(t, err, domainErrors.ErrValidation)
}

func TestMarketplaceUpdateListDelete(t *testing.T) {
	repo := test.NewMarketplaceRepositoryStub()
	uc := NewMarketplaceUseCase(repo)
	ctx := context.Background()
	require.NoError(t, uc.Create(ctx, &model.Marketplace{Title: "Taobao"}))
	require.NoError(t, uc.Create(ctx, &model.Marketplace{Title: "Poizon"}))

	require.NoError(t, uc.Update(ctx, &model.Marketplace{ID: 1, Title: "Taobao", URL: "https://item.taobao.com"}))
	stored, err := uc.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "https://item.taobao.com", stored.URL)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Poizon", list[0].Title)

	require.NoError(t, uc.Delete(ctx, 2))
	require.ErrorIs(t, uc.Delete(ctx, 2), domainErrors.ErrNotFound)
	require.ErrorIs(t, uc.Update(ctx, &model.Marketplace{ID: 7, Title: "X"}), domainErrors.ErrNotFound)
}
