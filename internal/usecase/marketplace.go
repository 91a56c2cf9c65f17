package usecase

import (
	"context"
	"strings"

	"github.com/polkiloo/buyout/internal/domain/model"
	"github.com/polkiloo/buyout/internal/domain/repository"
)

// MarketplaceUseCase manages marketplaces and their URL prefixes.
type MarketplaceUseCase struct {
	marketplaces repository.MarketplaceRepository
}

// NewMarketplaceUseCase constructs MarketplaceUseCase.
func NewMarketplaceUseCase(marketplaces repository.MarketplaceRepository) *MarketplaceUseCase {
	return &MarketplaceUseCase{marketplaces: marketplaces}
}

func (u *MarketplaceUseCase) Create(ctx context.Context, m *model.Marketplace) error {
	normalizeMarketplace(m)
	if err := validateMarketplace(m); err != nil {
		return err
	}
	return u.marketplaces.Create(ctx, m)
}

func (u *MarketplaceUseCase) Update(ctx context.Context, m *model.Marketplace) error {
	normalizeMarketplace(m)
	if err := validateMarketplace(m); err != nil {
		return err
	}
	return u.marketplaces.Update(ctx, m)
}

func (u *MarketplaceUseCase) Delete(ctx context.Context, id int64) error {
	return u.marketplaces.Delete(ctx, id)
}

func (u *MarketplaceUseCase) Get(ctx context.Context, id int64) (*model.Marketplace, error) {
	return u.marketplaces.GetByID(ctx, id)
}

func (u *MarketplaceUseCase) List(ctx context.Context) ([]model.Marketplace, error) {
	return u.marketplaces.List(ctx)
}

// normalizeMarketplace trims title and rewrites URL as clean comma separated prefixes.
func normalizeMarketplace(m *model.Marketplace) {
	m.Title = strings.TrimSpace(m.Title)
	m.URL = strings.Join(m.Prefixes(), ",")
}
