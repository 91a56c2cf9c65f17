package repository

import (
	"context"

	"github.com/polkiloo/buyout/internal/domain/model"
)

// MarketplaceRepository describes persistence operations for marketplaces.
type MarketplaceRepository interface {
	Create(ctx context.Context, marketplace *model.Marketplace) error
	Update(ctx context.Context, marketplace *model.Marketplace) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*model.Marketplace, error)
	// List returns marketplaces ordered by title.
	List(ctx context.Context) ([]model.Marketplace, error)
}
