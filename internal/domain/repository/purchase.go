package repository

import (
	"context"

	"github.com/polkiloo/buyout/internal/domain/model"
)

// PurchaseRepository describes persistence operations for purchases.
type PurchaseRepository interface {
	Create(ctx context.Context, purchase *model.Purchase) error
	Update(ctx context.Context, purchase *model.Purchase) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*model.Purchase, error)
	Search(ctx context.Context, query, sort string) ([]model.Purchase, error)
	ListOpened(ctx context.Context) ([]model.Purchase, error)
}
