package repository

import (
	"context"

	"github.com/polkiloo/buyout/internal/domain/model"
)

// CustomerRepository describes persistence operations for customers.
type CustomerRepository interface {
	Create(ctx context.Context, customer *model.Customer) error
	Update(ctx context.Context, customer *model.Customer) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*model.Customer, error)
	// Search matches name, phone and telegram id; empty query lists everyone.
	Search(ctx context.Context, query, sort string) ([]model.Customer, error)
}
