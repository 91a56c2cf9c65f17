package repository

import (
	"context"

	"github.com/polkiloo/buyout/internal/domain/model"
)

// OrderRepository describes persistence operations with orders.
// Read methods return orders with Purchase, Customer and Marketplace loaded.
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	Update(ctx context.Context, order *model.Order) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	List(ctx context.Context, filter model.OrderFilter) ([]model.Order, error)
	ListByCustomer(ctx context.Context, customerID int64, purchaseID *int64) ([]model.Order, error)
	// TrackSiblings lists orders of the same purchase sharing the track number, excluding the order itself.
	TrackSiblings(ctx context.Context, order *model.Order) ([]model.Order, error)
	UpdateStatus(ctx context.Context, id int64, status model.OrderStatus, fields model.OrderFields) error
	// MarkArrived sets the order and its siblings to arrived, zeroing sibling weight.
	// It returns the number of sibling rows updated.
	MarkArrived(ctx context.Context, id int64, weight int, siblingIDs []int64) (int64, error)
	StatusSummary(ctx context.Context, filter model.OrderFilter) ([]model.StatusCount, error)
}
