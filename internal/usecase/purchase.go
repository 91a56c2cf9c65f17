package usecase

import (
	"context"
	"time"

	"github.com/polkiloo/buyout/internal/domain/model"
	"github.com/polkiloo/buyout/internal/domain/repository"
	"github.com/polkiloo/buyout/internal/finance"
)

// PurchaseDetail aggregates purchase with its orders and computed totals.
// Orders are narrowed by the requested filter; totals always cover every order.
type PurchaseDetail struct {
	Purchase  *model.Purchase
	Orders    []model.Order
	Summary   finance.PurchaseSummary
	Customers []finance.Subtotal
	Statuses  []model.StatusCount
}

// PurchaseUseCase manages purchase batches.
type PurchaseUseCase struct {
	purchases repository.PurchaseRepository
	orders    repository.OrderRepository
	now       func() time.Time
}

// NewPurchaseUseCase constructs PurchaseUseCase.
func NewPurchaseUseCase(purchases repository.PurchaseRepository, orders repository.OrderRepository) *PurchaseUseCase {
	return &PurchaseUseCase{purchases: purchases, orders: orders, now: time.Now}
}

func (u *PurchaseUseCase) Create(ctx context.Context, p *model.Purchase) error {
	if err := validatePurchase(p); err != nil {
		return err
	}
	return u.purchases.Create(ctx, p)
}

func (u *PurchaseUseCase) Update(ctx context.Context, p *model.Purchase) error {
	if err := validatePurchase(p); err != nil {
		return err
	}
	return u.purchases.Update(ctx, p)
}

// Delete removes purchase with all its orders.
func (u *PurchaseUseCase) Delete(ctx context.Context, id int64) error {
	return u.purchases.Delete(ctx, id)
}

func (u *PurchaseUseCase) Get(ctx context.Context, id int64) (*model.Purchase, error) {
	return u.purchases.GetByID(ctx, id)
}

func (u *PurchaseUseCase) Search(ctx context.Context, query, sort string) ([]model.Purchase, error) {
	return u.purchases.Search(ctx, query, sort)
}

// Close sets close date, today when date is nil.
func (u *PurchaseUseCase) Close(ctx context.Context, id int64, date *time.Time) (*model.Purchase, error) {
	return u.setDate(ctx, id, date, (*model.Purchase).Close)
}

// Open sets opening date and clears close date, today when date is nil.
func (u *PurchaseUseCase) Open(ctx context.Context, id int64, date *time.Time) (*model.Purchase, error) {
	return u.setDate(ctx, id, date, func(p *model.Purchase, at time.Time) {
		p.Open(at)
		p.ClosedDate = nil
	})
}

func (u *PurchaseUseCase) setDate(ctx context.Context, id int64, date *time.Time, apply func(*model.Purchase, time.Time)) (*model.Purchase, error) {
	purchase, err := u.purchases.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	at := u.now()
	if date != nil {
		at = *date
	}
	apply(purchase, at)
	if err := u.Update(ctx, purchase); err != nil {
		return nil, err
	}
	return purchase, nil
}

// Detail returns purchase with orders, totals, per-customer subtotals and status summary.
func (u *PurchaseUseCase) Detail(ctx context.Context, id int64, filter model.OrderFilter) (*PurchaseDetail, error) {
	purchase, err := u.purchases.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	all, err := u.orders.List(ctx, model.OrderFilter{PurchaseID: &id, Sort: "created_at"})
	if err != nil {
		return nil, err
	}
	statuses, err := u.orders.StatusSummary(ctx, model.OrderFilter{PurchaseID: &id})
	if err != nil {
		return nil, err
	}

	orders := all
	if !filter.IsEmpty() {
		filter.PurchaseID = &id
		if orders, err = u.orders.List(ctx, filter); err != nil {
			return nil, err
		}
	}

	return &PurchaseDetail{
		Purchase:  purchase,
		Orders:    orders,
		Summary:   finance.SummarizePurchase(purchase, all),
		Customers: finance.CustomerSubtotals(purchase, all),
		Statuses:  statuses,
	}, nil
}

// ExportOrders returns purchase with all its orders ordered by customer.
func (u *PurchaseUseCase) ExportOrders(ctx context.Context, id int64) (*model.Purchase, []model.Order, error) {
	purchase, err := u.purchases.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	orders, err := u.orders.List(ctx, model.OrderFilter{PurchaseID: &id, Sort: "customer_id"})
	if err != nil {
		return nil, nil, err
	}
	return purchase, orders, nil
}
