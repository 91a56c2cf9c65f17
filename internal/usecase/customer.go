package usecase

import (
	"context"

	"github.com/polkiloo/buyout/internal/domain/model"
	"github.com/polkiloo/buyout/internal/domain/repository"
	"github.com/polkiloo/buyout/internal/finance"
)

// CustomerDetail is customer with per-purchase subtotals.
type CustomerDetail struct {
	Customer  *model.Customer
	Purchases []finance.Subtotal
}

// CustomerPurchase is customer orders within a single purchase.
type CustomerPurchase struct {
	Customer *model.Customer
	Purchase *model.Purchase
	Orders   []model.Order
	Summary  []model.StatusCount
}

// CustomerUseCase manages customers.
type CustomerUseCase struct {
	customers repository.CustomerRepository
	purchases repository.PurchaseRepository
	orders    repository.OrderRepository
}

// NewCustomerUseCase constructs CustomerUseCase.
func NewCustomerUseCase(
	customers repository.CustomerRepository,
	purchases repository.PurchaseRepository,
	orders repository.OrderRepository,
) *CustomerUseCase {
	return &CustomerUseCase{customers: customers, purchases: purchases, orders: orders}
}

func (u *CustomerUseCase) Create(ctx context.Context, c *model.Customer) error {
	if err := validateCustomer(c); err != nil {
		return err
	}
	return u.customers.Create(ctx, c)
}

func (u *CustomerUseCase) Update(ctx context.Context, c *model.Customer) error {
	if err := validateCustomer(c); err != nil {
		return err
	}
	return u.customers.Update(ctx, c)
}

// Delete fails with ErrInUse while customer still has orders.
func (u *CustomerUseCase) Delete(ctx context.Context, id int64) error {
	return u.customers.Delete(ctx, id)
}

func (u *CustomerUseCase) Get(ctx context.Context, id int64) (*model.Customer, error) {
	return u.customers.GetByID(ctx, id)
}

func (u *CustomerUseCase) Search(ctx context.Context, query, sort string) ([]model.Customer, error) {
	return u.customers.Search(ctx, query, sort)
}

// Detail returns customer with order subtotals grouped by purchase.
func (u *CustomerUseCase) Detail(ctx context.Context, id int64) (*CustomerDetail, error) {
	customer, err := u.customers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	orders, err := u.orders.ListByCustomer(ctx, id, nil)
	if err != nil {
		return nil, err
	}
	return &CustomerDetail{Customer: customer, Purchases: finance.PurchaseSubtotals(customer, orders)}, nil
}

// PurchaseOrders returns customer orders of the purchase with status summary.
func (u *CustomerUseCase) PurchaseOrders(ctx context.Context, customerID, purchaseID int64) (*CustomerPurchase, error) {
	customer, err := u.customers.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	purchase, err := u.purchases.GetByID(ctx, purchaseID)
	if err != nil {
		return nil, err
	}
	orders, err := u.orders.ListByCustomer(ctx, customerID, &purchaseID)
	if err != nil {
		return nil, err
	}
	summary, err := u.orders.StatusSummary(ctx, model.OrderFilter{CustomerID: &customerID, PurchaseID: &purchaseID})
	if err != nil {
		return nil, err
	}
	return &CustomerPurchase{Customer: customer, Purchase: purchase, Orders: orders, Summary: summary}, nil
}
