package handlers

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/buyout/internal/domain/model"
	"github.com/polkiloo/buyout/internal/usecase"
)

// CustomerFacade describes customer operations exposed via HTTP.
type CustomerFacade interface {
	SearchCustomers(ctx context.Context, query, sort string) ([]model.Customer, error)
	CreateCustomer(ctx context.Context, c *model.Customer) error
	UpdateCustomer(ctx context.Context, c *model.Customer) error
	DeleteCustomer(ctx context.Context, id int64) error
	CustomerDetail(ctx context.Context, id int64) (*usecase.CustomerDetail, error)
	CustomerPurchase(ctx context.Context, customerID, purchaseID int64) (*usecase.CustomerPurchase, error)
}

// MarketplaceFacade describes marketplace operations.
type MarketplaceFacade interface {
	Marketplaces(ctx context.Context) ([]model.Marketplace, error)
	Marketplace(ctx context.Context, id int64) (*model.Marketplace, error)
	CreateMarketplace(ctx context.Context, m *model.Marketplace) error
	UpdateMarketplace(ctx context.Context, m *model.Marketplace) error
	DeleteMarketplace(ctx context.Context, id int64) error
}

// PurchaseFacade describes purchase operations.
type PurchaseFacade interface {
	SearchPurchases(ctx context.Context, query, sort string) ([]model.Purchase, error)
	CreatePurchase(ctx context.Context, p *model.Purchase) error
	UpdatePurchase(ctx context.Context, p *model.Purchase) error
	DeletePurchase(ctx context.Context, id int64) error
	PurchaseDetail(ctx context.Context, id int64, filter model.OrderFilter) (*usecase.PurchaseDetail, error)
	ClosePurchase(ctx context.Context, id int64, date *time.Time) (*model.Purchase, error)
	OpenPurchase(ctx context.Context, id int64, date *time.Time) (*model.Purchase, error)
	PurchaseOrders(ctx context.Context, id int64) (*model.Purchase, []model.Order, error)
}

// OrderFacade describes order lifecycle operations.
type OrderFacade interface {
	Orders(ctx context.Context, filter model.OrderFilter) ([]model.Order, error)
	Order(ctx context.Context, id int64) (*model.Order, error)
	CreateOrder(ctx context.Context, o *model.Order) error
	UpdateOrder(ctx context.Context, o *model.Order) error
	DeleteOrder(ctx context.Context, id int64) error
	OrderSiblings(ctx context.Context, id int64) ([]model.Order, error)
	BuyOrder(ctx context.Context, id int64, buyPrice, exchange decimal.Decimal) (*model.Order, error)
	SetOrderTrack(ctx context.Context, id int64, track string) (*model.Order, error)
	SetOrderDelivered(ctx context.Context, id int64) (*model.Order, error)
	SetOrderArrived(ctx context.Context, id int64, weight int, siblings []int64) (*model.Order, int64, error)
	CancelOrder(ctx context.Context, id int64) (*model.Order, error)
}

// DashboardFacade provides overview data and service health.
type DashboardFacade interface {
	Dashboard(ctx context.Context) (*usecase.Dashboard, error)
	HealthCheck(ctx context.Context) error
}

// BuyoutFacade aggregates the full set of operations used across handlers.
type BuyoutFacade interface {
	CustomerFacade
	MarketplaceFacade
	PurchaseFacade
	OrderFacade
	DashboardFacade
}
