package app

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/buyout/internal/domain/model"
	"github.com/polkiloo/buyout/internal/usecase"
)

// HealthChecker reports storage availability.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// BuyoutFacade exposes use cases to the transport layer.
type BuyoutFacade struct {
	customers    *usecase.CustomerUseCase
	marketplaces *usecase.MarketplaceUseCase
	purchases    *usecase.PurchaseUseCase
	orders       *usecase.OrderUseCase
	dashboard    *usecase.DashboardUseCase
	health       HealthChecker
}

// NewBuyoutFacade constructs BuyoutFacade.
func NewBuyoutFacade(
	customers *usecase.CustomerUseCase,
	marketplaces *usecase.MarketplaceUseCase,
	purchases *usecase.PurchaseUseCase,
	orders *usecase.OrderUseCase,
	dashboard *usecase.DashboardUseCase,
	health HealthChecker,
) *BuyoutFacade {
	return &BuyoutFacade{
		customers:    customers,
		marketplaces: marketplaces,
		purchases:    purchases,
		orders:       orders,
		dashboard:    dashboard,
		health:       health,
	}
}

func (f *BuyoutFacade) SearchCustomers(ctx context.Context, query, sort string) ([]model.Customer, error) {
	return f.customers.Search(ctx, query, sort)
}

func (f *BuyoutFacade) CreateCustomer(ctx context.Context, c *model.Customer) error {
	return f.customers.Create(ctx, c)
}

func (f *BuyoutFacade) UpdateCustomer(ctx context.Context, c *model.Customer) error {
	return f.customers.Update(ctx, c)
}

func (f *BuyoutFacade) DeleteCustomer(ctx context.Context, id int64) error {
	return f.customers.Delete(ctx, id)
}

func (f *BuyoutFacade) CustomerDetail(ctx context.Context, id int64) (*usecase.CustomerDetail, error) {
	return f.customers.Detail(ctx, id)
}

func (f *BuyoutFacade) CustomerPurchase(ctx context.Context, customerID, purchaseID int64) (*usecase.CustomerPurchase, error) {
	return f.customers.PurchaseOrders(ctx, customerID, purchaseID)
}

func (f *BuyoutFacade) Marketplaces(ctx context.Context) ([]model.Marketplace, error) {
	return f.marketplaces.List(ctx)
}

func (f *BuyoutFacade) Marketplace(ctx context.Context, id int64) (*model.Marketplace, error) {
	return f.marketplaces.Get(ctx, id)
}

func (f *BuyoutFacade) CreateMarketplace(ctx context.Context, m *model.Marketplace) error {
	return f.marketplaces.Create(ctx, m)
}

func (f *BuyoutFacade) UpdateMarketplace(ctx context.Context, m *model.Marketplace) error {
	return f.marketplaces.Update(ctx, m)
}

func (f *BuyoutFacade) DeleteMarketplace(ctx context.Context, id int64) error {
	return f.marketplaces.Delete(ctx, id)
}

func (f *BuyoutFacade) SearchPurchases(ctx context.Context, query, sort string) ([]model.Purchase, error) {
	return f.purchases.Search(ctx, query, sort)
}

func (f *BuyoutFacade) CreatePurchase(ctx context.Context, p *model.Purchase) error {
	return f.purchases.Create(ctx, p)
}

func (f *BuyoutFacade) UpdatePurchase(ctx context.Context, p *model.Purchase) error {
	return f.purchases.Update(ctx, p)
}

func (f *BuyoutFacade) DeletePurchase(ctx context.Context, id int64) error {
	return f.purchases.Delete(ctx, id)
}

func (f *BuyoutFacade) PurchaseDetail(ctx context.Context, id int64, filter model.OrderFilter) (*usecase.PurchaseDetail, error) {
	return f.purchases.Detail(ctx, id, filter)
}

func (f *BuyoutFacade) ClosePurchase(ctx context.Context, id int64, date *time.Time) (*model.Purchase, error) {
	return f.purchases.Close(ctx, id, date)
}

func (f *BuyoutFacade) OpenPurchase(ctx context.Context, id int64, date *time.Time) (*model.Purchase, error) {
	return f.purchases.Open(ctx, id, date)
}

func (f *BuyoutFacade) PurchaseOrders(ctx context.Context, id int64) (*model.Purchase, []model.Order, error) {
	return f.purchases.ExportOrders(ctx, id)
}

func (f *BuyoutFacade) Orders(ctx context.Context, filter model.OrderFilter) ([]model.Order, error) {
	return f.orders.List(ctx, filter)
}

func (f *BuyoutFacade) Order(ctx context.Context, id int64) (*model.Order, error) {
	return f.orders.Get(ctx, id)
}

func (f *BuyoutFacade) CreateOrder(ctx context.Context, o *model.Order) error {
	return f.orders.Create(ctx, o)
}

func (f *BuyoutFacade) UpdateOrder(ctx context.Context, o *model.Order) error {
	return f.orders.Update(ctx, o)
}

func (f *BuyoutFacade) DeleteOrder(ctx context.Context, id int64) error {
	return f.orders.Delete(ctx, id)
}

func (f *BuyoutFacade) OrderSiblings(ctx context.Context, id int64) ([]model.Order, error) {
	return f.orders.Siblings(ctx, id)
}

func (f *BuyoutFacade) BuyOrder(ctx context.Context, id int64, buyPrice, exchange decimal.Decimal) (*model.Order, error) {
	return f.orders.Buy(ctx, id, buyPrice, exchange)
}

func (f *BuyoutFacade) SetOrderTrack(ctx context.Context, id int64, track string) (*model.Order, error) {
	return f.orders.SetTrackNumber(ctx, id, track)
}

func (f *BuyoutFacade) SetOrderDelivered(ctx context.Context, id int64) (*model.Order, error) {
	return f.orders.SetDelivered(ctx, id)
}

func (f *BuyoutFacade) SetOrderArrived(ctx context.Context, id int64, weight int, siblings []int64) (*model.Order, int64, error) {
	return f.orders.SetArrived(ctx, id, weight, siblings)
}

func (f *BuyoutFacade) CancelOrder(ctx context.Context, id int64) (*model.Order, error) {
	return f.orders.Cancel(ctx, id)
}

func (f *BuyoutFacade) Dashboard(ctx context.Context) (*usecase.Dashboard, error) {
	return f.dashboard.Overview(ctx)
}

// HealthCheck pings storage.
func (f *BuyoutFacade) HealthCheck(ctx context.Context) error {
	if f.health == nil {
		return nil
	}
	return f.health.HealthCheck(ctx)
}
