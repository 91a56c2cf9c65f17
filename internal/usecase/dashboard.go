package usecase

import (
	"context"

	"github.com/polkiloo/buyout/internal/config"
	"github.com/polkiloo/buyout/internal/domain/model"
	"github.com/polkiloo/buyout/internal/domain/repository"
	"github.com/polkiloo/buyout/internal/finance"
)

// OpenPurchase is an open purchase with its running totals.
type OpenPurchase struct {
	Purchase model.Purchase
	Summary  finance.PurchaseSummary
}

// Dashboard is overview of recent activity.
type Dashboard struct {
	LatestOrders []model.Order
	Purchases    []OpenPurchase
	Statuses     []model.StatusCount
}

// DashboardUseCase builds overview page data.
type DashboardUseCase struct {
	orders    repository.OrderRepository
	purchases repository.PurchaseRepository
	limit     int
}

// NewDashboardUseCase constructs DashboardUseCase.
func NewDashboardUseCase(orders repository.OrderRepository, purchases repository.PurchaseRepository, cfg *config.Config) *DashboardUseCase {
	limit := config.DefaultDashboardLimit
	if cfg != nil && cfg.DashboardLimit > 0 {
		limit = cfg.DashboardLimit
	}
	return &DashboardUseCase{orders: orders, purchases: purchases, limit: limit}
}

// Overview returns latest orders, open purchases with totals and overall status summary.
func (u *DashboardUseCase) Overview(ctx context.Context) (*Dashboard, error) {
	latest, err := u.orders.List(ctx, model.OrderFilter{Sort: "-created_at", Limit: u.limit})
	if err != nil {
		return nil, err
	}

	opened, err := u.purchases.ListOpened(ctx)
	if err != nil {
		return nil, err
	}
	purchases := make([]OpenPurchase, 0, len(opened))
	for i := range opened {
		p := &opened[i]
		orders, err := u.orders.List(ctx, model.OrderFilter{PurchaseID: &p.ID})
		if err != nil {
			return nil, err
		}
		purchases = append(purchases, OpenPurchase{Purchase: *p, Summary: finance.SummarizePurchase(p, orders)})
	}

	statuses, err := u.orders.StatusSummary(ctx, model.OrderFilter{})
	if err != nil {
		return nil, err
	}
	return &Dashboard{LatestOrders: latest, Purchases: purchases, Statuses: statuses}, nil
}
