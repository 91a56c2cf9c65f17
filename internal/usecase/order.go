package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/buyout/internal/domain/errors"
	"github.com/polkiloo/buyout/internal/domain/model"
	"github.com/polkiloo/buyout/internal/domain/repository"
	"github.com/polkiloo/buyout/internal/finance"
)

// StatusObserver receives applied status transitions.
type StatusObserver interface {
	ObserveTransition(status model.OrderStatus, orders int)
}

// OrderUseCase encapsulates order lifecycle logic.
type OrderUseCase struct {
	orders       repository.OrderRepository
	purchases    repository.PurchaseRepository
	customers    repository.CustomerRepository
	marketplaces repository.MarketplaceRepository
	logger       *slog.Logger
	observer     StatusObserver
	now          func() time.Time
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(
	orders repository.OrderRepository,
	purchases repository.PurchaseRepository,
	customers repository.CustomerRepository,
	marketplaces repository.MarketplaceRepository,
	logger *slog.Logger,
	observer StatusObserver,
) *OrderUseCase {
	return &OrderUseCase{
		orders:       orders,
		purchases:    purchases,
		customers:    customers,
		marketplaces: marketplaces,
		logger:       logger,
		observer:     observer,
		now:          time.Now,
	}
}

// Create registers a new placed order and assigns marketplace by URL prefix.
func (u *OrderUseCase) Create(ctx context.Context, o *model.Order) error {
	o.Status = model.OrderStatusDraft
	o.BuyPrice = decimal.Zero
	o.Exchange = decimal.Zero
	o.Weight = 0
	o.TrackNumber = nil
	o.BuyedAt = nil
	if err := validateOrder(o); err != nil {
		return err
	}
	if err := u.checkRelations(ctx, o); err != nil {
		return err
	}

	marketplaces, err := u.marketplaces.List(ctx)
	if err != nil {
		return err
	}
	finance.SortMarketplaces(marketplaces)
	if m := finance.ClassifyMarketplace(o.URL, marketplaces); m != nil {
		id := m.ID
		o.MarketplaceID = &id
	}

	now := u.now()
	o.CreatedAt = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if err := u.orders.Create(ctx, o); err != nil {
		return err
	}
	u.logger.Info("order created",
		slog.Int64("order_id", o.ID),
		slog.Int64("purchase_id", o.PurchaseID),
		slog.Bool("marketplace_assigned", o.MarketplaceID != nil))
	return nil
}

// Update saves edited order. Marketplace is kept as supplied and never reclassified.
func (u *OrderUseCase) Update(ctx context.Context, o *model.Order) error {
	current, err := u.orders.GetByID(ctx, o.ID)
	if err != nil {
		return err
	}
	if err := validateOrder(o); err != nil {
		return err
	}
	if !current.Status.CanTransitionTo(o.Status) {
		return transitionError(current.Status, o.Status)
	}
	if err := u.checkRelations(ctx, o); err != nil {
		return err
	}
	o.CreatedAt = current.CreatedAt
	o.BuyedAt = current.BuyedAt
	if err := u.orders.Update(ctx, o); err != nil {
		return err
	}
	if current.Status != o.Status {
		u.observe(o.Status, 1)
	}
	return nil
}

func (u *OrderUseCase) checkRelations(ctx context.Context, o *model.Order) error {
	if _, err := u.purchases.GetByID(ctx, o.PurchaseID); err != nil {
		return relationError("purchase_id", err)
	}
	if _, err := u.customers.GetByID(ctx, o.CustomerID); err != nil {
		return relationError("customer_id", err)
	}
	if o.MarketplaceID != nil {
		if _, err := u.marketplaces.GetByID(ctx, *o.MarketplaceID); err != nil {
			return relationError("marketplace_id", err)
		}
	}
	return nil
}

func (u *OrderUseCase) Delete(ctx context.Context, id int64) error {
	return u.orders.Delete(ctx, id)
}

func (u *OrderUseCase) Get(ctx context.Context, id int64) (*model.Order, error) {
	return u.orders.GetByID(ctx, id)
}

func (u *OrderUseCase) List(ctx context.Context, filter model.OrderFilter) ([]model.Order, error) {
	return u.orders.List(ctx, filter)
}

// Siblings lists orders sharing track number with the order inside its purchase.
func (u *OrderUseCase) Siblings(ctx context.Context, id int64) ([]model.Order, error) {
	order, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.orders.TrackSiblings(ctx, order)
}

// Buy marks order bought with actual price and exchange rate.
func (u *OrderUseCase) Buy(ctx context.Context, id int64, buyPrice, exchange decimal.Decimal) (*model.Order, error) {
	if buyPrice.IsNegative() {
		return nil, domainErrors.NewValidationError("buy_price", "must not be negative")
	}
	if exchange.IsNegative() {
		return nil, domainErrors.NewValidationError("exchange", "must not be negative")
	}
	at := u.now()
	return u.transition(ctx, id, model.OrderStatusBought, model.OrderFields{
		BuyPrice: &buyPrice,
		Exchange: &exchange,
		BuyedAt:  &at,
	})
}

// SetTrackNumber stores carrier track number and moves order into delivery.
func (u *OrderUseCase) SetTrackNumber(ctx context.Context, id int64, track string) (*model.Order, error) {
	track = strings.TrimSpace(track)
	if err := required("track_number", track); err != nil {
		return nil, err
	}
	return u.transition(ctx, id, model.OrderStatusInDelivery, model.OrderFields{TrackNumber: &track})
}

// SetDelivered marks order handed to carrier.
func (u *OrderUseCase) SetDelivered(ctx context.Context, id int64) (*model.Order, error) {
	return u.transition(ctx, id, model.OrderStatusDelivered, model.OrderFields{})
}

// Cancel moves order into terminal cancelled status.
func (u *OrderUseCase) Cancel(ctx context.Context, id int64) (*model.Order, error) {
	return u.transition(ctx, id, model.OrderStatusCancelled, model.OrderFields{})
}

// SetArrived marks order arrived with measured weight. Selected siblings sharing
// the track number are marked arrived with zero weight. Returns sibling count updated.
func (u *OrderUseCase) SetArrived(ctx context.Context, id int64, weight int, siblingIDs []int64) (*model.Order, int64, error) {
	if weight < 0 {
		return nil, 0, domainErrors.NewValidationError("weight", "must not be negative")
	}
	order, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return nil, 0, err
	}
	if !order.Status.CanTransitionTo(model.OrderStatusArrived) {
		return nil, 0, transitionError(order.Status, model.OrderStatusArrived)
	}

	ids, err := u.validateSiblings(ctx, order, siblingIDs)
	if err != nil {
		return nil, 0, err
	}

	updated, err := u.orders.MarkArrived(ctx, id, weight, ids)
	if err != nil {
		return nil, 0, err
	}
	u.observe(model.OrderStatusArrived, 1+int(updated))
	u.logger.Info("order arrived",
		slog.Int64("order_id", id),
		slog.Int("weight", weight),
		slog.Int64("siblings_updated", updated))

	order, err = u.orders.GetByID(ctx, id)
	if err != nil {
		return nil, 0, err
	}
	return order, updated, nil
}

// validateSiblings deduplicates ids and checks each one is a track sibling of the order
// that may still move to arrived.
func (u *OrderUseCase) validateSiblings(ctx context.Context, order *model.Order, siblingIDs []int64) ([]int64, error) {
	if len(siblingIDs) == 0 {
		return nil, nil
	}
	siblings, err := u.orders.TrackSiblings(ctx, order)
	if err != nil {
		return nil, err
	}
	allowed := make(map[int64]model.OrderStatus, len(siblings))
	for _, s := range siblings {
		allowed[s.ID] = s.Status
	}

	seen := make(map[int64]bool, len(siblingIDs))
	ids := make([]int64, 0, len(siblingIDs))
	for _, id := range siblingIDs {
		status, ok := allowed[id]
		if !ok {
			return nil, domainErrors.NewValidationError("track_orders",
				fmt.Sprintf("order %d does not share track number with order %d", id, order.ID))
		}
		if !status.CanTransitionTo(model.OrderStatusArrived) {
			return nil, domainErrors.NewValidationError("track_orders",
				fmt.Sprintf("order %d is %s and cannot arrive", id, status.Label()))
		}
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (u *OrderUseCase) transition(ctx context.Context, id int64, next model.OrderStatus, fields model.OrderFields) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !order.Status.CanTransitionTo(next) {
		return nil, transitionError(order.Status, next)
	}
	if err := u.orders.UpdateStatus(ctx, id, next, fields); err != nil {
		return nil, err
	}
	u.observe(next, 1)
	u.logger.Info("order status changed",
		slog.Int64("order_id", id),
		slog.String("from", order.Status.String()),
		slog.String("to", next.String()))
	return u.orders.GetByID(ctx, id)
}

func (u *OrderUseCase) observe(status model.OrderStatus, orders int) {
	if u.observer != nil {
		u.observer.ObserveTransition(status, orders)
	}
}

func transitionError(from, to model.OrderStatus) error {
	return fmt.Errorf("%w: %s -> %s", domainErrors.ErrInvalidTransition, from, to)
}
