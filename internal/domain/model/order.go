package model

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus describes order lifecycle. Values are persisted as integers.
type OrderStatus int

const (
	OrderStatusDraft OrderStatus = iota
	OrderStatusBought
	OrderStatusInDelivery
	OrderStatusDelivered
	OrderStatusArrived
	OrderStatusCancelled
)

var orderStatusLabels = map[OrderStatus]string{
	OrderStatusDraft:      "Placed",
	OrderStatusBought:     "Bought",
	OrderStatusInDelivery: "Shipping to carrier",
	OrderStatusDelivered:  "Delivered to carrier",
	OrderStatusArrived:    "Arrived at pickup point",
	OrderStatusCancelled:  "Cancelled",
}

// OrderStatuses lists statuses in their natural order.
func OrderStatuses() []OrderStatus {
	return []OrderStatus{
		OrderStatusDraft,
		OrderStatusBought,
		OrderStatusInDelivery,
		OrderStatusDelivered,
		OrderStatusArrived,
		OrderStatusCancelled,
	}
}

// Valid reports whether status is a known value.
func (s OrderStatus) Valid() bool {
	_, ok := orderStatusLabels[s]
	return ok
}

// Label returns human readable status name.
func (s OrderStatus) Label() string {
	if label, ok := orderStatusLabels[s]; ok {
		return label
	}
	return "Unknown"
}

func (s OrderStatus) String() string {
	return s.Label()
}

// CanTransitionTo reports whether the lifecycle allows moving to next.
// Statuses only move forward; re-applying the current status is allowed.
// Cancelled is terminal and cannot be reached from Arrived.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if !s.Valid() || !next.Valid() {
		return false
	}
	if s == next {
		return true
	}
	switch {
	case s == OrderStatusCancelled:
		return false
	case next == OrderStatusCancelled:
		return s != OrderStatusArrived
	default:
		return next > s
	}
}

// ParseOrderStatus converts persisted integer representation.
func ParseOrderStatus(raw string) (OrderStatus, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, false
	}
	status := OrderStatus(n)
	return status, status.Valid()
}

// Order is a single item bought on behalf of a customer within a purchase.
type Order struct {
	ID            int64
	Title         string
	ImagePath     *string
	OrderPrice    decimal.Decimal
	BuyPrice      decimal.Decimal
	Exchange      decimal.Decimal
	Weight        int
	TrackNumber   *string
	URL           string
	PurchaseID    int64
	CustomerID    int64
	MarketplaceID *int64
	Status        OrderStatus
	BuyedAt       *time.Time
	CreatedAt     time.Time

	Purchase    *Purchase
	Customer    *Customer
	Marketplace *Marketplace
}

// Track returns track number or empty string when not assigned.
func (o *Order) Track() string {
	if o.TrackNumber == nil {
		return ""
	}
	return *o.TrackNumber
}

// OrderFilter narrows order listings. Nil fields are ignored.
type OrderFilter struct {
	Query         string
	CustomerID    *int64
	MarketplaceID *int64
	PurchaseID    *int64
	Status        *OrderStatus
	Sort          string
	Limit         int
}

// IsEmpty reports whether no filtering criteria were supplied.
func (f OrderFilter) IsEmpty() bool {
	return strings.TrimSpace(f.Query) == "" &&
		f.CustomerID == nil &&
		f.MarketplaceID == nil &&
		f.PurchaseID == nil &&
		f.Status == nil
}

// StatusCount is number of orders in a given status.
type StatusCount struct {
	Status OrderStatus
	Total  int
}

// OrderFields carries optional column updates applied together with a status change.
type OrderFields struct {
	BuyPrice    *decimal.Decimal
	Exchange    *decimal.Decimal
	TrackNumber *string
	Weight      *int
	BuyedAt     *time.Time
}
