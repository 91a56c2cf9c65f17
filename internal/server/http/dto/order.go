package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/buyout/internal/domain/model"
	"github.com/polkiloo/buyout/internal/finance"
)

// OrderRequest describes order create/update payload.
type OrderRequest struct {
	Title         string          `json:"title" binding:"required,max=255"`
	URL           string          `json:"url" binding:"required,max=2048"`
	ImagePath     *string         `json:"image_path"`
	OrderPrice    decimal.Decimal `json:"order_price"`
	BuyPrice      decimal.Decimal `json:"buy_price"`
	Exchange      decimal.Decimal `json:"exchange"`
	Weight        int             `json:"weight" binding:"gte=0"`
	TrackNumber   *string         `json:"track_number" binding:"omitempty,max=255"`
	PurchaseID    int64           `json:"purchase_id"`
	CustomerID    int64           `json:"customer_id"`
	MarketplaceID *int64          `json:"marketplace_id"`
	Status        int             `json:"status" binding:"gte=0"`
}

// Model converts request into domain order.
func (r OrderRequest) Model(id int64) *model.Order {
	return &model.Order{
		ID:            id,
		Title:         r.Title,
		URL:           r.URL,
		ImagePath:     emptyToNil(r.ImagePath),
		OrderPrice:    r.OrderPrice,
		BuyPrice:      r.BuyPrice,
		Exchange:      r.Exchange,
		Weight:        r.Weight,
		TrackNumber:   emptyToNil(r.TrackNumber),
		PurchaseID:    r.PurchaseID,
		CustomerID:    r.CustomerID,
		MarketplaceID: r.MarketplaceID,
		Status:        model.OrderStatus(r.Status),
	}
}

// BuyRequest carries actual buy price and rate.
type BuyRequest struct {
	BuyPrice decimal.Decimal `json:"buy_price"`
	Exchange decimal.Decimal `json:"exchange"`
}

// TrackRequest carries carrier track number.
type TrackRequest struct {
	TrackNumber string `json:"track_number" binding:"required,max=255"`
}

// ArrivedRequest carries measured weight and sibling orders arriving in the same parcel.
type ArrivedRequest struct {
	Weight      int     `json:"weight" binding:"gte=0"`
	TrackOrders []int64 `json:"track_orders"`
}

// ArrivedResponse reports the arrived order and cascaded sibling count.
type ArrivedResponse struct {
	Order           OrderResponse `json:"order"`
	SiblingsUpdated int64         `json:"siblings_updated"`
}

// OrderResponse represents order with derived financial figures.
type OrderResponse struct {
	ID            int64      `json:"id"`
	Title         string     `json:"title"`
	URL           string     `json:"url"`
	ImagePath     *string    `json:"image_path"`
	TrackNumber   *string    `json:"track_number"`
	Weight        int        `json:"weight"`
	Status        int        `json:"status"`
	StatusLabel   string     `json:"status_label"`
	PurchaseID    int64      `json:"purchase_id"`
	PurchaseTitle string     `json:"purchase_title,omitempty"`
	CustomerID    int64      `json:"customer_id"`
	CustomerName  string     `json:"customer_name,omitempty"`
	MarketplaceID *int64     `json:"marketplace_id"`
	Marketplace   string     `json:"marketplace,omitempty"`
	BuyedAt       *time.Time `json:"buyed_at"`
	CreatedAt     time.Time  `json:"created_at"`

	OrderPrice                 decimal.Decimal     `json:"order_price"`
	BuyPrice                   decimal.Decimal     `json:"buy_price"`
	Exchange                   decimal.Decimal     `json:"exchange"`
	ExchangeRate               decimal.Decimal     `json:"exchange_rate"`
	OrderExchangePrice         decimal.Decimal     `json:"order_exchange_price"`
	BuyExchangePrice           decimal.Decimal     `json:"buy_exchange_price"`
	CustomerOrderExchangePrice decimal.Decimal     `json:"customer_order_exchange_price"`
	Tax                        decimal.Decimal     `json:"tax"`
	DifferenceTaxInCurrency    decimal.Decimal     `json:"difference_tax_in_currency"`
	Difference                 decimal.NullDecimal `json:"difference"`
	DifferenceInCurrency       decimal.Decimal     `json:"difference_in_currency"`
	ProfitSpread               decimal.Decimal     `json:"profit_spread"`
	TotalProfit                decimal.Decimal     `json:"total_profit"`
}

// NewOrderResponse converts domain order computing its figures.
func NewOrderResponse(o *model.Order) OrderResponse {
	figures := finance.Calculate(o)
	resp := OrderResponse{
		ID:            o.ID,
		Title:         o.Title,
		URL:           o.URL,
		ImagePath:     o.ImagePath,
		TrackNumber:   o.TrackNumber,
		Weight:        o.Weight,
		Status:        int(o.Status),
		StatusLabel:   o.Status.Label(),
		PurchaseID:    o.PurchaseID,
		CustomerID:    o.CustomerID,
		MarketplaceID: o.MarketplaceID,
		BuyedAt:       o.BuyedAt,
		CreatedAt:     o.CreatedAt,

		OrderPrice:                 o.OrderPrice,
		BuyPrice:                   o.BuyPrice,
		Exchange:                   o.Exchange,
		ExchangeRate:               figures.ExchangeRate,
		OrderExchangePrice:         figures.OrderExchangePrice,
		BuyExchangePrice:           figures.BuyExchangePrice,
		CustomerOrderExchangePrice: figures.CustomerOrderExchangePrice,
		Tax:                        figures.Tax,
		DifferenceTaxInCurrency:    figures.DifferenceTaxInCurrency,
		Difference:                 figures.Difference,
		DifferenceInCurrency:       figures.DifferenceInCurrency,
		ProfitSpread:               figures.ProfitSpread,
		TotalProfit:                figures.TotalProfit,
	}
	if o.Purchase != nil {
		resp.PurchaseTitle = o.Purchase.Title
	}
	if o.Customer != nil {
		resp.CustomerName = o.Customer.Name
	}
	if o.Marketplace != nil {
		resp.Marketplace = o.Marketplace.Title
	}
	return resp
}

// NewOrderResponses converts an order list.
func NewOrderResponses(orders []model.Order) []OrderResponse {
	resp := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		resp = append(resp, NewOrderResponse(&orders[i]))
	}
	return resp
}

// StatusCountResponse is number of orders in a status.
type StatusCountResponse struct {
	Status int    `json:"status"`
	Label  string `json:"label"`
	Total  int    `json:"total"`
}

// NewStatusCountResponses converts status summary.
func NewStatusCountResponses(counts []model.StatusCount) []StatusCountResponse {
	resp := make([]StatusCountResponse, 0, len(counts))
	for _, c := range counts {
		resp = append(resp, StatusCountResponse{Status: int(c.Status), Label: c.Status.Label(), Total: c.Total})
	}
	return resp
}
