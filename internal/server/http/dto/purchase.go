package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/buyout/internal/domain/model"
	"github.com/polkiloo/buyout/internal/finance"
)

// PurchaseRequest describes purchase create/update payload.
type PurchaseRequest struct {
	Title             string              `json:"title" binding:"required,max=255"`
	OpenedDate        *time.Time          `json:"opened_date"`
	ClosedDate        *time.Time          `json:"closed_date"`
	Weight            decimal.NullDecimal `json:"weight"`
	DeliveryCostMain  decimal.NullDecimal `json:"delivery_cost_main"`
	DeliveryCostLocal decimal.NullDecimal `json:"delivery_cost_local"`
	OtherExpenses     decimal.Decimal     `json:"other_expenses"`
	Exchange          decimal.Decimal     `json:"exchange"`
}

// Model converts request into domain purchase.
func (r PurchaseRequest) Model(id int64) *model.Purchase {
	return &model.Purchase{
		ID:                id,
		Title:             r.Title,
		OpenedDate:        r.OpenedDate,
		ClosedDate:        r.ClosedDate,
		Weight:            r.Weight,
		DeliveryCostMain:  r.DeliveryCostMain,
		DeliveryCostLocal: r.DeliveryCostLocal,
		OtherExpenses:     r.OtherExpenses,
		Exchange:          r.Exchange,
	}
}

// PurchaseDateRequest optionally overrides date of close/open actions.
type PurchaseDateRequest struct {
	Date *time.Time `json:"date"`
}

// PurchaseResponse represents purchase.
type PurchaseResponse struct {
	ID                int64               `json:"id"`
	Title             string              `json:"title"`
	OpenedDate        *time.Time          `json:"opened_date"`
	ClosedDate        *time.Time          `json:"closed_date"`
	IsOpened          bool                `json:"is_opened"`
	Weight            decimal.NullDecimal `json:"weight"`
	DeliveryCostMain  decimal.NullDecimal `json:"delivery_cost_main"`
	DeliveryCostLocal decimal.NullDecimal `json:"delivery_cost_local"`
	OtherExpenses     decimal.Decimal     `json:"other_expenses"`
	Exchange          decimal.Decimal     `json:"exchange"`
	CreatedAt         time.Time           `json:"created_at"`
}

// NewPurchaseResponse converts domain purchase.
func NewPurchaseResponse(p *model.Purchase) PurchaseResponse {
	return PurchaseResponse{
		ID:                p.ID,
		Title:             p.Title,
		OpenedDate:        p.OpenedDate,
		ClosedDate:        p.ClosedDate,
		IsOpened:          p.IsOpened(),
		Weight:            p.Weight,
		DeliveryCostMain:  p.DeliveryCostMain,
		DeliveryCostLocal: p.DeliveryCostLocal,
		OtherExpenses:     p.OtherExpenses,
		Exchange:          p.Exchange,
		CreatedAt:         p.CreatedAt,
	}
}

// NewPurchaseResponses converts a purchase list.
func NewPurchaseResponses(purchases []model.Purchase) []PurchaseResponse {
	resp := make([]PurchaseResponse, 0, len(purchases))
	for i := range purchases {
		resp = append(resp, NewPurchaseResponse(&purchases[i]))
	}
	return resp
}

// SummaryResponse carries purchase totals.
type SummaryResponse struct {
	TotalAmount           decimal.Decimal `json:"total_amount"`
	TotalAmountInCurrency decimal.Decimal `json:"total_amount_in_currency"`
	TotalTaxAmount        decimal.Decimal `json:"total_tax_amount"`
	TotalDifferenceAmount decimal.Decimal `json:"total_difference_amount"`
	TotalProfit           decimal.Decimal `json:"total_profit"`
	NumberOfOrders        int             `json:"number_of_orders"`
	NumberOfCustomers     int             `json:"number_of_customers"`
	OrdersWeight          int             `json:"orders_weight"`
}

// NewSummaryResponse converts purchase totals.
func NewSummaryResponse(s finance.PurchaseSummary) SummaryResponse {
	return SummaryResponse{
		TotalAmount:           s.TotalAmount,
		TotalAmountInCurrency: s.TotalAmountInCurrency,
		TotalTaxAmount:        s.TotalTaxAmount,
		TotalDifferenceAmount: s.TotalDifferenceAmount,
		TotalProfit:           s.TotalProfit,
		NumberOfOrders:        s.NumberOfOrders,
		NumberOfCustomers:     s.NumberOfCustomers,
		OrdersWeight:          s.OrdersWeight,
	}
}

// SubtotalResponse is order total of a customer or purchase group.
type SubtotalResponse struct {
	ID            int64           `json:"id"`
	Title         string          `json:"title"`
	Exchange      decimal.Decimal `json:"exchange"`
	Total         int             `json:"total"`
	Sum           decimal.Decimal `json:"sum"`
	SumInCurrency decimal.Decimal `json:"sum_in_currency"`
	Tax           decimal.Decimal `json:"tax"`
	TaxInCurrency decimal.Decimal `json:"tax_in_currency"`
}

// NewSubtotalResponses converts grouped subtotals.
func NewSubtotalResponses(subtotals []finance.Subtotal) []SubtotalResponse {
	resp := make([]SubtotalResponse, 0, len(subtotals))
	for _, s := range subtotals {
		resp = append(resp, SubtotalResponse{
			ID:            s.ID,
			Title:         s.Title,
			Exchange:      s.Exchange,
			Total:         s.Total,
			Sum:           s.Sum,
			SumInCurrency: s.SumInCurrency,
			Tax:           s.Tax,
			TaxInCurrency: s.TaxInCurrency,
		})
	}
	return resp
}

// PurchaseDetailResponse is purchase page payload.
type PurchaseDetailResponse struct {
	Purchase  PurchaseResponse      `json:"purchase"`
	Summary   SummaryResponse       `json:"summary"`
	Customers []SubtotalResponse    `json:"customers"`
	Statuses  []StatusCountResponse `json:"statuses"`
	Orders    []OrderResponse       `json:"orders"`
}
