package finance

import (
	"github.com/shopspring/decimal"

	"github.com/polkiloo/buyout/internal/domain/model"
)

// PurchaseSummary aggregates order figures of a purchase.
type PurchaseSummary struct {
	TotalAmount           decimal.Decimal
	TotalAmountInCurrency decimal.Decimal
	TotalTaxAmount        decimal.Decimal
	TotalDifferenceAmount decimal.Decimal
	TotalProfit           decimal.Decimal
	NumberOfOrders        int
	NumberOfCustomers     int
	OrdersWeight          int
}

// SummarizePurchase sums the figures of orders belonging to p and
// subtracts the purchase expenses from the profit.
func SummarizePurchase(p *model.Purchase, orders []model.Order) PurchaseSummary {
	summary := PurchaseSummary{
		TotalAmount:           decimal.Zero,
		TotalTaxAmount:        decimal.Zero,
		TotalDifferenceAmount: decimal.Zero,
	}
	customers := make(map[int64]struct{})

	for i := range orders {
		o := withPurchase(&orders[i], p)
		summary.TotalAmount = summary.TotalAmount.Add(o.OrderPrice)
		summary.TotalTaxAmount = summary.TotalTaxAmount.Add(DifferenceTaxInCurrency(o))
		summary.TotalDifferenceAmount = summary.TotalDifferenceAmount.Add(ProfitSpread(o))
		summary.OrdersWeight += o.Weight
		customers[o.CustomerID] = struct{}{}
	}

	summary.NumberOfOrders = len(orders)
	summary.NumberOfCustomers = len(customers)
	summary.TotalAmountInCurrency = Round(summary.TotalAmount.Mul(p.Exchange))
	summary.TotalProfit = summary.TotalTaxAmount.
		Add(summary.TotalDifferenceAmount).
		Sub(p.OtherExpenses)
	return summary
}

// withPurchase makes sure calculations use the purchase being summarised.
func withPurchase(o *model.Order, p *model.Purchase) *model.Order {
	if o.Purchase != nil && o.Purchase.ID == p.ID {
		return o
	}
	cp := *o
	cp.Purchase = p
	return &cp
}

// Subtotal is the order total of one group at a single exchange rate.
type Subtotal struct {
	ID            int64
	Title         string
	Exchange      decimal.Decimal
	Total         int
	Sum           decimal.Decimal
	SumInCurrency decimal.Decimal
	Tax           decimal.Decimal
	TaxInCurrency decimal.Decimal
}

func newSubtotal(id int64, title string, sum, exchange decimal.Decimal, taxPercent, total int) Subtotal {
	sum = Round(sum)
	tax := Round(sum.Mul(decimal.NewFromInt(int64(taxPercent))).Div(hundred))
	return Subtotal{
		ID:            id,
		Title:         title,
		Exchange:      exchange,
		Total:         total,
		Sum:           sum,
		SumInCurrency: Round(sum.Mul(exchange)),
		Tax:           tax,
		TaxInCurrency: Round(tax.Mul(exchange)),
	}
}

type group struct {
	id    int64
	title string
	tax   int
	rate  decimal.Decimal
	sum   decimal.Decimal
	total int
}

// CustomerSubtotals groups purchase orders by customer keeping first-seen order.
func CustomerSubtotals(p *model.Purchase, orders []model.Order) []Subtotal {
	var groups []*group
	index := make(map[int64]*group)
	for i := range orders {
		o := &orders[i]
		g, ok := index[o.CustomerID]
		if !ok {
			g = &group{id: o.CustomerID, rate: p.Exchange, sum: decimal.Zero}
			if o.Customer != nil {
				g.title = o.Customer.Name
				g.tax = o.Customer.Tax
			}
			index[o.CustomerID] = g
			groups = append(groups, g)
		}
		g.sum = g.sum.Add(o.OrderPrice)
		g.total++
	}
	return collect(groups)
}

// PurchaseSubtotals groups orders of customer c by purchase keeping first-seen order.
func PurchaseSubtotals(c *model.Customer, orders []model.Order) []Subtotal {
	var groups []*group
	index := make(map[int64]*group)
	for i := range orders {
		o := &orders[i]
		g, ok := index[o.PurchaseID]
		if !ok {
			g = &group{id: o.PurchaseID, tax: c.Tax, sum: decimal.Zero}
			if o.Purchase != nil {
				g.title = o.Purchase.Title
				g.rate = o.Purchase.Exchange
			}
			index[o.PurchaseID] = g
			groups = append(groups, g)
		}
		g.sum = g.sum.Add(o.OrderPrice)
		g.total++
	}
	return collect(groups)
}

func collect(groups []*group) []Subtotal {
	result := make([]Subtotal, 0, len(groups))
	for _, g := range groups {
		result = append(result, newSubtotal(g.id, g.title, g.sum, g.rate, g.tax, g.total))
	}
	return result
}
