package finance

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/buyout/internal/domain/model"
)

// ExportHeader names the columns produced by ExportRow.
var ExportHeader = []string{
	"Image",
	"Title",
	"Link",
	"Status",
	"Price",
	"Rate",
	"Converted price",
	"Commission %",
	"Commission",
	"Total",
	"Track number",
	"Weight",
	"Customer",
}

// CargoHeader names the columns produced by CargoRow.
var CargoHeader = []string{"Title", "Track number"}

// ExportRow returns display values of the order in ExportHeader order.
// Customer rows quote the converted price at the purchase rate.
func ExportRow(o *model.Order, forCustomer bool) []any {
	price := OrderExchangePrice(o)
	if forCustomer {
		price = CustomerOrderExchangePrice(o)
	}
	commission := DifferenceTaxInCurrency(o)

	var customerName string
	taxPercent := 0
	if o.Customer != nil {
		customerName = o.Customer.Name
		taxPercent = o.Customer.Tax
	}

	rate := decimal.Zero
	if o.Purchase != nil {
		rate = o.Purchase.Exchange
	}

	return []any{
		"",
		o.Title,
		o.URL,
		o.Status.Label(),
		o.OrderPrice,
		rate,
		price,
		fmt.Sprintf("%d %%", taxPercent),
		commission,
		price.Add(commission),
		o.Track(),
		o.Weight,
		customerName,
	}
}

// CargoRow returns the title and track number pair used in cargo manifests.
func CargoRow(o *model.Order) []any {
	return []any{o.Title, o.Track()}
}
