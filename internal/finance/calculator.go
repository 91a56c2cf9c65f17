// Package finance derives monetary figures of orders and purchases.
//
// All functions are pure and never fail: a guard that does not hold yields
// zero (or an invalid NullDecimal for Difference) so that lists and exports
// stay renderable for partially filled records.
package finance

import (
	"github.com/shopspring/decimal"

	"github.com/polkiloo/buyout/internal/domain/model"
)

// MoneyPlaces is the number of fractional digits kept in currency results.
const MoneyPlaces = 2

var hundred = decimal.NewFromInt(100)

// Round rounds to MoneyPlaces using half-even rounding.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.RoundBank(MoneyPlaces)
}

func purchaseExchange(o *model.Order) decimal.Decimal {
	if o.Purchase == nil {
		return decimal.Zero
	}
	return o.Purchase.Exchange
}

func customerTax(o *model.Order) decimal.Decimal {
	if o.Customer == nil {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(o.Customer.Tax))
}

// ExchangeRate returns the rate the order was bought at, falling back to
// the purchase rate while the order rate is zero.
func ExchangeRate(o *model.Order) decimal.Decimal {
	if !o.Exchange.IsZero() {
		return o.Exchange
	}
	return purchaseExchange(o)
}

// OrderExchangePrice converts order price with the effective rate.
func OrderExchangePrice(o *model.Order) decimal.Decimal {
	rate := ExchangeRate(o)
	if rate.IsZero() || o.OrderPrice.IsZero() {
		return decimal.Zero
	}
	return Round(o.OrderPrice.Mul(rate))
}

// BuyExchangePrice converts buy price with the effective rate.
func BuyExchangePrice(o *model.Order) decimal.Decimal {
	rate := ExchangeRate(o)
	if rate.IsZero() || o.BuyPrice.IsZero() {
		return decimal.Zero
	}
	return Round(o.BuyPrice.Mul(rate))
}

// CustomerOrderExchangePrice converts order price with the purchase rate,
// the figure quoted to customers before the buy rate is known.
func CustomerOrderExchangePrice(o *model.Order) decimal.Decimal {
	rate := purchaseExchange(o)
	if rate.IsZero() || o.OrderPrice.IsZero() {
		return decimal.Zero
	}
	return Round(o.OrderPrice.Mul(rate))
}

// Tax is the customer commission in source currency. A zero buy price still
// yields commission; only a negative one suppresses it.
func Tax(o *model.Order) decimal.Decimal {
	if o.OrderPrice.IsZero() || o.BuyPrice.IsNegative() {
		return decimal.Zero
	}
	return o.OrderPrice.Mul(customerTax(o)).Div(hundred)
}

// DifferenceTaxInCurrency is the commission converted with the purchase rate.
func DifferenceTaxInCurrency(o *model.Order) decimal.Decimal {
	tax := Tax(o)
	if tax.IsZero() || o.OrderPrice.IsZero() {
		return decimal.Zero
	}
	return Round(tax.Mul(purchaseExchange(o)))
}

// Difference is order price minus buy price. It is invalid until the order
// has a positive buy price.
func Difference(o *model.Order) decimal.NullDecimal {
	if o.OrderPrice.IsZero() || !o.BuyPrice.IsPositive() {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(o.OrderPrice.Sub(o.BuyPrice))
}

// DifferenceInCurrency converts Difference with the effective rate.
func DifferenceInCurrency(o *model.Order) decimal.Decimal {
	diff := Difference(o)
	if !diff.Valid || diff.Decimal.IsZero() || o.OrderPrice.IsZero() {
		return decimal.Zero
	}
	return Round(diff.Decimal.Mul(ExchangeRate(o)))
}

// ProfitSpread is the margin between what the customer pays and what the
// order cost. The order leg uses the purchase rate while the buy leg uses
// the effective rate.
func ProfitSpread(o *model.Order) decimal.Decimal {
	if o.BuyPrice.IsZero() || o.OrderPrice.IsZero() {
		return decimal.Zero
	}
	sell := o.OrderPrice.Mul(purchaseExchange(o))
	cost := o.BuyPrice.Mul(ExchangeRate(o))
	return Round(sell.Sub(cost))
}

// TotalProfit is commission plus spread, both in target currency.
func TotalProfit(o *model.Order) decimal.Decimal {
	return DifferenceTaxInCurrency(o).Add(ProfitSpread(o))
}

// Figures bundles every derived value of an order.
type Figures struct {
	ExchangeRate               decimal.Decimal
	OrderExchangePrice         decimal.Decimal
	BuyExchangePrice           decimal.Decimal
	CustomerOrderExchangePrice decimal.Decimal
	Tax                        decimal.Decimal
	DifferenceTaxInCurrency    decimal.Decimal
	Difference                 decimal.NullDecimal
	DifferenceInCurrency       decimal.Decimal
	ProfitSpread               decimal.Decimal
	TotalProfit                decimal.Decimal
}

// Calculate computes all figures of the order at once.
func Calculate(o *model.Order) Figures {
	return Figures{
		ExchangeRate:               ExchangeRate(o),
		OrderExchangePrice:         OrderExchangePrice(o),
		BuyExchangePrice:           BuyExchangePrice(o),
		CustomerOrderExchangePrice: CustomerOrderExchangePrice(o),
		Tax:                        Tax(o),
		DifferenceTaxInCurrency:    DifferenceTaxInCurrency(o),
		Difference:                 Difference(o),
		DifferenceInCurrency:       DifferenceInCurrency(o),
		ProfitSpread:               ProfitSpread(o),
		TotalProfit:                TotalProfit(o),
	}
}
