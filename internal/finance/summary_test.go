package finance

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polkiloo/buyout/internal/domain/model"
)

func purchaseOrders(t *testing.T) (*model.Purchase, []model.Order) {
	t.Helper()
	p := &model.Purchase{ID: 7, Title: "Spring", Exchange: dec(t, "80"), OtherExpenses: dec(t, "150")}
	alice := &model.Customer{ID: 1, Name: "Alice", Tax: 10}
	bob := &model.Customer{ID: 2, Name: "Bob", Tax: 5}
	orders := []model.Order{
		{ID: 1, OrderPrice: dec(t, "100"), BuyPrice: dec(t, "80"), Exchange: dec(t, "85"), Weight: 300, CustomerID: 1, Customer: alice, PurchaseID: 7, Purchase: p},
		{ID: 2, OrderPrice: dec(t, "50"), CustomerID: 2, Customer: bob, PurchaseID: 7, Purchase: p, Weight: 100},
		{ID: 3, OrderPrice: dec(t, "20.5"), BuyPrice: dec(t, "20"), CustomerID: 1, Customer: alice, PurchaseID: 7, Purchase: p},
	}
	return p, orders
}

func TestSummarizePurchase(t *testing.T) {
	p, orders := purchaseOrders(t)
	s := SummarizePurchase(p, orders)

	assertDecimal(t, "170.5", s.TotalAmount)
	assertDecimal(t, "13640.00", s.TotalAmountInCurrency)
	// 800 + round(2.5*80) + round(2.05*80)
	assertDecimal(t, "1164.00", s.TotalTaxAmount)
	// 1200 + 0 + (20.5*80 - 20*80)
	assertDecimal(t, "1240.00", s.TotalDifferenceAmount)
	assertDecimal(t, "2254.00", s.TotalProfit)
	assert.Equal(t, 3, s.NumberOfOrders)
	assert.Equal(t, 2, s.NumberOfCustomers)
	assert.Equal(t, 400, s.OrdersWeight)
}

func TestSummarizePurchaseIsOrderIndependent(t *testing.T) {
	p, orders := purchaseOrders(t)
	want := SummarizePurchase(p, orders)

	reversed := []model.Order{orders[2], orders[1], orders[0]}
	got := SummarizePurchase(p, reversed)

	assert.True(t, want.TotalProfit.Equal(got.TotalProfit))
	assert.True(t, want.TotalTaxAmount.Equal(got.TotalTaxAmount))
	assert.True(t, want.TotalDifferenceAmount.Equal(got.TotalDifferenceAmount))
	assert.True(t, got.TotalProfit.Equal(got.TotalTaxAmount.Add(got.TotalDifferenceAmount).Sub(p.OtherExpenses)))
}

func TestSummarizePurchaseEmpty(t *testing.T) {
	p := &model.Purchase{ID: 1, Exchange: decimal.NewFromInt(80), OtherExpenses: decimal.NewFromInt(10)}
	s := SummarizePurchase(p, nil)
	assert.True(t, s.TotalAmount.IsZero())
	assertDecimal(t, "-10", s.TotalProfit)
	assert.Zero(t, s.NumberOfOrders)
}

func TestSummarizePurchaseUsesGivenPurchase(t *testing.T) {
	p, orders := purchaseOrders(t)
	for i := range orders {
		orders[i].Purchase = nil
	}
	s := SummarizePurchase(p, orders)
	assertDecimal(t, "1164.00", s.TotalTaxAmount)
	for i := range orders {
		assert.Nil(t, orders[i].Purchase)
	}
}

func TestCustomerSubtotals(t *testing.T) {
	p, orders := purchaseOrders(t)
	subtotals := CustomerSubtotals(p, orders)
	require.Len(t, subtotals, 2)

	alice := subtotals[0]
	assert.Equal(t, int64(1), alice.ID)
	assert.Equal(t, "Alice", alice.Title)
	assert.Equal(t, 2, alice.Total)
	assertDecimal(t, "120.50", alice.Sum)
	assertDecimal(t, "9640.00", alice.SumInCurrency)
	// 120.5 * 10 / 100 = 12.05
	assertDecimal(t, "12.05", alice.Tax)
	assertDecimal(t, "964.00", alice.TaxInCurrency)

	bob := subtotals[1]
	assert.Equal(t, "Bob", bob.Title)
	assertDecimal(t, "2.50", bob.Tax)
	assertDecimal(t, "200.00", bob.TaxInCurrency)
}

func TestPurchaseSubtotals(t *testing.T) {
	spring := &model.Purchase{ID: 1, Title: "Spring", Exchange: dec(t, "80")}
	autumn := &model.Purchase{ID: 2, Title: "Autumn", Exchange: dec(t, "90")}
	customer := &model.Customer{ID: 5, Name: "Carol", Tax: 10}
	orders := []model.Order{
		{OrderPrice: dec(t, "10"), PurchaseID: 1, Purchase: spring},
		{OrderPrice: dec(t, "20"), PurchaseID: 2, Purchase: autumn},
		{OrderPrice: dec(t, "5"), PurchaseID: 1, Purchase: spring},
	}

	subtotals := PurchaseSubtotals(customer, orders)
	require.Len(t, subtotals, 2)
	assert.Equal(t, "Spring", subtotals[0].Title)
	assertDecimal(t, "15", subtotals[0].Sum)
	assertDecimal(t, "1200.00", subtotals[0].SumInCurrency)
	assertDecimal(t, "1.50", subtotals[0].Tax)
	assertDecimal(t, "120.00", subtotals[0].TaxInCurrency)
	assert.Equal(t, "Autumn", subtotals[1].Title)
	assertDecimal(t, "1800.00", subtotals[1].SumInCurrency)
}
