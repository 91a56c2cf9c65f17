package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainErrors "github.com/polkiloo/buyout/internal/domain/errors"
	"github.com/polkiloo/buyout/internal/domain/model"
)

func newCustomerUseCase(f *fixture) *CustomerUseCase {
	return NewCustomerUseCase(f.repos.Customers, f.repos.Purchases, f.repos.Orders)
}

func TestCustomerCreateValidation(t *testing.T) {
	f := newFixture(t)
	uc := newCustomerUseCase(f)
	ctx := context.Background()

	require.ErrorIs(t, uc.Create(ctx, &model.Customer{Name: ""}), domainErrors.ErrValidation)
	require.ErrorIs(t, uc.Create(ctx, &model.Customer{Name: "Carol", Phone: track("123")}), domainErrors.ErrValidation)
	require.ErrorIs(t, uc.Create(ctx, &model.Customer{Name: "Carol", TelegramID: track("@carol")}), domainErrors.ErrValidation)
	require.ErrorIs(t, uc.Create(ctx, &model.Customer{Name: "Carol", Tax: 101}), domainErrors.ErrValidation)

	customer := &model.Customer{Name: "Carol", Phone: track("+7(777) 777-77-77"), TelegramID: track("carol"), Tax: 15}
	require.NoError(t, uc.Create(ctx, customer))
	assert.Equal(t, int64(3), customer.ID)

	customer.Tax = 20
	require.NoError(t, uc.Update(ctx, customer))
	stored, err := uc.Get(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, 20, stored.Tax)
}

func TestCustomerSearchAndDelete(t *testing.T) {
	f := newFixture(t)
	uc := newCustomerUseCase(f)

	found, err := uc.Search(context.Background(), "ali", "")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Alice", found[0].Name)

	require.NoError(t, uc.Delete(context.Background(), 2))
	_, err = uc.Get(context.Background(), 2)
	require.ErrorIs(t, err, domainErrors.ErrNotFound)
}

func TestCustomerDetail(t *testing.T) {
	f := newFixture(t)
	uc := newCustomerUseCase(f)
	f.seed(model.Order{Title: "A", OrderPrice: decimal.NewFromInt(100), PurchaseID: 1, CustomerID: 1})
	f.seed(model.Order{Title: "B", OrderPrice: decimal.NewFromInt(50), PurchaseID: 1, CustomerID: 1})
	f.seed(model.Order{Title: "C", OrderPrice: decimal.NewFromInt(10), PurchaseID: 2, CustomerID: 1})
	f.seed(model.Order{Title: "D", OrderPrice: decimal.NewFromInt(999), PurchaseID: 1, CustomerID: 2})

	detail, err := uc.Detail(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Alice", detail.Customer.Name)
	require.Len(t, detail.Purchases, 2)

	spring := detail.Purchases[0]
	assert.Equal(t, "Spring", spring.Title)
	assert.Equal(t, 2, spring.Total)
	assert.True(t, spring.Sum.Equal(decimal.NewFromInt(150)))
	assert.True(t, spring.SumInCurrency.Equal(decimal.NewFromInt(12000)))
	assert.True(t, spring.Tax.Equal(decimal.NewFromInt(15)))
	assert.True(t, spring.TaxInCurrency.Equal(decimal.NewFromInt(1200)))

	autumn := detail.Purchases[1]
	assert.Equal(t, "Autumn", autumn.Title)
	assert.True(t, autumn.SumInCurrency.Equal(decimal.NewFromInt(900)))

	_, err = uc.Detail(context.Background(), 42)
	require.ErrorIs(t, err, domainErrors.ErrNotFound)
}

func TestCustomerPurchaseOrders(t *testing.T) {
	f := newFixture(t)
	uc := newCustomerUseCase(f)
	f.seed(model.Order{Title: "A", OrderPrice: decimal.NewFromInt(100), PurchaseID: 1, CustomerID: 1, Status: model.OrderStatusBought})
	f.seed(model.Order{Title: "B", OrderPrice: decimal.NewFromInt(50), PurchaseID: 1, CustomerID: 1, Status: model.OrderStatusBought})
	f.seed(model.Order{Title: "C", OrderPrice: decimal.NewFromInt(10), PurchaseID: 2, CustomerID: 1})

	result, err := uc.PurchaseOrders(context.Background(), 1, 1)
	require.NoError(t, err)
	assert.Equal(t, "Spring", result.Purchase.Title)
	assert.Len(t, result.Orders, 2)
	assert.Equal(t, []model.StatusCount{{Status: model.OrderStatusBought, Total: 2}}, result.Summary)

	_, err = uc.PurchaseOrders(context.Background(), 1, 42)
	require.ErrorIs(t, err, domainErrors.ErrNotFound)
}
