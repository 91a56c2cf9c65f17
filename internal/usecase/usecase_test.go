package usecase

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/buyout/internal/domain/model"
	"github.com/polkiloo/buyout/internal/test"
)

var fixedNow = time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC)

type fixture struct {
	repos    *test.Repositories
	orders   *OrderUseCase
	observer *test.StatusObserverStub
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	repos := test.NewRepositories()
	repos.Purchases.Items[1] = &model.Purchase{ID: 1, Title: "Spring", Exchange: decimal.NewFromInt(80), OtherExpenses: decimal.Zero}
	repos.Purchases.Items[2] = &model.Purchase{ID: 2, Title: "Autumn", Exchange: decimal.NewFromInt(90), OtherExpenses: decimal.Zero}
	repos.Purchases.Next = 3
	repos.Customers.Items[1] = &model.Customer{ID: 1, Name: "Alice", Tax: 10}
	repos.Customers.Items[2] = &model.Customer{ID: 2, Name: "Bob", Tax: 5}
	repos.Customers.Next = 3
	repos.Marketplaces.Items[1] = &model.Marketplace{ID: 1, Title: "Taobao", URL: "https://item.taobao.com,https://m.tb.cn"}
	repos.Marketplaces.Items[2] = &model.Marketplace{ID: 2, Title: "Poizon", URL: "https://dw4.co"}
	repos.Marketplaces.Next = 3

	observer := &test.StatusObserverStub{}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	uc := NewOrderUseCase(repos.Orders, repos.Purchases, repos.Customers, repos.Marketplaces, logger, observer)
	uc.now = func() time.Time { return fixedNow }
	return &fixture{repos: repos, orders: uc, observer: observer}
}

// seed stores order directly bypassing use case rules.
func (f *fixture) seed(o model.Order) *model.Order {
	o.ID = f.repos.Orders.Next
	f.repos.Orders.Next++
	stored := o
	f.repos.Orders.Items[o.ID] = &stored
	return &stored
}

func track(s string) *string {
	return &s
}
