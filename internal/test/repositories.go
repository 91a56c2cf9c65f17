package test

import (
	"context"
	"sort"
	"strings"

	domainErrors "github.com/polkiloo/buyout/internal/domain/errors"
	"github.com/polkiloo/buyout/internal/domain/model"
)

// Repositories bundles linked in-memory repositories.
type Repositories struct {
	Customers    *CustomerRepositoryStub
	Marketplaces *MarketplaceRepositoryStub
	Purchases    *PurchaseRepositoryStub
	Orders       *OrderRepositoryStub
}

// NewRepositories constructs stubs where orders resolve relations from sibling stubs.
func NewRepositories() *Repositories {
	r := &Repositories{
		Customers:    NewCustomerRepositoryStub(),
		Marketplaces: NewMarketplaceRepositoryStub(),
		Purchases:    NewPurchaseRepositoryStub(),
	}
	r.Orders = NewOrderRepositoryStub()
	r.Orders.Customers = r.Customers
	r.Orders.Marketplaces = r.Marketplaces
	r.Orders.Purchases = r.Purchases
	return r
}

func contains(value, query string) bool {
	return strings.Contains(strings.ToLower(value), strings.ToLower(query))
}

// CustomerRepositoryStub stores customers in-memory for tests.
type CustomerRepositoryStub struct {
	Items map[int64]*model.Customer
	Next  int64
	Err   error
}

// NewCustomerRepositoryStub constructs stub repository with initialized map.
func NewCustomerRepositoryStub() *CustomerRepositoryStub {
	return &CustomerRepositoryStub{Items: make(map[int64]*model.Customer), Next: 1}
}

func (s *CustomerRepositoryStub) Create(ctx context.Context, c *model.Customer) error {
	if s.Err != nil {
		return s.Err
	}
	c.ID = s.Next
	s.Next++
	stored := *c
	s.Items[c.ID] = &stored
	return nil
}

func (s *CustomerRepositoryStub) Update(ctx context.Context, c *model.Customer) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Items[c.ID]; !ok {
		return domainErrors.ErrNotFound
	}
	stored := *c
	s.Items[c.ID] = &stored
	return nil
}

func (s *CustomerRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Items[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Items, id)
	return nil
}

func (s *CustomerRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Customer, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	c, ok := s.Items[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	copied := *c
	return &copied, nil
}

// Search matches name case-insensitively and returns customers ordered by id.
func (s *CustomerRepositoryStub) Search(ctx context.Context, query, sortKey string) ([]model.Customer, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Customer
	for _, c := range s.Items {
		if query == "" || contains(c.Name, query) {
			result = append(result, *c)
		}
	}
	sortByID(result, func(c model.Customer) int64 { return c.ID })
	return result, nil
}

// MarketplaceRepositoryStub stores marketplaces in-memory for tests.
type MarketplaceRepositoryStub struct {
	Items map[int64]*model.Marketplace
	Next  int64
	Err   error
}

// NewMarketplaceRepositoryStub constructs stub repository with initialized map.
func NewMarketplaceRepositoryStub() *MarketplaceRepositoryStub {
	return &MarketplaceRepositoryStub{Items: make(map[int64]*model.Marketplace), Next: 1}
}

func (s *MarketplaceRepositoryStub) Create(ctx context.Context, m *model.Marketplace) error {
	if s.Err != nil {
		return s.Err
	}
	for _, existing := range s.Items {
		if existing.Title == m.Title {
			return domainErrors.ErrAlreadyExists
		}
	}
	m.ID = s.Next
	s.Next++
	stored := *m
	s.Items[m.ID] = &stored
	return nil
}

func (s *MarketplaceRepositoryStub) Update(ctx context.Context, m *model.Marketplace) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Items[m.ID]; !ok {
		return domainErrors.ErrNotFound
	}
	stored := *m
	s.Items[m.ID] = &stored
	return nil
}

func (s *MarketplaceRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Items[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Items, id)
	return nil
}

func (s *MarketplaceRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Marketplace, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	m, ok := s.Items[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	copied := *m
	return &copied, nil
}

// List returns marketplaces ordered by title.
func (s *MarketplaceRepositoryStub) List(ctx context.Context) ([]model.Marketplace, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	result := make([]model.Marketplace, 0, len(s.Items))
	for _, m := range s.Items {
		result = append(result, *m)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Title < result[j].Title })
	return result, nil
}

// PurchaseRepositoryStub stores purchases in-memory for tests.
type PurchaseRepositoryStub struct {
	Items map[int64]*model.Purchase
	Next  int64
	Err   error
}

// NewPurchaseRepositoryStub constructs stub repository with initialized map.
func NewPurchaseRepositoryStub() *PurchaseRepositoryStub {
	return &PurchaseRepositoryStub{Items: make(map[int64]*model.Purchase), Next: 1}
}

func (s *PurchaseRepositoryStub) Create(ctx context.Context, p *model.Purchase) error {
	if s.Err != nil {
		return s.Err
	}
	for _, existing := range s.Items {
		if existing.Title == p.Title {
			return domainErrors.ErrAlreadyExists
		}
	}
	p.ID = s.Next
	s.Next++
	stored := *p
	s.Items[p.ID] = &stored
	return nil
}

func (s *PurchaseRepositoryStub) Update(ctx context.Context, p *model.Purchase) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Items[p.ID]; !ok {
		return domainErrors.ErrNotFound
	}
	stored := *p
	s.Items[p.ID] = &stored
	return nil
}

func (s *PurchaseRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Items[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Items, id)
	return nil
}

func (s *PurchaseRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Purchase, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	p, ok := s.Items[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	copied := *p
	return &copied, nil
}

// Search matches title case-insensitively and returns purchases ordered by id.
func (s *PurchaseRepositoryStub) Search(ctx context.Context, query, sortKey string) ([]model.Purchase, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Purchase
	for _, p := range s.Items {
		if query == "" || contains(p.Title, query) {
			result = append(result, *p)
		}
	}
	sortByID(result, func(p model.Purchase) int64 { return p.ID })
	return result, nil
}

// ListOpened returns purchases without close date.
func (s *PurchaseRepositoryStub) ListOpened(ctx context.Context) ([]model.Purchase, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Purchase
	for _, p := range s.Items {
		if p.IsOpened() {
			result = append(result, *p)
		}
	}
	sortByID(result, func(p model.Purchase) int64 { return p.ID })
	return result, nil
}

// OrderRepositoryStub stores orders in-memory and resolves relations from linked stubs.
type OrderRepositoryStub struct {
	Items map[int64]*model.Order
	Next  int64
	Err   error

	Customers    *CustomerRepositoryStub
	Marketplaces *MarketplaceRepositoryStub
	Purchases    *PurchaseRepositoryStub

	StatusUpdates []model.OrderStatus
}

// NewOrderRepositoryStub constructs stub repository with initialized map.
func NewOrderRepositoryStub() *OrderRepositoryStub {
	return &OrderRepositoryStub{Items: make(map[int64]*model.Order), Next: 1}
}

func (s *OrderRepositoryStub) load(o model.Order) model.Order {
	if s.Purchases != nil {
		if p, ok := s.Purchases.Items[o.PurchaseID]; ok {
			copied := *p
			o.Purchase = &copied
		}
	}
	if s.Customers != nil {
		if c, ok := s.Customers.Items[o.CustomerID]; ok {
			copied := *c
			o.Customer = &copied
		}
	}
	if s.Marketplaces != nil && o.MarketplaceID != nil {
		if m, ok := s.Marketplaces.Items[*o.MarketplaceID]; ok {
			copied := *m
			o.Marketplace = &copied
		}
	}
	return o
}

func (s *OrderRepositoryStub) Create(ctx context.Context, o *model.Order) error {
	if s.Err != nil {
		return s.Err
	}
	o.ID = s.Next
	s.Next++
	stored := *o
	s.Items[o.ID] = &stored
	return nil
}

func (s *OrderRepositoryStub) Update(ctx context.Context, o *model.Order) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Items[o.ID]; !ok {
		return domainErrors.ErrNotFound
	}
	stored := *o
	s.Items[o.ID] = &stored
	return nil
}

func (s *OrderRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Items[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Items, id)
	return nil
}

func (s *OrderRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	o, ok := s.Items[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	loaded := s.load(*o)
	return &loaded, nil
}

func matches(o *model.Order, f model.OrderFilter) bool {
	if f.Query != "" && !contains(o.Title, f.Query) && !contains(o.Track(), f.Query) {
		return false
	}
	if f.CustomerID != nil && o.CustomerID != *f.CustomerID {
		return false
	}
	if f.PurchaseID != nil && o.PurchaseID != *f.PurchaseID {
		return false
	}
	if f.MarketplaceID != nil && (o.MarketplaceID == nil || *o.MarketplaceID != *f.MarketplaceID) {
		return false
	}
	if f.Status != nil && o.Status != *f.Status {
		return false
	}
	return true
}

// List returns matching orders ordered by id.
func (s *OrderRepositoryStub) List(ctx context.Context, filter model.OrderFilter) ([]model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Order
	for _, o := range s.Items {
		if matches(o, filter) {
			result = append(result, s.load(*o))
		}
	}
	sortByID(result, func(o model.Order) int64 { return o.ID })
	if filter.Limit > 0 && len(result) > filter.Limit {
		result = result[:filter.Limit]
	}
	return result, nil
}

func (s *OrderRepositoryStub) ListByCustomer(ctx context.Context, customerID int64, purchaseID *int64) ([]model.Order, error) {
	return s.List(ctx, model.OrderFilter{CustomerID: &customerID, PurchaseID: purchaseID})
}

func (s *OrderRepositoryStub) TrackSiblings(ctx context.Context, order *model.Order) ([]model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if order.Track() == "" {
		return nil, nil
	}
	var result []model.Order
	for _, o := range s.Items {
		if o.ID != order.ID && o.PurchaseID == order.PurchaseID && o.Track() == order.Track() {
			result = append(result, s.load(*o))
		}
	}
	sortByID(result, func(o model.Order) int64 { return o.ID })
	return result, nil
}

func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, id int64, status model.OrderStatus, fields model.OrderFields) error {
	if s.Err != nil {
		return s.Err
	}
	o, ok := s.Items[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	o.Status = status
	if fields.BuyPrice != nil {
		o.BuyPrice = *fields.BuyPrice
	}
	if fields.Exchange != nil {
		o.Exchange = *fields.Exchange
	}
	if fields.TrackNumber != nil {
		track := *fields.TrackNumber
		o.TrackNumber = &track
	}
	if fields.Weight != nil {
		o.Weight = *fields.Weight
	}
	if fields.BuyedAt != nil {
		at := *fields.BuyedAt
		o.BuyedAt = &at
	}
	s.StatusUpdates = append(s.StatusUpdates, status)
	return nil
}

// MarkArrived applies the cascade only to ids sharing purchase and track with the order.
func (s *OrderRepositoryStub) MarkArrived(ctx context.Context, id int64, weight int, siblingIDs []int64) (int64, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	o, ok := s.Items[id]
	if !ok {
		return 0, domainErrors.ErrNotFound
	}
	o.Status = model.OrderStatusArrived
	o.Weight = weight
	s.StatusUpdates = append(s.StatusUpdates, model.OrderStatusArrived)

	var updated int64
	for _, siblingID := range siblingIDs {
		sibling, ok := s.Items[siblingID]
		if !ok || sibling.ID == id || sibling.PurchaseID != o.PurchaseID || sibling.Track() != o.Track() ||
			sibling.Status == model.OrderStatusCancelled {
			continue
		}
		sibling.Status = model.OrderStatusArrived
		sibling.Weight = 0
		updated++
	}
	return updated, nil
}

func (s *OrderRepositoryStub) StatusSummary(ctx context.Context, filter model.OrderFilter) ([]model.StatusCount, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	counts := make(map[model.OrderStatus]int)
	for _, o := range s.Items {
		if matches(o, filter) {
			counts[o.Status]++
		}
	}
	var result []model.StatusCount
	for _, status := range model.OrderStatuses() {
		if total, ok := counts[status]; ok {
			result = append(result, model.StatusCount{Status: status, Total: total})
		}
	}
	return result, nil
}

func sortByID[T any](items []T, id func(T) int64) {
	sort.Slice(items, func(i, j int) bool { return id(items[i]) < id(items[j]) })
}
