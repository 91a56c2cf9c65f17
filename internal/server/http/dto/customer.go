package dto

import (
	"time"

	"github.com/polkiloo/buyout/internal/domain/model"
)

// CustomerRequest describes customer create/update payload.
type CustomerRequest struct {
	Name       string  `json:"name" binding:"required,max=255"`
	Phone      *string `json:"phone" binding:"omitempty,max=255,phone"`
	TelegramID *string `json:"telegram_id" binding:"omitempty,max=255,telegram"`
	Tax        int     `json:"tax" binding:"gte=0,lte=100"`
}

// Model converts request into domain customer.
func (r CustomerRequest) Model(id int64) *model.Customer {
	return &model.Customer{
		ID:         id,
		Name:       r.Name,
		Phone:      emptyToNil(r.Phone),
		TelegramID: emptyToNil(r.TelegramID),
		Tax:        r.Tax,
	}
}

// CustomerResponse represents customer.
type CustomerResponse struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Phone      *string   `json:"phone"`
	TelegramID *string   `json:"telegram_id"`
	Tax        int       `json:"tax"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewCustomerResponse converts domain customer.
func NewCustomerResponse(c *model.Customer) CustomerResponse {
	return CustomerResponse{
		ID:         c.ID,
		Name:       c.Name,
		Phone:      c.Phone,
		TelegramID: c.TelegramID,
		Tax:        c.Tax,
		CreatedAt:  c.CreatedAt,
	}
}

// NewCustomerResponses converts a customer list.
func NewCustomerResponses(customers []model.Customer) []CustomerResponse {
	resp := make([]CustomerResponse, 0, len(customers))
	for i := range customers {
		resp = append(resp, NewCustomerResponse(&customers[i]))
	}
	return resp
}

// CustomerDetailResponse is customer with order subtotals per purchase.
type CustomerDetailResponse struct {
	CustomerResponse
	Purchases []SubtotalResponse `json:"purchases"`
}

// CustomerPurchaseResponse is customer orders within one purchase.
type CustomerPurchaseResponse struct {
	Customer CustomerResponse      `json:"customer"`
	Purchase PurchaseResponse      `json:"purchase"`
	Orders   []OrderResponse       `json:"orders"`
	Statuses []StatusCountResponse `json:"statuses"`
}

func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
