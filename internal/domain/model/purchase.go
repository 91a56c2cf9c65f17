package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase is a batch of orders shipped together at a shared exchange rate.
type Purchase struct {
	ID                int64
	Title             string
	OpenedDate        *time.Time
	ClosedDate        *time.Time
	Weight            decimal.NullDecimal
	DeliveryCostMain  decimal.NullDecimal
	DeliveryCostLocal decimal.NullDecimal
	OtherExpenses     decimal.Decimal
	AuthorID          *int64
	Exchange          decimal.Decimal
	CreatedAt         time.Time
}

// IsOpened reports whether purchase has not been closed yet.
func (p *Purchase) IsOpened() bool {
	return p.ClosedDate == nil
}

// Open marks purchase start date.
func (p *Purchase) Open(date time.Time) {
	p.OpenedDate = &date
}

// Close marks purchase end date.
func (p *Purchase) Close(date time.Time) {
	p.ClosedDate = &date
}
