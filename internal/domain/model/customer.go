package model

import "time"

// Customer is a person orders are bought for.
type Customer struct {
	ID         int64
	Name       string
	Phone      *string
	TelegramID *string
	// Tax is commission in percent (0..100) charged on order price.
	Tax       int
	CreatedAt time.Time
}
