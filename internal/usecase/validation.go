package usecase

import (
	"errors"
	"regexp"
	"strings"

	domainErrors "github.com/polkiloo/buyout/internal/domain/errors"
	"github.com/polkiloo/buyout/internal/domain/model"
)

var (
	phonePattern    = regexp.MustCompile(`^(\+?\d{1,3})?[-.\s]?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{2}[-.\s]?\d{2}$`)
	telegramPattern = regexp.MustCompile(`^[a-zA-Z0-9_]*$`)
)

// ValidatePhone accepts formats like +7(777) 777-77-77.
func ValidatePhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// ValidateTelegram accepts latin letters, digits and underscore.
func ValidateTelegram(id string) bool {
	return telegramPattern.MatchString(id)
}

func required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return domainErrors.NewValidationError(field, "is required")
	}
	return nil
}

func validateCustomer(c *model.Customer) error {
	if err := required("name", c.Name); err != nil {
		return err
	}
	if c.Phone != nil && *c.Phone != "" && !ValidatePhone(*c.Phone) {
		return domainErrors.NewValidationError("phone", "invalid phone number")
	}
	if c.TelegramID != nil && !ValidateTelegram(*c.TelegramID) {
		return domainErrors.NewValidationError("telegram_id", "invalid telegram id")
	}
	if c.Tax < 0 || c.Tax > 100 {
		return domainErrors.NewValidationError("tax", "must be between 0 and 100")
	}
	return nil
}

func validateMarketplace(m *model.Marketplace) error {
	return required("title", m.Title)
}

func validatePurchase(p *model.Purchase) error {
	if err := required("title", p.Title); err != nil {
		return err
	}
	if !p.Exchange.IsPositive() {
		return domainErrors.NewValidationError("exchange", "must be positive")
	}
	if p.OtherExpenses.IsNegative() {
		return domainErrors.NewValidationError("other_expenses", "must not be negative")
	}
	if p.OpenedDate != nil && p.ClosedDate != nil && p.ClosedDate.Before(*p.OpenedDate) {
		return domainErrors.NewValidationError("closed_date", "is before opened date")
	}
	return nil
}

func validateOrder(o *model.Order) error {
	if err := required("title", o.Title); err != nil {
		return err
	}
	if err := required("url", o.URL); err != nil {
		return err
	}
	if !o.OrderPrice.IsPositive() {
		return domainErrors.NewValidationError("order_price", "must be positive")
	}
	if o.BuyPrice.IsNegative() {
		return domainErrors.NewValidationError("buy_price", "must not be negative")
	}
	if o.Exchange.IsNegative() {
		return domainErrors.NewValidationError("exchange", "must not be negative")
	}
	if o.Weight < 0 {
		return domainErrors.NewValidationError("weight", "must not be negative")
	}
	if !o.Status.Valid() {
		return domainErrors.NewValidationError("status", "unknown status")
	}
	return nil
}

// relationError reports a missing referenced record as a field validation error.
func relationError(field string, err error) error {
	if errors.Is(err, domainErrors.ErrNotFound) {
		return domainErrors.NewValidationError(field, "does not exist")
	}
	return err
}
