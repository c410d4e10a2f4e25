package utils

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/openvoucher/voucherhub/models"
	"github.com/shopspring/decimal"
)

var discountUpperBound = decimal.NewFromInt(100)

// ValidateVoucherName checks the voucher name length (1-100 characters).
// Length is counted in characters, not bytes, so multibyte names are
// measured the same way the binding layer measures them.
func ValidateVoucherName(name string) error {
	trimmed := strings.TrimSpace(name)
	length := utf8.RuneCountInString(trimmed)
	if length < 1 {
		return models.NewValidationError("name", "name must not be empty")
	}
	if length > 100 {
		return models.NewValidationError("name", "name must not exceed 100 characters")
	}
	return nil
}

// ValidatePrice checks that the price is greater than 0
func ValidatePrice(price decimal.Decimal) error {
	if price.LessThanOrEqual(decimal.Zero) {
		return models.NewValidationError("price", "price must be greater than 0")
	}
	return nil
}

// ValidateDiscountPercentage checks that the discount is within [0, 100]
func ValidateDiscountPercentage(discount decimal.Decimal) error {
	if discount.LessThan(decimal.Zero) || discount.GreaterThan(discountUpperBound) {
		return models.NewValidationError("discount_percentage", "discount percentage must be between 0 and 100")
	}
	return nil
}

// ValidateExpiryDate checks that an expiry date is set. Past dates are
// accepted; the voucher simply starts out expired on first read.
func ValidateExpiryDate(expiry time.Time) error {
	if expiry.IsZero() {
		return models.NewValidationError("expiry_date", "expiry date is required")
	}
	return nil
}

// ValidateVoucherStatus checks a status string against the known values
func ValidateVoucherStatus(status string) error {
	if !models.VoucherStatus(status).IsValid() {
		return models.NewValidationError("status", "status must be one of: unused, used, expired")
	}
	return nil
}
