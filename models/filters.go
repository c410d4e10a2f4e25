package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// VoucherFilters holds the optional narrowing criteria for voucher listings.
// All fields are optional and combine with AND semantics.
type VoucherFilters struct {
	Name        string
	MinPrice    *decimal.Decimal
	MaxPrice    *decimal.Decimal
	MinDiscount *decimal.Decimal
	MaxDiscount *decimal.Decimal
	Status      VoucherStatus
	IsAvailable *bool
	ValidFrom   *time.Time
	ValidTo     *time.Time
}

// IsZero reports whether no filter criteria are set
func (f *VoucherFilters) IsZero() bool {
	return f == nil || (f.Name == "" &&
		f.MinPrice == nil && f.MaxPrice == nil &&
		f.MinDiscount == nil && f.MaxDiscount == nil &&
		f.Status == "" && f.IsAvailable == nil &&
		f.ValidFrom == nil && f.ValidTo == nil)
}
