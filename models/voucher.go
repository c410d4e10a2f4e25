package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// VoucherStatus represents the lifecycle state of a voucher
type VoucherStatus string

const (
	VoucherStatusUnused  VoucherStatus = "unused"
	VoucherStatusUsed    VoucherStatus = "used"
	VoucherStatusExpired VoucherStatus = "expired"
)

// AllVoucherStatuses returns every valid voucher status
func AllVoucherStatuses() []VoucherStatus {
	return []VoucherStatus{VoucherStatusUnused, VoucherStatusUsed, VoucherStatusExpired}
}

// IsValid reports whether the status is one of the known values
func (s VoucherStatus) IsValid() bool {
	switch s {
	case VoucherStatusUnused, VoucherStatusUsed, VoucherStatusExpired:
		return true
	}
	return false
}

// IsTerminal reports whether a voucher in this status can still change state
func (s VoucherStatus) IsTerminal() bool {
	return s == VoucherStatusUsed || s == VoucherStatusExpired
}

type Voucher struct {
	ID                 uint            `gorm:"primaryKey" json:"id"`
	Name               string          `gorm:"size:100;not null;index" json:"name"`
	Price              decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	DiscountPercentage decimal.Decimal `gorm:"type:numeric(5,2);not null" json:"discount_percentage"`
	ExpiryDate         time.Time       `gorm:"not null;index;index:idx_vouchers_status_expiry,priority:2" json:"expiry_date"`
	CreatedAt          time.Time       `gorm:"index" json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
	UsedAt             *time.Time      `json:"used_at"`
	IsAvailable        bool            `gorm:"not null;default:true;index" json:"is_available"`
	Status             VoucherStatus   `gorm:"type:varchar(20);not null;default:'unused';index;index:idx_vouchers_status_expiry,priority:1" json:"status"`
}

// IsExpired reports whether the voucher's expiry date has passed
func (v *Voucher) IsExpired(now time.Time) bool {
	return now.After(v.ExpiryDate)
}

// CanBeUsed reports whether the voucher may still be redeemed
func (v *Voucher) CanBeUsed(now time.Time) bool {
	return v.IsAvailable && v.Status == VoucherStatusUnused && !v.IsExpired(now)
}

// CanBeDeleted reports whether the voucher may be removed.
// Used vouchers must be kept for audit purposes.
func (v *Voucher) CanBeDeleted() bool {
	return v.Status != VoucherStatusUsed
}

// MarkAsUsed transitions the voucher to the used state
func (v *Voucher) MarkAsUsed(now time.Time) error {
	if v.Status != VoucherStatusUnused {
		return &InvalidTransitionError{From: v.Status, To: VoucherStatusUsed}
	}

	usedAt := now.UTC()
	v.Status = VoucherStatusUsed
	v.UsedAt = &usedAt
	v.IsAvailable = false
	return nil
}

// RecomputeExpiry moves an unused voucher past its expiry date into the
// expired state. It reports whether the voucher changed so the caller can
// persist the transition. Idempotent: a second call is a no-op.
func (v *Voucher) RecomputeExpiry(now time.Time) bool {
	if v.Status == VoucherStatusUnused && v.IsExpired(now) {
		v.Status = VoucherStatusExpired
		v.IsAvailable = false
		return true
	}
	return false
}

// ValidateStatusChange checks whether the voucher may transition to next.
// Used and expired are terminal; only an idempotent no-op to the same
// state is allowed.
func (v *Voucher) ValidateStatusChange(next VoucherStatus) error {
	if v.Status.IsTerminal() && next != v.Status {
		return &InvalidTransitionError{From: v.Status, To: next}
	}
	return nil
}

// ToResponse converts the voucher to its API representation. Monetary
// fields are serialized as fixed two-decimal strings and timestamps with
// an explicit UTC marker.
func (v *Voucher) ToResponse() map[string]interface{} {
	var usedAt interface{}
	if v.UsedAt != nil {
		usedAt = v.UsedAt.UTC().Format(time.RFC3339)
	}

	return map[string]interface{}{
		"id":                  v.ID,
		"name":                v.Name,
		"price":               v.Price.StringFixed(2),
		"discount_percentage": v.DiscountPercentage.StringFixed(2),
		"expiry_date":         v.ExpiryDate.UTC().Format(time.RFC3339),
		"is_available":        v.IsAvailable,
		"status":              string(v.Status),
		"created_at":          v.CreatedAt.UTC().Format(time.RFC3339),
		"updated_at":          v.UpdatedAt.UTC().Format(time.RFC3339),
		"used_at":             usedAt,
	}
}
