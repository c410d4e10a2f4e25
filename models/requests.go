package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// VoucherCreateRequest is the payload for creating a single voucher
type VoucherCreateRequest struct {
	Name               string          `json:"name" binding:"required,min=1,max=100"`
	Price              decimal.Decimal `json:"price" binding:"required"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
	ExpiryDate         time.Time       `json:"expiry_date" binding:"required"`
	IsAvailable        *bool           `json:"is_available"`
}

// ToVoucher builds a new voucher entity from the request. Status always
// starts out unused; availability defaults to true.
func (r *VoucherCreateRequest) ToVoucher() *Voucher {
	isAvailable := true
	if r.IsAvailable != nil {
		isAvailable = *r.IsAvailable
	}

	return &Voucher{
		Name:               strings.TrimSpace(r.Name),
		Price:              r.Price,
		DiscountPercentage: r.DiscountPercentage,
		ExpiryDate:         r.ExpiryDate.UTC(),
		IsAvailable:        isAvailable,
		Status:             VoucherStatusUnused,
	}
}

// VoucherUpdateRequest is a partial update; nil fields are left untouched
type VoucherUpdateRequest struct {
	Name               *string          `json:"name"`
	Price              *decimal.Decimal `json:"price"`
	DiscountPercentage *decimal.Decimal `json:"discount_percentage"`
	ExpiryDate         *time.Time       `json:"expiry_date"`
	IsAvailable        *bool            `json:"is_available"`
	Status             *string          `json:"status"`
	UsedAt             *time.Time       `json:"used_at"`
}

// BatchCreateRequest wraps the payload list for a bulk create call.
// Requests above the 10,000 item cap are rejected at the binding layer.
type BatchCreateRequest struct {
	Vouchers []VoucherCreateRequest `json:"vouchers" binding:"required,min=1,max=10000"`
}

// BatchUpdateItem pairs a voucher id with its partial update
type BatchUpdateItem struct {
	ID   uint                 `json:"id" binding:"required"`
	Data VoucherUpdateRequest `json:"data" binding:"required"`
}

// BatchUpdateRequest wraps the update list for a bulk update call
type BatchUpdateRequest struct {
	Updates []BatchUpdateItem `json:"updates" binding:"required,min=1,max=10000"`
}
