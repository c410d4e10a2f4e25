package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func newTestVoucher(status VoucherStatus, expiry time.Time) *Voucher {
	return &Voucher{
		ID:                 1,
		Name:               "Test Voucher",
		Price:              decimal.NewFromFloat(100.00),
		DiscountPercentage: decimal.NewFromFloat(20.00),
		ExpiryDate:         expiry,
		IsAvailable:        status == VoucherStatusUnused,
		Status:             status,
	}
}

func TestMarkAsUsed(t *testing.T) {
	now := time.Now().UTC()

	t.Run("unused voucher becomes used", func(t *testing.T) {
		voucher := newTestVoucher(VoucherStatusUnused, now.Add(24*time.Hour))

		err := voucher.MarkAsUsed(now)

		assert.NoError(t, err)
		assert.Equal(t, VoucherStatusUsed, voucher.Status)
		assert.False(t, voucher.IsAvailable)
		if assert.NotNil(t, voucher.UsedAt) {
			assert.Equal(t, now.UTC(), *voucher.UsedAt)
		}
	})

	t.Run("used voucher cannot be marked again", func(t *testing.T) {
		voucher := newTestVoucher(VoucherStatusUsed, now.Add(24*time.Hour))
		usedAt := now.Add(-time.Hour)
		voucher.UsedAt = &usedAt

		err := voucher.MarkAsUsed(now)

		assert.Error(t, err)
		var transitionErr *InvalidTransitionError
		assert.ErrorAs(t, err, &transitionErr)
		// state must be untouched
		assert.Equal(t, VoucherStatusUsed, voucher.Status)
		assert.Equal(t, usedAt, *voucher.UsedAt)
	})

	t.Run("expired voucher cannot be marked", func(t *testing.T) {
		voucher := newTestVoucher(VoucherStatusExpired, now.Add(-24*time.Hour))

		err := voucher.MarkAsUsed(now)

		assert.True(t, IsInvalidTransition(err))
		assert.Equal(t, VoucherStatusExpired, voucher.Status)
		assert.Nil(t, voucher.UsedAt)
	})
}

func TestRecomputeExpiry(t *testing.T) {
	now := time.Now().UTC()

	t.Run("overdue unused voucher expires", func(t *testing.T) {
		voucher := newTestVoucher(VoucherStatusUnused, now.Add(-time.Minute))

		changed := voucher.RecomputeExpiry(now)

		assert.True(t, changed)
		assert.Equal(t, VoucherStatusExpired, voucher.Status)
		assert.False(t, voucher.IsAvailable)
	})

	t.Run("idempotent on already expired voucher", func(t *testing.T) {
		voucher := newTestVoucher(VoucherStatusUnused, now.Add(-time.Minute))

		assert.True(t, voucher.RecomputeExpiry(now))
		first := *voucher

		assert.False(t, voucher.RecomputeExpiry(now))
		assert.Equal(t, first, *voucher)
		assert.Nil(t, voucher.UsedAt)
	})

	t.Run("no-op before expiry", func(t *testing.T) {
		voucher := newTestVoucher(VoucherStatusUnused, now.Add(time.Hour))

		assert.False(t, voucher.RecomputeExpiry(now))
		assert.Equal(t, VoucherStatusUnused, voucher.Status)
		assert.True(t, voucher.IsAvailable)
	})

	t.Run("used voucher never expires", func(t *testing.T) {
		voucher := newTestVoucher(VoucherStatusUsed, now.Add(-time.Hour))

		assert.False(t, voucher.RecomputeExpiry(now))
		assert.Equal(t, VoucherStatusUsed, voucher.Status)
	})

	t.Run("availability matches status and expiry after recompute", func(t *testing.T) {
		cases := []struct {
			status VoucherStatus
			expiry time.Time
		}{
			{VoucherStatusUnused, now.Add(time.Hour)},
			{VoucherStatusUnused, now.Add(-time.Hour)},
			{VoucherStatusUsed, now.Add(time.Hour)},
			{VoucherStatusExpired, now.Add(-time.Hour)},
		}
		for _, tc := range cases {
			voucher := newTestVoucher(tc.status, tc.expiry)
			voucher.RecomputeExpiry(now)

			expected := voucher.Status == VoucherStatusUnused && !now.After(voucher.ExpiryDate)
			assert.Equal(t, expected, voucher.IsAvailable,
				"status=%s expiry=%s", tc.status, tc.expiry)
		}
	})
}

func TestValidateStatusChange(t *testing.T) {
	now := time.Now().UTC()

	t.Run("unused may transition to any status", func(t *testing.T) {
		voucher := newTestVoucher(VoucherStatusUnused, now.Add(time.Hour))

		assert.NoError(t, voucher.ValidateStatusChange(VoucherStatusUsed))
		assert.NoError(t, voucher.ValidateStatusChange(VoucherStatusExpired))
		assert.NoError(t, voucher.ValidateStatusChange(VoucherStatusUnused))
	})

	t.Run("terminal states only allow no-op", func(t *testing.T) {
		for _, status := range []VoucherStatus{VoucherStatusUsed, VoucherStatusExpired} {
			voucher := newTestVoucher(status, now)

			assert.NoError(t, voucher.ValidateStatusChange(status))
			for _, next := range AllVoucherStatuses() {
				if next == status {
					continue
				}
				err := voucher.ValidateStatusChange(next)
				assert.True(t, IsInvalidTransition(err), "from=%s to=%s", status, next)
			}
		}
	})
}

func TestCanBeDeleted(t *testing.T) {
	now := time.Now().UTC()

	assert.True(t, newTestVoucher(VoucherStatusUnused, now).CanBeDeleted())
	assert.True(t, newTestVoucher(VoucherStatusExpired, now).CanBeDeleted())
	assert.False(t, newTestVoucher(VoucherStatusUsed, now).CanBeDeleted())
}

func TestCanBeUsed(t *testing.T) {
	now := time.Now().UTC()

	assert.True(t, newTestVoucher(VoucherStatusUnused, now.Add(time.Hour)).CanBeUsed(now))
	assert.False(t, newTestVoucher(VoucherStatusUnused, now.Add(-time.Hour)).CanBeUsed(now))
	assert.False(t, newTestVoucher(VoucherStatusUsed, now.Add(time.Hour)).CanBeUsed(now))
}

func TestToResponse(t *testing.T) {
	expiry := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	voucher := newTestVoucher(VoucherStatusUnused, expiry)
	voucher.CreatedAt = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	voucher.UpdatedAt = voucher.CreatedAt

	resp := voucher.ToResponse()

	assert.Equal(t, "100.00", resp["price"])
	assert.Equal(t, "20.00", resp["discount_percentage"])
	assert.Equal(t, "2026-06-01T12:00:00Z", resp["expiry_date"])
	assert.Equal(t, "2026-01-02T03:04:05Z", resp["created_at"])
	assert.Equal(t, "unused", resp["status"])
	assert.Equal(t, true, resp["is_available"])
	assert.Nil(t, resp["used_at"])

	usedAt := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	voucher.Status = VoucherStatusUsed
	voucher.UsedAt = &usedAt

	resp = voucher.ToResponse()
	assert.Equal(t, "2026-02-01T00:00:00Z", resp["used_at"])
}
