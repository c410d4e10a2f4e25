package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/openvoucher/voucherhub/config"
	"github.com/openvoucher/voucherhub/models"
	"github.com/openvoucher/voucherhub/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestVoucherRepository(t *testing.T) {
	utils.SkipWithoutDB(t)
	utils.TestSetup(t)
	defer utils.TestTeardown(t)

	repo := NewVoucherRepository(config.DB)

	t.Run("create assigns id and defaults", func(t *testing.T) {
		utils.ClearTestData()

		voucher := utils.NewTestVoucher("Fresh", time.Now().Add(24*time.Hour))
		assert.NoError(t, repo.Create(voucher))
		assert.NotZero(t, voucher.ID)

		fetched, err := repo.GetByID(voucher.ID)
		assert.NoError(t, err)
		assert.NotNil(t, fetched)
		assert.Equal(t, models.VoucherStatusUnused, fetched.Status)
		assert.True(t, fetched.IsAvailable)
	})

	t.Run("get missing id returns nil without error", func(t *testing.T) {
		fetched, err := repo.GetByID(99999)
		assert.NoError(t, err)
		assert.Nil(t, fetched)
	})

	t.Run("overdue voucher is expired on read and persisted", func(t *testing.T) {
		utils.ClearTestData()

		voucher := utils.CreateTestVoucher(t, "Stale", time.Now().Add(-time.Hour))

		fetched, err := repo.GetByID(voucher.ID)
		assert.NoError(t, err)
		assert.Equal(t, models.VoucherStatusExpired, fetched.Status)
		assert.False(t, fetched.IsAvailable)

		var stored models.Voucher
		assert.NoError(t, config.DB.First(&stored, voucher.ID).Error)
		assert.Equal(t, models.VoucherStatusExpired, stored.Status)
	})

	t.Run("list recomputes expiry for every returned row", func(t *testing.T) {
		utils.ClearTestData()

		utils.CreateTestVoucher(t, "Still Good", time.Now().Add(24*time.Hour))
		utils.CreateTestVoucher(t, "Gone Stale", time.Now().Add(-time.Hour))

		vouchers, total, err := repo.List(1, 10, &models.VoucherFilters{})
		assert.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, vouchers, 2)

		byName := make(map[string]models.VoucherStatus, len(vouchers))
		for _, v := range vouchers {
			byName[v.Name] = v.Status
		}
		assert.Equal(t, models.VoucherStatusUnused, byName["Still Good"])
		assert.Equal(t, models.VoucherStatusExpired, byName["Gone Stale"])
	})

	t.Run("filters narrow the result set", func(t *testing.T) {
		utils.ClearTestData()

		cheap := utils.NewTestVoucher("Summer Cheap", time.Now().Add(24*time.Hour))
		cheap.Price = decimal.NewFromFloat(10.00)
		assert.NoError(t, repo.Create(cheap))

		pricey := utils.NewTestVoucher("Summer Pricey", time.Now().Add(24*time.Hour))
		pricey.Price = decimal.NewFromFloat(500.00)
		assert.NoError(t, repo.Create(pricey))

		other := utils.NewTestVoucher("Winter Deal", time.Now().Add(24*time.Hour))
		assert.NoError(t, repo.Create(other))

		minPrice := decimal.NewFromFloat(100.00)
		vouchers, total, err := repo.List(1, 10, &models.VoucherFilters{
			Name:     "summer",
			MinPrice: &minPrice,
		})
		assert.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Len(t, vouchers, 1)
		assert.Equal(t, "Summer Pricey", vouchers[0].Name)
	})

	t.Run("status filter sees lazily expired rows", func(t *testing.T) {
		utils.ClearTestData()

		utils.CreateTestVoucher(t, "Expired A", time.Now().Add(-time.Hour))
		utils.CreateTestVoucher(t, "Live B", time.Now().Add(24*time.Hour))

		// first read persists the expiry transition
		_, _, err := repo.List(1, 10, &models.VoucherFilters{})
		assert.NoError(t, err)

		vouchers, total, err := repo.List(1, 10, &models.VoucherFilters{
			Status: models.VoucherStatusExpired,
		})
		assert.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Equal(t, "Expired A", vouchers[0].Name)
	})

	t.Run("pagination slices newest first", func(t *testing.T) {
		utils.ClearTestData()

		for i := 0; i < 5; i++ {
			utils.CreateTestVoucher(t, fmt.Sprintf("Page %d", i), time.Now().Add(24*time.Hour))
		}

		vouchers, total, err := repo.List(2, 2, &models.VoucherFilters{})
		assert.NoError(t, err)
		assert.Equal(t, int64(5), total)
		assert.Len(t, vouchers, 2)
	})

	t.Run("update applies patch and refreshes struct", func(t *testing.T) {
		utils.ClearTestData()

		voucher := utils.CreateTestVoucher(t, "Before", time.Now().Add(24*time.Hour))
		newPrice := decimal.NewFromFloat(42.50)

		err := repo.Update(voucher, map[string]interface{}{
			"name":  "After",
			"price": newPrice,
		})
		assert.NoError(t, err)
		assert.Equal(t, "After", voucher.Name)
		assert.True(t, newPrice.Equal(voucher.Price))
	})

	t.Run("delete removes the row", func(t *testing.T) {
		utils.ClearTestData()

		voucher := utils.CreateTestVoucher(t, "Doomed", time.Now().Add(24*time.Hour))
		assert.NoError(t, repo.Delete(voucher))

		fetched, err := repo.GetByID(voucher.ID)
		assert.NoError(t, err)
		assert.Nil(t, fetched)
	})

	t.Run("bulk create inserts all rows", func(t *testing.T) {
		utils.ClearTestData()

		vouchers := make([]models.Voucher, 3)
		for i := range vouchers {
			vouchers[i] = *utils.NewTestVoucher(fmt.Sprintf("Bulk %d", i), time.Now().Add(24*time.Hour))
		}
		assert.NoError(t, repo.BulkCreate(vouchers))

		var count int64
		assert.NoError(t, config.DB.Model(&models.Voucher{}).Count(&count).Error)
		assert.Equal(t, int64(3), count)
	})

	t.Run("count by status covers every status", func(t *testing.T) {
		utils.ClearTestData()

		utils.CreateTestVoucher(t, "Count A", time.Now().Add(24*time.Hour))
		utils.CreateTestVoucher(t, "Count B", time.Now().Add(24*time.Hour))
		expired := utils.CreateTestVoucher(t, "Count C", time.Now().Add(-time.Hour))
		_, err := repo.GetByID(expired.ID) // persist the expiry
		assert.NoError(t, err)

		counts, err := repo.CountByStatus(&models.VoucherFilters{})
		assert.NoError(t, err)
		assert.Equal(t, int64(2), counts["unused"])
		assert.Equal(t, int64(0), counts["used"])
		assert.Equal(t, int64(1), counts["expired"])
	})
}
