package repositories

import (
	"errors"
	"time"

	"github.com/openvoucher/voucherhub/models"
	"gorm.io/gorm"
)

// VoucherRepository is the data access layer for vouchers. It is bound to
// a *gorm.DB handle, which is an open transaction in every mutating code
// path so created ids and defaults are visible before the enclosing
// commit.
type VoucherRepository struct {
	db *gorm.DB
}

// NewVoucherRepository creates a repository bound to the given handle
func NewVoucherRepository(db *gorm.DB) *VoucherRepository {
	return &VoucherRepository{db: db}
}

// Create inserts a voucher and populates its generated id and timestamps
func (r *VoucherRepository) Create(voucher *models.Voucher) error {
	return r.db.Create(voucher).Error
}

// GetByID fetches a voucher by id, returning (nil, nil) when absent.
// Expiry state is recomputed before the voucher is returned and persisted
// if it changed.
func (r *VoucherRepository) GetByID(id uint) (*models.Voucher, error) {
	var voucher models.Voucher
	if err := r.db.First(&voucher, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if voucher.RecomputeExpiry(time.Now().UTC()) {
		if err := r.persistExpiry(&voucher); err != nil {
			return nil, err
		}
	}

	return &voucher, nil
}

// List returns a page of vouchers matching the filters plus the total
// match count. Results are ordered newest first. Expiry is recomputed per
// row before returning.
func (r *VoucherRepository) List(page, perPage int, filters *models.VoucherFilters) ([]models.Voucher, int64, error) {
	query := applyFilters(r.db.Model(&models.Voucher{}), filters)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * perPage
	var vouchers []models.Voucher
	if err := query.Order("created_at DESC").Offset(offset).Limit(perPage).Find(&vouchers).Error; err != nil {
		return nil, 0, err
	}

	now := time.Now().UTC()
	for i := range vouchers {
		if vouchers[i].RecomputeExpiry(now) {
			if err := r.persistExpiry(&vouchers[i]); err != nil {
				return nil, 0, err
			}
		}
	}

	return vouchers, total, nil
}

// Update applies a field patch to the voucher and refreshes the struct so
// the caller sees the stored values. Every update stamps updated_at.
func (r *VoucherRepository) Update(voucher *models.Voucher, patch map[string]interface{}) error {
	patch["updated_at"] = time.Now().UTC()
	if err := r.db.Model(voucher).Updates(patch).Error; err != nil {
		return err
	}
	return r.db.First(voucher, voucher.ID).Error
}

// Delete removes the voucher row
func (r *VoucherRepository) Delete(voucher *models.Voucher) error {
	return r.db.Delete(voucher).Error
}

// BulkCreate inserts vouchers in batches of 100, populating generated ids
func (r *VoucherRepository) BulkCreate(vouchers []models.Voucher) error {
	if len(vouchers) == 0 {
		return nil
	}
	return r.db.CreateInBatches(vouchers, 100).Error
}

// CountByStatus counts vouchers per status, re-applying the same filter
// predicate for each status value.
func (r *VoucherRepository) CountByStatus(filters *models.VoucherFilters) (map[string]int64, error) {
	result := make(map[string]int64, 3)
	for _, status := range models.AllVoucherStatuses() {
		query := applyFilters(r.db.Model(&models.Voucher{}), filters)

		var count int64
		if err := query.Where("status = ?", status).Count(&count).Error; err != nil {
			return nil, err
		}
		result[string(status)] = count
	}
	return result, nil
}

// persistExpiry writes a lazy expiry transition back to the store
func (r *VoucherRepository) persistExpiry(voucher *models.Voucher) error {
	return r.db.Model(voucher).Updates(map[string]interface{}{
		"status":       voucher.Status,
		"is_available": voucher.IsAvailable,
		"updated_at":   time.Now().UTC(),
	}).Error
}

// applyFilters adds the typed filter criteria to the query. All criteria
// combine with AND semantics; unset fields are skipped.
func applyFilters(query *gorm.DB, filters *models.VoucherFilters) *gorm.DB {
	if filters.IsZero() {
		return query
	}

	if filters.Name != "" {
		query = query.Where("name ILIKE ?", "%"+filters.Name+"%")
	}
	if filters.MinPrice != nil {
		query = query.Where("price >= ?", *filters.MinPrice)
	}
	if filters.MaxPrice != nil {
		query = query.Where("price <= ?", *filters.MaxPrice)
	}
	if filters.MinDiscount != nil {
		query = query.Where("discount_percentage >= ?", *filters.MinDiscount)
	}
	if filters.MaxDiscount != nil {
		query = query.Where("discount_percentage <= ?", *filters.MaxDiscount)
	}
	if filters.Status != "" && filters.Status.IsValid() {
		query = query.Where("status = ?", filters.Status)
	}
	if filters.IsAvailable != nil {
		query = query.Where("is_available = ?", *filters.IsAvailable)
	}
	if filters.ValidFrom != nil {
		query = query.Where("expiry_date >= ?", *filters.ValidFrom)
	}
	if filters.ValidTo != nil {
		query = query.Where("expiry_date <= ?", *filters.ValidTo)
	}

	return query
}
