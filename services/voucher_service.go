package services

import (
	"strings"
	"time"

	"github.com/openvoucher/voucherhub/models"
	"github.com/openvoucher/voucherhub/repositories"
	"github.com/openvoucher/voucherhub/utils"
	"gorm.io/gorm"
)

// VoucherService implements the single-item business rules. Every
// mutating operation runs inside one transaction.
type VoucherService struct {
	db *gorm.DB
}

// NewVoucherService creates a voucher service on the given database handle
func NewVoucherService(db *gorm.DB) *VoucherService {
	return &VoucherService{db: db}
}

// Statistics summarizes voucher counts grouped by status
type Statistics struct {
	Total    int64            `json:"total"`
	ByStatus map[string]int64 `json:"by_status"`
}

// CreateVoucher validates and persists a new voucher
func (s *VoucherService) CreateVoucher(req *models.VoucherCreateRequest) (*models.Voucher, error) {
	if err := validateCreateRequest(req); err != nil {
		return nil, err
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	voucher := req.ToVoucher()
	repo := repositories.NewVoucherRepository(tx)
	if err := repo.Create(voucher); err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	utils.LogInfo("Created voucher %d (%s)", voucher.ID, voucher.Name)
	return voucher, nil
}

// GetVoucher fetches a voucher by id
func (s *VoucherService) GetVoucher(id uint) (*models.Voucher, error) {
	repo := repositories.NewVoucherRepository(s.db)
	voucher, err := repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if voucher == nil {
		return nil, models.ErrVoucherNotFound
	}
	return voucher, nil
}

// ListVouchers returns a filtered page of vouchers with the total match
// count and the derived page count.
func (s *VoucherService) ListVouchers(page, perPage int, filters *models.VoucherFilters) ([]models.Voucher, int64, int, error) {
	repo := repositories.NewVoucherRepository(s.db)
	vouchers, total, err := repo.List(page, perPage, filters)
	if err != nil {
		return nil, 0, 0, err
	}
	return vouchers, total, utils.TotalPages(total, perPage), nil
}

// UpdateVoucher applies a partial update to a voucher, enforcing field
// validation and the status transition rules.
func (s *VoucherService) UpdateVoucher(id uint, req *models.VoucherUpdateRequest) (*models.Voucher, error) {
	tx := s.db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	repo := repositories.NewVoucherRepository(tx)
	voucher, err := repo.GetByID(id)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	if voucher == nil {
		tx.Rollback()
		return nil, models.ErrVoucherNotFound
	}

	patch, err := buildUpdatePatch(voucher, req)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := repo.Update(voucher, patch); err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	utils.LogInfo("Updated voucher %d", voucher.ID)
	return voucher, nil
}

// DeleteVoucher removes a voucher. Used vouchers cannot be deleted.
func (s *VoucherService) DeleteVoucher(id uint) error {
	tx := s.db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	repo := repositories.NewVoucherRepository(tx)
	voucher, err := repo.GetByID(id)
	if err != nil {
		tx.Rollback()
		return err
	}
	if voucher == nil {
		tx.Rollback()
		return models.ErrVoucherNotFound
	}

	if !voucher.CanBeDeleted() {
		tx.Rollback()
		return &models.InvalidOperationError{
			Message: "cannot delete a voucher that has been used",
		}
	}

	if err := repo.Delete(voucher); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return err
	}

	utils.LogInfo("Deleted voucher %d", id)
	return nil
}

// GetStatistics aggregates voucher counts per status
func (s *VoucherService) GetStatistics(filters *models.VoucherFilters) (*Statistics, error) {
	repo := repositories.NewVoucherRepository(s.db)
	counts, err := repo.CountByStatus(filters)
	if err != nil {
		return nil, err
	}

	stats := &Statistics{ByStatus: counts}
	for _, count := range counts {
		stats.Total += count
	}
	return stats, nil
}

// validateCreateRequest applies the business rules for new vouchers
func validateCreateRequest(req *models.VoucherCreateRequest) error {
	if err := utils.ValidateVoucherName(req.Name); err != nil {
		return err
	}
	if err := utils.ValidatePrice(req.Price); err != nil {
		return err
	}
	if err := utils.ValidateDiscountPercentage(req.DiscountPercentage); err != nil {
		return err
	}
	return utils.ValidateExpiryDate(req.ExpiryDate)
}

// buildUpdatePatch validates the changed fields and translates them into
// a column patch, applying the state machine rules when the status
// changes. A transition into the used state without an explicit used_at
// stamps the current time.
func buildUpdatePatch(voucher *models.Voucher, req *models.VoucherUpdateRequest) (map[string]interface{}, error) {
	patch := make(map[string]interface{})

	if req.Name != nil {
		if err := utils.ValidateVoucherName(*req.Name); err != nil {
			return nil, err
		}
		patch["name"] = strings.TrimSpace(*req.Name)
	}

	if req.Price != nil {
		if err := utils.ValidatePrice(*req.Price); err != nil {
			return nil, err
		}
		patch["price"] = *req.Price
	}

	if req.DiscountPercentage != nil {
		if err := utils.ValidateDiscountPercentage(*req.DiscountPercentage); err != nil {
			return nil, err
		}
		patch["discount_percentage"] = *req.DiscountPercentage
	}

	if req.ExpiryDate != nil {
		patch["expiry_date"] = req.ExpiryDate.UTC()
	}

	if req.IsAvailable != nil {
		patch["is_available"] = *req.IsAvailable
	}

	if req.Status != nil {
		if err := utils.ValidateVoucherStatus(*req.Status); err != nil {
			return nil, err
		}
		next := models.VoucherStatus(*req.Status)
		if err := voucher.ValidateStatusChange(next); err != nil {
			return nil, err
		}

		if next != voucher.Status {
			patch["status"] = next
			if next.IsTerminal() {
				patch["is_available"] = false
			}
			if next == models.VoucherStatusUsed {
				if req.UsedAt != nil {
					patch["used_at"] = req.UsedAt.UTC()
				} else {
					patch["used_at"] = time.Now().UTC()
				}
			}
		}
	}

	return patch, nil
}
