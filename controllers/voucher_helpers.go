package controllers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/openvoucher/voucherhub/config"
	"github.com/openvoucher/voucherhub/models"
	"github.com/openvoucher/voucherhub/utils"
	"github.com/shopspring/decimal"
)

// parseVoucherID reads the :id path parameter
func parseVoucherID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.LogError("Invalid voucher id: %s", c.Param("id"))
		utils.BadRequest(c, "Invalid voucher id", nil)
		return 0, false
	}
	return uint(id), true
}

// parseVoucherFilters builds the typed filter set from query parameters
func parseVoucherFilters(c *gin.Context) (*models.VoucherFilters, error) {
	filters := &models.VoucherFilters{Name: c.Query("name")}

	decimalParams := map[string]**decimal.Decimal{
		"min_price":    &filters.MinPrice,
		"max_price":    &filters.MaxPrice,
		"min_discount": &filters.MinDiscount,
		"max_discount": &filters.MaxDiscount,
	}
	for param, target := range decimalParams {
		if raw := c.Query(param); raw != "" {
			value, err := decimal.NewFromString(raw)
			if err != nil {
				return nil, models.NewValidationError(param, "must be a decimal number")
			}
			*target = &value
		}
	}

	if raw := c.Query("status"); raw != "" {
		if err := utils.ValidateVoucherStatus(raw); err != nil {
			return nil, err
		}
		filters.Status = models.VoucherStatus(raw)
	}

	if raw := c.Query("is_available"); raw != "" {
		value, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, models.NewValidationError("is_available", "must be a boolean")
		}
		filters.IsAvailable = &value
	}

	timeParams := map[string]**time.Time{
		"valid_from": &filters.ValidFrom,
		"valid_to":   &filters.ValidTo,
	}
	for param, target := range timeParams {
		if raw := c.Query(param); raw != "" {
			value, err := time.Parse(time.RFC3339, raw)
			if err != nil {
				return nil, models.NewValidationError(param, "must be an RFC3339 timestamp")
			}
			*target = &value
		}
	}

	return filters, nil
}

// respondServiceError maps domain errors to HTTP responses
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrVoucherNotFound):
		utils.NotFound(c, "Voucher not found")
	case models.IsValidationError(err), models.IsInvalidTransition(err), models.IsInvalidOperation(err):
		utils.BadRequest(c, err.Error(), nil)
	case models.IsBatchCommitError(err):
		utils.InternalServerError(c, "Batch commit failed", err.Error())
	default:
		utils.InternalServerError(c, "Internal server error", err.Error())
	}
}

// voucherResponses converts vouchers to their API representation
func voucherResponses(vouchers []models.Voucher) []map[string]interface{} {
	responses := make([]map[string]interface{}, 0, len(vouchers))
	for i := range vouchers {
		responses = append(responses, vouchers[i].ToResponse())
	}
	return responses
}

func defaultPageSize() int {
	if config.App != nil {
		return config.App.DefaultPageSize
	}
	return 20
}

func maxPageSize() int {
	if config.App != nil {
		return config.App.MaxPageSize
	}
	return 100
}

func batchChunkSize() int {
	if config.App != nil {
		return config.App.BatchChunkSize
	}
	return 0
}

func batchSizeLimit() int {
	if config.App != nil {
		return config.App.BatchSizeLimit
	}
	return 10000
}
