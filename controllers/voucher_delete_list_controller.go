package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/openvoucher/voucherhub/config"
	"github.com/openvoucher/voucherhub/services"
	"github.com/openvoucher/voucherhub/utils"
)

// GetVouchers returns a filtered, paginated voucher listing ordered
// newest first
func GetVouchers(c *gin.Context) {
	utils.LogInfo("GetVouchers called")

	pagination := utils.NewPagination(c, defaultPageSize(), maxPageSize())

	filters, err := parseVoucherFilters(c)
	if err != nil {
		utils.LogError("Invalid filter parameters: %v", err)
		utils.BadRequest(c, err.Error(), nil)
		return
	}
	utils.LogInfo("Fetching vouchers - page: %d, per_page: %d", pagination.Page, pagination.PerPage)

	service := services.NewVoucherService(config.DB)
	vouchers, total, pages, err := service.ListVouchers(pagination.Page, pagination.PerPage, filters)
	if err != nil {
		utils.LogError("Failed to fetch vouchers: %v", err)
		utils.InternalServerError(c, "Failed to fetch vouchers", err.Error())
		return
	}
	pagination.SetTotal(total)
	pagination.Pages = pages

	utils.LogInfo("Retrieved %d vouchers out of %d total", len(vouchers), total)
	utils.Success(c, "Vouchers retrieved successfully", gin.H{
		"vouchers":   voucherResponses(vouchers),
		"pagination": pagination.ToResponse(),
	})
}

// DeleteVoucher deletes a voucher. Used vouchers are refused.
func DeleteVoucher(c *gin.Context) {
	utils.LogInfo("DeleteVoucher called")

	id, ok := parseVoucherID(c)
	if !ok {
		return
	}
	utils.LogInfo("Processing deletion for voucher ID: %d", id)

	service := services.NewVoucherService(config.DB)
	if err := service.DeleteVoucher(id); err != nil {
		utils.LogError("Failed to delete voucher %d: %v", id, err)
		respondServiceError(c, err)
		return
	}

	utils.LogInfo("Successfully deleted voucher with ID: %d", id)
	utils.Success(c, "Voucher deleted successfully", nil)
}
