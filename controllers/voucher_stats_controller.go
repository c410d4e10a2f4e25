package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/openvoucher/voucherhub/config"
	"github.com/openvoucher/voucherhub/services"
	"github.com/openvoucher/voucherhub/utils"
)

// GetVoucherStatistics returns voucher counts grouped by status. The same
// filter parameters as the listing endpoint narrow the aggregation.
func GetVoucherStatistics(c *gin.Context) {
	utils.LogInfo("GetVoucherStatistics called")

	filters, err := parseVoucherFilters(c)
	if err != nil {
		utils.LogError("Invalid filter parameters: %v", err)
		utils.BadRequest(c, err.Error(), nil)
		return
	}

	service := services.NewVoucherService(config.DB)
	stats, err := service.GetStatistics(filters)
	if err != nil {
		utils.LogError("Failed to compute statistics: %v", err)
		utils.InternalServerError(c, "Failed to compute statistics", err.Error())
		return
	}

	utils.Success(c, "Statistics retrieved successfully", stats)
}
