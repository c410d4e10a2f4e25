package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/openvoucher/voucherhub/config"
	"github.com/openvoucher/voucherhub/services"
	"github.com/openvoucher/voucherhub/utils"
)

// GetVoucher returns a single voucher by id. The read refreshes the
// voucher's expiry state, so an overdue unused voucher comes back expired.
func GetVoucher(c *gin.Context) {
	utils.LogInfo("GetVoucher called")

	id, ok := parseVoucherID(c)
	if !ok {
		return
	}

	service := services.NewVoucherService(config.DB)
	voucher, err := service.GetVoucher(id)
	if err != nil {
		utils.LogError("Failed to fetch voucher %d: %v", id, err)
		respondServiceError(c, err)
		return
	}

	utils.Success(c, "Voucher retrieved successfully", voucher.ToResponse())
}
