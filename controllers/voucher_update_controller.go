package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/openvoucher/voucherhub/config"
	"github.com/openvoucher/voucherhub/models"
	"github.com/openvoucher/voucherhub/services"
	"github.com/openvoucher/voucherhub/utils"
)

// UpdateVoucher applies a partial update to an existing voucher
func UpdateVoucher(c *gin.Context) {
	utils.LogInfo("UpdateVoucher called")

	id, ok := parseVoucherID(c)
	if !ok {
		return
	}
	utils.LogInfo("Processing update for voucher ID: %d", id)

	var req models.VoucherUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request format for voucher %d: %v", id, err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	service := services.NewVoucherService(config.DB)
	voucher, err := service.UpdateVoucher(id, &req)
	if err != nil {
		utils.LogError("Failed to update voucher %d: %v", id, err)
		respondServiceError(c, err)
		return
	}

	utils.LogInfo("Successfully updated voucher with ID: %d", voucher.ID)
	utils.Success(c, "Voucher updated successfully", voucher.ToResponse())
}
