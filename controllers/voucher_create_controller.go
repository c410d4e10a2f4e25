package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/openvoucher/voucherhub/config"
	"github.com/openvoucher/voucherhub/models"
	"github.com/openvoucher/voucherhub/services"
	"github.com/openvoucher/voucherhub/utils"
)

// CreateVoucher creates a new voucher
func CreateVoucher(c *gin.Context) {
	utils.LogInfo("CreateVoucher called")

	var req models.VoucherCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}
	utils.LogInfo("Processing voucher creation with name: %s", req.Name)

	service := services.NewVoucherService(config.DB)
	voucher, err := service.CreateVoucher(&req)
	if err != nil {
		utils.LogError("Failed to create voucher: %v", err)
		respondServiceError(c, err)
		return
	}

	utils.LogInfo("Successfully created voucher with ID: %d", voucher.ID)
	utils.Created(c, "Voucher created successfully", voucher.ToResponse())
}
