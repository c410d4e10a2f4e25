package controllers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/openvoucher/voucherhub/config"
	"github.com/openvoucher/voucherhub/models"
	"github.com/openvoucher/voucherhub/services"
	"github.com/openvoucher/voucherhub/utils"
)

// BatchCreateVouchers creates up to 10,000 vouchers in one call. Invalid
// items are reported back with their input index and payload; valid items
// are committed together at the end.
func BatchCreateVouchers(c *gin.Context) {
	utils.LogInfo("BatchCreateVouchers called")

	var req models.BatchCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid batch create request: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}
	if limit := batchSizeLimit(); len(req.Vouchers) > limit {
		utils.LogError("Batch create rejected: %d items exceeds limit %d", len(req.Vouchers), limit)
		utils.BadRequest(c, fmt.Sprintf("batch size exceeds the limit of %d items", limit), nil)
		return
	}
	utils.LogInfo("Processing batch create with %d items", len(req.Vouchers))

	service := services.NewBatchService(config.DB, batchChunkSize())
	result, err := service.BatchCreate(req.Vouchers)
	if err != nil {
		utils.LogError("Batch create failed: %v", err)
		respondServiceError(c, err)
		return
	}

	utils.Created(c, "Batch create completed", result)
}

// BatchUpdateVouchers applies up to 10,000 partial updates in one call
// with the same partial-failure semantics as batch create.
func BatchUpdateVouchers(c *gin.Context) {
	utils.LogInfo("BatchUpdateVouchers called")

	var req models.BatchUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid batch update request: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}
	if limit := batchSizeLimit(); len(req.Updates) > limit {
		utils.LogError("Batch update rejected: %d items exceeds limit %d", len(req.Updates), limit)
		utils.BadRequest(c, fmt.Sprintf("batch size exceeds the limit of %d items", limit), nil)
		return
	}
	utils.LogInfo("Processing batch update with %d items", len(req.Updates))

	service := services.NewBatchService(config.DB, batchChunkSize())
	result, err := service.BatchUpdate(req.Updates)
	if err != nil {
		utils.LogError("Batch update failed: %v", err)
		respondServiceError(c, err)
		return
	}

	utils.Success(c, "Batch update completed", result)
}
