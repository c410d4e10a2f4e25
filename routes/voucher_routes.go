package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/openvoucher/voucherhub/controllers"
)

// initVoucherRoutes initializes all voucher-related routes
func initVoucherRoutes(router *gin.RouterGroup) {
	vouchers := router.Group("/vouchers")
	{
		// Single-item operations
		vouchers.POST("", controllers.CreateVoucher)
		vouchers.GET("", controllers.GetVouchers)
		vouchers.GET("/:id", controllers.GetVoucher)
		vouchers.PATCH("/:id", controllers.UpdateVoucher)
		vouchers.DELETE("/:id", controllers.DeleteVoucher)

		// Batch operations
		vouchers.POST("/batch", controllers.BatchCreateVouchers)
		vouchers.PATCH("/batch", controllers.BatchUpdateVouchers)

		// Aggregations and exports
		vouchers.GET("/statistics", controllers.GetVoucherStatistics)
		vouchers.GET("/report/excel", controllers.DownloadVoucherReportExcel)
		vouchers.GET("/report/pdf", controllers.DownloadVoucherReportPDF)
	}
}
