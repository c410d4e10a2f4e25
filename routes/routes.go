package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/openvoucher/voucherhub/utils"
)

// SetupRouter initializes and returns the Gin router with all routes
func SetupRouter() *gin.Engine {
	router := gin.New()

	router.Use(utils.LoggerMiddleware())
	router.Use(utils.CORSMiddleware())
	router.Use(utils.RecoveryMiddleware())
	router.Use(utils.RequestIDMiddleware())
	router.Use(utils.SecurityHeadersMiddleware())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy", "message": "Voucher API is running"})
	})

	// API version group
	api := router.Group("/v1")
	{
		initVoucherRoutes(api)
	}

	return router
}
