package api

import (
	"github.com/gin-gonic/gin"

	"github.com/umazing/store-dashboard-bff/internal/catalog"
	"github.com/umazing/store-dashboard-bff/internal/handlers"
	"github.com/umazing/store-dashboard-bff/internal/middleware"
)

func SetupRouter(cat *catalog.Catalog, gateway catalog.Gateway, maxBodyBytes int64) *gin.Engine {
	r := gin.Default()

	productController := &handlers.ProductController{
		Catalog: cat,
		Gateway: gateway,
	}

	orderController := handlers.NewOrderController()

	dashboardController := &handlers.DashboardController{
		Catalog: cat,
		Orders:  orderController,
	}

	// Health check
	r.GET("/health", handlers.HealthCheck)

	api := r.Group("/api")

	// Product routes
	api.GET("/products", productController.ListProducts)
	api.POST("/products", middleware.MaxBodySize(maxBodyBytes), productController.Mutate)
	api.GET("/products/summary", productController.Summary)
	api.POST("/products/images", middleware.MaxBodySize(maxBodyBytes), productController.UploadImages)

	// Order routes
	api.GET("/orders", orderController.ListOrders)
	api.GET("/orders/summary", orderController.Summary)

	// Dashboard route
	api.GET("/dashboard", dashboardController.Overview)

	return r
}
