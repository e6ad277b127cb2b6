package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/umazing/store-dashboard-bff/internal/catalog"
	"github.com/umazing/store-dashboard-bff/pkg/utils"
)

// DashboardController backs the landing page: headline stats, the most recent
// orders and the top sellers. Revenue figures are demo seed data; the product
// counters come from the live catalog view.
type DashboardController struct {
	Catalog *catalog.Catalog
	Orders  *OrderController
}

func (dc *DashboardController) Overview(c *gin.Context) {
	recent := dc.Orders.Orders
	if len(recent) > 5 {
		recent = recent[:5]
	}

	utils.SuccessResponse(c, http.StatusOK, gin.H{
		"stats": gin.H{
			"totalRevenue": "$45,231",
			"totalSales":   1234,
			"totalOrders":  892,
			"products":     dc.Catalog.Summary(),
		},
		"recentOrders": recent,
		"topProducts":  seedTopProducts(),
	})
}
