package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/umazing/store-dashboard-bff/internal/models"
	"github.com/umazing/store-dashboard-bff/pkg/utils"
)

// OrderController serves the orders page. Order fulfillment still lives
// outside the sheet, so the data here is the demo seed set.
type OrderController struct {
	Orders []models.Order
}

func NewOrderController() *OrderController {
	return &OrderController{Orders: seedOrders()}
}

// ListOrders filters the order history by the optional q (substring on order
// id, customer or product) and status query parameters.
func (oc *OrderController) ListOrders(c *gin.Context) {
	orders := oc.Orders

	if status := c.Query("status"); status != "" {
		filtered := make([]models.Order, 0, len(orders))
		for _, o := range orders {
			if string(o.Status) == status {
				filtered = append(filtered, o)
			}
		}
		orders = filtered
	}

	if q := strings.ToLower(c.Query("q")); q != "" {
		filtered := make([]models.Order, 0, len(orders))
		for _, o := range orders {
			if strings.Contains(strings.ToLower(o.ID), q) ||
				strings.Contains(strings.ToLower(o.Customer), q) ||
				strings.Contains(strings.ToLower(o.Product), q) {
				filtered = append(filtered, o)
			}
		}
		orders = filtered
	}

	utils.SuccessResponse(c, http.StatusOK, gin.H{"orders": orders})
}

// Summary tallies orders by status for the stat cards.
func (oc *OrderController) Summary(c *gin.Context) {
	tallies := map[models.OrderStatus]int{}
	for _, o := range oc.Orders {
		tallies[o.Status]++
	}

	utils.SuccessResponse(c, http.StatusOK, gin.H{
		"summary": gin.H{
			"total":      len(oc.Orders),
			"completed":  tallies[models.OrderCompleted],
			"pending":    tallies[models.OrderPending],
			"processing": tallies[models.OrderProcessing],
			"cancelled":  tallies[models.OrderCancelled],
		},
	})
}
