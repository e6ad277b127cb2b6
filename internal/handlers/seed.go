package handlers

import "github.com/umazing/store-dashboard-bff/internal/models"

// Demo order history, matching the dashboard mockups.
func seedOrders() []models.Order {
	return []models.Order{
		{ID: "#ORD-001", Customer: "John Doe", Email: "john@example.com", Product: "Wireless Headphones", Amount: "$299.00", Status: models.OrderCompleted, Date: "2024-01-15"},
		{ID: "#ORD-002", Customer: "Jane Smith", Email: "jane@example.com", Product: "Smart Watch", Amount: "$399.00", Status: models.OrderPending, Date: "2024-01-14"},
		{ID: "#ORD-003", Customer: "Mike Johnson", Email: "mike@example.com", Product: "Laptop Stand", Amount: "$79.00", Status: models.OrderCompleted, Date: "2024-01-14"},
		{ID: "#ORD-004", Customer: "Sarah Williams", Email: "sarah@example.com", Product: "USB-C Hub", Amount: "$49.00", Status: models.OrderProcessing, Date: "2024-01-13"},
		{ID: "#ORD-005", Customer: "Tom Brown", Email: "tom@example.com", Product: "Mechanical Keyboard", Amount: "$159.00", Status: models.OrderCompleted, Date: "2024-01-13"},
		{ID: "#ORD-006", Customer: "Emily Davis", Email: "emily@example.com", Product: "Wireless Mouse", Amount: "$69.00", Status: models.OrderCancelled, Date: "2024-01-12"},
		{ID: "#ORD-007", Customer: "David Wilson", Email: "david@example.com", Product: "Monitor Arm", Amount: "$129.00", Status: models.OrderProcessing, Date: "2024-01-12"},
		{ID: "#ORD-008", Customer: "Lisa Anderson", Email: "lisa@example.com", Product: "Desk Mat", Amount: "$39.00", Status: models.OrderCompleted, Date: "2024-01-11"},
	}
}

type topProduct struct {
	Name    string `json:"name"`
	Sales   int    `json:"sales"`
	Revenue string `json:"revenue"`
}

func seedTopProducts() []topProduct {
	return []topProduct{
		{Name: "Wireless Headphones", Sales: 234, Revenue: "$69,966"},
		{Name: "Smart Watch", Sales: 189, Revenue: "$75,411"},
		{Name: "Laptop Stand", Sales: 156, Revenue: "$12,324"},
		{Name: "USB-C Hub", Sales: 143, Revenue: "$7,007"},
	}
}
