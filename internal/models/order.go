package models

type OrderStatus string

const (
	OrderCompleted  OrderStatus = "completed"
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderCancelled  OrderStatus = "cancelled"
)

type Order struct {
	ID       string      `json:"id"`
	Customer string      `json:"customer"`
	Email    string      `json:"email"`
	Product  string      `json:"product"`
	Amount   string      `json:"amount"`
	Status   OrderStatus `json:"status"`
	Date     string      `json:"date"`
}
