package models

import "time"

// OrderStatus tracks an order through the shop workflow.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusInProgress OrderStatus = "in-progress"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusDelivered  OrderStatus = "delivered"
)

// ValidOrderStatus reports whether s is one of the known order statuses.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusInProgress, OrderStatusCompleted, OrderStatusDelivered:
		return true
	}
	return false
}

type Order struct {
	ID           int         `json:"id"`
	CustomerName string      `json:"customerName"`
	PhoneNumber  string      `json:"phoneNumber"`
	Comment      string      `json:"comment,omitempty"`
	Price        float64     `json:"price"`
	Status       OrderStatus `json:"status"`
	// CustomerID is set when a customer with a matching phone number
	// exists at creation time. The name and phone above are denormalized
	// copies and are not kept in sync with the customer record.
	CustomerID *int      `json:"customer,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// CreateOrderRequest represents the request body for creating an order
type CreateOrderRequest struct {
	CustomerName string  `json:"customerName"`
	PhoneNumber  string  `json:"phoneNumber"`
	Comment      string  `json:"comment"`
	Price        float64 `json:"price"`
}

// UpdateOrderRequest represents the request body for updating an order
type UpdateOrderRequest struct {
	CustomerName string      `json:"customerName"`
	PhoneNumber  string      `json:"phoneNumber"`
	Comment      string      `json:"comment"`
	Price        float64     `json:"price"`
	Status       OrderStatus `json:"status"`
}
