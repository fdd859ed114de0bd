// internal/model/order.go
package model

import "time"

// OrderStatus represents valid order statuses
type OrderStatus string

const (
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCancelled OrderStatus = "cancelled"
)

type Product struct {
	ID       string  `json:"id,omitempty"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type Order struct {
	ID            string      `db:"id" json:"id"`
	CustomerEmail string      `db:"customer_email" json:"customerEmail"`
	OrderDate     time.Time   `db:"order_date" json:"orderDate"`
	Products      []Product   `db:"products" json:"products"`
	TotalAmount   float64     `db:"total_amount" json:"totalAmount"`
	Status        OrderStatus `db:"status" json:"status"`
	CreatedAt     time.Time   `db:"created_at" json:"created_at"`
}
