// internal/model/customer.go
package model

import "time"

type Customer struct {
	ID               string     `db:"id" json:"id"`
	Email            string     `db:"email" json:"email"`
	FirstName        string     `db:"first_name" json:"firstName"`
	LastName         string     `db:"last_name" json:"lastName,omitempty"`
	Phone            string     `db:"phone" json:"phone,omitempty"`
	Location         string     `db:"location" json:"location,omitempty"`
	Tags             []string   `db:"tags" json:"tags,omitempty"`
	TotalSpent       float64    `db:"total_spent" json:"totalSpent"`
	LastPurchaseDate *time.Time `db:"last_purchase_date" json:"lastPurchaseDate,omitempty"`
	CreatedAt        time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt        *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}
