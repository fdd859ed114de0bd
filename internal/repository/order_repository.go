package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/unclebandit/campaigndash-backend/internal/model"
)

// OrderFilter narrows an order listing. FromDate/ToDate bound order_date
// inclusively; zero values are skipped.
type OrderFilter struct {
	CustomerEmail string
	Status        string
	FromDate      time.Time
	ToDate        time.Time
}

type OrderRepositoryInterface interface {
	Insert(o *model.Order) error
	List(limit, offset int, filter OrderFilter) ([]*model.Order, int, error)
}

type OrderRepository struct {
	DB *sql.DB
}

func (r *OrderRepository) Insert(o *model.Order) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	o.CreatedAt = time.Now()

	products, err := json.Marshal(o.Products)
	if err != nil {
		return err
	}

	query := `
        INSERT INTO orders (id, customer_email, order_date, products, total_amount, status, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `
	_, err = r.DB.Exec(query,
		o.ID, o.CustomerEmail, o.OrderDate, products, o.TotalAmount, o.Status, o.CreatedAt,
	)
	return err
}

func (r *OrderRepository) List(limit, offset int, filter OrderFilter) ([]*model.Order, int, error) {
	where := ` WHERE 1=1`
	args := []interface{}{}
	argPos := 1

	if filter.CustomerEmail != "" {
		where += fmt.Sprintf(" AND customer_email=$%d", argPos)
		args = append(args, filter.CustomerEmail)
		argPos++
	}
	if filter.Status != "" {
		where += fmt.Sprintf(" AND status=$%d", argPos)
		args = append(args, filter.Status)
		argPos++
	}
	if !filter.FromDate.IsZero() {
		where += fmt.Sprintf(" AND order_date >= $%d", argPos)
		args = append(args, filter.FromDate)
		argPos++
	}
	if !filter.ToDate.IsZero() {
		where += fmt.Sprintf(" AND order_date <= $%d", argPos)
		args = append(args, filter.ToDate)
		argPos++
	}

	query := `SELECT id, customer_email, order_date, products, total_amount, status, created_at FROM orders` + where
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argPos, argPos+1)
	queryArgs := append(append([]interface{}{}, args...), limit, offset)

	rows, err := r.DB.Query(query, queryArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	orders := []*model.Order{}
	for rows.Next() {
		o := &model.Order{}
		var products []byte
		if err := rows.Scan(
			&o.ID, &o.CustomerEmail, &o.OrderDate, &products, &o.TotalAmount, &o.Status, &o.CreatedAt,
		); err != nil {
			return nil, 0, err
		}
		if err := json.Unmarshal(products, &o.Products); err != nil {
			return nil, 0, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM orders` + where
	if err := r.DB.QueryRow(countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

var _ OrderRepositoryInterface = (*OrderRepository)(nil)
