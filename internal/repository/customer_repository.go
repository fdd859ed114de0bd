package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/unclebandit/campaigndash-backend/internal/model"
)

// CustomerFilter narrows a customer listing. Tags matches rows whose tag
// array contains every requested tag; Location is an equality filter.
type CustomerFilter struct {
	Tags     []string
	Location string
}

type CustomerRepositoryInterface interface {
	GetByEmail(email string) (*model.Customer, error)
	Insert(c *model.Customer) error
	UpdateByEmail(c *model.Customer) error
	List(limit, offset int, filter CustomerFilter) ([]*model.Customer, int, error)
	Count() (int, error)
	RecordPurchase(email string, amount float64, orderDate time.Time) error
}

type CustomerRepository struct {
	DB *sql.DB
}

const customerColumns = `id, email, first_name, last_name, phone, location, tags, total_spent, last_purchase_date, created_at, updated_at`

func (r *CustomerRepository) scan(row interface{ Scan(...interface{}) error }) (*model.Customer, error) {
	var c model.Customer
	var tags pq.StringArray
	err := row.Scan(
		&c.ID, &c.Email, &c.FirstName, &c.LastName, &c.Phone, &c.Location,
		&tags, &c.TotalSpent, &c.LastPurchaseDate, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	c.Tags = tags
	return &c, nil
}

func (r *CustomerRepository) GetByEmail(email string) (*model.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE email=$1`
	c, err := r.scan(r.DB.QueryRow(query, email))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // not found
		}
		return nil, err
	}
	return c, nil
}

func (r *CustomerRepository) Insert(c *model.Customer) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	c.CreatedAt = time.Now()
	query := `
        INSERT INTO customers (id, email, first_name, last_name, phone, location, tags, total_spent, last_purchase_date, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    `
	_, err := r.DB.Exec(query,
		c.ID, c.Email, c.FirstName, c.LastName, c.Phone, c.Location,
		pq.Array(c.Tags), c.TotalSpent, c.LastPurchaseDate, c.CreatedAt,
	)
	return err
}

// UpdateByEmail overwrites the mutable columns of the row keyed by email.
// The upsert semantics live in the handler: check GetByEmail, then Insert or
// UpdateByEmail, matching the original endpoint.
func (r *CustomerRepository) UpdateByEmail(c *model.Customer) error {
	query := `
        UPDATE customers
        SET first_name=$1, last_name=$2, phone=$3, location=$4, tags=$5, total_spent=$6, last_purchase_date=$7, updated_at=NOW()
        WHERE email=$8
    `
	_, err := r.DB.Exec(query,
		c.FirstName, c.LastName, c.Phone, c.Location,
		pq.Array(c.Tags), c.TotalSpent, c.LastPurchaseDate, c.Email,
	)
	return err
}

func (r *CustomerRepository) List(limit, offset int, filter CustomerFilter) ([]*model.Customer, int, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE 1=1`
	args := []interface{}{}
	argPos := 1

	if len(filter.Tags) > 0 {
		query += fmt.Sprintf(" AND tags @> $%d", argPos)
		args = append(args, pq.Array(filter.Tags))
		argPos++
	}
	if filter.Location != "" {
		query += fmt.Sprintf(" AND location=$%d", argPos)
		args = append(args, filter.Location)
		argPos++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argPos, argPos+1)
	args = append(args, limit, offset)

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	customers := []*model.Customer{}
	for rows.Next() {
		c, err := r.scan(rows)
		if err != nil {
			return nil, 0, err
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	countQuery := `SELECT COUNT(*) FROM customers WHERE 1=1`
	argsCount := []interface{}{}
	argPosCount := 1
	if len(filter.Tags) > 0 {
		countQuery += fmt.Sprintf(" AND tags @> $%d", argPosCount)
		argsCount = append(argsCount, pq.Array(filter.Tags))
		argPosCount++
	}
	if filter.Location != "" {
		countQuery += fmt.Sprintf(" AND location=$%d", argPosCount)
		argsCount = append(argsCount, filter.Location)
	}

	var total int
	if err := r.DB.QueryRow(countQuery, argsCount...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return customers, total, nil
}

func (r *CustomerRepository) Count() (int, error) {
	var count int
	err := r.DB.QueryRow(`SELECT COUNT(*) FROM customers`).Scan(&count)
	return count, err
}

// RecordPurchase bumps the customer's running total and last purchase date
// after an order insert.
func (r *CustomerRepository) RecordPurchase(email string, amount float64, orderDate time.Time) error {
	query := `
        UPDATE customers
        SET total_spent=total_spent+$1, last_purchase_date=$2, updated_at=NOW()
        WHERE email=$3
    `
	_, err := r.DB.Exec(query, amount, orderDate, email)
	return err
}

var _ CustomerRepositoryInterface = (*CustomerRepository)(nil)
