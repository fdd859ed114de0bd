// internal/handler/order_handler.go
package handler

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/unclebandit/campaigndash-backend/internal/model"
	"github.com/unclebandit/campaigndash-backend/internal/repository"
)

// OrderHandler is the standalone orders endpoint. Orders must reference an
// existing customer by email; an unknown email is a 400, not a 500.
type OrderHandler struct {
	Orders    repository.OrderRepositoryInterface
	Customers repository.CustomerRepositoryInterface
	Validate  *validator.Validate
}

func NewOrderHandler(orders repository.OrderRepositoryInterface, customers repository.CustomerRepositoryInterface) *OrderHandler {
	return &OrderHandler{
		Orders:    orders,
		Customers: customers,
		Validate:  validator.New(),
	}
}

type productInput struct {
	ID       string  `json:"id"`
	Name     string  `json:"name" validate:"required,min=1"`
	Quantity int     `json:"quantity" validate:"required,gt=0"`
	Price    float64 `json:"price" validate:"required,gt=0"`
}

type orderInput struct {
	CustomerEmail string         `json:"customerEmail" validate:"required,email"`
	OrderDate     string         `json:"orderDate" validate:"required"`
	Products      []productInput `json:"products" validate:"required,min=1,dive"`
	TotalAmount   float64        `json:"totalAmount" validate:"required,gt=0"`
	Status        string         `json:"status" validate:"omitempty,oneof=completed pending cancelled"`
}

func (h *OrderHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.create(w, r)
	default:
		writeMethodNotAllowed(w)
	}
}

func (h *OrderHandler) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	if limit < 1 {
		limit = 50
	}
	offset, _ := strconv.Atoi(q.Get("offset"))
	if offset < 0 {
		offset = 0
	}

	filter := repository.OrderFilter{
		CustomerEmail: q.Get("customerEmail"),
		Status:        q.Get("status"),
	}
	if from := q.Get("fromDate"); from != "" {
		if t, err := time.Parse(time.RFC3339, from); err == nil {
			filter.FromDate = t
		}
	}
	if to := q.Get("toDate"); to != "" {
		if t, err := time.Parse(time.RFC3339, to); err == nil {
			filter.ToDate = t
		}
	}

	orders, total, err := h.Orders.List(limit, offset, filter)
	if err != nil {
		log.Println("⚠️ failed to list orders:", err)
		writeServerError(w, err)
		return
	}

	// count mirrors total, as on the customers endpoint.
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data":  orders,
		"count": total,
		"total": total,
	})
}

func (h *OrderHandler) create(w http.ResponseWriter, r *http.Request) {
	var input orderInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeValidationError(w, err)
		return
	}
	if err := h.Validate.Struct(input); err != nil {
		writeValidationError(w, err)
		return
	}

	orderDate, err := time.Parse(time.RFC3339, input.OrderDate)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":   "Validation failed",
			"details": []FieldError{{Field: "orderDate", Message: "must be an RFC3339 datetime"}},
		})
		return
	}

	customer, err := h.Customers.GetByEmail(input.CustomerEmail)
	if err != nil {
		writeServerError(w, err)
		return
	}
	if customer == nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":   "Customer not found",
			"details": "The specified customer email does not exist in the database.",
		})
		return
	}

	status := model.OrderStatus(input.Status)
	if status == "" {
		status = model.OrderStatusCompleted
	}

	products := make([]model.Product, len(input.Products))
	for i, p := range input.Products {
		products[i] = model.Product{ID: p.ID, Name: p.Name, Quantity: p.Quantity, Price: p.Price}
	}

	order := &model.Order{
		CustomerEmail: input.CustomerEmail,
		OrderDate:     orderDate,
		Products:      products,
		TotalAmount:   input.TotalAmount,
		Status:        status,
	}
	if err := h.Orders.Insert(order); err != nil {
		writeServerError(w, err)
		return
	}

	// Keep the customer's running totals in step with the order. Not
	// transactional with the insert, as in the original.
	if err := h.Customers.RecordPurchase(input.CustomerEmail, input.TotalAmount, orderDate); err != nil {
		log.Println("⚠️ failed to record purchase on customer:", err)
	}

	writeJSON(w, http.StatusOK, order)
}
