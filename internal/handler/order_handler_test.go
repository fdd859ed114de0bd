package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unclebandit/campaigndash-backend/internal/handler"
	"github.com/unclebandit/campaigndash-backend/internal/model"
	"github.com/unclebandit/campaigndash-backend/internal/repository"
)

type memOrderRepo struct {
	orders []*model.Order
}

func (m *memOrderRepo) Insert(o *model.Order) error {
	o.ID = uuid.NewString()
	o.CreatedAt = time.Now()
	m.orders = append(m.orders, o)
	return nil
}

func (m *memOrderRepo) List(limit, offset int, filter repository.OrderFilter) ([]*model.Order, int, error) {
	all := []*model.Order{}
	for _, o := range m.orders {
		if filter.CustomerEmail != "" && o.CustomerEmail != filter.CustomerEmail {
			continue
		}
		if filter.Status != "" && string(o.Status) != filter.Status {
			continue
		}
		all = append(all, o)
	}
	total := len(all)
	if offset >= len(all) {
		return []*model.Order{}, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

var _ repository.OrderRepositoryInterface = (*memOrderRepo)(nil)

func newOrderHandler() (*handler.OrderHandler, *memOrderRepo, *memCustomerRepo) {
	orders := &memOrderRepo{}
	customers := newMemCustomerRepo()
	customers.Insert(&model.Customer{Email: "alice@example.com", FirstName: "Alice"})
	return handler.NewOrderHandler(orders, customers), orders, customers
}

const validOrder = `{
	"customerEmail": "alice@example.com",
	"orderDate": "2023-05-12T10:30:00Z",
	"products": [{"name": "Shoes", "quantity": 2, "price": 49.5}],
	"totalAmount": 99,
	"status": "pending"
}`

func TestOrderCreate(t *testing.T) {
	h, orders, customers := newOrderHandler()

	rec := postJSON(t, h, "/orders", validOrder)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	require.Len(t, orders.orders, 1)
	o := orders.orders[0]
	assert.Equal(t, "alice@example.com", o.CustomerEmail)
	assert.Equal(t, model.OrderStatusPending, o.Status)
	require.Len(t, o.Products, 1)
	assert.Equal(t, 2, o.Products[0].Quantity)

	// the customer's running totals follow the order
	require.Len(t, customers.purchases, 1)
	assert.Equal(t, 99.0, customers.purchases[0])
	assert.Equal(t, 99.0, customers.byEmail["alice@example.com"].TotalSpent)
}

func TestOrderStatusDefaultsToCompleted(t *testing.T) {
	h, orders, _ := newOrderHandler()

	rec := postJSON(t, h, "/orders", `{
		"customerEmail": "alice@example.com",
		"orderDate": "2023-05-12T10:30:00Z",
		"products": [{"name": "Hat", "quantity": 1, "price": 10}],
		"totalAmount": 10
	}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, model.OrderStatusCompleted, orders.orders[0].Status)
}

func TestOrderUnknownCustomerIsReferentialError(t *testing.T) {
	h, orders, _ := newOrderHandler()

	rec := postJSON(t, h, "/orders", `{
		"customerEmail": "ghost@example.com",
		"orderDate": "2023-05-12T10:30:00Z",
		"products": [{"name": "Shoes", "quantity": 1, "price": 10}],
		"totalAmount": 10
	}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code, "a 400, not a 500")
	assert.Empty(t, orders.orders)

	var resp struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Customer not found", resp.Error)
}

func TestOrderSchemaValidation(t *testing.T) {
	h, _, _ := newOrderHandler()

	for name, body := range map[string]string{
		"no products":       `{"customerEmail":"alice@example.com","orderDate":"2023-05-12T10:30:00Z","products":[],"totalAmount":10}`,
		"zero quantity":     `{"customerEmail":"alice@example.com","orderDate":"2023-05-12T10:30:00Z","products":[{"name":"Shoes","quantity":0,"price":10}],"totalAmount":10}`,
		"zero price":        `{"customerEmail":"alice@example.com","orderDate":"2023-05-12T10:30:00Z","products":[{"name":"Shoes","quantity":1,"price":0}],"totalAmount":10}`,
		"zero total":        `{"customerEmail":"alice@example.com","orderDate":"2023-05-12T10:30:00Z","products":[{"name":"Shoes","quantity":1,"price":10}],"totalAmount":0}`,
		"bad status":        `{"customerEmail":"alice@example.com","orderDate":"2023-05-12T10:30:00Z","products":[{"name":"Shoes","quantity":1,"price":10}],"totalAmount":10,"status":"shipped"}`,
		"bad order date":    `{"customerEmail":"alice@example.com","orderDate":"last tuesday","products":[{"name":"Shoes","quantity":1,"price":10}],"totalAmount":10}`,
		"missing email":     `{"orderDate":"2023-05-12T10:30:00Z","products":[{"name":"Shoes","quantity":1,"price":10}],"totalAmount":10}`,
	} {
		rec := postJSON(t, h, "/orders", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, name)
	}
}

func TestOrderListEnvelopeAndFilters(t *testing.T) {
	h, _, _ := newOrderHandler()
	postJSON(t, h, "/orders", validOrder)
	postJSON(t, h, "/orders", `{
		"customerEmail": "alice@example.com",
		"orderDate": "2023-06-01T08:00:00Z",
		"products": [{"name": "Hat", "quantity": 1, "price": 10}],
		"totalAmount": 10
	}`)

	req := httptest.NewRequest(http.MethodGet, "/orders?status=pending", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Data  []json.RawMessage `json:"data"`
		Count int               `json:"count"`
		Total int               `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 1)
	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, 1, resp.Total)

	// A range narrower than the match set: count still reports all
	// matching rows, only data is trimmed.
	req = httptest.NewRequest(http.MethodGet, "/orders?limit=1", nil)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 1)
	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, 2, resp.Total)
}

func TestOrderMethodNotAllowed(t *testing.T) {
	h, _, _ := newOrderHandler()

	req := httptest.NewRequest(http.MethodPut, "/orders", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
