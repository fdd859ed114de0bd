// internal/handler/customer_handler.go
package handler

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/unclebandit/campaigndash-backend/internal/model"
	"github.com/unclebandit/campaigndash-backend/internal/repository"
)

// CustomerHandler is the standalone customers endpoint: schema-validated
// upsert-by-email plus filtered range-paginated listing. It carries no
// session; the original ran it as a service-role function.
type CustomerHandler struct {
	Repo     repository.CustomerRepositoryInterface
	Validate *validator.Validate
}

func NewCustomerHandler(repo repository.CustomerRepositoryInterface) *CustomerHandler {
	return &CustomerHandler{
		Repo:     repo,
		Validate: validator.New(),
	}
}

// Optional fields are pointers so an omitted key is distinguishable from an
// explicit zero; only keys present in the body reach the stored row.
type customerInput struct {
	Email            string   `json:"email" validate:"required,email"`
	FirstName        string   `json:"firstName" validate:"required,min=1,max=100"`
	LastName         *string  `json:"lastName" validate:"omitempty,min=1,max=100"`
	Phone            *string  `json:"phone"`
	Location         *string  `json:"location"`
	Tags             []string `json:"tags"`
	TotalSpent       *float64 `json:"totalSpent" validate:"omitempty,gte=0"`
	LastPurchaseDate *string  `json:"lastPurchaseDate"`
}

func (h *CustomerHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.upsert(w, r)
	default:
		writeMethodNotAllowed(w)
	}
}

func (h *CustomerHandler) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	if limit < 1 {
		limit = 50
	}
	offset, _ := strconv.Atoi(q.Get("offset"))
	if offset < 0 {
		offset = 0
	}

	filter := repository.CustomerFilter{Location: q.Get("location")}
	if tags := q.Get("tags"); tags != "" {
		filter.Tags = strings.Split(tags, ",")
	}

	customers, total, err := h.Repo.List(limit, offset, filter)
	if err != nil {
		log.Println("⚠️ failed to list customers:", err)
		writeServerError(w, err)
		return
	}

	// count mirrors total: both carry the matching-row count, not the
	// page length.
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data":  customers,
		"count": total,
		"total": total,
	})
}

func (h *CustomerHandler) upsert(w http.ResponseWriter, r *http.Request) {
	var input customerInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeValidationError(w, err)
		return
	}
	if err := h.Validate.Struct(input); err != nil {
		writeValidationError(w, err)
		return
	}

	var lastPurchase *time.Time
	if input.LastPurchaseDate != nil {
		t, err := time.Parse(time.RFC3339, *input.LastPurchaseDate)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]interface{}{
				"error":   "Validation failed",
				"details": []FieldError{{Field: "lastPurchaseDate", Message: "must be an RFC3339 datetime"}},
			})
			return
		}
		lastPurchase = &t
	}

	existing, err := h.Repo.GetByEmail(input.Email)
	if err != nil {
		writeServerError(w, err)
		return
	}

	// Merge into the stored row: omitted optionals keep their stored
	// values, so a re-sync without totalSpent does not undo purchase
	// totals. Email is the unique key, no second row is ever created.
	customer := existing
	if customer == nil {
		customer = &model.Customer{Email: input.Email}
	}
	customer.FirstName = input.FirstName
	if input.LastName != nil {
		customer.LastName = *input.LastName
	}
	if input.Phone != nil {
		customer.Phone = *input.Phone
	}
	if input.Location != nil {
		customer.Location = *input.Location
	}
	if input.Tags != nil {
		customer.Tags = input.Tags
	}
	if input.TotalSpent != nil {
		customer.TotalSpent = *input.TotalSpent
	}
	if lastPurchase != nil {
		customer.LastPurchaseDate = lastPurchase
	}

	if existing != nil {
		if err := h.Repo.UpdateByEmail(customer); err != nil {
			writeServerError(w, err)
			return
		}
	} else {
		if err := h.Repo.Insert(customer); err != nil {
			writeServerError(w, err)
			return
		}
	}

	writeJSON(w, http.StatusOK, customer)
}
