// internal/handler/audience_handler.go
package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/unclebandit/campaigndash-backend/internal/auth"
	appErrors "github.com/unclebandit/campaigndash-backend/internal/errors"
	"github.com/unclebandit/campaigndash-backend/internal/service"
)

type AudienceHandler struct {
	Service *service.AudienceService
}

func (h *AudienceHandler) ListContacts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	pageSize, _ := strconv.Atoi(q.Get("page_size"))

	opts := service.AudienceListOptions{
		Search:   q.Get("search"),
		Tag:      q.Get("tag"),
		Page:     page,
		PageSize: pageSize,
	}

	members, tags, pagination, err := h.Service.List(auth.UserID(r.Context()), opts)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data":       members,
		"tags":       tags,
		"pagination": pagination,
	})
}

func (h *AudienceHandler) AddContact(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name  string `json:"name"`
		Email string `json:"email"`
		Tag   string `json:"tag"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	member, err := h.Service.AddContact(auth.UserID(r.Context()), body.Name, body.Email, body.Tag)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusCreated, member)
}

func (h *AudienceHandler) UpdateTag(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var body struct {
		Tag string `json:"tag"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Service.UpdateTag(auth.UserID(r.Context()), id, body.Tag); err != nil {
		if _, ok := err.(*appErrors.ErrContactNotFound); ok {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"updated": true})
}

func (h *AudienceHandler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Service.RemoveContact(auth.UserID(r.Context()), id); err != nil {
		if _, ok := err.(*appErrors.ErrContactNotFound); ok {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
