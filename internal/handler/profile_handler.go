// internal/handler/profile_handler.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/unclebandit/campaigndash-backend/internal/auth"
	"github.com/unclebandit/campaigndash-backend/internal/model"
	"github.com/unclebandit/campaigndash-backend/internal/repository"
)

type ProfileHandler struct {
	Repo repository.ProfileRepositoryInterface
}

// GetProfile returns the settings row. A user without one gets an empty
// profile, not an error; the form simply starts blank.
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())

	profile, err := h.Repo.GetByUser(userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if profile == nil {
		profile = &model.Profile{UserID: userID}
	}

	writeJSON(w, http.StatusOK, profile)
}

func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var body struct {
		DisplayName string `json:"display_name"`
		Email       string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	profile := &model.Profile{
		UserID:      auth.UserID(r.Context()),
		DisplayName: body.DisplayName,
		Email:       body.Email,
	}
	if err := h.Repo.Upsert(profile); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}
