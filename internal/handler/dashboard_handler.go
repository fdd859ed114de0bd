// internal/handler/dashboard_handler.go
package handler

import (
	"net/http"

	"github.com/unclebandit/campaigndash-backend/internal/auth"
	"github.com/unclebandit/campaigndash-backend/internal/service"
)

type DashboardHandler struct {
	Service *service.DashboardService
}

func (h *DashboardHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Service.Stats(auth.UserID(r.Context()))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}
