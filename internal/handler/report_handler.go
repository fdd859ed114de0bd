// internal/handler/report_handler.go
package handler

import (
	"net/http"

	"github.com/unclebandit/campaigndash-backend/internal/auth"
	"github.com/unclebandit/campaigndash-backend/internal/repository"
	"github.com/unclebandit/campaigndash-backend/internal/service"
)

// ReportHandler reads campaign_reports directly; the view has no logic
// beyond the derived delivery rate.
type ReportHandler struct {
	Repo repository.ReportRepositoryInterface
}

func (h *ReportHandler) ListReports(w http.ResponseWriter, r *http.Request) {
	reports, err := h.Repo.ListByUser(auth.UserID(r.Context()))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	type reportView struct {
		ID           string `json:"id"`
		CampaignName string `json:"campaign_name"`
		SentCount    int    `json:"sent_count"`
		FailedCount  int    `json:"failed_count"`
		DeliveryRate int    `json:"delivery_rate"`
		CreatedAt    string `json:"created_at"`
	}
	views := make([]reportView, len(reports))
	for i, rep := range reports {
		views[i] = reportView{
			ID:           rep.ID,
			CampaignName: rep.CampaignName,
			SentCount:    rep.SentCount,
			FailedCount:  rep.FailedCount,
			DeliveryRate: service.DeliveryRate(rep.SentCount, rep.FailedCount),
			CreatedAt:    rep.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": views,
	})
}
