// internal/handler/campaign_handler.go
package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/unclebandit/campaigndash-backend/internal/auth"
	appErrors "github.com/unclebandit/campaigndash-backend/internal/errors"
	"github.com/unclebandit/campaigndash-backend/internal/segment"
	"github.com/unclebandit/campaigndash-backend/internal/service"
)

// CampaignHandler holds the dependencies for campaign-related HTTP handlers
type CampaignHandler struct {
	Service  *service.CampaignService
	Messages *service.MessageService
}

// CreateCampaign handles the submit of the three-step create form: one
// campaign row, one fabricated delivery report, status always "active".
func (h *CampaignHandler) CreateCampaign(w http.ResponseWriter, r *http.Request) {
	var input service.CreateCampaignInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.Service.CreateAndSend(auth.UserID(r.Context()), input)
	if err != nil {
		// Only payload guard violations are the client's fault; a failed
		// write is a 500.
		if _, ok := err.(*appErrors.ErrInvalidCampaign); ok {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, result)
}

func (h *CampaignHandler) ListCampaigns(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	pageSize, _ := strconv.Atoi(q.Get("page_size"))

	opts := service.CampaignListOptions{
		Search:   q.Get("search"),
		Status:   q.Get("status"),
		SortBy:   q.Get("sort_by"),
		Page:     page,
		PageSize: pageSize,
	}

	campaigns, pagination, err := h.Service.ListCampaigns(auth.UserID(r.Context()), opts)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	type campaignView struct {
		ID           string `json:"id"`
		Name         string `json:"name"`
		Description  string `json:"description"`
		Status       string `json:"status"`
		Audience     int    `json:"audience"`
		Delivered    int    `json:"delivered"`
		Opened       int    `json:"opened"`
		DeliveryRate int    `json:"delivery_rate"`
		OpenRate     int    `json:"open_rate"`
		CreatedAt    string `json:"created_at"`
	}
	views := make([]campaignView, len(campaigns))
	for i, c := range campaigns {
		views[i] = campaignView{
			ID:           c.ID,
			Name:         c.Name,
			Description:  c.Description,
			Status:       string(c.Status),
			Audience:     c.Audience,
			Delivered:    c.Delivered,
			Opened:       c.Opened,
			DeliveryRate: service.CampaignDeliveryRate(c.Delivered, c.Audience),
			OpenRate:     service.OpenRate(c.Opened, c.Delivered),
			CreatedAt:    c.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data":       views,
		"pagination": pagination,
	})
}

func (h *CampaignHandler) GetCampaign(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	campaign, err := h.Service.GetCampaign(auth.UserID(r.Context()), id)
	if err != nil {
		if _, ok := err.(*appErrors.ErrCampaignNotFound); ok {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, campaign)
}

// EstimateAudience returns the placeholder segment size. The submitted rule
// groups ride along but do not influence the number.
func (h *CampaignHandler) EstimateAudience(w http.ResponseWriter, r *http.Request) {
	var body struct {
		RuleGroups []segment.RuleGroup `json:"rule_groups"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	size, err := h.Service.EstimateAudience(body.RuleGroups)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"estimated_audience": size,
	})
}

// MessageSuggestions serves the canned "AI" message templates.
func (h *CampaignHandler) MessageSuggestions(w http.ResponseWriter, r *http.Request) {
	var body struct {
		CampaignName  string `json:"campaign_name"`
		AudienceLabel string `json:"audience_label"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	suggestions := h.Messages.Suggestions(body.CampaignName, body.AudienceLabel)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"suggestions": suggestions,
	})
}
