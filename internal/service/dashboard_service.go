// internal/service/dashboard_service.go
package service

import (
	"github.com/unclebandit/campaigndash-backend/internal/repository"
)

type DashboardService struct {
	CampaignRepo repository.CampaignRepositoryInterface
	AudienceRepo repository.AudienceRepositoryInterface
	ReportRepo   repository.ReportRepositoryInterface
}

// Stats feeds the dashboard header cards: simple counts, nothing derived
// beyond the summed report columns.
func (s *DashboardService) Stats(userID string) (map[string]int, error) {
	campaigns, err := s.CampaignRepo.CountByUser(userID)
	if err != nil {
		return nil, err
	}
	contacts, err := s.AudienceRepo.CountByUser(userID)
	if err != nil {
		return nil, err
	}
	sent, failed, err := s.ReportRepo.SumCountsByUser(userID)
	if err != nil {
		return nil, err
	}

	return map[string]int{
		"campaigns":    campaigns,
		"contacts":     contacts,
		"total_sent":   sent,
		"total_failed": failed,
	}, nil
}
