// internal/service/campaign_service.go
package service

import (
	"encoding/json"
	"log"
	"math"
	"sort"
	"strings"

	appErrors "github.com/unclebandit/campaigndash-backend/internal/errors"
	"github.com/unclebandit/campaigndash-backend/internal/model"
	"github.com/unclebandit/campaigndash-backend/internal/queue"
	"github.com/unclebandit/campaigndash-backend/internal/repository"
	"github.com/unclebandit/campaigndash-backend/internal/segment"
)

type CampaignService struct {
	CampaignRepo repository.CampaignRepositoryInterface
	ReportRepo   repository.ReportRepositoryInterface
	CustomerRepo repository.CustomerRepositoryInterface
	Queue        queue.Queue
	Estimator    *segment.Estimator
}

// CreateCampaignInput is the submit payload of the three-step create form.
// Rule groups arrive fully built from the client and are stored opaquely;
// nothing reads them back.
type CreateCampaignInput struct {
	Name         string              `json:"name"`
	Description  string              `json:"description"`
	Subject      string              `json:"subject"`
	Message      string              `json:"message"`
	RuleGroups   []segment.RuleGroup `json:"rule_groups"`
	AudienceSize int                 `json:"audience_size"`
}

// SendResult reports the simulated delivery split of a submitted campaign.
type SendResult struct {
	Campaign *model.Campaign       `json:"campaign"`
	Report   *model.CampaignReport `json:"report"`
}

// SimulateDelivery is the fixed-ratio send policy: one tenth of the audience
// is marked failed, the rest sent. There is no real dispatch behind it.
func SimulateDelivery(audience int) (sent, failed int) {
	failed = audience / 10
	sent = audience - failed
	return sent, failed
}

// CreateAndSend writes the campaign row, fabricates the delivery split,
// writes the report row and backfills the campaign's delivered count. The
// three writes are sequential and untransacted; a failure in between leaves
// partial state, as the original did.
func (s *CampaignService) CreateAndSend(userID string, input CreateCampaignInput) (*SendResult, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, appErrors.NewInvalidCampaign("campaign name is required")
	}
	if strings.TrimSpace(input.Message) == "" {
		return nil, appErrors.NewInvalidCampaign("campaign message is required")
	}
	if input.AudienceSize < 0 {
		return nil, appErrors.NewInvalidCampaign("audience size must not be negative")
	}

	rules, err := json.Marshal(input.RuleGroups)
	if err != nil {
		return nil, err
	}

	campaign := &model.Campaign{
		UserID:      userID,
		Name:        input.Name,
		Description: input.Description,
		Status:      model.CampaignStatusActive,
		Audience:    input.AudienceSize,
		Rules:       rules,
	}
	if err := s.CampaignRepo.Create(campaign); err != nil {
		return nil, err
	}

	sent, failed := SimulateDelivery(input.AudienceSize)

	report := &model.CampaignReport{
		UserID:       userID,
		CampaignName: input.Name,
		SentCount:    sent,
		FailedCount:  failed,
	}
	if err := s.ReportRepo.Create(report); err != nil {
		return nil, err
	}

	if err := s.CampaignRepo.UpdateDelivered(campaign.ID, sent); err != nil {
		return nil, err
	}
	campaign.Delivered = sent

	if s.Queue != nil {
		job := queue.SendJob{CampaignID: campaign.ID, Sent: sent, Failed: failed}
		if err := s.Queue.Publish(queue.TopicCampaignSends, job); err != nil {
			log.Println("⚠️ failed to enqueue send job:", err)
		}
	}

	return &SendResult{Campaign: campaign, Report: report}, nil
}

// EstimateAudience returns the placeholder segment size for the current
// customer count. The rule groups are accepted but deliberately unused.
func (s *CampaignService) EstimateAudience(groups []segment.RuleGroup) (int, error) {
	count, err := s.CustomerRepo.Count()
	if err != nil {
		return 0, err
	}
	return s.Estimator.Estimate(count), nil
}

// Sort options offered by the campaign history view
const (
	SortDateDesc     = "date-desc"
	SortDateAsc      = "date-asc"
	SortNameAsc      = "name-asc"
	SortNameDesc     = "name-desc"
	SortAudienceDesc = "audience-desc"
	SortAudienceAsc  = "audience-asc"
)

type CampaignListOptions struct {
	Search   string
	Status   string
	SortBy   string
	Page     int
	PageSize int
}

// ListCampaigns fetches the owner's campaigns and applies the view logic in
// memory: substring search on name, status equality, a fixed comparator set,
// then pagination over the sorted result.
func (s *CampaignService) ListCampaigns(userID string, opts CampaignListOptions) ([]model.Campaign, map[string]int, error) {
	ptrs, err := s.CampaignRepo.ListByUser(userID)
	if err != nil {
		return nil, nil, err
	}

	filtered := []model.Campaign{}
	for _, c := range ptrs {
		if opts.Search != "" && !strings.Contains(strings.ToLower(c.Name), strings.ToLower(opts.Search)) {
			continue
		}
		if opts.Status != "" && opts.Status != "all" && string(c.Status) != opts.Status {
			continue
		}
		filtered = append(filtered, *c)
	}

	sortCampaigns(filtered, opts.SortBy)

	page, pageSize := clampPage(opts.Page, opts.PageSize)
	items, pagination := Paginate(filtered, page, pageSize)
	return items, pagination, nil
}

func (s *CampaignService) GetCampaign(userID, id string) (*model.Campaign, error) {
	return s.CampaignRepo.GetByID(userID, id)
}

func sortCampaigns(campaigns []model.Campaign, sortBy string) {
	sort.SliceStable(campaigns, func(i, j int) bool {
		a, b := campaigns[i], campaigns[j]
		switch sortBy {
		case SortDateAsc:
			return a.CreatedAt.Before(b.CreatedAt)
		case SortNameAsc:
			return a.Name < b.Name
		case SortNameDesc:
			return a.Name > b.Name
		case SortAudienceDesc:
			return a.Audience > b.Audience
		case SortAudienceAsc:
			return a.Audience < b.Audience
		default: // date-desc
			return a.CreatedAt.After(b.CreatedAt)
		}
	})
}

// DeliveryRate is the percentage of the audience marked sent. Zero when
// nothing was sent, which also guards the division.
func DeliveryRate(sent, failed int) int {
	if sent == 0 {
		return 0
	}
	return int(math.Round(float64(sent-failed) / float64(sent) * 100))
}

// OpenRate is opened over delivered, zero when nothing was delivered.
func OpenRate(opened, delivered int) int {
	if delivered == 0 {
		return 0
	}
	return int(math.Round(float64(opened) / float64(delivered) * 100))
}

// CampaignDeliveryRate is the history view's variant, delivered over the
// whole audience.
func CampaignDeliveryRate(delivered, audience int) int {
	if audience == 0 {
		return 0
	}
	return int(math.Round(float64(delivered) / float64(audience) * 100))
}
