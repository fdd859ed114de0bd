package service_test

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unclebandit/campaigndash-backend/internal/model"
	"github.com/unclebandit/campaigndash-backend/internal/repository"
	"github.com/unclebandit/campaigndash-backend/internal/segment"
	"github.com/unclebandit/campaigndash-backend/internal/service"
)

// Mock repositories

type mockCampaignRepo struct {
	campaigns []*model.Campaign
	delivered map[string]int
}

func (m *mockCampaignRepo) Create(c *model.Campaign) error {
	c.ID = fmt.Sprintf("c-%d", len(m.campaigns)+1)
	c.CreatedAt = time.Now()
	m.campaigns = append(m.campaigns, c)
	return nil
}

func (m *mockCampaignRepo) GetByID(userID, id string) (*model.Campaign, error) {
	for _, c := range m.campaigns {
		if c.ID == id && c.UserID == userID {
			return c, nil
		}
	}
	return nil, fmt.Errorf("campaign not found")
}

func (m *mockCampaignRepo) ListByUser(userID string) ([]*model.Campaign, error) {
	out := []*model.Campaign{}
	for _, c := range m.campaigns {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *mockCampaignRepo) UpdateDelivered(id string, delivered int) error {
	if m.delivered == nil {
		m.delivered = map[string]int{}
	}
	m.delivered[id] = delivered
	return nil
}

func (m *mockCampaignRepo) CountByUser(userID string) (int, error) {
	n, _ := m.ListByUser(userID)
	return len(n), nil
}

type mockReportRepo struct {
	reports []*model.CampaignReport
}

func (m *mockReportRepo) Create(rep *model.CampaignReport) error {
	rep.ID = fmt.Sprintf("r-%d", len(m.reports)+1)
	rep.CreatedAt = time.Now()
	m.reports = append(m.reports, rep)
	return nil
}

func (m *mockReportRepo) ListByUser(userID string) ([]*model.CampaignReport, error) {
	out := []*model.CampaignReport{}
	for _, rep := range m.reports {
		if rep.UserID == userID {
			out = append(out, rep)
		}
	}
	return out, nil
}

func (m *mockReportRepo) SumCountsByUser(userID string) (int, int, error) {
	var sent, failed int
	for _, rep := range m.reports {
		if rep.UserID == userID {
			sent += rep.SentCount
			failed += rep.FailedCount
		}
	}
	return sent, failed, nil
}

type mockCustomerRepo struct {
	count int
}

func (m *mockCustomerRepo) GetByEmail(email string) (*model.Customer, error) { return nil, nil }
func (m *mockCustomerRepo) Insert(c *model.Customer) error                   { return nil }
func (m *mockCustomerRepo) UpdateByEmail(c *model.Customer) error            { return nil }
func (m *mockCustomerRepo) List(limit, offset int, filter repository.CustomerFilter) ([]*model.Customer, int, error) {
	return nil, 0, nil
}
func (m *mockCustomerRepo) Count() (int, error) { return m.count, nil }
func (m *mockCustomerRepo) RecordPurchase(email string, amount float64, orderDate time.Time) error {
	return nil
}

func newService() (*service.CampaignService, *mockCampaignRepo, *mockReportRepo) {
	campaignRepo := &mockCampaignRepo{}
	reportRepo := &mockReportRepo{}
	svc := &service.CampaignService{
		CampaignRepo: campaignRepo,
		ReportRepo:   reportRepo,
		CustomerRepo: &mockCustomerRepo{count: 1000},
		Estimator:    &segment.Estimator{Rand: rand.New(rand.NewSource(1))},
	}
	return svc, campaignRepo, reportRepo
}

func TestCreateAndSendWelcomeEndToEnd(t *testing.T) {
	svc, campaignRepo, reportRepo := newService()

	result, err := svc.CreateAndSend("user-1", service.CreateCampaignInput{
		Name:         "Welcome",
		Message:      "Hi",
		AudienceSize: 1000,
	})
	require.NoError(t, err)

	assert.Equal(t, model.CampaignStatusActive, result.Campaign.Status)
	assert.Equal(t, 1000, result.Campaign.Audience)
	assert.Equal(t, 900, result.Campaign.Delivered)

	require.Len(t, reportRepo.reports, 1)
	assert.Equal(t, "Welcome", reportRepo.reports[0].CampaignName)
	assert.Equal(t, 900, reportRepo.reports[0].SentCount)
	assert.Equal(t, 100, reportRepo.reports[0].FailedCount)

	assert.Equal(t, 900, campaignRepo.delivered[result.Campaign.ID])
}

func TestCreateAndSendStoresRulesOpaquely(t *testing.T) {
	svc, campaignRepo, _ := newService()

	groups := []segment.RuleGroup{{
		ID:         "g-1",
		Combinator: segment.CombinatorOr,
		Rules:      []segment.Rule{{ID: "r-1", Field: "location", Operator: "equals", Value: "Nairobi"}},
	}}
	_, err := svc.CreateAndSend("user-1", service.CreateCampaignInput{
		Name:         "Geo",
		Message:      "Hello",
		RuleGroups:   groups,
		AudienceSize: 50,
	})
	require.NoError(t, err)

	require.Len(t, campaignRepo.campaigns, 1)
	assert.JSONEq(t,
		`[{"id":"g-1","combinator":"OR","rules":[{"id":"r-1","field":"location","operator":"equals","value":"Nairobi"}]}]`,
		string(campaignRepo.campaigns[0].Rules))
}

func TestCreateAndSendGuards(t *testing.T) {
	svc, campaignRepo, reportRepo := newService()

	_, err := svc.CreateAndSend("user-1", service.CreateCampaignInput{Name: "  ", Message: "Hi"})
	assert.Error(t, err)

	_, err = svc.CreateAndSend("user-1", service.CreateCampaignInput{Name: "X", Message: ""})
	assert.Error(t, err)

	_, err = svc.CreateAndSend("user-1", service.CreateCampaignInput{Name: "X", Message: "Hi", AudienceSize: -10})
	assert.Error(t, err, "a negative audience must not reach the store")

	assert.Empty(t, campaignRepo.campaigns)
	assert.Empty(t, reportRepo.reports)
}

func TestSimulateDeliveryFixedRatio(t *testing.T) {
	for _, audience := range []int{0, 1, 9, 10, 999, 1000, 12345} {
		sent, failed := service.SimulateDelivery(audience)
		assert.Equal(t, audience/10, failed)
		assert.Equal(t, audience, sent+failed, "sent+failed must equal the audience")
	}
}

func TestDeliveryRate(t *testing.T) {
	assert.Equal(t, 0, service.DeliveryRate(0, 0))
	assert.Equal(t, 100, service.DeliveryRate(900, 0))
	assert.Equal(t, 89, service.DeliveryRate(900, 100))
	assert.Equal(t, 50, service.DeliveryRate(2, 1))
}

func TestOpenRate(t *testing.T) {
	assert.Equal(t, 0, service.OpenRate(500, 0))
	assert.Equal(t, 50, service.OpenRate(450, 900))
	assert.Equal(t, 100, service.OpenRate(900, 900))
}

func TestCampaignDeliveryRate(t *testing.T) {
	assert.Equal(t, 0, service.CampaignDeliveryRate(0, 0))
	assert.Equal(t, 90, service.CampaignDeliveryRate(900, 1000))
	assert.Equal(t, 95, service.CampaignDeliveryRate(3245, 3420))
}

func seedCampaigns(t *testing.T, repo *mockCampaignRepo) {
	t.Helper()
	base := time.Date(2023, 5, 1, 10, 0, 0, 0, time.UTC)
	rows := []struct {
		name     string
		status   model.CampaignStatus
		audience int
		day      int
	}{
		{"Welcome Series", model.CampaignStatusActive, 3420, 12},
		{"Loyal Customer Rewards", model.CampaignStatusScheduled, 1250, 15},
		{"Product Launch", model.CampaignStatusDraft, 8700, 10},
		{"Re-engagement", model.CampaignStatusCompleted, 5280, 5},
		{"Flash Sale", model.CampaignStatusCompleted, 12480, 2},
	}
	for _, row := range rows {
		c := &model.Campaign{UserID: "user-1", Name: row.name, Status: row.status, Audience: row.audience}
		require.NoError(t, repo.Create(c))
		c.CreatedAt = base.AddDate(0, 0, row.day)
	}
}

func TestListCampaignsSearchAndStatusFilter(t *testing.T) {
	svc, repo, _ := newService()
	seedCampaigns(t, repo)

	items, _, err := svc.ListCampaigns("user-1", service.CampaignListOptions{Search: "customer"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Loyal Customer Rewards", items[0].Name)

	items, _, err = svc.ListCampaigns("user-1", service.CampaignListOptions{Status: "completed"})
	require.NoError(t, err)
	assert.Len(t, items, 2)

	items, _, err = svc.ListCampaigns("user-1", service.CampaignListOptions{Status: "all"})
	require.NoError(t, err)
	assert.Len(t, items, 5)
}

func TestListCampaignsSorting(t *testing.T) {
	svc, repo, _ := newService()
	seedCampaigns(t, repo)

	items, _, err := svc.ListCampaigns("user-1", service.CampaignListOptions{SortBy: service.SortNameAsc})
	require.NoError(t, err)
	assert.Equal(t, "Flash Sale", items[0].Name)

	items, _, err = svc.ListCampaigns("user-1", service.CampaignListOptions{SortBy: service.SortAudienceDesc})
	require.NoError(t, err)
	assert.Equal(t, 12480, items[0].Audience)

	items, _, err = svc.ListCampaigns("user-1", service.CampaignListOptions{SortBy: service.SortDateAsc})
	require.NoError(t, err)
	assert.Equal(t, "Flash Sale", items[0].Name)

	items, _, err = svc.ListCampaigns("user-1", service.CampaignListOptions{})
	require.NoError(t, err)
	assert.Equal(t, "Loyal Customer Rewards", items[0].Name, "default sort is newest first")
}

func TestListCampaignsPagination(t *testing.T) {
	svc, repo, _ := newService()
	seedCampaigns(t, repo)

	page1, pagination, err := svc.ListCampaigns("user-1", service.CampaignListOptions{Page: 1, PageSize: 2})
	require.NoError(t, err)
	assert.Len(t, page1, 2)
	assert.Equal(t, 5, pagination["total_count"])
	assert.Equal(t, 3, pagination["total_pages"])

	page3, _, err := svc.ListCampaigns("user-1", service.CampaignListOptions{Page: 3, PageSize: 2})
	require.NoError(t, err)
	assert.Len(t, page3, 1, "last page holds the remainder")

	page9, _, err := svc.ListCampaigns("user-1", service.CampaignListOptions{Page: 9, PageSize: 2})
	require.NoError(t, err)
	assert.Empty(t, page9, "past-the-end page yields an empty slice, not an error")
}

func TestEstimateAudienceScalesWithCustomerCount(t *testing.T) {
	svc, _, _ := newService()

	size, err := svc.EstimateAudience(nil)
	require.NoError(t, err)

	// customer count is 1000 in the mock
	assert.GreaterOrEqual(t, size, 100)
	assert.Less(t, size, 900)
}
