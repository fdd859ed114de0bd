package repository

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/unclebandit/campaigndash-backend/internal/model"
)

type ReportRepositoryInterface interface {
	Create(rep *model.CampaignReport) error
	ListByUser(userID string) ([]*model.CampaignReport, error)
	SumCountsByUser(userID string) (sent, failed int, err error)
}

type ReportRepository struct {
	DB *sql.DB
}

func (r *ReportRepository) Create(rep *model.CampaignReport) error {
	if rep.ID == "" {
		rep.ID = uuid.NewString()
	}
	rep.CreatedAt = time.Now()
	query := `
        INSERT INTO campaign_reports (id, user_id, campaign_name, sent_count, failed_count, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
    `
	_, err := r.DB.Exec(query,
		rep.ID, rep.UserID, rep.CampaignName, rep.SentCount, rep.FailedCount, rep.CreatedAt,
	)
	return err
}

func (r *ReportRepository) ListByUser(userID string) ([]*model.CampaignReport, error) {
	query := `
        SELECT id, user_id, campaign_name, sent_count, failed_count, created_at
        FROM campaign_reports WHERE user_id=$1 ORDER BY created_at DESC
    `
	rows, err := r.DB.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reports := []*model.CampaignReport{}
	for rows.Next() {
		rep := &model.CampaignReport{}
		if err := rows.Scan(
			&rep.ID, &rep.UserID, &rep.CampaignName, &rep.SentCount, &rep.FailedCount, &rep.CreatedAt,
		); err != nil {
			return nil, err
		}
		reports = append(reports, rep)
	}
	return reports, rows.Err()
}

func (r *ReportRepository) SumCountsByUser(userID string) (int, int, error) {
	var sent, failed int
	query := `
        SELECT COALESCE(SUM(sent_count), 0), COALESCE(SUM(failed_count), 0)
        FROM campaign_reports WHERE user_id=$1
    `
	err := r.DB.QueryRow(query, userID).Scan(&sent, &failed)
	return sent, failed, err
}

var _ ReportRepositoryInterface = (*ReportRepository)(nil)
