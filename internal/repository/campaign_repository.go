package repository

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	appErrors "github.com/unclebandit/campaigndash-backend/internal/errors"
	"github.com/unclebandit/campaigndash-backend/internal/model"
)

type CampaignRepositoryInterface interface {
	Create(c *model.Campaign) error
	GetByID(userID, id string) (*model.Campaign, error)
	ListByUser(userID string) ([]*model.Campaign, error)
	UpdateDelivered(id string, delivered int) error
	CountByUser(userID string) (int, error)
}

type CampaignRepository struct {
	DB *sql.DB
}

func (r *CampaignRepository) Create(c *model.Campaign) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	c.CreatedAt = time.Now()
	if c.Status == "" {
		c.Status = model.CampaignStatusDraft
	}
	query := `
        INSERT INTO campaigns (id, user_id, name, description, status, audience, delivered, opened, rules, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    `
	_, err := r.DB.Exec(query,
		c.ID, c.UserID, c.Name, c.Description, c.Status,
		c.Audience, c.Delivered, c.Opened, nullableJSON(c.Rules), c.CreatedAt,
	)
	return err
}

func (r *CampaignRepository) GetByID(userID, id string) (*model.Campaign, error) {
	query := `
        SELECT id, user_id, name, description, status, audience, delivered, opened, COALESCE(rules, 'null'), created_at
        FROM campaigns WHERE id=$1 AND user_id=$2
    `
	var c model.Campaign
	err := r.DB.QueryRow(query, id, userID).Scan(
		&c.ID, &c.UserID, &c.Name, &c.Description, &c.Status,
		&c.Audience, &c.Delivered, &c.Opened, &c.Rules, &c.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.NewCampaignNotFound(id)
		}
		return nil, err
	}
	return &c, nil
}

// ListByUser returns every campaign owned by the user, newest first. Search,
// sorting and pagination happen in the service over the full set, the way
// the dashboard filtered client-side.
func (r *CampaignRepository) ListByUser(userID string) ([]*model.Campaign, error) {
	query := `
        SELECT id, user_id, name, description, status, audience, delivered, opened, COALESCE(rules, 'null'), created_at
        FROM campaigns WHERE user_id=$1 ORDER BY created_at DESC
    `
	rows, err := r.DB.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	campaigns := []*model.Campaign{}
	for rows.Next() {
		c := &model.Campaign{}
		if err := rows.Scan(
			&c.ID, &c.UserID, &c.Name, &c.Description, &c.Status,
			&c.Audience, &c.Delivered, &c.Opened, &c.Rules, &c.CreatedAt,
		); err != nil {
			return nil, err
		}
		campaigns = append(campaigns, c)
	}
	return campaigns, rows.Err()
}

func (r *CampaignRepository) UpdateDelivered(id string, delivered int) error {
	query := `UPDATE campaigns SET delivered=$1 WHERE id=$2`
	_, err := r.DB.Exec(query, delivered, id)
	return err
}

func (r *CampaignRepository) CountByUser(userID string) (int, error) {
	var count int
	err := r.DB.QueryRow(`SELECT COUNT(*) FROM campaigns WHERE user_id=$1`, userID).Scan(&count)
	return count, err
}

func nullableJSON(raw []byte) interface{} {
	if len(raw) == 0 {
		return nil
	}
	return raw
}

var _ CampaignRepositoryInterface = (*CampaignRepository)(nil)
