// internal/model/campaign.go
package model

import (
	"encoding/json"
	"time"
)

// CampaignStatus represents valid campaign statuses
type CampaignStatus string

const (
	CampaignStatusDraft     CampaignStatus = "draft"
	CampaignStatusScheduled CampaignStatus = "scheduled"
	CampaignStatusActive    CampaignStatus = "active"
	CampaignStatusCompleted CampaignStatus = "completed"
	CampaignStatusFailed    CampaignStatus = "failed"
)

type Campaign struct {
	ID          string          `db:"id" json:"id"`
	UserID      string          `db:"user_id" json:"user_id"`
	Name        string          `db:"name" json:"name"`
	Description string          `db:"description" json:"description"`
	Status      CampaignStatus  `db:"status" json:"status"`
	Audience    int             `db:"audience" json:"audience"`
	Delivered   int             `db:"delivered" json:"delivered"`
	Opened      int             `db:"opened" json:"opened"`
	Rules       json.RawMessage `db:"rules" json:"rules,omitempty"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
}
