// internal/model/report.go
package model

import "time"

// CampaignReport is written once per campaign send and never updated.
type CampaignReport struct {
	ID           string    `db:"id" json:"id"`
	UserID       string    `db:"user_id" json:"user_id"`
	CampaignName string    `db:"campaign_name" json:"campaign_name"`
	SentCount    int       `db:"sent_count" json:"sent_count"`
	FailedCount  int       `db:"failed_count" json:"failed_count"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
