package repository

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/unclebandit/campaigndash-backend/internal/model"
)

type ProfileRepositoryInterface interface {
	GetByUser(userID string) (*model.Profile, error)
	Upsert(p *model.Profile) error
}

type ProfileRepository struct {
	DB *sql.DB
}

// GetByUser returns nil without error when the user has no profile row yet;
// the settings view renders an empty form in that case.
func (r *ProfileRepository) GetByUser(userID string) (*model.Profile, error) {
	query := `
        SELECT id, user_id, display_name, email, created_at, updated_at
        FROM profiles WHERE user_id=$1
    `
	var p model.Profile
	err := r.DB.QueryRow(query, userID).Scan(
		&p.ID, &p.UserID, &p.DisplayName, &p.Email, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *ProfileRepository) Upsert(p *model.Profile) error {
	existing, err := r.GetByUser(p.UserID)
	if err != nil {
		return err
	}
	if existing == nil {
		p.ID = uuid.NewString()
		p.CreatedAt = time.Now()
		query := `
            INSERT INTO profiles (id, user_id, display_name, email, created_at)
            VALUES ($1, $2, $3, $4, $5)
        `
		_, err = r.DB.Exec(query, p.ID, p.UserID, p.DisplayName, p.Email, p.CreatedAt)
		return err
	}

	p.ID = existing.ID
	query := `UPDATE profiles SET display_name=$1, email=$2, updated_at=NOW() WHERE user_id=$3`
	_, err = r.DB.Exec(query, p.DisplayName, p.Email, p.UserID)
	return err
}

var _ ProfileRepositoryInterface = (*ProfileRepository)(nil)
