package repository

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	appErrors "github.com/unclebandit/campaigndash-backend/internal/errors"
	"github.com/unclebandit/campaigndash-backend/internal/model"
)

type AudienceRepositoryInterface interface {
	Create(m *model.AudienceMember) error
	ListByUser(userID string) ([]*model.AudienceMember, error)
	UpdateTag(userID, id, tag string) error
	Delete(userID, id string) error
	CountByUser(userID string) (int, error)
}

type AudienceRepository struct {
	DB *sql.DB
}

func (r *AudienceRepository) Create(m *model.AudienceMember) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	m.CreatedAt = time.Now()
	query := `
        INSERT INTO audience (id, user_id, name, email, tag, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
    `
	_, err := r.DB.Exec(query, m.ID, m.UserID, m.Name, m.Email, m.Tag, m.CreatedAt)
	return err
}

func (r *AudienceRepository) ListByUser(userID string) ([]*model.AudienceMember, error) {
	query := `
        SELECT id, user_id, name, email, tag, created_at
        FROM audience WHERE user_id=$1 ORDER BY created_at DESC
    `
	rows, err := r.DB.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := []*model.AudienceMember{}
	for rows.Next() {
		m := &model.AudienceMember{}
		if err := rows.Scan(&m.ID, &m.UserID, &m.Name, &m.Email, &m.Tag, &m.CreatedAt); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (r *AudienceRepository) UpdateTag(userID, id, tag string) error {
	res, err := r.DB.Exec(`UPDATE audience SET tag=$1 WHERE id=$2 AND user_id=$3`, tag, id, userID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return appErrors.NewContactNotFound(id)
	}
	return nil
}

func (r *AudienceRepository) Delete(userID, id string) error {
	res, err := r.DB.Exec(`DELETE FROM audience WHERE id=$1 AND user_id=$2`, id, userID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return appErrors.NewContactNotFound(id)
	}
	return nil
}

func (r *AudienceRepository) CountByUser(userID string) (int, error) {
	var count int
	err := r.DB.QueryRow(`SELECT COUNT(*) FROM audience WHERE user_id=$1`, userID).Scan(&count)
	return count, err
}

var _ AudienceRepositoryInterface = (*AudienceRepository)(nil)
