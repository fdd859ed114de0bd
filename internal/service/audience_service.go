// internal/service/audience_service.go
package service

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/unclebandit/campaigndash-backend/internal/model"
	"github.com/unclebandit/campaigndash-backend/internal/repository"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type AudienceService struct {
	Repo repository.AudienceRepositoryInterface
}

type AudienceListOptions struct {
	Search   string
	Tag      string
	Page     int
	PageSize int
}

// List applies the audience view logic: substring search over name and
// email, tag equality filter, then pagination. It also returns the distinct
// tags present in the owner's full contact set for the filter dropdown.
func (s *AudienceService) List(userID string, opts AudienceListOptions) ([]model.AudienceMember, []string, map[string]int, error) {
	ptrs, err := s.Repo.ListByUser(userID)
	if err != nil {
		return nil, nil, nil, err
	}

	tags := []string{}
	seen := map[string]bool{}
	for _, m := range ptrs {
		if m.Tag != "" && !seen[m.Tag] {
			seen[m.Tag] = true
			tags = append(tags, m.Tag)
		}
	}

	filtered := []model.AudienceMember{}
	for _, m := range ptrs {
		if opts.Search != "" {
			needle := strings.ToLower(opts.Search)
			if !strings.Contains(strings.ToLower(m.Name), needle) &&
				!strings.Contains(strings.ToLower(m.Email), needle) {
				continue
			}
		}
		if opts.Tag != "" && m.Tag != opts.Tag {
			continue
		}
		filtered = append(filtered, *m)
	}

	page, pageSize := clampPage(opts.Page, opts.PageSize)
	items, pagination := Paginate(filtered, page, pageSize)
	return items, tags, pagination, nil
}

func (s *AudienceService) AddContact(userID, name, email, tag string) (*model.AudienceMember, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("name and email are required")
	}
	if !emailPattern.MatchString(email) {
		return nil, fmt.Errorf("invalid email address")
	}

	m := &model.AudienceMember{
		UserID: userID,
		Name:   name,
		Email:  email,
		Tag:    tag,
	}
	if err := s.Repo.Create(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *AudienceService) UpdateTag(userID, id, tag string) error {
	return s.Repo.UpdateTag(userID, id, tag)
}

func (s *AudienceService) RemoveContact(userID, id string) error {
	return s.Repo.Delete(userID, id)
}
