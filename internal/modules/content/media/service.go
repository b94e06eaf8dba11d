package media

import (
	"errors"

	"github.com/inkpress/core/internal/models"
	"github.com/inkpress/core/internal/pkg/slug"
	"github.com/inkpress/core/internal/pkg/storeerr"
	"gorm.io/gorm"
)

type CreateMediaDTO struct {
	Title           string  `json:"title" binding:"required,max=100"`
	Body            string  `json:"body"`
	Media           string  `json:"media" binding:"required"`
	LinkedArticleID *string `json:"linked_article_id"`
	LinkedEntryID   *string `json:"linked_entry_id"`
	Slug            string  `json:"slug"  binding:"max=120"`
}

type UpdateMediaDTO struct {
	Title           *string `json:"title"`
	Body            *string `json:"body"`
	Media           *string `json:"media"`
	LinkedArticleID *string `json:"linked_article_id"`
	LinkedEntryID   *string `json:"linked_entry_id"`
	Slug            *string `json:"slug"`
}

// ValidateLinks rejects a media record pointing at both an article and a
// journal entry. The check is deliberately separate from save: callers must
// run it before persisting, mirroring how the admin layer validates before
// it writes.
func ValidateLinks(linkedArticleID, linkedEntryID *string) error {
	if linkedArticleID != nil && linkedEntryID != nil {
		return &storeerr.ValidationError{
			Entity: "media",
			Field:  "linked_article/linked_entry",
			Reason: "media can only be linked to one thing",
		}
	}
	return nil
}

// Service handles media business logic.
type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

func (s *Service) List() ([]models.MediaModel, error) {
	var items []models.MediaModel
	return items, s.db.Order("created_at DESC").Find(&items).Error
}

func (s *Service) GetByID(id string) (*models.MediaModel, error) {
	var m models.MediaModel
	if err := s.db.Preload("LinkedArticle").Preload("LinkedEntry").
		First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (s *Service) Create(dto *CreateMediaDTO) (*models.MediaModel, error) {
	m := models.MediaModel{
		Title:           dto.Title,
		Body:            dto.Body,
		Media:           dto.Media,
		LinkedArticleID: dto.LinkedArticleID,
		LinkedEntryID:   dto.LinkedEntryID,
		Slug:            slug.OrDerive(dto.Slug, dto.Title),
	}
	if err := s.db.Create(&m).Error; err != nil {
		return nil, storeerr.Translate("media", err)
	}
	return &m, nil
}

func (s *Service) Update(id string, dto *UpdateMediaDTO) (*models.MediaModel, error) {
	m, err := s.GetByID(id)
	if err != nil || m == nil {
		return m, err
	}

	updates := map[string]interface{}{}
	if dto.Title != nil {
		updates["title"] = *dto.Title
	}
	if dto.Body != nil {
		updates["body"] = *dto.Body
	}
	if dto.Media != nil {
		updates["media"] = *dto.Media
	}
	if dto.LinkedArticleID != nil {
		updates["linked_article_id"] = *dto.LinkedArticleID
	}
	if dto.LinkedEntryID != nil {
		updates["linked_entry_id"] = *dto.LinkedEntryID
	}
	if dto.Slug != nil && *dto.Slug != "" {
		updates["slug"] = *dto.Slug
	}
	if err := s.db.Model(m).Updates(updates).Error; err != nil {
		return nil, storeerr.Translate("media", err)
	}
	return m, nil
}

func (s *Service) Delete(id string) error {
	return s.db.Delete(&models.MediaModel{}, "id = ?", id).Error
}
