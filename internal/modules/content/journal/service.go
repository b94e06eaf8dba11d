package journal

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/inkpress/core/internal/models"
	"github.com/inkpress/core/internal/pkg/pagination"
	"github.com/inkpress/core/internal/pkg/response"
	"github.com/inkpress/core/internal/pkg/storeerr"
	"gorm.io/gorm"
)

// Status, Published and PublishedAt never appear in the DTOs: the admin UI
// shows them read-only and the publish operation is their only writer.
type CreateJournalDTO struct {
	EntryDate     time.Time `json:"entrydate" binding:"required"`
	Title         string    `json:"title"     binding:"required,max=100"`
	Body          string    `json:"body"      binding:"required"`
	TopicID       *string   `json:"topic_id"`
	FromProjectID *string   `json:"from_project_id"`
	Slug          string    `json:"slug"      binding:"max=120"`
}

type UpdateJournalDTO struct {
	EntryDate     *time.Time `json:"entrydate"`
	Title         *string    `json:"title"`
	Body          *string    `json:"body"`
	TopicID       *string    `json:"topic_id"`
	FromProjectID *string    `json:"from_project_id"`
	Slug          *string    `json:"slug"`
}

// Service handles journal business logic.
type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// List returns journal entries newest-dated first. Non-admin callers only
// see published entries.
func (s *Service) List(q pagination.Query, isAdmin bool) ([]models.JournalModel, response.Pagination, error) {
	tx := s.db.Model(&models.JournalModel{}).
		Preload("Topic").Preload("FromProject").
		Order("entry_date DESC")
	if !isAdmin {
		tx = tx.Where("published = ?", true)
	}

	var entries []models.JournalModel
	pag, err := pagination.Paginate(tx, q, &entries)
	return entries, pag, err
}

func (s *Service) GetByID(id string) (*models.JournalModel, error) {
	var j models.JournalModel
	if err := s.db.Preload("Topic").Preload("FromProject").
		First(&j, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &j, nil
}

func (s *Service) GetBySlug(sl string, isAdmin bool) (*models.JournalModel, error) {
	tx := s.db.Preload("Topic").Preload("FromProject").Where("slug = ?", sl)
	if !isAdmin {
		tx = tx.Where("published = ?", true)
	}
	var j models.JournalModel
	if err := tx.First(&j).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &j, nil
}

// Create inserts a draft entry. An absent slug defaults to a generated
// unique identifier rather than a transform of the title.
func (s *Service) Create(dto *CreateJournalDTO) (*models.JournalModel, error) {
	sl := dto.Slug
	if sl == "" {
		sl = uuid.NewString()
	}
	j := models.JournalModel{
		EntryDate:     dto.EntryDate,
		Title:         dto.Title,
		Body:          dto.Body,
		TopicID:       dto.TopicID,
		FromProjectID: dto.FromProjectID,
		Status:        models.StatusDraft,
		Slug:          sl,
	}
	if err := s.db.Create(&j).Error; err != nil {
		return nil, storeerr.Translate("journal", err)
	}
	return &j, nil
}

func (s *Service) Update(id string, dto *UpdateJournalDTO) (*models.JournalModel, error) {
	j, err := s.GetByID(id)
	if err != nil || j == nil {
		return j, err
	}

	updates := map[string]interface{}{}
	if dto.EntryDate != nil {
		updates["entry_date"] = *dto.EntryDate
	}
	if dto.Title != nil {
		updates["title"] = *dto.Title
	}
	if dto.Body != nil {
		updates["body"] = *dto.Body
	}
	if dto.TopicID != nil {
		updates["topic_id"] = *dto.TopicID
	}
	if dto.FromProjectID != nil {
		updates["from_project_id"] = *dto.FromProjectID
	}
	if dto.Slug != nil && *dto.Slug != "" {
		updates["slug"] = *dto.Slug
	}
	if err := s.db.Model(j).Updates(updates).Error; err != nil {
		return nil, storeerr.Translate("journal", err)
	}
	return j, nil
}

// Publish transitions a draft entry to published. It is a no-op failure when
// the entry is already published or title/body are missing. On success the
// entry date is pinned to the publication time.
func (s *Service) Publish(id string) (*models.JournalModel, error) {
	j, err := s.GetByID(id)
	if err != nil || j == nil {
		return j, err
	}

	if j.Published {
		return nil, &storeerr.IncompletePublishError{Entity: "journal", AlreadyPublished: true}
	}
	var missing []string
	if j.Title == "" {
		missing = append(missing, "title")
	}
	if j.Body == "" {
		missing = append(missing, "body")
	}
	if len(missing) > 0 {
		return nil, &storeerr.IncompletePublishError{Entity: "journal", Missing: missing}
	}

	now := time.Now()
	if err := s.db.Model(j).Updates(map[string]interface{}{
		"published":    true,
		"status":       models.StatusPublished,
		"published_at": now,
		"entry_date":   now,
	}).Error; err != nil {
		return nil, err
	}
	return j, nil
}

// Delete removes an entry and detaches any media that pointed at it.
func (s *Service) Delete(id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.MediaModel{}).Where("linked_entry_id = ?", id).
			Update("linked_entry_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.JournalModel{}, "id = ?", id).Error
	})
}
