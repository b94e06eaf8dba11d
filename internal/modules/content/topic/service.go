package topic

import (
	"errors"

	"github.com/inkpress/core/internal/models"
	"github.com/inkpress/core/internal/pkg/slug"
	"github.com/inkpress/core/internal/pkg/storeerr"
	"gorm.io/gorm"
)

type CreateTopicDTO struct {
	Title string `json:"title" binding:"required,max=35"`
	Slug  string `json:"slug"  binding:"max=50"`
}

type UpdateTopicDTO struct {
	Title *string `json:"title"`
	Slug  *string `json:"slug"`
}

// Service handles topic business logic.
type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

func (s *Service) List() ([]models.TopicModel, error) {
	var topics []models.TopicModel
	return topics, s.db.Order("created_at ASC").Find(&topics).Error
}

func (s *Service) GetByID(id string) (*models.TopicModel, error) {
	var t models.TopicModel
	if err := s.db.First(&t, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (s *Service) GetBySlug(sl string) (*models.TopicModel, error) {
	var t models.TopicModel
	if err := s.db.Where("slug = ?", sl).First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

// Create inserts a topic, deriving the slug from the title when absent.
func (s *Service) Create(dto *CreateTopicDTO) (*models.TopicModel, error) {
	t := models.TopicModel{
		Title: dto.Title,
		Slug:  slug.OrDerive(dto.Slug, dto.Title),
	}
	if err := s.db.Create(&t).Error; err != nil {
		return nil, storeerr.Translate("topic", err)
	}
	return &t, nil
}

// Update patches a topic. A title change never re-derives an existing slug.
func (s *Service) Update(id string, dto *UpdateTopicDTO) (*models.TopicModel, error) {
	t, err := s.GetByID(id)
	if err != nil || t == nil {
		return t, err
	}

	updates := map[string]interface{}{}
	if dto.Title != nil {
		updates["title"] = *dto.Title
	}
	if dto.Slug != nil && *dto.Slug != "" {
		updates["slug"] = *dto.Slug
	}
	if err := s.db.Model(t).Updates(updates).Error; err != nil {
		return nil, storeerr.Translate("topic", err)
	}
	return t, nil
}

// Delete removes a topic. Dependent journals and articles survive with their
// topic reference nulled; deletion never cascades.
func (s *Service) Delete(id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.JournalModel{}).Where("topic_id = ?", id).
			Update("topic_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.ArticleModel{}).Where("topic_id = ?", id).
			Update("topic_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.TopicModel{}, "id = ?", id).Error
	})
}
