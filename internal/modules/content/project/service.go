package project

import (
	"errors"

	"github.com/inkpress/core/internal/models"
	"github.com/inkpress/core/internal/pkg/slug"
	"github.com/inkpress/core/internal/pkg/storeerr"
	"gorm.io/gorm"
)

// LastEntry is deliberately absent from both DTOs: it is only ever written
// through the article-save bridge.
type CreateProjectDTO struct {
	Title     string `json:"title" binding:"required,max=100"`
	Billboard string `json:"billboard"`
	Body      string `json:"body"`
	Slug      string `json:"slug"  binding:"max=150"`
}

type UpdateProjectDTO struct {
	Title     *string `json:"title"`
	Billboard *string `json:"billboard"`
	Body      *string `json:"body"`
	Slug      *string `json:"slug"`
}

// Service handles project business logic.
type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

func (s *Service) List() ([]models.ProjectModel, error) {
	var projects []models.ProjectModel
	return projects, s.db.Order("created_at DESC").Find(&projects).Error
}

func (s *Service) GetByID(id string) (*models.ProjectModel, error) {
	var p models.ProjectModel
	if err := s.db.First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (s *Service) GetBySlug(sl string) (*models.ProjectModel, error) {
	var p models.ProjectModel
	if err := s.db.Where("slug = ?", sl).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (s *Service) Create(dto *CreateProjectDTO) (*models.ProjectModel, error) {
	p := models.ProjectModel{
		Title:     dto.Title,
		Billboard: dto.Billboard,
		Body:      dto.Body,
		Slug:      slug.OrDerive(dto.Slug, dto.Title),
	}
	if err := s.db.Create(&p).Error; err != nil {
		return nil, storeerr.Translate("project", err)
	}
	return &p, nil
}

func (s *Service) Update(id string, dto *UpdateProjectDTO) (*models.ProjectModel, error) {
	p, err := s.GetByID(id)
	if err != nil || p == nil {
		return p, err
	}

	updates := map[string]interface{}{}
	if dto.Title != nil {
		updates["title"] = *dto.Title
	}
	if dto.Billboard != nil {
		updates["billboard"] = *dto.Billboard
	}
	if dto.Body != nil {
		updates["body"] = *dto.Body
	}
	if dto.Slug != nil && *dto.Slug != "" {
		updates["slug"] = *dto.Slug
	}
	if err := s.db.Model(p).Updates(updates).Error; err != nil {
		return nil, storeerr.Translate("project", err)
	}
	return p, nil
}

// Delete removes a project. Attributed journals and articles keep their
// content; only the project reference is nulled.
func (s *Service) Delete(id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.JournalModel{}).Where("from_project_id = ?", id).
			Update("from_project_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.ArticleModel{}).Where("from_project_id = ?", id).
			Update("from_project_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.ProjectModel{}, "id = ?", id).Error
	})
}
