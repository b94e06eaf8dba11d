package article

import (
	"errors"
	"time"

	"github.com/inkpress/core/internal/models"
	"github.com/inkpress/core/internal/pkg/pagination"
	"github.com/inkpress/core/internal/pkg/response"
	"github.com/inkpress/core/internal/pkg/slug"
	"github.com/inkpress/core/internal/pkg/storeerr"
	"gorm.io/gorm"
)

// TopicID is required at create time only; the column stays nullable so a
// topic deletion can null it without orphaning the article.
type CreateArticleDTO struct {
	Title         string  `json:"title"    binding:"required,max=100"`
	Subtitle      string  `json:"subtitle" binding:"max=120"`
	Billboard     string  `json:"billboard"`
	Blurb         string  `json:"blurb"    binding:"max=200"`
	Body          string  `json:"body"`
	TopicID       *string `json:"topic_id" binding:"required"`
	FromProjectID *string `json:"from_project_id"`
	Slug          string  `json:"slug"     binding:"max=100"`
}

type UpdateArticleDTO struct {
	Title         *string `json:"title"`
	Subtitle      *string `json:"subtitle"`
	Billboard     *string `json:"billboard"`
	Blurb         *string `json:"blurb"`
	Body          *string `json:"body"`
	TopicID       *string `json:"topic_id"`
	FromProjectID *string `json:"from_project_id"`
	Slug          *string `json:"slug"`
}

// Service handles article business logic.
type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// List returns articles most recently published first. Non-admin callers
// only see published articles.
func (s *Service) List(q pagination.Query, isAdmin bool) ([]models.ArticleModel, response.Pagination, error) {
	tx := s.db.Model(&models.ArticleModel{}).
		Preload("Topic").Preload("FromProject").
		Order("published_at DESC")
	if !isAdmin {
		tx = tx.Where("published = ?", true)
	}

	var articles []models.ArticleModel
	pag, err := pagination.Paginate(tx, q, &articles)
	return articles, pag, err
}

func (s *Service) GetByID(id string) (*models.ArticleModel, error) {
	var a models.ArticleModel
	if err := s.db.Preload("Topic").Preload("FromProject").
		First(&a, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (s *Service) GetBySlug(sl string, isAdmin bool) (*models.ArticleModel, error) {
	tx := s.db.Preload("Topic").Preload("FromProject").Where("slug = ?", sl)
	if !isAdmin {
		tx = tx.Where("published = ?", true)
	}
	var a models.ArticleModel
	if err := tx.First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

// Create inserts a draft article. The slug prepare step and the project
// timestamp bridge run in the same transaction as the insert.
func (s *Service) Create(dto *CreateArticleDTO) (*models.ArticleModel, error) {
	a := models.ArticleModel{
		Title:         dto.Title,
		Subtitle:      dto.Subtitle,
		Billboard:     dto.Billboard,
		Blurb:         dto.Blurb,
		Body:          dto.Body,
		TopicID:       dto.TopicID,
		FromProjectID: dto.FromProjectID,
		Status:        models.StatusDraft,
		Slug:          slug.OrDerive(dto.Slug, dto.Title),
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&a).Error; err != nil {
			return err
		}
		return linkProjectEntry(tx, a.FromProjectID, a.UpdatedAt)
	})
	if err != nil {
		return nil, storeerr.Translate("article", err)
	}
	return &a, nil
}

// Update patches an article. Like create, the project bridge runs in the
// same transaction as the write.
func (s *Service) Update(id string, dto *UpdateArticleDTO) (*models.ArticleModel, error) {
	a, err := s.GetByID(id)
	if err != nil || a == nil {
		return a, err
	}

	updates := map[string]interface{}{}
	if dto.Title != nil {
		updates["title"] = *dto.Title
	}
	if dto.Subtitle != nil {
		updates["subtitle"] = *dto.Subtitle
	}
	if dto.Billboard != nil {
		updates["billboard"] = *dto.Billboard
	}
	if dto.Blurb != nil {
		updates["blurb"] = *dto.Blurb
	}
	if dto.Body != nil {
		updates["body"] = *dto.Body
	}
	if dto.TopicID != nil {
		updates["topic_id"] = *dto.TopicID
	}
	if dto.FromProjectID != nil {
		updates["from_project_id"] = *dto.FromProjectID
		a.FromProjectID = dto.FromProjectID
	}
	if dto.Slug != nil && *dto.Slug != "" {
		updates["slug"] = *dto.Slug
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(a).Updates(updates).Error; err != nil {
			return err
		}
		return linkProjectEntry(tx, a.FromProjectID, a.UpdatedAt)
	})
	if err != nil {
		return nil, storeerr.Translate("article", err)
	}
	return a, nil
}

// linkProjectEntry fills the attributed project's last_entry with the
// article's update time, once. The NULL guard makes the write atomic: two
// concurrent article saves under the same project cannot both claim it, and
// a project that already has a last_entry is never touched again through
// this path.
func linkProjectEntry(tx *gorm.DB, projectID *string, updatedAt time.Time) error {
	if projectID == nil {
		return nil
	}
	return tx.Model(&models.ProjectModel{}).
		Where("id = ? AND last_entry IS NULL", *projectID).
		Update("last_entry", updatedAt).Error
}

// Publish transitions a draft article to published. A no-op failure when the
// article is already published or any of title, body, blurb, billboard is
// missing. Unlike journal entries, nothing else is touched on success.
func (s *Service) Publish(id string) (*models.ArticleModel, error) {
	a, err := s.GetByID(id)
	if err != nil || a == nil {
		return a, err
	}

	if a.Published {
		return nil, &storeerr.IncompletePublishError{Entity: "article", AlreadyPublished: true}
	}
	var missing []string
	if a.Title == "" {
		missing = append(missing, "title")
	}
	if a.Body == "" {
		missing = append(missing, "body")
	}
	if a.Blurb == "" {
		missing = append(missing, "blurb")
	}
	if a.Billboard == "" {
		missing = append(missing, "billboard")
	}
	if len(missing) > 0 {
		return nil, &storeerr.IncompletePublishError{Entity: "article", Missing: missing}
	}

	now := time.Now()
	if err := s.db.Model(a).Updates(map[string]interface{}{
		"published":    true,
		"status":       models.StatusPublished,
		"published_at": now,
	}).Error; err != nil {
		return nil, err
	}
	return a, nil
}

// AttachedMedia re-fetches the article and returns the title of its first
// linked media item, in storage order. Returns storeerr.ErrEmptyResult when
// the article has no media attached.
func (s *Service) AttachedMedia(id string) (string, error) {
	var a models.ArticleModel
	if err := s.db.First(&a, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", storeerr.ErrEmptyResult
		}
		return "", err
	}

	var media []models.MediaModel
	if err := s.db.Where("linked_article_id = ?", a.ID).Find(&media).Error; err != nil {
		return "", err
	}
	if len(media) == 0 {
		return "", storeerr.ErrEmptyResult
	}
	return media[0].Title, nil
}

// Delete removes an article and detaches any media that pointed at it.
func (s *Service) Delete(id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.MediaModel{}).Where("linked_article_id = ?", id).
			Update("linked_article_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.ArticleModel{}, "id = ?", id).Error
	})
}
