package models

import "time"

// ArticleModel is a long-form piece.
type ArticleModel struct {
	Base
	Title         string        `json:"title"        gorm:"size:100;uniqueIndex;not null"`
	Subtitle      string        `json:"subtitle"     gorm:"size:120"`
	Billboard     string        `json:"billboard"`
	Blurb         string        `json:"blurb"        gorm:"size:200"`
	Body          string        `json:"body"         gorm:"type:longtext"`
	TopicID       *string       `json:"topic_id"     gorm:"index"`
	Topic         *TopicModel   `json:"topic,omitempty" gorm:"foreignKey:TopicID"`
	FromProjectID *string       `json:"from_project_id" gorm:"index"`
	FromProject   *ProjectModel `json:"from_project,omitempty" gorm:"foreignKey:FromProjectID"`
	Status        Status        `json:"status"       gorm:"size:1;default:'0'"`
	Slug          string        `json:"slug"         gorm:"size:100;uniqueIndex;not null"`
	Published     bool          `json:"published"    gorm:"default:false;index"`
	PublishedAt   *time.Time    `json:"published_at" gorm:"index"`

	Media []MediaModel `json:"media,omitempty" gorm:"foreignKey:LinkedArticleID"`
}

func (ArticleModel) TableName() string { return "articles" }

// LastProjectUpdate reads the attributed project's denormalized timestamp.
// Requires FromProject to be preloaded; nil when the article has no project
// or the project has never seen an article save.
func (a ArticleModel) LastProjectUpdate() *time.Time {
	if a.FromProject == nil {
		return nil
	}
	return a.FromProject.LastEntry
}
