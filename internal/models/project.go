package models

import "time"

// ProjectModel is a body of work that journals and articles are attributed to.
// LastEntry is denormalized from article saves and is write-once: the first
// article saved under the project fills it, later saves leave it alone.
type ProjectModel struct {
	Base
	Title     string     `json:"title"      gorm:"size:100;uniqueIndex;not null"`
	Billboard string     `json:"billboard"`
	Body      string     `json:"body"       gorm:"type:longtext"`
	LastEntry *time.Time `json:"last_entry"`
	Slug      string     `json:"slug"       gorm:"size:150;not null"`

	Journals []JournalModel `json:"journals,omitempty" gorm:"foreignKey:FromProjectID"`
	Articles []ArticleModel `json:"articles,omitempty" gorm:"foreignKey:FromProjectID"`
}

func (ProjectModel) TableName() string { return "projects" }
