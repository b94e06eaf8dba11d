package models

import "time"

// JournalModel is a dated journal entry. Once published, EntryDate is pinned
// to PublishedAt and no longer reflects the authoring date.
type JournalModel struct {
	Base
	EntryDate     time.Time     `json:"entrydate"    gorm:"not null"`
	Title         string        `json:"title"        gorm:"size:100;uniqueIndex;not null"`
	Body          string        `json:"body"         gorm:"type:longtext;not null"`
	TopicID       *string       `json:"topic_id"     gorm:"index"`
	Topic         *TopicModel   `json:"topic,omitempty" gorm:"foreignKey:TopicID"`
	FromProjectID *string       `json:"from_project_id" gorm:"index"`
	FromProject   *ProjectModel `json:"from_project,omitempty" gorm:"foreignKey:FromProjectID"`
	Status        Status        `json:"status"       gorm:"size:1;default:'0'"`
	Slug          string        `json:"slug"         gorm:"size:120;uniqueIndex;not null"`
	Published     bool          `json:"published"    gorm:"default:false;index"`
	PublishedAt   *time.Time    `json:"published_at"`
}

func (JournalModel) TableName() string { return "journals" }
