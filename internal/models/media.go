package models

// MediaModel is an image asset, optionally attached to exactly one content
// item. The single-linkage rule (never both LinkedArticleID and
// LinkedEntryID) is validated before save, not by the schema.
type MediaModel struct {
	Base
	Title           string        `json:"title" gorm:"size:100;uniqueIndex;not null"`
	Body            string        `json:"body"  gorm:"type:text"`
	Media           string        `json:"media" gorm:"not null"` // stored asset path
	LinkedArticleID *string       `json:"linked_article_id" gorm:"index"`
	LinkedArticle   *ArticleModel `json:"linked_article,omitempty" gorm:"foreignKey:LinkedArticleID"`
	LinkedEntryID   *string       `json:"linked_entry_id" gorm:"index"`
	LinkedEntry     *JournalModel `json:"linked_entry,omitempty" gorm:"foreignKey:LinkedEntryID"`
	Slug            string        `json:"slug"  gorm:"size:120;not null"`
}

func (MediaModel) TableName() string { return "media" }
