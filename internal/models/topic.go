package models

// TopicModel is a labeled category journals and articles can point at.
type TopicModel struct {
	Base
	Title string `json:"title" gorm:"size:35;not null"`
	Slug  string `json:"slug"  gorm:"size:50;not null"`

	Journals []JournalModel `json:"journals,omitempty" gorm:"foreignKey:TopicID"`
	Articles []ArticleModel `json:"articles,omitempty" gorm:"foreignKey:TopicID"`
}

func (TopicModel) TableName() string { return "topics" }
