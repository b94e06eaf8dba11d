package article

import (
	"testing"
	"time"

	"github.com/inkpress/core/internal/models"
	"github.com/inkpress/core/internal/pkg/storeerr"
	"github.com/inkpress/core/internal/pkg/testdb"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTopic(t *testing.T, db *gorm.DB) *models.TopicModel {
	t.Helper()
	topic := models.TopicModel{Title: "General", Slug: "general"}
	require.NoError(t, db.Create(&topic).Error)
	return &topic
}

func newProject(t *testing.T, db *gorm.DB, title string) *models.ProjectModel {
	t.Helper()
	p := models.ProjectModel{Title: title, Slug: title}
	require.NoError(t, db.Create(&p).Error)
	return &p
}

func completeArticle(topicID string) *CreateArticleDTO {
	return &CreateArticleDTO{
		Title:     "A Long Read",
		Blurb:     "short teaser",
		Billboard: "/files/media/cover.jpg",
		Body:      "the full text",
		TopicID:   &topicID,
	}
}

func TestCreateDerivesSlugOnce(t *testing.T) {
	db := testdb.New(t)
	svc := NewService(db)
	topic := newTopic(t, db)

	a, err := svc.Create(&CreateArticleDTO{Title: "On Writing Well", TopicID: &topic.ID})
	require.NoError(t, err)
	require.Equal(t, "on-writing-well", a.Slug)

	newTitle := "On Writing Poorly"
	_, err = svc.Update(a.ID, &UpdateArticleDTO{Title: &newTitle})
	require.NoError(t, err)

	var got models.ArticleModel
	require.NoError(t, db.First(&got, "id = ?", a.ID).Error)
	require.Equal(t, "On Writing Poorly", got.Title)
	require.Equal(t, "on-writing-well", got.Slug)
}

func TestPublishRequiresAllCompletenessFields(t *testing.T) {
	db := testdb.New(t)
	svc := NewService(db)
	topic := newTopic(t, db)

	dto := completeArticle(topic.ID)
	dto.Blurb = ""
	a, err := svc.Create(dto)
	require.NoError(t, err)

	_, err = svc.Publish(a.ID)
	require.Error(t, err)
	require.True(t, storeerr.IsIncompletePublish(err))

	var got models.ArticleModel
	require.NoError(t, db.First(&got, "id = ?", a.ID).Error)
	require.False(t, got.Published)
	require.Equal(t, models.StatusDraft, got.Status)
	require.Nil(t, got.PublishedAt)
}

func TestPublishCompleteArticleSucceedsOnce(t *testing.T) {
	db := testdb.New(t)
	svc := NewService(db)
	topic := newTopic(t, db)

	a, err := svc.Create(completeArticle(topic.ID))
	require.NoError(t, err)

	_, err = svc.Publish(a.ID)
	require.NoError(t, err)

	var got models.ArticleModel
	require.NoError(t, db.First(&got, "id = ?", a.ID).Error)
	require.True(t, got.Published)
	require.Equal(t, models.StatusPublished, got.Status)
	require.NotNil(t, got.PublishedAt)
	require.WithinDuration(t, time.Now(), *got.PublishedAt, 5*time.Second)

	// Second call is a failing no-op; published_at does not move.
	_, err = svc.Publish(a.ID)
	require.Error(t, err)
	require.True(t, storeerr.IsIncompletePublish(err))

	var again models.ArticleModel
	require.NoError(t, db.First(&again, "id = ?", a.ID).Error)
	require.Equal(t, got.PublishedAt.UTC(), again.PublishedAt.UTC())
}

func TestPublishWithoutProjectTouchesNoProject(t *testing.T) {
	db := testdb.New(t)
	svc := NewService(db)
	topic := newTopic(t, db)

	a, err := svc.Create(completeArticle(topic.ID))
	require.NoError(t, err)
	require.Nil(t, a.FromProjectID)

	_, err = svc.Publish(a.ID)
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.ProjectModel{}).Where("last_entry IS NOT NULL").Count(&count).Error)
	require.Zero(t, count)
}

func TestProjectLastEntryIsWriteOnce(t *testing.T) {
	db := testdb.New(t)
	svc := NewService(db)
	topic := newTopic(t, db)
	project := newProject(t, db, "notebook")

	first, err := svc.Create(&CreateArticleDTO{
		Title: "First", TopicID: &topic.ID, FromProjectID: &project.ID,
	})
	require.NoError(t, err)

	var afterFirst models.ProjectModel
	require.NoError(t, db.First(&afterFirst, "id = ?", project.ID).Error)
	require.NotNil(t, afterFirst.LastEntry)
	require.WithinDuration(t, first.UpdatedAt, *afterFirst.LastEntry, time.Second)

	time.Sleep(10 * time.Millisecond)

	_, err = svc.Create(&CreateArticleDTO{
		Title: "Second", TopicID: &topic.ID, FromProjectID: &project.ID,
	})
	require.NoError(t, err)

	var afterSecond models.ProjectModel
	require.NoError(t, db.First(&afterSecond, "id = ?", project.ID).Error)
	require.Equal(t, afterFirst.LastEntry.UTC(), afterSecond.LastEntry.UTC())
}

func TestBridgeAlsoRunsOnUpdate(t *testing.T) {
	db := testdb.New(t)
	svc := NewService(db)
	topic := newTopic(t, db)
	project := newProject(t, db, "late-link")

	a, err := svc.Create(&CreateArticleDTO{Title: "Unattributed", TopicID: &topic.ID})
	require.NoError(t, err)

	_, err = svc.Update(a.ID, &UpdateArticleDTO{FromProjectID: &project.ID})
	require.NoError(t, err)

	var got models.ProjectModel
	require.NoError(t, db.First(&got, "id = ?", project.ID).Error)
	require.NotNil(t, got.LastEntry)
}

func TestAttachedMedia(t *testing.T) {
	db := testdb.New(t)
	svc := NewService(db)
	topic := newTopic(t, db)

	a, err := svc.Create(completeArticle(topic.ID))
	require.NoError(t, err)

	// No media attached yet: a defined error, not a crash.
	_, err = svc.AttachedMedia(a.ID)
	require.ErrorIs(t, err, storeerr.ErrEmptyResult)

	m1 := models.MediaModel{Title: "Cover Shot", Media: "/files/media/one.jpg", Slug: "cover-shot", LinkedArticleID: &a.ID}
	require.NoError(t, db.Create(&m1).Error)
	m2 := models.MediaModel{Title: "Detail Shot", Media: "/files/media/two.jpg", Slug: "detail-shot", LinkedArticleID: &a.ID}
	require.NoError(t, db.Create(&m2).Error)

	title, err := svc.AttachedMedia(a.ID)
	require.NoError(t, err)
	require.Equal(t, "Cover Shot", title)
}

func TestAttachedMediaUnknownArticle(t *testing.T) {
	svc := NewService(testdb.New(t))

	_, err := svc.AttachedMedia("no-such-id")
	require.ErrorIs(t, err, storeerr.ErrEmptyResult)
}
