package journal

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/inkpress/core/internal/models"
	"github.com/inkpress/core/internal/pkg/pagination"
	"github.com/inkpress/core/internal/pkg/storeerr"
	"github.com/inkpress/core/internal/pkg/testdb"
	"github.com/stretchr/testify/require"
)

func paginationDefault() pagination.Query {
	return pagination.Query{Page: 1, Size: 10}
}

func newEntry(t *testing.T, svc *Service, title, body string) *models.JournalModel {
	t.Helper()
	j, err := svc.Create(&CreateJournalDTO{
		EntryDate: time.Date(2023, 5, 10, 0, 0, 0, 0, time.UTC),
		Title:     title,
		Body:      body,
	})
	require.NoError(t, err)
	return j
}

func TestCreateDefaultsSlugToGeneratedID(t *testing.T) {
	svc := NewService(testdb.New(t))

	j := newEntry(t, svc, "Morning Pages", "wrote some")
	// Not a transform of the title: a freshly generated unique identifier.
	_, err := uuid.Parse(j.Slug)
	require.NoError(t, err, "slug %q should be a generated uuid", j.Slug)
	require.Equal(t, models.StatusDraft, j.Status)
	require.False(t, j.Published)
}

func TestPublishWithEmptyBodyFails(t *testing.T) {
	db := testdb.New(t)
	svc := NewService(db)

	j := newEntry(t, svc, "Empty", "")

	_, err := svc.Publish(j.ID)
	require.Error(t, err)
	require.True(t, storeerr.IsIncompletePublish(err))

	var got models.JournalModel
	require.NoError(t, db.First(&got, "id = ?", j.ID).Error)
	require.Equal(t, models.StatusDraft, got.Status)
	require.False(t, got.Published)
	require.Nil(t, got.PublishedAt)
}

func TestPublishPinsEntryDateToPublishedAt(t *testing.T) {
	db := testdb.New(t)
	svc := NewService(db)

	j := newEntry(t, svc, "Ready", "a full entry")

	_, err := svc.Publish(j.ID)
	require.NoError(t, err)

	var got models.JournalModel
	require.NoError(t, db.First(&got, "id = ?", j.ID).Error)
	require.True(t, got.Published)
	require.Equal(t, models.StatusPublished, got.Status)
	require.NotNil(t, got.PublishedAt)
	require.WithinDuration(t, time.Now(), *got.PublishedAt, 5*time.Second)
	require.Equal(t, got.PublishedAt.UTC(), got.EntryDate.UTC())
}

func TestPublishTwiceIsNoOp(t *testing.T) {
	db := testdb.New(t)
	svc := NewService(db)

	j := newEntry(t, svc, "Once", "body")

	_, err := svc.Publish(j.ID)
	require.NoError(t, err)

	var first models.JournalModel
	require.NoError(t, db.First(&first, "id = ?", j.ID).Error)

	_, err = svc.Publish(j.ID)
	require.Error(t, err)
	require.True(t, storeerr.IsIncompletePublish(err))

	var second models.JournalModel
	require.NoError(t, db.First(&second, "id = ?", j.ID).Error)
	require.Equal(t, first.PublishedAt.UTC(), second.PublishedAt.UTC())
	require.Equal(t, first.EntryDate.UTC(), second.EntryDate.UTC())
}

func TestDuplicateTitleIsTyped(t *testing.T) {
	svc := NewService(testdb.New(t))

	newEntry(t, svc, "Same Day", "one")

	_, err := svc.Create(&CreateJournalDTO{
		EntryDate: time.Now(),
		Title:     "Same Day",
		Body:      "two",
	})
	require.Error(t, err)
	require.True(t, storeerr.IsUniqueViolation(err))
}

func TestListOrdersByEntryDateDescending(t *testing.T) {
	db := testdb.New(t)
	svc := NewService(db)

	older := models.JournalModel{Title: "Older", Body: "b", Slug: "older",
		EntryDate: time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC), Published: true}
	newer := models.JournalModel{Title: "Newer", Body: "b", Slug: "newer",
		EntryDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Published: true}
	require.NoError(t, db.Create(&older).Error)
	require.NoError(t, db.Create(&newer).Error)

	entries, _, err := svc.List(paginationDefault(), false)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "Newer", entries[0].Title)
	require.Equal(t, "Older", entries[1].Title)
}

func TestListHidesDraftsFromPublic(t *testing.T) {
	db := testdb.New(t)
	svc := NewService(db)

	newEntry(t, svc, "Draft Entry", "body")

	public, _, err := svc.List(paginationDefault(), false)
	require.NoError(t, err)
	require.Empty(t, public)

	adminView, _, err := svc.List(paginationDefault(), true)
	require.NoError(t, err)
	require.Len(t, adminView, 1)
}
