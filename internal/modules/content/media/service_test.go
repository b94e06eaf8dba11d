package media

import (
	"testing"

	"github.com/inkpress/core/internal/models"
	"github.com/inkpress/core/internal/pkg/storeerr"
	"github.com/inkpress/core/internal/pkg/testdb"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestValidateLinks(t *testing.T) {
	articleID := "article-1"
	entryID := "entry-1"

	require.NoError(t, ValidateLinks(nil, nil))
	require.NoError(t, ValidateLinks(&articleID, nil))
	require.NoError(t, ValidateLinks(nil, &entryID))

	err := ValidateLinks(&articleID, &entryID)
	require.Error(t, err)
	require.True(t, storeerr.IsValidation(err))
}

func TestValidationFailsRegardlessOfOtherFields(t *testing.T) {
	// A record that is otherwise completely valid is still rejected.
	articleID := "article-1"
	entryID := "entry-1"
	dto := CreateMediaDTO{
		Title:           "Perfectly Good Title",
		Media:           "/files/media/pic.jpg",
		LinkedArticleID: &articleID,
		LinkedEntryID:   &entryID,
	}
	require.Error(t, ValidateLinks(dto.LinkedArticleID, dto.LinkedEntryID))
}

func TestCreateDerivesSlug(t *testing.T) {
	svc := NewService(testdb.New(t))

	m, err := svc.Create(&CreateMediaDTO{Title: "Studio Portrait", Media: "/files/media/p.jpg"})
	require.NoError(t, err)
	require.Equal(t, "studio-portrait", m.Slug)
}

func TestCreateWithSingleLinkPersists(t *testing.T) {
	db := testdb.New(t)
	svc := NewService(db)

	article := models.ArticleModel{Title: "Host", Slug: "host"}
	require.NoError(t, db.Create(&article).Error)

	m, err := svc.Create(&CreateMediaDTO{
		Title:           "Inline Image",
		Media:           "/files/media/i.jpg",
		LinkedArticleID: &article.ID,
	})
	require.NoError(t, err)

	var got models.MediaModel
	require.NoError(t, db.First(&got, "id = ?", m.ID).Error)
	require.NotNil(t, got.LinkedArticleID)
	require.Nil(t, got.LinkedEntryID)
}

func TestDuplicateTitleIsTyped(t *testing.T) {
	svc := NewService(testdb.New(t))

	_, err := svc.Create(&CreateMediaDTO{Title: "Same", Media: "/files/media/a.jpg"})
	require.NoError(t, err)

	_, err = svc.Create(&CreateMediaDTO{Title: "Same", Media: "/files/media/b.jpg", Slug: "other"})
	require.Error(t, err)
	require.True(t, storeerr.IsUniqueViolation(err))
}

func TestDeleteRemovesRecordOnly(t *testing.T) {
	db := testdb.New(t)
	svc := NewService(db)

	m, err := svc.Create(&CreateMediaDTO{Title: "Gone Soon", Media: "/files/media/g.jpg"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(m.ID))

	err = db.First(&models.MediaModel{}, "id = ?", m.ID).Error
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
