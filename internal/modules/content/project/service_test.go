package project

import (
	"testing"

	"github.com/inkpress/core/internal/models"
	"github.com/inkpress/core/internal/pkg/storeerr"
	"github.com/inkpress/core/internal/pkg/testdb"
	"github.com/stretchr/testify/require"
)

func TestCreateDuplicateTitleIsTyped(t *testing.T) {
	svc := NewService(testdb.New(t))

	_, err := svc.Create(&CreateProjectDTO{Title: "Same"})
	require.NoError(t, err)

	_, err = svc.Create(&CreateProjectDTO{Title: "Same", Slug: "other"})
	require.Error(t, err)
	require.True(t, storeerr.IsUniqueViolation(err))
}

func TestDeleteNullsAttributions(t *testing.T) {
	db := testdb.New(t)
	svc := NewService(db)

	p, err := svc.Create(&CreateProjectDTO{Title: "Workshop"})
	require.NoError(t, err)

	j := models.JournalModel{Title: "Log", Body: "b", Slug: "log", FromProjectID: &p.ID}
	require.NoError(t, db.Create(&j).Error)
	a := models.ArticleModel{Title: "Writeup", Slug: "writeup", FromProjectID: &p.ID}
	require.NoError(t, db.Create(&a).Error)

	require.NoError(t, svc.Delete(p.ID))

	var gotJ models.JournalModel
	require.NoError(t, db.First(&gotJ, "id = ?", j.ID).Error)
	require.Nil(t, gotJ.FromProjectID)

	var gotA models.ArticleModel
	require.NoError(t, db.First(&gotA, "id = ?", a.ID).Error)
	require.Nil(t, gotA.FromProjectID)
}

func TestLastEntryNotEditable(t *testing.T) {
	db := testdb.New(t)
	svc := NewService(db)

	p, err := svc.Create(&CreateProjectDTO{Title: "Workshop"})
	require.NoError(t, err)
	require.Nil(t, p.LastEntry)

	body := "updated"
	_, err = svc.Update(p.ID, &UpdateProjectDTO{Body: &body})
	require.NoError(t, err)

	var got models.ProjectModel
	require.NoError(t, db.First(&got, "id = ?", p.ID).Error)
	require.Nil(t, got.LastEntry)
	require.Equal(t, "updated", got.Body)
}
