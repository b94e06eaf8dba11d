package storeerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestTranslateDuplicateKey(t *testing.T) {
	err := Translate("article", fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey))
	assert.True(t, IsUniqueViolation(err))
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey))
}

func TestTranslatePassesThroughOtherErrors(t *testing.T) {
	orig := errors.New("connection refused")
	assert.Equal(t, orig, Translate("article", orig))
	assert.NoError(t, Translate("article", nil))
}

func TestIncompletePublishMessages(t *testing.T) {
	already := &IncompletePublishError{Entity: "journal", AlreadyPublished: true}
	assert.Contains(t, already.Error(), "already published")

	missing := &IncompletePublishError{Entity: "article", Missing: []string{"blurb", "billboard"}}
	assert.Contains(t, missing.Error(), "blurb, billboard")
	assert.True(t, IsIncompletePublish(fmt.Errorf("publish: %w", missing)))
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{Entity: "media", Field: "linked_article/linked_entry", Reason: "both set"}
	assert.True(t, IsValidation(fmt.Errorf("save: %w", err)))
	assert.False(t, IsValidation(errors.New("other")))
}
