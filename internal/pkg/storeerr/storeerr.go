// Package storeerr defines the typed failures the content store reports to
// its callers. Nothing here is retried or swallowed; handlers map each kind
// to an HTTP status.
package storeerr

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ErrEmptyResult is returned by lookups that found no matching row where the
// caller asked for exactly one (e.g. an article's attached media).
var ErrEmptyResult = errors.New("no matching record")

// ValidationError reports an entity-level invariant failure raised before
// persistence. The entity is left unchanged.
type ValidationError struct {
	Entity string
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: invalid %s: %s", e.Entity, e.Field, e.Reason)
}

// UniqueConstraintError reports a duplicate title or slug rejected by the
// storage layer.
type UniqueConstraintError struct {
	Entity string
	Err    error
}

func (e *UniqueConstraintError) Error() string {
	return fmt.Sprintf("%s: duplicate title or slug", e.Entity)
}

func (e *UniqueConstraintError) Unwrap() error { return e.Err }

// IncompletePublishError reports a publish attempt that did not run: either
// the entity is already published or required fields are missing. The row is
// untouched.
type IncompletePublishError struct {
	Entity           string
	Missing          []string
	AlreadyPublished bool
}

func (e *IncompletePublishError) Error() string {
	if e.AlreadyPublished {
		return fmt.Sprintf("%s: already published", e.Entity)
	}
	return fmt.Sprintf("%s: cannot publish, missing %s", e.Entity, strings.Join(e.Missing, ", "))
}

// Translate maps storage-layer errors onto the taxonomy. Duplicate-key
// errors become UniqueConstraintError; anything else passes through.
// Requires the gorm connection to be opened with TranslateError enabled.
func Translate(entity string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return &UniqueConstraintError{Entity: entity, Err: err}
	}
	return err
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsUniqueViolation reports whether err is a UniqueConstraintError.
func IsUniqueViolation(err error) bool {
	var ue *UniqueConstraintError
	return errors.As(err, &ue)
}

// IsIncompletePublish reports whether err is an IncompletePublishError.
func IsIncompletePublish(err error) bool {
	var pe *IncompletePublishError
	return errors.As(err, &pe)
}
