package admin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func layoutFor(t *testing.T, entity string) FormLayout {
	t.Helper()
	for _, l := range Layouts() {
		if l.Entity == entity {
			return l
		}
	}
	t.Fatalf("no layout for %q", entity)
	return FormLayout{}
}

func TestAllEntitiesHaveLayouts(t *testing.T) {
	require.Len(t, Layouts(), 5)
	for _, entity := range []string{"topic", "project", "journal", "article", "media"} {
		layoutFor(t, entity)
	}
}

func TestPublishFieldsAreReadOnly(t *testing.T) {
	for _, entity := range []string{"journal", "article"} {
		l := layoutFor(t, entity)
		assert.ElementsMatch(t, []string{"status", "published_at", "published"}, l.ReadOnly, entity)
	}
}

func TestSlugIsPrepopulatedFromTitle(t *testing.T) {
	for _, l := range Layouts() {
		assert.Equal(t, "title", l.Prepopulated["slug"], l.Entity)
	}
}

func TestAssociationGroupsAreCollapsed(t *testing.T) {
	l := layoutFor(t, "article")
	require.Len(t, l.Fieldsets, 3)
	assert.False(t, l.Fieldsets[0].Collapsed)
	assert.True(t, l.Fieldsets[1].Collapsed)
	assert.True(t, l.Fieldsets[2].Collapsed)
}
