// Package admin serves static form-layout metadata to the admin UI: field
// grouping, collapsed sections, read-only fields, and slug prepopulation
// sources. The backend owns this structure so every admin client renders the
// same editor.
package admin

import (
	"github.com/gin-gonic/gin"
	"github.com/inkpress/core/internal/pkg/response"
)

// Fieldset is one ordered group of fields in an entity's edit form.
type Fieldset struct {
	Name      string   `json:"name"`
	Fields    []string `json:"fields"`
	Collapsed bool     `json:"collapsed"`
}

// FormLayout describes the edit form for one entity type. ReadOnly fields
// are displayed but never submitted; they change only through the publish
// operation.
type FormLayout struct {
	Entity       string            `json:"entity"`
	Fieldsets    []Fieldset        `json:"fieldsets"`
	ReadOnly     []string          `json:"read_only"`
	Prepopulated map[string]string `json:"prepopulated,omitempty"`
}

var layouts = []FormLayout{
	{
		Entity: "journal",
		Fieldsets: []Fieldset{
			{Name: "", Fields: []string{"title", "body"}},
			{Name: "Associations", Fields: []string{"topic_id", "from_project_id"}, Collapsed: true},
			{Name: "Metadata", Fields: []string{"entrydate", "published_at", "published", "slug", "status"}, Collapsed: true},
		},
		ReadOnly:     []string{"status", "published_at", "published"},
		Prepopulated: map[string]string{"slug": "title"},
	},
	{
		Entity: "article",
		Fieldsets: []Fieldset{
			{Name: "", Fields: []string{"title", "subtitle", "billboard", "blurb", "body"}},
			{Name: "Associations", Fields: []string{"topic_id", "from_project_id"}, Collapsed: true},
			{Name: "Metadata", Fields: []string{"published_at", "published", "slug", "status"}, Collapsed: true},
		},
		ReadOnly:     []string{"status", "published_at", "published"},
		Prepopulated: map[string]string{"slug": "title"},
	},
	{
		Entity: "media",
		Fieldsets: []Fieldset{
			{Name: "", Fields: []string{"title", "media", "body"}},
			{Name: "Associations", Fields: []string{"linked_article_id", "linked_entry_id"}, Collapsed: true},
			{Name: "Metadata", Fields: []string{"slug"}, Collapsed: true},
		},
		Prepopulated: map[string]string{"slug": "title"},
	},
	{
		Entity: "project",
		Fieldsets: []Fieldset{
			{Name: "", Fields: []string{"title", "billboard", "body"}},
			{Name: "Metadata", Fields: []string{"slug"}, Collapsed: true},
		},
		ReadOnly:     []string{"last_entry"},
		Prepopulated: map[string]string{"slug": "title"},
	},
	{
		Entity: "topic",
		Fieldsets: []Fieldset{
			{Name: "", Fields: []string{"title"}},
			{Name: "Metadata", Fields: []string{"slug"}, Collapsed: true},
		},
		Prepopulated: map[string]string{"slug": "title"},
	},
}

// Layouts returns the form layouts for all entity types.
func Layouts() []FormLayout { return layouts }

type Handler struct{}

func NewHandler() *Handler { return &Handler{} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	a := rg.Group("/admin", authMW)
	a.GET("/layouts", h.layouts)
}

func (h *Handler) layouts(c *gin.Context) {
	response.OK(c, Layouts())
}
