// Package file stores uploaded image assets on disk. Content entities hold
// the returned path by reference; deleting an entity never deletes its
// underlying asset.
package file

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/inkpress/core/internal/pkg/response"
)

type Handler struct {
	staticDir string
}

func NewHandler(staticDir string) *Handler {
	return &Handler{staticDir: staticDir}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/files")
	g.GET("/media/:name", h.get)

	a := g.Group("", authMW)
	a.POST("/upload", h.upload)
	a.GET("/media", h.list)
	a.DELETE("/media/:name", h.delete)
}

func (h *Handler) upload(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "file field is required")
		return
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp", ".avif", ".svg":
	default:
		response.BadRequest(c, fmt.Sprintf("unsupported file type %q", ext))
		return
	}

	dir := filepath.Join(h.staticDir, "media")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		response.InternalError(c, err)
		return
	}

	name := uuid.NewString() + ext
	if err := c.SaveUploadedFile(fh, filepath.Join(dir, name)); err != nil {
		response.InternalError(c, err)
		return
	}
	response.Created(c, gin.H{"path": "/files/media/" + name, "name": name})
}

func (h *Handler) get(c *gin.Context) {
	name := sanitizeName(c.Param("name"))
	if name == "" {
		response.BadRequest(c, "invalid file name")
		return
	}
	path := filepath.Join(h.staticDir, "media", name)
	if _, err := os.Stat(path); err != nil {
		response.NotFound(c)
		return
	}
	c.File(path)
}

func (h *Handler) list(c *gin.Context) {
	dir := filepath.Join(h.staticDir, "media")
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			response.OK(c, []gin.H{})
			return
		}
		response.InternalError(c, err)
		return
	}

	files := make([]gin.H, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		files = append(files, gin.H{
			"name":     e.Name(),
			"path":     "/files/media/" + e.Name(),
			"size":     info.Size(),
			"modified": info.ModTime().Format(time.RFC3339),
		})
	}
	response.OK(c, files)
}

func (h *Handler) delete(c *gin.Context) {
	name := sanitizeName(c.Param("name"))
	if name == "" {
		response.BadRequest(c, "invalid file name")
		return
	}
	path := filepath.Join(h.staticDir, "media", name)
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			response.NotFound(c)
			return
		}
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}

// sanitizeName rejects anything that could escape the media directory.
func sanitizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" || strings.ContainsAny(name, "/\\") || strings.Contains(name, "..") {
		return ""
	}
	return name
}
