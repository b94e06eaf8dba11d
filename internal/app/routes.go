package app

import (
	"github.com/gin-gonic/gin"
	"github.com/inkpress/core/internal/middleware"
	"github.com/inkpress/core/internal/modules/admin"
	"github.com/inkpress/core/internal/modules/auth"
	"github.com/inkpress/core/internal/modules/content/article"
	"github.com/inkpress/core/internal/modules/content/journal"
	"github.com/inkpress/core/internal/modules/content/media"
	"github.com/inkpress/core/internal/modules/content/project"
	"github.com/inkpress/core/internal/modules/content/topic"
	"github.com/inkpress/core/internal/modules/storage/file"
	"github.com/inkpress/core/internal/pkg/response"
)

func (a *App) registerRoutes() {
	r := a.router

	r.NoRoute(func(c *gin.Context) { response.NotFound(c) })
	r.NoMethod(func(c *gin.Context) { response.MethodNotAllowed(c) })

	api := r.Group("/api/v1")
	api.Use(middleware.OptionalAuth())
	if a.rc != nil {
		api.Use(middleware.RateLimit(a.rc.Raw()))
	}

	authMW := middleware.Auth()

	auth.NewHandler(a.cfg.AdminPassword).RegisterRoutes(api)
	admin.NewHandler().RegisterRoutes(api, authMW)

	topic.NewHandler(topic.NewService(a.db)).RegisterRoutes(api, authMW)
	project.NewHandler(project.NewService(a.db)).RegisterRoutes(api, authMW)
	journal.NewHandler(journal.NewService(a.db)).RegisterRoutes(api, authMW)
	article.NewHandler(article.NewService(a.db)).RegisterRoutes(api, authMW)
	media.NewHandler(media.NewService(a.db)).RegisterRoutes(api, authMW)

	file.NewHandler(a.cfg.Paths.Static).RegisterRoutes(api, authMW)
}
