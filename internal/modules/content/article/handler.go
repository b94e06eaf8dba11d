package article

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/inkpress/core/internal/middleware"
	"github.com/inkpress/core/internal/pkg/pagination"
	"github.com/inkpress/core/internal/pkg/response"
	"github.com/inkpress/core/internal/pkg/storeerr"
)

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	a := rg.Group("/articles")
	a.GET("", h.list)
	a.GET("/slug/:slug", h.getBySlug)
	a.GET("/:id", h.get)
	a.GET("/:id/attached-media", h.attachedMedia)

	adm := a.Group("", authMW)
	adm.POST("", h.create)
	adm.PUT("/:id", h.update)
	adm.PATCH("/:id", h.update)
	adm.POST("/:id/publish", h.publish)
	adm.DELETE("/:id", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	articles, pag, err := h.svc.List(pagination.FromContext(c), middleware.IsAuthenticated(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Paged(c, articles, pag)
}

func (h *Handler) get(c *gin.Context) {
	a, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if a == nil || (!a.Published && !middleware.IsAuthenticated(c)) {
		response.NotFound(c)
		return
	}
	response.OK(c, a)
}

func (h *Handler) getBySlug(c *gin.Context) {
	a, err := h.svc.GetBySlug(c.Param("slug"), middleware.IsAuthenticated(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if a == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, a)
}

func (h *Handler) attachedMedia(c *gin.Context) {
	title, err := h.svc.AttachedMedia(c.Param("id"))
	if err != nil {
		if errors.Is(err, storeerr.ErrEmptyResult) {
			response.NotFoundMsg(c, "no media attached")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"title": title})
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateArticleDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	a, err := h.svc.Create(&dto)
	if err != nil {
		if storeerr.IsUniqueViolation(err) {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, a)
}

func (h *Handler) update(c *gin.Context) {
	var dto UpdateArticleDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	a, err := h.svc.Update(c.Param("id"), &dto)
	if err != nil {
		if storeerr.IsUniqueViolation(err) {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	if a == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, a)
}

func (h *Handler) publish(c *gin.Context) {
	a, err := h.svc.Publish(c.Param("id"))
	if err != nil {
		if storeerr.IsIncompletePublish(err) {
			response.UnprocessableEntity(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	if a == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, a)
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}
