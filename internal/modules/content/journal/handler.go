package journal

import (
	"github.com/gin-gonic/gin"
	"github.com/inkpress/core/internal/middleware"
	"github.com/inkpress/core/internal/pkg/pagination"
	"github.com/inkpress/core/internal/pkg/response"
	"github.com/inkpress/core/internal/pkg/storeerr"
)

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	j := rg.Group("/journals")
	j.GET("", h.list)
	j.GET("/slug/:slug", h.getBySlug)
	j.GET("/:id", h.get)

	a := j.Group("", authMW)
	a.POST("", h.create)
	a.PUT("/:id", h.update)
	a.PATCH("/:id", h.update)
	a.POST("/:id/publish", h.publish)
	a.DELETE("/:id", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	entries, pag, err := h.svc.List(pagination.FromContext(c), middleware.IsAuthenticated(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Paged(c, entries, pag)
}

func (h *Handler) get(c *gin.Context) {
	j, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if j == nil || (!j.Published && !middleware.IsAuthenticated(c)) {
		response.NotFound(c)
		return
	}
	response.OK(c, j)
}

func (h *Handler) getBySlug(c *gin.Context) {
	j, err := h.svc.GetBySlug(c.Param("slug"), middleware.IsAuthenticated(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if j == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, j)
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateJournalDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	j, err := h.svc.Create(&dto)
	if err != nil {
		if storeerr.IsUniqueViolation(err) {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, j)
}

func (h *Handler) update(c *gin.Context) {
	var dto UpdateJournalDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	j, err := h.svc.Update(c.Param("id"), &dto)
	if err != nil {
		if storeerr.IsUniqueViolation(err) {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	if j == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, j)
}

func (h *Handler) publish(c *gin.Context) {
	j, err := h.svc.Publish(c.Param("id"))
	if err != nil {
		if storeerr.IsIncompletePublish(err) {
			response.UnprocessableEntity(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	if j == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, j)
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}
