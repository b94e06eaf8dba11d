package media

import (
	"github.com/gin-gonic/gin"
	"github.com/inkpress/core/internal/pkg/response"
	"github.com/inkpress/core/internal/pkg/storeerr"
)

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	m := rg.Group("/media")
	m.GET("", h.list)
	m.GET("/:id", h.get)

	a := m.Group("", authMW)
	a.POST("", h.create)
	a.PUT("/:id", h.update)
	a.PATCH("/:id", h.update)
	a.DELETE("/:id", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.svc.List()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, items)
}

func (h *Handler) get(c *gin.Context) {
	m, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if m == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, m)
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateMediaDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := ValidateLinks(dto.LinkedArticleID, dto.LinkedEntryID); err != nil {
		response.UnprocessableEntity(c, err.Error())
		return
	}
	m, err := h.svc.Create(&dto)
	if err != nil {
		if storeerr.IsUniqueViolation(err) {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, m)
}

func (h *Handler) update(c *gin.Context) {
	var dto UpdateMediaDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	// Validate against the state the record would end up in, not just the
	// fields present in this request.
	current, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if current == nil {
		response.NotFound(c)
		return
	}
	articleID := current.LinkedArticleID
	if dto.LinkedArticleID != nil {
		articleID = dto.LinkedArticleID
	}
	entryID := current.LinkedEntryID
	if dto.LinkedEntryID != nil {
		entryID = dto.LinkedEntryID
	}
	if err := ValidateLinks(articleID, entryID); err != nil {
		response.UnprocessableEntity(c, err.Error())
		return
	}

	m, err := h.svc.Update(c.Param("id"), &dto)
	if err != nil {
		if storeerr.IsUniqueViolation(err) {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	if m == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, m)
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}
