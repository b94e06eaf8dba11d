// Package auth implements the minimal admin login the editor UI needs: a
// single bcrypt-hashed password held in config, exchanged for a JWT.
package auth

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/inkpress/core/internal/pkg/jwt"
	"github.com/inkpress/core/internal/pkg/response"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 14 * 24 * time.Hour

type LoginDTO struct {
	Password string `json:"password" binding:"required"`
}

type Handler struct {
	passwordHash string
}

func NewHandler(passwordHash string) *Handler {
	return &Handler{passwordHash: passwordHash}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	a := rg.Group("/auth")
	a.POST("/login", h.login)
}

func (h *Handler) login(c *gin.Context) {
	var dto LoginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if h.passwordHash == "" {
		response.BadRequest(c, "admin login is not configured")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(h.passwordHash), []byte(dto.Password)); err != nil {
		response.Unauthorized(c)
		return
	}

	token, err := jwt.Sign("admin", tokenTTL)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"token": token})
}
