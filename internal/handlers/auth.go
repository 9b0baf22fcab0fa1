package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/indrad3v4/Vibratonic/internal/middleware"
	"github.com/indrad3v4/Vibratonic/internal/services"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type LoginRequest struct {
	UserID string `json:"user_id" binding:"required" example:"user001"`
}

// Login godoc
// @Summary      Log in as a seeded demo identity
// @Description  Issues a JWT for one of the seeded demo profiles
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Demo user id"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	token, user, err := h.authService.Login(req.UserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

// Me godoc
// @Summary      Current identity
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} models.UserProfile
// @Router       /api/v1/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, middleware.CurrentUser(c))
}
