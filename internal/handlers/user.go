package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/indrad3v4/Vibratonic/internal/services"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	c.JSON(http.StatusOK, h.userService.List())
}

func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userService.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, user)
}
