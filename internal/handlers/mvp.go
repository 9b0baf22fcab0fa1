package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/indrad3v4/Vibratonic/internal/middleware"
	"github.com/indrad3v4/Vibratonic/internal/models"
	"github.com/indrad3v4/Vibratonic/internal/services"
	"github.com/indrad3v4/Vibratonic/internal/ws"
)

type MVPHandler struct {
	mvpService  *services.MVPService
	userService *services.UserService
	hub         *ws.Hub
}

func NewMVPHandler(mvpService *services.MVPService, userService *services.UserService, hub *ws.Hub) *MVPHandler {
	return &MVPHandler{mvpService: mvpService, userService: userService, hub: hub}
}

type FundingGoalRequest struct {
	Tier        string          `json:"tier" binding:"required" example:"basic"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description"`
	Rewards     []string        `json:"rewards"`
}

type CreateMVPRequest struct {
	HackathonID  string               `json:"hackathon_id" binding:"required"`
	Title        string               `json:"title" binding:"required"`
	Description  string               `json:"description"`
	TechStack    []string             `json:"tech_stack"`
	GithubURL    string               `json:"github_url"`
	DemoURL      string               `json:"demo_url"`
	FundingGoals []FundingGoalRequest `json:"funding_goals"`
}

// CreateMVP godoc
// @Summary      Create an MVP in draft status
// @Tags         mvps
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateMVPRequest true "MVP data"
// @Success      201 {object} models.MVP
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/mvps [post]
func (h *MVPHandler) CreateMVP(c *gin.Context) {
	user := middleware.CurrentUser(c)
	var req CreateMVPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	goals := make([]models.FundingGoal, 0, len(req.FundingGoals))
	for _, g := range req.FundingGoals {
		goals = append(goals, models.FundingGoal{
			Tier:        models.FundingTier(g.Tier),
			Amount:      g.Amount,
			Description: g.Description,
			Rewards:     g.Rewards,
		})
	}

	mvp, err := h.mvpService.Create(services.CreateMVPInput{
		HackathonID:  req.HackathonID,
		Title:        req.Title,
		Description:  req.Description,
		TechStack:    req.TechStack,
		GithubURL:    req.GithubURL,
		DemoURL:      req.DemoURL,
		FundingGoals: goals,
	}, user.ID)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	h.userService.RecordMVPCreated(user.ID)
	c.JSON(http.StatusCreated, mvp)
}

// ListMVPs godoc
// @Summary      List MVPs in creation order
// @Tags         mvps
// @Produce      json
// @Param        funded query bool false "Only funded MVPs"
// @Success      200 {array} models.MVP
// @Router       /api/v1/mvps [get]
func (h *MVPHandler) ListMVPs(c *gin.Context) {
	if c.Query("funded") == "true" {
		c.JSON(http.StatusOK, h.mvpService.ListFunded())
		return
	}
	c.JSON(http.StatusOK, h.mvpService.List())
}

func (h *MVPHandler) ListByHackathon(c *gin.Context) {
	c.JSON(http.StatusOK, h.mvpService.ListByHackathon(c.Param("id")))
}

func (h *MVPHandler) GetMVP(c *gin.Context) {
	mvp, err := h.mvpService.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"mvp": mvp, "funding_percentage": mvp.FundingPercentage()})
}

// SubmitMVP moves a draft MVP into the showcase, making it fundable.
func (h *MVPHandler) SubmitMVP(c *gin.Context) {
	mvp, err := h.mvpService.Submit(c.Param("id"))
	if err != nil {
		code := http.StatusBadRequest
		if errors.Is(err, services.ErrMVPNotFound) {
			code = http.StatusNotFound
		}
		c.JSON(code, ErrorResponse{Error: err.Error()})
		return
	}

	h.hub.Broadcast(ws.FeedTopic, ws.WSMessage{
		Type: "mvp_submitted",
		Data: gin.H{"mvp_id": mvp.ID, "title": mvp.Title},
	})
	c.JSON(http.StatusOK, mvp)
}

func (h *MVPHandler) UpdateStatus(c *gin.Context) {
	h.setStatus(c, h.mvpService.TransitionStatus)
}

func (h *MVPHandler) OverrideStatus(c *gin.Context) {
	h.setStatus(c, h.mvpService.SetStatus)
}

func (h *MVPHandler) setStatus(c *gin.Context, apply func(string, models.MVPStatus) error) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	status, ok := models.ParseMVPStatus(req.Status)
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unknown status"})
		return
	}

	id := c.Param("id")
	if err := apply(id, status); err != nil {
		code := http.StatusBadRequest
		if errors.Is(err, services.ErrMVPNotFound) {
			code = http.StatusNotFound
		}
		c.JSON(code, ErrorResponse{Error: err.Error()})
		return
	}

	mvp, _ := h.mvpService.Get(id)
	c.JSON(http.StatusOK, mvp)
}
