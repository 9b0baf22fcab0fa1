package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/indrad3v4/Vibratonic/internal/metrics"
	"github.com/indrad3v4/Vibratonic/internal/middleware"
	"github.com/indrad3v4/Vibratonic/internal/models"
	"github.com/indrad3v4/Vibratonic/internal/services"
	"github.com/indrad3v4/Vibratonic/internal/ws"
)

type HackathonHandler struct {
	hackathonService *services.HackathonService
	userService      *services.UserService
	hub              *ws.Hub
}

func NewHackathonHandler(hackathonService *services.HackathonService, userService *services.UserService, hub *ws.Hub) *HackathonHandler {
	return &HackathonHandler{hackathonService: hackathonService, userService: userService, hub: hub}
}

type CreateHackathonRequest struct {
	Title           string          `json:"title" binding:"required"`
	Description     string          `json:"description"`
	VenueName       string          `json:"venue_name"`
	VenueAddress    string          `json:"venue_address"`
	Latitude        float64         `json:"latitude"`
	Longitude       float64         `json:"longitude"`
	StartDatetime   time.Time       `json:"start_datetime"`
	EndDatetime     time.Time       `json:"end_datetime"`
	MaxParticipants int             `json:"max_participants"`
	Theme           string          `json:"theme"`
	PrizePool       decimal.Decimal `json:"prize_pool"`
	Tags            []string        `json:"tags"`
	Requirements    []string        `json:"requirements"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required" example:"open"`
}

type JoinResponse struct {
	Joined    bool              `json:"joined"`
	Hackathon *models.Hackathon `json:"hackathon"`
}

// CreateHackathon godoc
// @Summary      Create a hackathon
// @Tags         hackathons
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateHackathonRequest true "Hackathon data"
// @Success      201 {object} models.Hackathon
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/hackathons [post]
func (h *HackathonHandler) CreateHackathon(c *gin.Context) {
	user := middleware.CurrentUser(c)
	var req CreateHackathonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	hackathon, err := h.hackathonService.Create(services.CreateHackathonInput{
		Title:           req.Title,
		Description:     req.Description,
		VenueName:       req.VenueName,
		VenueAddress:    req.VenueAddress,
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
		StartDatetime:   req.StartDatetime,
		EndDatetime:     req.EndDatetime,
		MaxParticipants: req.MaxParticipants,
		Theme:           req.Theme,
		PrizePool:       req.PrizePool,
		Tags:            req.Tags,
		Requirements:    req.Requirements,
	}, user.ID)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	h.userService.RecordHackathonCreated(user.ID)
	c.JSON(http.StatusCreated, hackathon)
}

// ListHackathons godoc
// @Summary      List hackathons in creation order
// @Tags         hackathons
// @Produce      json
// @Param        status query string false "Filter: open"
// @Success      200 {array} models.Hackathon
// @Router       /api/v1/hackathons [get]
func (h *HackathonHandler) ListHackathons(c *gin.Context) {
	if c.Query("status") == string(models.HackathonStatusOpen) {
		c.JSON(http.StatusOK, h.hackathonService.ListOpen())
		return
	}
	c.JSON(http.StatusOK, h.hackathonService.List())
}

func (h *HackathonHandler) GetHackathon(c *gin.Context) {
	hackathon, err := h.hackathonService.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, hackathon)
}

// JoinHackathon godoc
// @Summary      Join an open hackathon
// @Description  Fails without mutation when the hackathon is full or not open
// @Tags         hackathons
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} JoinResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/hackathons/{id}/join [post]
func (h *HackathonHandler) JoinHackathon(c *gin.Context) {
	user := middleware.CurrentUser(c)
	id := c.Param("id")

	joined, err := h.hackathonService.Join(id, user)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	hackathon, _ := h.hackathonService.Get(id)
	if joined {
		h.userService.RecordHackathonJoined(user.ID)
		metrics.HackathonJoins.Inc()
		h.hub.Broadcast(ws.FeedTopic, ws.WSMessage{
			Type: "participant_joined",
			Data: gin.H{"hackathon_id": id, "user_id": user.ID},
		})
	}

	c.JSON(http.StatusOK, JoinResponse{Joined: joined, Hackathon: hackathon})
}

// UpdateStatus is the checked transition path for the normal lifecycle.
func (h *HackathonHandler) UpdateStatus(c *gin.Context) {
	h.setStatus(c, h.hackathonService.TransitionStatus)
}

// OverrideStatus is the unchecked admin path: any jump is allowed.
func (h *HackathonHandler) OverrideStatus(c *gin.Context) {
	h.setStatus(c, h.hackathonService.SetStatus)
}

func (h *HackathonHandler) setStatus(c *gin.Context, apply func(string, models.HackathonStatus) error) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	status, ok := models.ParseHackathonStatus(req.Status)
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unknown status"})
		return
	}

	id := c.Param("id")
	if err := apply(id, status); err != nil {
		code := http.StatusBadRequest
		if errors.Is(err, services.ErrHackathonNotFound) {
			code = http.StatusNotFound
		}
		c.JSON(code, ErrorResponse{Error: err.Error()})
		return
	}

	hackathon, _ := h.hackathonService.Get(id)
	h.hub.Broadcast(ws.FeedTopic, ws.WSMessage{
		Type: "hackathon_status_changed",
		Data: gin.H{"hackathon_id": id, "status": status},
	})
	c.JSON(http.StatusOK, hackathon)
}
