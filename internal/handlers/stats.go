package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/indrad3v4/Vibratonic/internal/models"
	"github.com/indrad3v4/Vibratonic/internal/services"
)

type StatsHandler struct {
	hackathonService *services.HackathonService
	mvpService       *services.MVPService
	userService      *services.UserService
}

func NewStatsHandler(hackathonService *services.HackathonService, mvpService *services.MVPService, userService *services.UserService) *StatsHandler {
	return &StatsHandler{hackathonService: hackathonService, mvpService: mvpService, userService: userService}
}

type PlatformStats struct {
	TotalHackathons   int             `json:"total_hackathons"`
	TotalMVPs         int             `json:"total_mvps"`
	FundedMVPs        int             `json:"funded_mvps"`
	TotalParticipants int             `json:"total_participants"`
	TotalBackers      int             `json:"total_backers"`
	TotalFunding      decimal.Decimal `json:"total_funding"`
	PlatformRevenue   decimal.Decimal `json:"platform_revenue"`
	UsersByRole       map[string]int  `json:"users_by_role"`
}

// GetStats godoc
// @Summary      Platform-wide totals for the admin dashboard
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} PlatformStats
// @Router       /api/v1/admin/stats [get]
func (h *StatsHandler) GetStats(c *gin.Context) {
	hackathons := h.hackathonService.List()
	mvps := h.mvpService.List()

	stats := PlatformStats{
		TotalHackathons: len(hackathons),
		TotalMVPs:       len(mvps),
		TotalFunding:    decimal.Zero,
		UsersByRole:     make(map[string]int),
	}

	for _, hackathon := range hackathons {
		stats.TotalParticipants += hackathon.CurrentParticipants
	}
	for _, mvp := range mvps {
		stats.TotalFunding = stats.TotalFunding.Add(mvp.CurrentFunding)
		stats.TotalBackers += mvp.BackersCount
		if mvp.Status == models.MVPStatusFunded {
			stats.FundedMVPs++
		}
	}
	// The platform keeps 20% of everything funded.
	stats.PlatformRevenue = stats.TotalFunding.Mul(decimal.NewFromFloat(0.20))

	for _, user := range h.userService.List() {
		stats.UsersByRole[string(user.Role)]++
	}

	c.JSON(http.StatusOK, stats)
}
