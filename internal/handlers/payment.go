package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/indrad3v4/Vibratonic/internal/gateway"
	"github.com/indrad3v4/Vibratonic/internal/metrics"
	"github.com/indrad3v4/Vibratonic/internal/middleware"
	"github.com/indrad3v4/Vibratonic/internal/services"
	"github.com/indrad3v4/Vibratonic/internal/ws"
)

type PaymentHandler struct {
	paymentService *services.PaymentService
	mvpService     *services.MVPService
	hub            *ws.Hub
}

func NewPaymentHandler(paymentService *services.PaymentService, mvpService *services.MVPService, hub *ws.Hub) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService, mvpService: mvpService, hub: hub}
}

type CreatePaymentRequest struct {
	MVPID       string          `json:"mvp_id" binding:"required" example:"mvp001"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description"`
}

type RefundRequest struct {
	Amount *decimal.Decimal `json:"amount"`
}

// CreatePayment godoc
// @Summary      Start a funding payment for an MVP
// @Description  Computes the fee split and creates a gateway payment record
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreatePaymentRequest true "Funding intent"
// @Success      201 {object} models.Payment
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/payments [post]
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	user := middleware.CurrentUser(c)
	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	description := req.Description
	if description == "" {
		description = "MVP Funding"
	}

	payment, err := h.paymentService.CreatePayment(req.Amount, description, req.MVPID, user.ID)
	if err != nil {
		code := http.StatusBadRequest
		if errors.Is(err, services.ErrMVPNotFound) {
			code = http.StatusNotFound
		}
		c.JSON(code, ErrorResponse{Error: err.Error()})
		return
	}

	metrics.PaymentsCreated.Inc()
	c.JSON(http.StatusCreated, payment)
}

// GetPayment godoc
// @Summary      Payment status
// @Description  Status is recomputed from elapsed time on every read
// @Tags         payments
// @Produce      json
// @Success      200 {object} models.Payment
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/payments/{id} [get]
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	payment, err := h.paymentService.GetPaymentStatus(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, payment)
}

func (h *PaymentHandler) ListPaymentMethods(c *gin.Context) {
	c.JSON(http.StatusOK, h.paymentService.PaymentMethods())
}

func (h *PaymentHandler) CalculateFees(c *gin.Context) {
	amount, err := decimal.NewFromString(c.Query("amount"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid amount"})
		return
	}
	breakdown, err := h.paymentService.CalculateFees(amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, breakdown)
}

// Refund godoc
// @Summary      Refund a paid payment
// @Tags         payments
// @Security     BearerAuth
// @Success      201 {object} models.Refund
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/payments/{id}/refund [post]
func (h *PaymentHandler) Refund(c *gin.Context) {
	// Body is optional: no amount means a full refund.
	var req RefundRequest
	_ = c.ShouldBindJSON(&req)

	refund, err := h.paymentService.Refund(c.Param("id"), req.Amount)
	if err != nil {
		code := http.StatusBadRequest
		if errors.Is(err, gateway.ErrPaymentNotFound) {
			code = http.StatusNotFound
		}
		c.JSON(code, ErrorResponse{Error: err.Error()})
		return
	}

	metrics.RefundsCreated.Inc()
	c.JSON(http.StatusCreated, refund)
}

// HandleWebhook godoc
// @Summary      Settlement webhook
// @Description  Mollie-style webhook: posts the payment id, the backend re-reads the status and applies funding once
// @Tags         payments
// @Accept       x-www-form-urlencoded
// @Param        id formData string true "Payment ID"
// @Success      200 {object} MessageResponse
// @Router       /webhook/mollie [post]
func (h *PaymentHandler) HandleWebhook(c *gin.Context) {
	paymentID := c.PostForm("id")
	if paymentID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "id is required"})
		return
	}

	payment, applied, err := h.paymentService.HandleWebhook(paymentID)
	if err != nil {
		code := http.StatusBadRequest
		if errors.Is(err, gateway.ErrPaymentNotFound) {
			code = http.StatusNotFound
		}
		c.JSON(code, ErrorResponse{Error: err.Error()})
		return
	}

	if applied {
		metrics.FundingApplied.Inc()
		metrics.FundingVolume.Add(payment.Amount.InexactFloat64())

		mvp, err := h.mvpService.Get(payment.MVPID)
		if err == nil {
			update := gin.H{
				"mvp_id":             mvp.ID,
				"amount":             payment.Amount,
				"backer_id":          payment.BackerID,
				"current_funding":    mvp.CurrentFunding,
				"backers_count":      mvp.BackersCount,
				"funding_percentage": mvp.FundingPercentage(),
				"status":             mvp.Status,
			}
			h.hub.Broadcast(ws.MVPTopic(mvp.ID), ws.WSMessage{Type: "funding_received", Data: update})
			h.hub.Broadcast(ws.FeedTopic, ws.WSMessage{Type: "funding_received", Data: update})
		}
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "webhook processed"})
}
