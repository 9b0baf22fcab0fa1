package gateway

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/indrad3v4/Vibratonic/internal/models"
)

var (
	ErrPaymentNotFound = errors.New("payment not found")
	ErrNotRefundable   = errors.New("payment cannot be refunded")
)

type CreatePaymentRequest struct {
	Amount        decimal.Decimal
	Description   string
	MVPID         string
	BackerID      string
	PlatformFee   decimal.Decimal
	CreatorAmount decimal.Decimal
	RedirectURL   string
	WebhookURL    string
}

// PaymentGateway abstracts the settlement provider so the simulator can be
// swapped for a real Mollie client without touching the funding ledger.
type PaymentGateway interface {
	CreatePayment(req CreatePaymentRequest) (*models.Payment, error)
	GetPayment(paymentID string) (*models.Payment, error)
	Refund(paymentID string, amount *decimal.Decimal) (*models.Refund, error)
	PaymentMethods() []models.PaymentMethod
}
