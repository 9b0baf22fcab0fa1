package gateway

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/indrad3v4/Vibratonic/internal/models"
)

// Settlement thresholds for the simulated lifecycle: a payment is considered
// pending one minute after creation and paid after five, with no real
// provider callback involved.
const (
	pendingAfter = 1 * time.Minute
	paidAfter    = 5 * time.Minute
	expiryWindow = 15 * time.Minute
)

// MollieSimulator mimics the Mollie payment API in memory. Status is a view
// computed from elapsed time on every read, so it only ever moves forward:
// open -> pending -> paid.
type MollieSimulator struct {
	apiKey string

	mu       sync.Mutex
	payments map[string]*models.Payment
	now      func() time.Time
}

func NewMollieSimulator(apiKey string) *MollieSimulator {
	return &MollieSimulator{
		apiKey:   apiKey,
		payments: make(map[string]*models.Payment),
		now:      time.Now,
	}
}

func (s *MollieSimulator) CreatePayment(req CreatePaymentRequest) (*models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	id := newPaymentID("tr", now)

	payment := &models.Payment{
		ID:            id,
		Amount:        req.Amount,
		Currency:      "EUR",
		Description:   req.Description,
		Status:        models.PaymentStatusOpen,
		CheckoutURL:   "https://www.mollie.com/checkout/select-method/" + id,
		MVPID:         req.MVPID,
		BackerID:      req.BackerID,
		PlatformFee:   req.PlatformFee,
		CreatorAmount: req.CreatorAmount,
		CreatedAt:     now,
		ExpiresAt:     now.Add(expiryWindow),
	}
	s.payments[id] = payment

	out := *payment
	return &out, nil
}

func (s *MollieSimulator) GetPayment(paymentID string) (*models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	payment, ok := s.payments[paymentID]
	if !ok {
		return nil, ErrPaymentNotFound
	}
	s.advance(payment)

	out := *payment
	return &out, nil
}

func (s *MollieSimulator) Refund(paymentID string, amount *decimal.Decimal) (*models.Refund, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	payment, ok := s.payments[paymentID]
	if !ok {
		return nil, ErrPaymentNotFound
	}
	s.advance(payment)
	if payment.Status != models.PaymentStatusPaid {
		return nil, ErrNotRefundable
	}

	refundAmount := payment.Amount
	if amount != nil {
		refundAmount = *amount
	}

	now := s.now()
	return &models.Refund{
		ID:        newPaymentID("re", now),
		PaymentID: paymentID,
		Amount:    refundAmount,
		Currency:  payment.Currency,
		Status:    "processing",
		CreatedAt: now,
	}, nil
}

func (s *MollieSimulator) PaymentMethods() []models.PaymentMethod {
	return []models.PaymentMethod{
		{ID: "ideal", Description: "iDEAL", ImageURL: "https://www.mollie.com/external/icons/payment-methods/ideal.png"},
		{ID: "creditcard", Description: "Credit card", ImageURL: "https://www.mollie.com/external/icons/payment-methods/creditcard.png"},
		{ID: "paypal", Description: "PayPal", ImageURL: "https://www.mollie.com/external/icons/payment-methods/paypal.png"},
		{ID: "banktransfer", Description: "Bank transfer", ImageURL: "https://www.mollie.com/external/icons/payment-methods/banktransfer.png"},
	}
}

// advance recomputes the simulated status from elapsed time. Must be called
// with the lock held. PaidAt is recorded once, on the first read that
// observes the paid threshold.
func (s *MollieSimulator) advance(payment *models.Payment) {
	elapsed := s.now().Sub(payment.CreatedAt)
	switch {
	case elapsed > paidAfter:
		if payment.Status != models.PaymentStatusPaid {
			payment.Status = models.PaymentStatusPaid
			paidAt := s.now()
			payment.PaidAt = &paidAt
		}
	case elapsed > pendingAfter:
		if payment.Status == models.PaymentStatusOpen {
			payment.Status = models.PaymentStatusPending
		}
	}
}

// newPaymentID keeps the Mollie-style timestamp prefix and adds a random
// suffix so two payments created in the same second cannot collide.
func newPaymentID(prefix string, now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%s_%s%s", prefix, now.Format("20060102150405"), suffix)
}
