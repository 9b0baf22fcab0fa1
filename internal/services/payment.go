package services

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/indrad3v4/Vibratonic/internal/gateway"
	"github.com/indrad3v4/Vibratonic/internal/models"
)

// PaymentService orchestrates the funding flow: fee split, gateway record,
// and on settlement the ledger mutation. Settlement is applied exactly once
// per payment no matter how many webhooks arrive.
type PaymentService struct {
	gateway gateway.PaymentGateway
	fees    *FeeCalculator
	mvps    *MVPService
	users   *UserService

	mu      sync.Mutex
	settled map[string]bool
}

func NewPaymentService(gw gateway.PaymentGateway, fees *FeeCalculator, mvps *MVPService, users *UserService) *PaymentService {
	return &PaymentService{
		gateway: gw,
		fees:    fees,
		mvps:    mvps,
		users:   users,
		settled: make(map[string]bool),
	}
}

func (s *PaymentService) CreatePayment(amount decimal.Decimal, description, mvpID, backerID string) (*models.Payment, error) {
	breakdown, err := s.fees.ComputeFees(amount)
	if err != nil {
		return nil, err
	}
	if _, err := s.mvps.Get(mvpID); err != nil {
		return nil, err
	}

	return s.gateway.CreatePayment(gateway.CreatePaymentRequest{
		Amount:        amount,
		Description:   description,
		MVPID:         mvpID,
		BackerID:      backerID,
		PlatformFee:   breakdown.PlatformFee,
		CreatorAmount: breakdown.CreatorAmount,
	})
}

func (s *PaymentService) GetPaymentStatus(paymentID string) (*models.Payment, error) {
	return s.gateway.GetPayment(paymentID)
}

func (s *PaymentService) CalculateFees(amount decimal.Decimal) (FeeBreakdown, error) {
	return s.fees.ComputeFees(amount)
}

func (s *PaymentService) PaymentMethods() []models.PaymentMethod {
	return s.gateway.PaymentMethods()
}

func (s *PaymentService) Refund(paymentID string, amount *decimal.Decimal) (*models.Refund, error) {
	return s.gateway.Refund(paymentID, amount)
}

// HandleWebhook re-reads the payment from the gateway and, on the first
// observed paid status, applies the funding to the ledger and the backer's
// aggregates. Returns whether this call applied the funding.
func (s *PaymentService) HandleWebhook(paymentID string) (*models.Payment, bool, error) {
	payment, err := s.gateway.GetPayment(paymentID)
	if err != nil {
		return nil, false, err
	}
	if payment.Status != models.PaymentStatusPaid {
		return payment, false, nil
	}

	s.mu.Lock()
	if s.settled[payment.ID] {
		s.mu.Unlock()
		return payment, false, nil
	}
	s.settled[payment.ID] = true
	s.mu.Unlock()

	applied, err := s.mvps.ApplyFunding(payment.MVPID, payment.Amount, payment.BackerID)
	if err != nil || !applied {
		// Leave the payment unsettled so a later webhook can retry.
		s.mu.Lock()
		delete(s.settled, payment.ID)
		s.mu.Unlock()
		return payment, false, err
	}

	s.users.RecordInvestment(payment.BackerID, payment.Amount)
	return payment, true, nil
}
