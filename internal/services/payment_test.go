package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/indrad3v4/Vibratonic/internal/gateway"
	"github.com/indrad3v4/Vibratonic/internal/models"
)

// fakeGateway lets tests drive the settlement status directly instead of
// waiting for the simulator's clock.
type fakeGateway struct {
	payments map[string]*models.Payment
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{payments: make(map[string]*models.Payment)}
}

func (g *fakeGateway) CreatePayment(req gateway.CreatePaymentRequest) (*models.Payment, error) {
	now := time.Now()
	payment := &models.Payment{
		ID:            "tr_test001",
		Amount:        req.Amount,
		Currency:      "EUR",
		Description:   req.Description,
		Status:        models.PaymentStatusOpen,
		MVPID:         req.MVPID,
		BackerID:      req.BackerID,
		PlatformFee:   req.PlatformFee,
		CreatorAmount: req.CreatorAmount,
		CreatedAt:     now,
		ExpiresAt:     now.Add(15 * time.Minute),
	}
	g.payments[payment.ID] = payment
	out := *payment
	return &out, nil
}

func (g *fakeGateway) GetPayment(paymentID string) (*models.Payment, error) {
	payment, ok := g.payments[paymentID]
	if !ok {
		return nil, gateway.ErrPaymentNotFound
	}
	out := *payment
	return &out, nil
}

func (g *fakeGateway) Refund(paymentID string, amount *decimal.Decimal) (*models.Refund, error) {
	payment, ok := g.payments[paymentID]
	if !ok {
		return nil, gateway.ErrPaymentNotFound
	}
	if payment.Status != models.PaymentStatusPaid {
		return nil, gateway.ErrNotRefundable
	}
	refundAmount := payment.Amount
	if amount != nil {
		refundAmount = *amount
	}
	return &models.Refund{ID: "re_test001", PaymentID: paymentID, Amount: refundAmount, Currency: "EUR", Status: "processing", CreatedAt: time.Now()}, nil
}

func (g *fakeGateway) PaymentMethods() []models.PaymentMethod { return nil }

func (g *fakeGateway) markPaid(paymentID string) {
	payment := g.payments[paymentID]
	payment.Status = models.PaymentStatusPaid
	paidAt := time.Now()
	payment.PaidAt = &paidAt
}

func newPaymentFixture(t *testing.T) (*PaymentService, *fakeGateway, *MVPService, *UserService, *models.MVP) {
	t.Helper()
	gw := newFakeGateway()
	mvps := NewMVPService()
	users := NewUserService()
	users.Add(&models.UserProfile{ID: "inv001", Role: models.RoleInvestor, Status: models.UserStatusActive})

	mvp := newSubmittedMVP(t, mvps, []models.FundingGoal{
		{Tier: models.FundingTierBasic, Amount: decimal.NewFromInt(5000)},
	})

	svc := NewPaymentService(gw, NewFeeCalculator(), mvps, users)
	return svc, gw, mvps, users, mvp
}

func TestCreatePaymentComputesFeeSplit(t *testing.T) {
	svc, _, _, _, mvp := newPaymentFixture(t)

	payment, err := svc.CreatePayment(decimal.NewFromInt(100), "MVP Funding", mvp.ID, "inv001")
	require.NoError(t, err)

	assert.Equal(t, models.PaymentStatusOpen, payment.Status)
	assert.Equal(t, "EUR", payment.Currency)
	assert.True(t, payment.PlatformFee.Equal(decimal.NewFromInt(20)))
	assert.True(t, payment.CreatorAmount.Equal(decimal.NewFromInt(80)))
}

func TestCreatePaymentRejectsBadInput(t *testing.T) {
	svc, _, _, _, mvp := newPaymentFixture(t)

	_, err := svc.CreatePayment(decimal.Zero, "x", mvp.ID, "inv001")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = svc.CreatePayment(decimal.NewFromInt(100), "x", "mvp999", "inv001")
	assert.ErrorIs(t, err, ErrMVPNotFound)
}

func TestHandleWebhookAppliesFundingOnce(t *testing.T) {
	svc, gw, mvps, users, mvp := newPaymentFixture(t)

	payment, err := svc.CreatePayment(decimal.NewFromInt(250), "x", mvp.ID, "inv001")
	require.NoError(t, err)

	// Payment still open: webhook is a no-op.
	_, applied, err := svc.HandleWebhook(payment.ID)
	require.NoError(t, err)
	assert.False(t, applied)

	gw.markPaid(payment.ID)

	_, applied, err = svc.HandleWebhook(payment.ID)
	require.NoError(t, err)
	assert.True(t, applied)

	// Duplicate webhook delivery must not double-apply.
	_, applied, err = svc.HandleWebhook(payment.ID)
	require.NoError(t, err)
	assert.False(t, applied)

	got, err := mvps.Get(mvp.ID)
	require.NoError(t, err)
	assert.True(t, got.CurrentFunding.Equal(decimal.NewFromInt(250)))
	assert.Equal(t, 1, got.BackersCount)

	backer, err := users.Get("inv001")
	require.NoError(t, err)
	assert.True(t, backer.TotalInvestments.Equal(decimal.NewFromInt(250)))
	assert.Equal(t, 1, backer.TotalFundedProjects)
}

func TestHandleWebhookUnknownPayment(t *testing.T) {
	svc, _, _, _, _ := newPaymentFixture(t)

	_, _, err := svc.HandleWebhook("tr_missing")
	assert.ErrorIs(t, err, gateway.ErrPaymentNotFound)
}

func TestRefundRequiresPaidPayment(t *testing.T) {
	svc, gw, _, _, mvp := newPaymentFixture(t)

	payment, err := svc.CreatePayment(decimal.NewFromInt(100), "x", mvp.ID, "inv001")
	require.NoError(t, err)

	_, err = svc.Refund(payment.ID, nil)
	assert.ErrorIs(t, err, gateway.ErrNotRefundable)

	gw.markPaid(payment.ID)

	refund, err := svc.Refund(payment.ID, nil)
	require.NoError(t, err)
	assert.True(t, refund.Amount.Equal(decimal.NewFromInt(100)))
}
