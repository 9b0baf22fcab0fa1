package gateway

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/indrad3v4/Vibratonic/internal/models"
)

// fixedClock lets tests move the simulator through the settlement windows.
type fixedClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fixedClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestSimulator() (*MollieSimulator, *fixedClock) {
	clock := &fixedClock{now: time.Date(2025, 8, 30, 12, 0, 0, 0, time.UTC)}
	sim := NewMollieSimulator("test_api_key")
	sim.now = clock.Now
	return sim, clock
}

func createTestPayment(t *testing.T, sim *MollieSimulator) *models.Payment {
	t.Helper()
	payment, err := sim.CreatePayment(CreatePaymentRequest{
		Amount:        decimal.NewFromInt(100),
		Description:   "MVP Funding",
		MVPID:         "mvp001",
		BackerID:      "inv001",
		PlatformFee:   decimal.NewFromInt(20),
		CreatorAmount: decimal.NewFromInt(80),
	})
	require.NoError(t, err)
	return payment
}

func TestCreatePayment(t *testing.T) {
	sim, clock := newTestSimulator()
	payment := createTestPayment(t, sim)

	assert.True(t, strings.HasPrefix(payment.ID, "tr_"))
	assert.Equal(t, models.PaymentStatusOpen, payment.Status)
	assert.Equal(t, "EUR", payment.Currency)
	assert.Contains(t, payment.CheckoutURL, payment.ID)
	assert.Equal(t, clock.Now().Add(15*time.Minute), payment.ExpiresAt)
	assert.Nil(t, payment.PaidAt)
}

func TestPaymentIDsDoNotCollide(t *testing.T) {
	sim, _ := newTestSimulator()
	first := createTestPayment(t, sim)
	second := createTestPayment(t, sim)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestStatusProgressionIsMonotonic(t *testing.T) {
	sim, clock := newTestSimulator()
	payment := createTestPayment(t, sim)

	got, err := sim.GetPayment(payment.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusOpen, got.Status)

	clock.Advance(90 * time.Second)
	got, err = sim.GetPayment(payment.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPending, got.Status)
	assert.Nil(t, got.PaidAt)

	clock.Advance(4 * time.Minute)
	got, err = sim.GetPayment(payment.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPaid, got.Status)
	require.NotNil(t, got.PaidAt)
}

func TestStatusIsIdempotentWithinWindow(t *testing.T) {
	sim, clock := newTestSimulator()
	payment := createTestPayment(t, sim)

	clock.Advance(2 * time.Minute)
	for i := 0; i < 5; i++ {
		got, err := sim.GetPayment(payment.ID)
		require.NoError(t, err)
		assert.Equal(t, models.PaymentStatusPending, got.Status)
	}
}

// A payment read six minutes after creation is paid; a read a minute later
// is still paid with the same paid timestamp.
func TestPaidTimestampRecordedOnce(t *testing.T) {
	sim, clock := newTestSimulator()
	payment := createTestPayment(t, sim)

	clock.Advance(6 * time.Minute)
	first, err := sim.GetPayment(payment.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPaid, first.Status)
	require.NotNil(t, first.PaidAt)

	clock.Advance(1 * time.Minute)
	second, err := sim.GetPayment(payment.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPaid, second.Status)
	require.NotNil(t, second.PaidAt)
	assert.True(t, first.PaidAt.Equal(*second.PaidAt))
}

func TestConcurrentReadsRecordPaidOnce(t *testing.T) {
	sim, clock := newTestSimulator()
	payment := createTestPayment(t, sim)
	clock.Advance(6 * time.Minute)

	var wg sync.WaitGroup
	results := make([]*models.Payment, 20)
	for i := 0; i < len(results); i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got, err := sim.GetPayment(payment.ID)
			assert.NoError(t, err)
			results[i] = got
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		require.NotNil(t, got.PaidAt)
		assert.True(t, results[0].PaidAt.Equal(*got.PaidAt))
	}
}

func TestGetPaymentNotFound(t *testing.T) {
	sim, _ := newTestSimulator()

	_, err := sim.GetPayment("tr_missing")
	assert.ErrorIs(t, err, ErrPaymentNotFound)
}

func TestRefund(t *testing.T) {
	sim, clock := newTestSimulator()
	payment := createTestPayment(t, sim)

	// Not yet paid: refund is a gateway failure.
	_, err := sim.Refund(payment.ID, nil)
	assert.ErrorIs(t, err, ErrNotRefundable)

	clock.Advance(6 * time.Minute)

	refund, err := sim.Refund(payment.ID, nil)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(refund.ID, "re_"))
	assert.Equal(t, payment.ID, refund.PaymentID)
	assert.True(t, refund.Amount.Equal(payment.Amount), "defaults to the full amount")

	partial := decimal.NewFromInt(25)
	refund, err = sim.Refund(payment.ID, &partial)
	require.NoError(t, err)
	assert.True(t, refund.Amount.Equal(partial))

	_, err = sim.Refund("tr_missing", nil)
	assert.ErrorIs(t, err, ErrPaymentNotFound)
}

func TestPaymentMethods(t *testing.T) {
	sim, _ := newTestSimulator()

	methods := sim.PaymentMethods()
	require.Len(t, methods, 4)
	assert.Equal(t, "ideal", methods[0].ID)
}
