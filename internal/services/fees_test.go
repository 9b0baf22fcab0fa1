package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeFees(t *testing.T) {
	c := NewFeeCalculator()

	breakdown, err := c.ComputeFees(decimal.NewFromInt(100))
	require.NoError(t, err)

	assert.True(t, breakdown.PlatformFee.Equal(decimal.NewFromInt(20)), "platform fee: %s", breakdown.PlatformFee)
	assert.True(t, breakdown.CreatorAmount.Equal(decimal.NewFromInt(80)), "creator amount: %s", breakdown.CreatorAmount)
	assert.Equal(t, 20.0, breakdown.FeePercentage)
	assert.True(t, breakdown.PlatformFee.Add(breakdown.CreatorAmount).Equal(breakdown.Amount))
}

func TestComputeFeesFractionalAmount(t *testing.T) {
	c := NewFeeCalculator()

	breakdown, err := c.ComputeFees(decimal.RequireFromString("33.33"))
	require.NoError(t, err)
	assert.True(t, breakdown.PlatformFee.Add(breakdown.CreatorAmount).Equal(breakdown.Amount))
}

func TestComputeFeesRejectsNonPositive(t *testing.T) {
	c := NewFeeCalculator()

	_, err := c.ComputeFees(decimal.Zero)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = c.ComputeFees(decimal.NewFromInt(-100))
	assert.ErrorIs(t, err, ErrInvalidAmount)
}
