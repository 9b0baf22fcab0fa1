package services

import "github.com/shopspring/decimal"

// The platform keeps a flat 20% of every funding payment.
var platformFeeRate = decimal.NewFromFloat(0.20)

type FeeBreakdown struct {
	Amount        decimal.Decimal `json:"amount"`
	PlatformFee   decimal.Decimal `json:"platform_fee"`
	CreatorAmount decimal.Decimal `json:"creator_amount"`
	FeePercentage float64         `json:"fee_percentage"`
}

type FeeCalculator struct{}

func NewFeeCalculator() *FeeCalculator {
	return &FeeCalculator{}
}

func (c *FeeCalculator) ComputeFees(amount decimal.Decimal) (FeeBreakdown, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return FeeBreakdown{}, ErrInvalidAmount
	}

	platformFee := amount.Mul(platformFeeRate)
	return FeeBreakdown{
		Amount:        amount,
		PlatformFee:   platformFee,
		CreatorAmount: amount.Sub(platformFee),
		FeePercentage: 20,
	}, nil
}
