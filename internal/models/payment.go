package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusOpen    PaymentStatus = "open"
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
)

type Payment struct {
	ID            string          `json:"id"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	Description   string          `json:"description"`
	Status        PaymentStatus   `json:"status"`
	CheckoutURL   string          `json:"checkout_url"`
	MVPID         string          `json:"mvp_id"`
	BackerID      string          `json:"backer_id"`
	PlatformFee   decimal.Decimal `json:"platform_fee"`
	CreatorAmount decimal.Decimal `json:"creator_amount"`
	CreatedAt     time.Time       `json:"created_at"`
	ExpiresAt     time.Time       `json:"expires_at"`
	PaidAt        *time.Time      `json:"paid_at,omitempty"`
}

type Refund struct {
	ID        string          `json:"id"`
	PaymentID string          `json:"payment_id"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
}

type PaymentMethod struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}
