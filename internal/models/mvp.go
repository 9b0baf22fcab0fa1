package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type MVPStatus string

const (
	MVPStatusDraft     MVPStatus = "draft"
	MVPStatusSubmitted MVPStatus = "submitted"
	MVPStatusFunded    MVPStatus = "funded"
	MVPStatusCompleted MVPStatus = "completed"
)

func ParseMVPStatus(s string) (MVPStatus, bool) {
	switch MVPStatus(s) {
	case MVPStatusDraft, MVPStatusSubmitted, MVPStatusFunded, MVPStatusCompleted:
		return MVPStatus(s), true
	}
	return "", false
}

func (s MVPStatus) CanTransitionTo(next MVPStatus) bool {
	switch s {
	case MVPStatusDraft:
		return next == MVPStatusSubmitted
	case MVPStatusSubmitted:
		return next == MVPStatusFunded
	case MVPStatusFunded:
		return next == MVPStatusCompleted
	}
	return false
}

// AcceptsFunding reports whether the ledger may apply funding in this status.
func (s MVPStatus) AcceptsFunding() bool {
	return s == MVPStatusSubmitted || s == MVPStatusFunded
}

type FundingTier string

const (
	FundingTierBasic      FundingTier = "basic"
	FundingTierPremium    FundingTier = "premium"
	FundingTierEnterprise FundingTier = "enterprise"
)

type MediaFile struct {
	URL         string `json:"url"`
	Type        string `json:"type"` // image, video, demo
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

type FundingGoal struct {
	Tier        FundingTier     `json:"tier"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Rewards     []string        `json:"rewards"`
}

type MVP struct {
	ID                 string          `json:"id"`
	HackathonID        string          `json:"hackathon_id"`
	CreatorID          string          `json:"creator_id"`
	Title              string          `json:"title"`
	Description        string          `json:"description"`
	TechStack          []string        `json:"tech_stack"`
	GithubURL          string          `json:"github_url,omitempty"`
	DemoURL            string          `json:"demo_url,omitempty"`
	MediaFiles         []MediaFile     `json:"media_files"`
	FundingGoals       []FundingGoal   `json:"funding_goals"`
	CurrentFunding     decimal.Decimal `json:"current_funding"`
	BackersCount       int             `json:"backers_count"`
	Status             MVPStatus       `json:"status"`
	SubmissionDatetime *time.Time      `json:"submission_datetime,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
}

func (m *MVP) TotalGoal() decimal.Decimal {
	total := decimal.Zero
	for _, goal := range m.FundingGoals {
		total = total.Add(goal.Amount)
	}
	return total
}

// FundingPercentage is capped at 100 and is 0 when no goals are defined.
func (m *MVP) FundingPercentage() float64 {
	total := m.TotalGoal()
	if total.IsZero() {
		return 0
	}
	pct := m.CurrentFunding.Div(total).Mul(decimal.NewFromInt(100))
	if pct.GreaterThan(decimal.NewFromInt(100)) {
		return 100
	}
	return pct.InexactFloat64()
}
