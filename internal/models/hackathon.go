package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type HackathonStatus string

const (
	HackathonStatusDraft      HackathonStatus = "draft"
	HackathonStatusOpen       HackathonStatus = "open"
	HackathonStatusInProgress HackathonStatus = "in_progress"
	HackathonStatusCompleted  HackathonStatus = "completed"
	HackathonStatusCancelled  HackathonStatus = "cancelled"
)

func ParseHackathonStatus(s string) (HackathonStatus, bool) {
	switch HackathonStatus(s) {
	case HackathonStatusDraft, HackathonStatusOpen, HackathonStatusInProgress,
		HackathonStatusCompleted, HackathonStatusCancelled:
		return HackathonStatus(s), true
	}
	return "", false
}

// CanTransitionTo reports whether the normal (non-admin) lifecycle allows the
// transition. Admin overrides bypass this check entirely.
func (s HackathonStatus) CanTransitionTo(next HackathonStatus) bool {
	switch s {
	case HackathonStatusDraft:
		return next == HackathonStatusOpen || next == HackathonStatusCancelled
	case HackathonStatusOpen:
		return next == HackathonStatusInProgress || next == HackathonStatusCancelled
	case HackathonStatusInProgress:
		return next == HackathonStatusCompleted || next == HackathonStatusCancelled
	}
	return false
}

type Venue struct {
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Capacity  int     `json:"capacity"`
}

type Hackathon struct {
	ID                  string          `json:"id"`
	Title               string          `json:"title"`
	Description         string          `json:"description"`
	Venue               Venue           `json:"venue"`
	StartDatetime       time.Time       `json:"start_datetime"`
	EndDatetime         time.Time       `json:"end_datetime"`
	MaxParticipants     int             `json:"max_participants"`
	CurrentParticipants int             `json:"current_participants"`
	Status              HackathonStatus `json:"status"`
	Theme               string          `json:"theme"`
	PrizePool           decimal.Decimal `json:"prize_pool"`
	OrganizerID         string          `json:"organizer_id"`
	Tags                []string        `json:"tags"`
	Requirements        []string        `json:"requirements"`
	CreatedAt           time.Time       `json:"created_at"`
}

func (h *Hackathon) IsFull() bool {
	return h.CurrentParticipants >= h.MaxParticipants
}

func (h *Hackathon) CanJoin() bool {
	return h.Status == HackathonStatusOpen && !h.IsFull()
}

func (h *Hackathon) ProgressPercentage() float64 {
	if h.MaxParticipants == 0 {
		return 0
	}
	return float64(h.CurrentParticipants) / float64(h.MaxParticipants) * 100
}
