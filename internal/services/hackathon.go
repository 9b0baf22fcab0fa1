package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/indrad3v4/Vibratonic/internal/models"
)

const defaultVenueCapacity = 50

type CreateHackathonInput struct {
	Title           string
	Description     string
	VenueName       string
	VenueAddress    string
	Latitude        float64
	Longitude       float64
	StartDatetime   time.Time
	EndDatetime     time.Time
	MaxParticipants int
	Theme           string
	PrizePool       decimal.Decimal
	Tags            []string
	Requirements    []string
}

// HackathonService is the in-memory hackathon registry. One lock guards the
// map, the insertion order and the id counter; Join is a single critical
// section so concurrent joins can never overshoot capacity.
type HackathonService struct {
	mu         sync.RWMutex
	hackathons map[string]*models.Hackathon
	order      []string
	seq        int
}

func NewHackathonService() *HackathonService {
	return &HackathonService{hackathons: make(map[string]*models.Hackathon)}
}

func (s *HackathonService) Create(input CreateHackathonInput, organizerID string) (*models.Hackathon, error) {
	if input.Title == "" {
		return nil, ErrTitleRequired
	}

	maxParticipants := input.MaxParticipants
	if maxParticipants <= 0 {
		maxParticipants = defaultVenueCapacity
	}
	capacity := input.MaxParticipants
	if capacity <= 0 {
		capacity = defaultVenueCapacity
	}
	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}
	requirements := input.Requirements
	if requirements == nil {
		requirements = []string{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	hackathon := &models.Hackathon{
		ID:          fmt.Sprintf("hack%03d", s.seq),
		Title:       input.Title,
		Description: input.Description,
		Venue: models.Venue{
			Name:      input.VenueName,
			Address:   input.VenueAddress,
			Latitude:  input.Latitude,
			Longitude: input.Longitude,
			Capacity:  capacity,
		},
		StartDatetime:   input.StartDatetime,
		EndDatetime:     input.EndDatetime,
		MaxParticipants: maxParticipants,
		Status:          models.HackathonStatusDraft,
		Theme:           input.Theme,
		PrizePool:       input.PrizePool,
		OrganizerID:     organizerID,
		Tags:            tags,
		Requirements:    requirements,
		CreatedAt:       time.Now(),
	}
	s.insert(hackathon)
	return copyHackathon(hackathon), nil
}

// List returns all hackathons in creation order.
func (s *HackathonService) List() []models.Hackathon {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Hackathon, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.hackathons[id])
	}
	return out
}

func (s *HackathonService) ListOpen() []models.Hackathon {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Hackathon
	for _, id := range s.order {
		if h := s.hackathons[id]; h.Status == models.HackathonStatusOpen {
			out = append(out, *h)
		}
	}
	return out
}

func (s *HackathonService) Get(id string) (*models.Hackathon, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	hackathon, ok := s.hackathons[id]
	if !ok {
		return nil, ErrHackathonNotFound
	}
	return copyHackathon(hackathon), nil
}

// Join increments the participant count if the hackathon is open and not
// full. A false result is a normal business outcome, not an error.
func (s *HackathonService) Join(id string, user *models.UserProfile) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	hackathon, ok := s.hackathons[id]
	if !ok {
		return false, ErrHackathonNotFound
	}
	if !hackathon.CanJoin() {
		return false, nil
	}
	hackathon.CurrentParticipants++
	return true, nil
}

// SetStatus is the unchecked admin override: any jump is allowed.
func (s *HackathonService) SetStatus(id string, status models.HackathonStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	hackathon, ok := s.hackathons[id]
	if !ok {
		return ErrHackathonNotFound
	}
	hackathon.Status = status
	return nil
}

// TransitionStatus enforces the normal lifecycle graph.
func (s *HackathonService) TransitionStatus(id string, status models.HackathonStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	hackathon, ok := s.hackathons[id]
	if !ok {
		return ErrHackathonNotFound
	}
	if !hackathon.Status.CanTransitionTo(status) {
		return ErrInvalidTransition
	}
	hackathon.Status = status
	return nil
}

// insert registers a hackathon with an already-assigned id. Caller holds the lock.
func (s *HackathonService) insert(hackathon *models.Hackathon) {
	s.hackathons[hackathon.ID] = hackathon
	s.order = append(s.order, hackathon.ID)
}

func copyHackathon(h *models.Hackathon) *models.Hackathon {
	out := *h
	return &out
}
