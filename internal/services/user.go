package services

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/indrad3v4/Vibratonic/internal/models"
)

// UserService holds the demo identities. Role lives on the profile and is
// read per request from the token's subject, never from a process global.
type UserService struct {
	mu    sync.RWMutex
	users map[string]*models.UserProfile
	order []string
}

func NewUserService() *UserService {
	return &UserService{users: make(map[string]*models.UserProfile)}
}

func (s *UserService) Add(user *models.UserProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[user.ID]; !exists {
		s.order = append(s.order, user.ID)
	}
	s.users[user.ID] = user
}

func (s *UserService) Get(id string) (*models.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	out := *user
	return &out, nil
}

func (s *UserService) List() []models.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.UserProfile, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.users[id])
	}
	return out
}

// RecordInvestment bumps the backer's aggregates after a settled payment.
func (s *UserService) RecordInvestment(userID string, amount decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user, ok := s.users[userID]; ok {
		user.TotalInvestments = user.TotalInvestments.Add(amount)
		user.TotalFundedProjects++
	}
}

func (s *UserService) RecordHackathonCreated(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user, ok := s.users[userID]; ok {
		user.CreatedHackathons++
	}
}

func (s *UserService) RecordHackathonJoined(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user, ok := s.users[userID]; ok {
		user.JoinedHackathons++
	}
}

func (s *UserService) RecordMVPCreated(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user, ok := s.users[userID]; ok {
		user.CreatedMVPs++
	}
}
