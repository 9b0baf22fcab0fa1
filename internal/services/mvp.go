package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/indrad3v4/Vibratonic/internal/models"
)

type CreateMVPInput struct {
	HackathonID  string
	Title        string
	Description  string
	TechStack    []string
	GithubURL    string
	DemoURL      string
	MediaFiles   []models.MediaFile
	FundingGoals []models.FundingGoal
}

// MVPService is the MVP registry and funding ledger. ApplyFunding is the one
// transactional operation: funding total, backer count and the funded
// transition are applied together under the lock or not at all.
type MVPService struct {
	mu    sync.RWMutex
	mvps  map[string]*models.MVP
	order []string
	seq   int
}

func NewMVPService() *MVPService {
	return &MVPService{mvps: make(map[string]*models.MVP)}
}

func (s *MVPService) Create(input CreateMVPInput, creatorID string) (*models.MVP, error) {
	if input.Title == "" {
		return nil, ErrTitleRequired
	}

	techStack := input.TechStack
	if techStack == nil {
		techStack = []string{}
	}
	mediaFiles := input.MediaFiles
	if mediaFiles == nil {
		mediaFiles = []models.MediaFile{}
	}
	fundingGoals := input.FundingGoals
	if fundingGoals == nil {
		fundingGoals = []models.FundingGoal{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	mvp := &models.MVP{
		ID:             fmt.Sprintf("mvp%03d", s.seq),
		HackathonID:    input.HackathonID,
		CreatorID:      creatorID,
		Title:          input.Title,
		Description:    input.Description,
		TechStack:      techStack,
		GithubURL:      input.GithubURL,
		DemoURL:        input.DemoURL,
		MediaFiles:     mediaFiles,
		FundingGoals:   fundingGoals,
		CurrentFunding: decimal.Zero,
		Status:         models.MVPStatusDraft,
		CreatedAt:      time.Now(),
	}
	s.insert(mvp)
	return copyMVP(mvp), nil
}

func (s *MVPService) List() []models.MVP {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.MVP, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.mvps[id])
	}
	return out
}

func (s *MVPService) ListByHackathon(hackathonID string) []models.MVP {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.MVP
	for _, id := range s.order {
		if mvp := s.mvps[id]; mvp.HackathonID == hackathonID {
			out = append(out, *mvp)
		}
	}
	return out
}

func (s *MVPService) ListFunded() []models.MVP {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.MVP
	for _, id := range s.order {
		if mvp := s.mvps[id]; mvp.Status == models.MVPStatusFunded {
			out = append(out, *mvp)
		}
	}
	return out
}

func (s *MVPService) Get(id string) (*models.MVP, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	mvp, ok := s.mvps[id]
	if !ok {
		return nil, ErrMVPNotFound
	}
	return copyMVP(mvp), nil
}

// Submit moves a draft MVP to submitted and stamps the submission time.
func (s *MVPService) Submit(id string) (*models.MVP, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	mvp, ok := s.mvps[id]
	if !ok {
		return nil, ErrMVPNotFound
	}
	if mvp.Status != models.MVPStatusDraft {
		return nil, ErrInvalidTransition
	}
	now := time.Now()
	mvp.Status = models.MVPStatusSubmitted
	mvp.SubmissionDatetime = &now
	return copyMVP(mvp), nil
}

// ApplyFunding atomically adds a funding event to the ledger. The backer
// count tracks funding events, not unique backers, and once funded an MVP
// stays eligible for further (over-)funding.
func (s *MVPService) ApplyFunding(id string, amount decimal.Decimal, backerID string) (bool, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return false, ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	mvp, ok := s.mvps[id]
	if !ok {
		return false, ErrMVPNotFound
	}
	if !mvp.Status.AcceptsFunding() {
		return false, nil
	}

	mvp.CurrentFunding = mvp.CurrentFunding.Add(amount)
	mvp.BackersCount++
	if mvp.CurrentFunding.GreaterThanOrEqual(mvp.TotalGoal()) {
		mvp.Status = models.MVPStatusFunded
	}
	return true, nil
}

func (s *MVPService) SetStatus(id string, status models.MVPStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	mvp, ok := s.mvps[id]
	if !ok {
		return ErrMVPNotFound
	}
	mvp.Status = status
	return nil
}

func (s *MVPService) TransitionStatus(id string, status models.MVPStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	mvp, ok := s.mvps[id]
	if !ok {
		return ErrMVPNotFound
	}
	if !mvp.Status.CanTransitionTo(status) {
		return ErrInvalidTransition
	}
	mvp.Status = status
	return nil
}

func (s *MVPService) insert(mvp *models.MVP) {
	s.mvps[mvp.ID] = mvp
	s.order = append(s.order, mvp.ID)
}

func copyMVP(m *models.MVP) *models.MVP {
	out := *m
	return &out
}
