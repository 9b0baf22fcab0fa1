package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type UserRole string

const (
	RoleGuest       UserRole = "guest"
	RoleParticipant UserRole = "participant"
	RoleInvestor    UserRole = "investor"
	RoleOrganizer   UserRole = "organizer"
	RoleAdmin       UserRole = "admin"
)

type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusInactive  UserStatus = "inactive"
	UserStatusSuspended UserStatus = "suspended"
)

type UserProfile struct {
	ID                  string          `json:"id"`
	Username            string          `json:"username"`
	Email               string          `json:"email"`
	FullName            string          `json:"full_name"`
	Role                UserRole        `json:"role"`
	Status              UserStatus      `json:"status"`
	AvatarURL           string          `json:"avatar_url,omitempty"`
	Bio                 string          `json:"bio,omitempty"`
	Skills              []string        `json:"skills"`
	GithubUsername      string          `json:"github_username,omitempty"`
	LinkedinURL         string          `json:"linkedin_url,omitempty"`
	TotalInvestments    decimal.Decimal `json:"total_investments"`
	TotalFundedProjects int             `json:"total_funded_projects"`
	CreatedHackathons   int             `json:"created_hackathons"`
	JoinedHackathons    int             `json:"joined_hackathons"`
	CreatedMVPs         int             `json:"created_mvps"`
	RegistrationDate    time.Time       `json:"registration_date"`
}

func (u *UserProfile) CanCreateHackathon() bool {
	return u.Role == RoleParticipant || u.Role == RoleOrganizer || u.Role == RoleAdmin
}

func (u *UserProfile) CanInvest() bool {
	return u.Role == RoleInvestor || u.Role == RoleOrganizer || u.Role == RoleAdmin
}

func (u *UserProfile) CanAdmin() bool {
	return u.Role == RoleAdmin
}
