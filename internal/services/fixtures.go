package services

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/indrad3v4/Vibratonic/internal/models"
)

// Seed loads the demo fixtures into the registries. The platform is
// memory-only, so this runs on every start.
func Seed(hackathons *HackathonService, mvps *MVPService, users *UserService) {
	seedUsers(users)
	seedHackathons(hackathons)
	seedMVPs(mvps)
}

func seedUsers(users *UserService) {
	users.Add(&models.UserProfile{
		ID:                  "user001",
		Username:            "demo_creator",
		Email:               "creator@vibratonic.app",
		FullName:            "Demo Creator",
		Role:                models.RoleParticipant,
		Status:              models.UserStatusActive,
		Bio:                 "Passionate hackathon creator and tech innovator building the future of collaborative development.",
		Skills:              []string{"Python", "React", "AI/ML", "Blockchain", "IoT", "Mobile Development"},
		GithubUsername:      "demo_creator",
		LinkedinURL:         "https://linkedin.com/in/democreator",
		TotalInvestments:    decimal.NewFromInt(2500),
		TotalFundedProjects: 3,
		CreatedHackathons:   2,
		JoinedHackathons:    5,
		CreatedMVPs:         4,
		RegistrationDate:    time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
	})
	users.Add(&models.UserProfile{
		ID:               "user002",
		Username:         "maya_builds",
		Email:            "maya@vibratonic.app",
		FullName:         "Maya Kowalska",
		Role:             models.RoleParticipant,
		Status:           models.UserStatusActive,
		Skills:           []string{"Solidity", "Web3.js", "React"},
		RegistrationDate: time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC),
	})
	users.Add(&models.UserProfile{
		ID:               "user003",
		Username:         "devraj",
		Email:            "devraj@vibratonic.app",
		FullName:         "Dev Raj",
		Role:             models.RoleParticipant,
		Status:           models.UserStatusActive,
		Skills:           []string{"Python", "IoT", "React Native"},
		RegistrationDate: time.Date(2025, 3, 21, 0, 0, 0, 0, time.UTC),
	})
	users.Add(&models.UserProfile{
		ID:                  "inv001",
		Username:            "demo_investor",
		Email:               "investor@vibratonic.app",
		FullName:            "Demo Investor",
		Role:                models.RoleInvestor,
		Status:              models.UserStatusActive,
		TotalInvestments:    decimal.NewFromInt(12500),
		TotalFundedProjects: 7,
		RegistrationDate:    time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
	})
	users.Add(&models.UserProfile{
		ID:                "org001",
		Username:          "demo_organizer",
		Email:             "organizer@vibratonic.app",
		FullName:          "Demo Organizer",
		Role:              models.RoleOrganizer,
		Status:            models.UserStatusActive,
		CreatedHackathons: 6,
		RegistrationDate:  time.Date(2024, 11, 2, 0, 0, 0, 0, time.UTC),
	})
	users.Add(&models.UserProfile{
		ID:               "admin001",
		Username:         "demo_admin",
		Email:            "admin@vibratonic.app",
		FullName:         "Demo Admin",
		Role:             models.RoleAdmin,
		Status:           models.UserStatusActive,
		RegistrationDate: time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC),
	})
}

func seedHackathons(s *HackathonService) {
	samples := []*models.Hackathon{
		{
			ID:          "hack001",
			Title:       "AI for Climate Change",
			Description: "Build AI solutions to combat climate change and create sustainable technologies.",
			Venue: models.Venue{
				Name: "TechHub Warsaw", Address: "Rondo ONZ 1, Warsaw",
				Latitude: 52.2297, Longitude: 21.0122, Capacity: 100,
			},
			StartDatetime:       time.Date(2025, 8, 15, 10, 0, 0, 0, time.UTC),
			EndDatetime:         time.Date(2025, 8, 17, 18, 0, 0, 0, time.UTC),
			MaxParticipants:     100,
			CurrentParticipants: 67,
			Status:              models.HackathonStatusOpen,
			Theme:               "Sustainability & AI",
			PrizePool:           decimal.NewFromInt(10000),
			OrganizerID:         "org001",
			Tags:                []string{"AI", "Climate", "Sustainability", "Machine Learning"},
			Requirements:        []string{"Python experience", "Basic ML knowledge"},
		},
		{
			ID:          "hack002",
			Title:       "FinTech Revolution",
			Description: "Create the next generation of financial technology solutions.",
			Venue: models.Venue{
				Name: "Innovation Center Krakow", Address: "Rynek Główny 1, Krakow",
				Latitude: 50.0647, Longitude: 19.9450, Capacity: 80,
			},
			StartDatetime:       time.Date(2025, 8, 22, 9, 0, 0, 0, time.UTC),
			EndDatetime:         time.Date(2025, 8, 24, 17, 0, 0, 0, time.UTC),
			MaxParticipants:     80,
			CurrentParticipants: 45,
			Status:              models.HackathonStatusOpen,
			Theme:               "Financial Technology",
			PrizePool:           decimal.NewFromInt(15000),
			OrganizerID:         "org002",
			Tags:                []string{"FinTech", "Blockchain", "Payment", "DeFi"},
			Requirements:        []string{"JavaScript/Python", "API development"},
		},
		{
			ID:          "hack003",
			Title:       "Health Tech Innovation",
			Description: "Develop healthcare solutions using cutting-edge technology.",
			Venue: models.Venue{
				Name: "Digital Campus Gdansk", Address: "Długi Targ 1, Gdansk",
				Latitude: 54.3520, Longitude: 18.6466, Capacity: 60,
			},
			StartDatetime:       time.Date(2025, 9, 5, 10, 0, 0, 0, time.UTC),
			EndDatetime:         time.Date(2025, 9, 7, 16, 0, 0, 0, time.UTC),
			MaxParticipants:     60,
			CurrentParticipants: 60,
			Status:              models.HackathonStatusInProgress,
			Theme:               "Healthcare Technology",
			PrizePool:           decimal.NewFromInt(8000),
			OrganizerID:         "org003",
			Tags:                []string{"HealthTech", "IoT", "Mobile", "Data Analytics"},
			Requirements:        []string{"Mobile development", "Data analysis"},
		},
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, h := range samples {
		h.CreatedAt = time.Now()
		s.insert(h)
	}
	s.seq = len(samples)
}

func seedMVPs(s *MVPService) {
	submitted1 := time.Date(2025, 8, 16, 14, 30, 0, 0, time.UTC)
	submitted2 := time.Date(2025, 8, 23, 16, 45, 0, 0, time.UTC)
	submitted3 := time.Date(2025, 9, 6, 11, 15, 0, 0, time.UTC)

	samples := []*models.MVP{
		{
			ID:          "mvp001",
			HackathonID: "hack001",
			CreatorID:   "user001",
			Title:       "EcoTrack AI",
			Description: "AI-powered carbon footprint tracking app that helps individuals and businesses monitor and reduce their environmental impact through smart recommendations.",
			TechStack:   []string{"Python", "TensorFlow", "React", "Node.js", "MongoDB"},
			GithubURL:   "https://github.com/creator/ecotrack-ai",
			DemoURL:     "https://ecotrack-demo.app",
			MediaFiles: []models.MediaFile{
				{URL: "https://via.placeholder.com/800x600/00FFE1/FFFFFF?text=EcoTrack+Demo", Type: "image", Title: "App Screenshot"},
				{URL: "https://via.placeholder.com/800x450/FF00A8/FFFFFF?text=Demo+Video", Type: "video", Title: "Demo Video"},
			},
			FundingGoals: []models.FundingGoal{
				{Tier: models.FundingTierBasic, Amount: decimal.NewFromInt(5000), Description: "MVP Development", Rewards: []string{"Early access", "Updates"}},
				{Tier: models.FundingTierPremium, Amount: decimal.NewFromInt(15000), Description: "Full App Launch", Rewards: []string{"Premium features", "Custom analytics"}},
				{Tier: models.FundingTierEnterprise, Amount: decimal.NewFromInt(50000), Description: "Enterprise Solution", Rewards: []string{"White-label", "API access", "Priority support"}},
			},
			CurrentFunding:     decimal.NewFromInt(8750),
			BackersCount:       23,
			Status:             models.MVPStatusSubmitted,
			SubmissionDatetime: &submitted1,
		},
		{
			ID:          "mvp002",
			HackathonID: "hack002",
			CreatorID:   "user002",
			Title:       "CryptoLend",
			Description: "Decentralized lending platform that connects borrowers and lenders using smart contracts, enabling transparent and secure peer-to-peer lending.",
			TechStack:   []string{"Solidity", "Web3.js", "React", "Node.js", "IPFS"},
			GithubURL:   "https://github.com/creator/cryptolend",
			DemoURL:     "https://cryptolend-demo.web3.app",
			MediaFiles: []models.MediaFile{
				{URL: "https://via.placeholder.com/800x600/FFD700/000000?text=CryptoLend+UI", Type: "image", Title: "Platform Interface"},
				{URL: "https://via.placeholder.com/800x450/00FFE1/000000?text=Smart+Contract", Type: "image", Title: "Smart Contract Flow"},
			},
			FundingGoals: []models.FundingGoal{
				{Tier: models.FundingTierBasic, Amount: decimal.NewFromInt(10000), Description: "Platform Beta", Rewards: []string{"Beta access", "Governance tokens"}},
				{Tier: models.FundingTierPremium, Amount: decimal.NewFromInt(25000), Description: "Full Launch", Rewards: []string{"Premium rates", "Advanced features"}},
				{Tier: models.FundingTierEnterprise, Amount: decimal.NewFromInt(75000), Description: "Enterprise Suite", Rewards: []string{"White-label", "Custom pools", "Dedicated support"}},
			},
			CurrentFunding:     decimal.NewFromInt(12500),
			BackersCount:       31,
			Status:             models.MVPStatusFunded,
			SubmissionDatetime: &submitted2,
		},
		{
			ID:          "mvp003",
			HackathonID: "hack003",
			CreatorID:   "user003",
			Title:       "HealthSync",
			Description: "IoT-based health monitoring system that syncs with wearable devices to provide real-time health insights and emergency alerts.",
			TechStack:   []string{"Python", "IoT", "React Native", "AWS", "TensorFlow"},
			GithubURL:   "https://github.com/creator/healthsync",
			DemoURL:     "https://healthsync-demo.app",
			MediaFiles: []models.MediaFile{
				{URL: "https://via.placeholder.com/800x600/FF00A8/FFFFFF?text=HealthSync+App", Type: "image", Title: "Mobile App"},
				{URL: "https://via.placeholder.com/800x450/00FFE1/FFFFFF?text=IoT+Dashboard", Type: "image", Title: "IoT Dashboard"},
			},
			FundingGoals: []models.FundingGoal{
				{Tier: models.FundingTierBasic, Amount: decimal.NewFromInt(7500), Description: "MVP Launch", Rewards: []string{"Early access", "Basic monitoring"}},
				{Tier: models.FundingTierPremium, Amount: decimal.NewFromInt(20000), Description: "Advanced Features", Rewards: []string{"AI insights", "Emergency alerts"}},
				{Tier: models.FundingTierEnterprise, Amount: decimal.NewFromInt(60000), Description: "Healthcare Integration", Rewards: []string{"EMR integration", "Compliance", "Multi-user"}},
			},
			CurrentFunding:     decimal.NewFromInt(15750),
			BackersCount:       42,
			Status:             models.MVPStatusFunded,
			SubmissionDatetime: &submitted3,
		},
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, mvp := range samples {
		mvp.CreatedAt = time.Now()
		s.insert(mvp)
	}
	s.seq = len(samples)
}
