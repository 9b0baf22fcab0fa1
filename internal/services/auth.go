package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/indrad3v4/Vibratonic/internal/models"
)

// AuthService issues demo identity tokens. There are no credentials: the
// platform runs with seeded profiles and a login simply picks one, which
// mirrors the reference demo's role switcher.
type AuthService struct {
	users     *UserService
	jwtSecret []byte
}

func NewAuthService(users *UserService, jwtSecret string) *AuthService {
	return &AuthService{users: users, jwtSecret: []byte(jwtSecret)}
}

func (s *AuthService) Login(userID string) (string, *models.UserProfile, error) {
	user, err := s.users.Get(userID)
	if err != nil {
		return "", nil, err
	}
	if user.Status != models.UserStatusActive {
		return "", nil, errors.New("user is not active")
	}

	token, err := s.GenerateToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) GenerateToken(user *models.UserProfile) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"role":    string(user.Role),
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// ValidateToken resolves the token to a current profile. The role is read
// from the registry, not the token, so a stale token cannot carry a role the
// user no longer holds.
func (s *AuthService) ValidateToken(tokenString string) (*models.UserProfile, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}
	userID, ok := claims["user_id"].(string)
	if !ok {
		return nil, errors.New("invalid user_id in token")
	}

	return s.users.Get(userID)
}
