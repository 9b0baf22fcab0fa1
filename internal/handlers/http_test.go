package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/indrad3v4/Vibratonic/internal/middleware"
	"github.com/indrad3v4/Vibratonic/internal/models"
	"github.com/indrad3v4/Vibratonic/internal/services"
	"github.com/indrad3v4/Vibratonic/internal/ws"
)

type testStack struct {
	router *gin.Engine
	auth   *services.AuthService
	users  *services.UserService
}

func newTestStack(t *testing.T) *testStack {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hub := ws.NewHub()
	hackathons := services.NewHackathonService()
	mvps := services.NewMVPService()
	users := services.NewUserService()
	services.Seed(hackathons, mvps, users)

	auth := services.NewAuthService(users, "test-secret")

	hackathonHandler := NewHackathonHandler(hackathons, users, hub)
	authHandler := NewAuthHandler(auth)

	r := gin.New()
	r.POST("/api/v1/auth/login", authHandler.Login)
	r.GET("/api/v1/hackathons", hackathonHandler.ListHackathons)
	authed := r.Group("/api/v1/hackathons")
	authed.Use(middleware.JWTAuth(auth))
	{
		authed.POST("", middleware.RequireRole((*models.UserProfile).CanCreateHackathon), hackathonHandler.CreateHackathon)
		authed.POST("/:id/join", hackathonHandler.JoinHackathon)
	}

	return &testStack{router: r, auth: auth, users: users}
}

func (s *testStack) token(t *testing.T, userID string) string {
	t.Helper()
	user, err := s.users.Get(userID)
	require.NoError(t, err)
	token, err := s.auth.GenerateToken(user)
	require.NoError(t, err)
	return token
}

func (s *testStack) do(method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func TestLoginIssuesToken(t *testing.T) {
	s := newTestStack(t)

	w := s.do(http.MethodPost, "/api/v1/auth/login", "", `{"user_id":"user001"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp, "token")
	assert.Contains(t, resp, "user")

	w = s.do(http.MethodPost, "/api/v1/auth/login", "", `{"user_id":"nobody"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateHackathonRequiresRole(t *testing.T) {
	s := newTestStack(t)
	body := `{"title":"API Hack","max_participants":30}`

	// No token at all.
	w := s.do(http.MethodPost, "/api/v1/hackathons", "", body)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Investors cannot create hackathons.
	w = s.do(http.MethodPost, "/api/v1/hackathons", s.token(t, "inv001"), body)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = s.do(http.MethodPost, "/api/v1/hackathons", s.token(t, "user001"), body)
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Hackathon
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "hack004", created.ID)
	assert.Equal(t, models.HackathonStatusDraft, created.Status)
}

func TestJoinFullHackathonOverHTTP(t *testing.T) {
	s := newTestStack(t)

	// hack003 is seeded at capacity.
	w := s.do(http.MethodPost, "/api/v1/hackathons/hack003/join", s.token(t, "user001"), "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp JoinResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Joined)
	assert.Equal(t, 60, resp.Hackathon.CurrentParticipants)

	// hack001 still has room.
	w = s.do(http.MethodPost, "/api/v1/hackathons/hack001/join", s.token(t, "user001"), "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Joined)
	assert.Equal(t, 68, resp.Hackathon.CurrentParticipants)

	w = s.do(http.MethodPost, "/api/v1/hackathons/hack999/join", s.token(t, "user001"), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
