package controller

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"kindalike-be/internal/dto"
	"kindalike-be/internal/pkg/serverutils"
	"kindalike-be/internal/service"
	"kindalike-be/pkg/search"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuthService struct {
	signupErr error
	loginErr  error
}

func (s *stubAuthService) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.TokenResponse, error) {
	if s.signupErr != nil {
		return nil, s.signupErr
	}
	return &dto.TokenResponse{AccessToken: "tok", TokenType: "bearer", User: dto.UserResponse{Id: 1, Username: req.Username}}, nil
}

func (s *stubAuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return &dto.TokenResponse{AccessToken: "tok", TokenType: "bearer", User: dto.UserResponse{Id: 1, Username: req.Username}}, nil
}

type stubPreferenceService struct {
	getErr error
}

func (s *stubPreferenceService) Save(ctx context.Context, userId uint, req *dto.PreferenceRequest) (*dto.PreferenceResponse, error) {
	return &dto.PreferenceResponse{Id: 1, UserId: userId, CuisineType: req.CuisineType}, nil
}

func (s *stubPreferenceService) Get(ctx context.Context, userId uint) (*dto.PreferenceResponse, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return &dto.PreferenceResponse{Id: 1, UserId: userId}, nil
}

type stubChatService struct {
	lastUserID   uint
	lastClientIP string
}

func (s *stubChatService) SendMessage(ctx context.Context, userId uint, req *dto.ChatMessageRequest, clientIP string) (*dto.ChatMessageResponse, error) {
	s.lastUserID = userId
	s.lastClientIP = clientIP
	return &dto.ChatMessageResponse{SessionId: 7, MessageId: 8, Response: "ok", Recommendations: []search.Listing{}}, nil
}

func (s *stubChatService) CreateSession(ctx context.Context, userId uint) (*dto.ChatSessionResponse, error) {
	return &dto.ChatSessionResponse{Id: 7, IsActive: true}, nil
}

func (s *stubChatService) GetSessions(ctx context.Context, userId uint) ([]*dto.ChatSessionResponse, error) {
	return []*dto.ChatSessionResponse{}, nil
}

func (s *stubChatService) GetSessionMessages(ctx context.Context, userId uint, sessionId uint) ([]*dto.ChatHistoryMessageResponse, error) {
	return []*dto.ChatHistoryMessageResponse{}, nil
}

func (s *stubChatService) DeactivateSession(ctx context.Context, userId uint, sessionId uint) error {
	return nil
}

func newTestApp(register func(r fiber.Router)) *fiber.App {
	app := fiber.New()
	register(app.Group("/api"))
	return app
}

func bearerFor(t *testing.T, userId uint) string {
	t.Helper()
	token, err := serverutils.CreateAccessToken(userId, "tester")
	require.NoError(t, err)
	return "Bearer " + token
}

func TestSignup_Returns201(t *testing.T) {
	app := newTestApp(NewAuthController(&stubAuthService{}).RegisterRoutes)

	req := httptest.NewRequest("POST", "/api/auth/signup", strings.NewReader(`{"username": "alice", "password": "pw"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func TestSignup_DuplicateReturns400(t *testing.T) {
	app := newTestApp(NewAuthController(&stubAuthService{signupErr: service.ErrUsernameTaken}).RegisterRoutes)

	req := httptest.NewRequest("POST", "/api/auth/signup", strings.NewReader(`{"username": "alice", "password": "pw"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestLogin_Returns200(t *testing.T) {
	app := newTestApp(NewAuthController(&stubAuthService{}).RegisterRoutes)

	req := httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(`{"username": "alice", "password": "pw"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestPreferenceSave_Returns201(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := newTestApp(NewPreferenceController(&stubPreferenceService{}).RegisterRoutes)

	req := httptest.NewRequest("POST", "/api/preferences/", strings.NewReader(`{"cuisine_type": "Italian"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearerFor(t, 1))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func TestPreferenceGet_NotFoundReturns404(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := newTestApp(NewPreferenceController(&stubPreferenceService{getErr: service.ErrPreferencesNotFound}).RegisterRoutes)

	req := httptest.NewRequest("GET", "/api/preferences/", nil)
	req.Header.Set("Authorization", bearerFor(t, 1))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestChatMessage_ForwardsClientIPAndUser(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	chat := &stubChatService{}
	app := newTestApp(NewChatController(chat).RegisterRoutes)

	req := httptest.NewRequest("POST", "/api/chat/message", strings.NewReader(`{"message": "italian"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearerFor(t, 42))
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, uint(42), chat.lastUserID)
	assert.Equal(t, "203.0.113.7", chat.lastClientIP)
}

func TestChatMessage_RequiresToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := newTestApp(NewChatController(&stubChatService{}).RegisterRoutes)

	req := httptest.NewRequest("POST", "/api/chat/message", strings.NewReader(`{"message": "italian"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
