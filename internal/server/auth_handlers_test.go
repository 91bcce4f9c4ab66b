package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ripple/internal/auth"
	"ripple/internal/config"
	"ripple/internal/models"
	"ripple/internal/repository"
	"ripple/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepository is a mock of the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByHandle(ctx context.Context, handle string) (*models.User, error) {
	args := m.Called(ctx, handle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockFollowRepository is a mock of the FollowRepository interface
type MockFollowRepository struct {
	mock.Mock
}

func (m *MockFollowRepository) IsFollowing(ctx context.Context, followerID, followeeID uint) (bool, error) {
	args := m.Called(ctx, followerID, followeeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFollowRepository) Follow(ctx context.Context, followerID, followeeID uint) error {
	args := m.Called(ctx, followerID, followeeID)
	return args.Error(0)
}

func (m *MockFollowRepository) Unfollow(ctx context.Context, followerID, followeeID uint) error {
	args := m.Called(ctx, followerID, followeeID)
	return args.Error(0)
}

func (m *MockFollowRepository) CountFollowers(ctx context.Context, userID uint) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFollowRepository) CountFollowing(ctx context.Context, userID uint) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

// newTestServer wires a Server over the given repository mocks.
func newTestServer(userRepo repository.UserRepository, followRepo repository.FollowRepository, postRepo repository.PostRepository, commentRepo repository.CommentRepository) *Server {
	cfg := &config.Config{JWTSecret: "test_secret"}
	s := &Server{
		config:      cfg,
		userRepo:    userRepo,
		followRepo:  followRepo,
		postRepo:    postRepo,
		commentRepo: commentRepo,
	}
	s.accountService = service.NewAccountService(userRepo, followRepo, auth.NewTokenIssuer(cfg.JWTSecret))
	s.postService = service.NewPostService(postRepo, commentRepo, userRepo)
	return s
}

// asUser registers a middleware that injects the user ID the auth middleware would set.
func asUser(app *fiber.App, userID uint) {
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("userID", userID)
		return c.Next()
	})
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestSignup(t *testing.T) {
	tests := []struct {
		name           string
		body           map[string]string
		mockSetup      func(userRepo *MockUserRepository)
		expectedStatus int
	}{
		{
			name: "Success",
			body: map[string]string{
				"userName": "testuser",
				"email":    "test@example.com",
				"password": "Password123!",
			},
			mockSetup: func(userRepo *MockUserRepository) {
				userRepo.On("GetByHandle", mock.Anything, "testuser").Return(nil, nil)
				userRepo.On("GetByEmail", mock.Anything, "test@example.com").Return(nil, nil)
				userRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "Duplicate Username",
			body: map[string]string{
				"userName": "taken",
				"email":    "new@example.com",
				"password": "Password123!",
			},
			mockSetup: func(userRepo *MockUserRepository) {
				userRepo.On("GetByHandle", mock.Anything, "taken").Return(&models.User{ID: 1}, nil)
				userRepo.On("GetByEmail", mock.Anything, "new@example.com").Return(nil, nil)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "Duplicate Email",
			body: map[string]string{
				"userName": "newuser",
				"email":    "exists@example.com",
				"password": "Password123!",
			},
			mockSetup: func(userRepo *MockUserRepository) {
				userRepo.On("GetByHandle", mock.Anything, "newuser").Return(nil, nil)
				userRepo.On("GetByEmail", mock.Anything, "exists@example.com").Return(&models.User{ID: 1}, nil)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "Invalid Email",
			body: map[string]string{
				"userName": "testuser",
				"email":    "not-an-email",
				"password": "Password123!",
			},
			mockSetup:      func(_ *MockUserRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Missing Fields",
			body: map[string]string{
				"userName": "testuser",
			},
			mockSetup:      func(_ *MockUserRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(MockUserRepository)
			tt.mockSetup(userRepo)

			s := newTestServer(userRepo, new(MockFollowRepository), nil, nil)
			app := fiber.New()
			app.Post("/api/account/signup", s.Signup)

			resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/account/signup", tt.body))
			assert.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}

func TestSignin(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("Password123!"), bcrypt.MinCost)
	alice := &models.User{ID: 3, Handle: "alice", Email: "alice@example.com", Password: string(hashed)}

	t.Run("Success by username", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("GetByHandle", mock.Anything, "alice").Return(alice, nil)

		s := newTestServer(userRepo, new(MockFollowRepository), nil, nil)
		app := fiber.New()
		app.Post("/api/account/signin", s.Signin)

		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/account/signin", map[string]string{
			"userName": "alice",
			"password": "Password123!",
		}))
		assert.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			Success bool   `json:"success"`
			Message string `json:"message"`
			Token   string `json:"token"`
		}
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.True(t, body.Success)
		assert.Equal(t, "Login successful", body.Message)
		assert.NotEmpty(t, body.Token)
	})

	t.Run("Unknown user", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("GetByHandle", mock.Anything, "ghost").Return(nil, nil)
		userRepo.On("GetByEmail", mock.Anything, "ghost").Return(nil, nil)

		s := newTestServer(userRepo, new(MockFollowRepository), nil, nil)
		app := fiber.New()
		app.Post("/api/account/signin", s.Signin)

		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/account/signin", map[string]string{
			"userName": "ghost",
			"password": "Password123!",
		}))
		assert.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("Wrong password", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("GetByHandle", mock.Anything, "alice").Return(alice, nil)

		s := newTestServer(userRepo, new(MockFollowRepository), nil, nil)
		app := fiber.New()
		app.Post("/api/account/signin", s.Signin)

		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/account/signin", map[string]string{
			"userName": "alice",
			"password": "wrong",
		}))
		assert.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
