package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ripple/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockPostRepository is a mock of the PostRepository interface
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostRepository) GetDetails(ctx context.Context, id uint) (*models.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostRepository) GetByUserID(ctx context.Context, userID uint) ([]*models.Post, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Post), args.Error(1)
}

func (m *MockPostRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPostRepository) IsLiked(ctx context.Context, userID, postID uint) (bool, error) {
	args := m.Called(ctx, userID, postID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPostRepository) Like(ctx context.Context, userID, postID uint) error {
	args := m.Called(ctx, userID, postID)
	return args.Error(0)
}

func (m *MockPostRepository) Unlike(ctx context.Context, userID, postID uint) error {
	args := m.Called(ctx, userID, postID)
	return args.Error(0)
}

// MockCommentRepository is a mock of the CommentRepository interface
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentRepository) GetByPostID(ctx context.Context, postID uint) ([]*models.Comment, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Comment), args.Error(1)
}

// actorRepo returns a user repository mock that resolves account 1.
func actorRepo() *MockUserRepository {
	userRepo := new(MockUserRepository)
	userRepo.On("GetByID", mock.Anything, uint(1)).Return(&models.User{ID: 1, Handle: "alice"}, nil)
	return userRepo
}

func TestCreatePost(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("GetByID", mock.Anything, uint(1)).Return(&models.User{ID: 1, Handle: "alice"}, nil)
		postRepo := new(MockPostRepository)
		postRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

		s := newTestServer(userRepo, new(MockFollowRepository), postRepo, new(MockCommentRepository))
		app := fiber.New()
		asUser(app, 1)
		app.Post("/api/post", s.CreatePost)

		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/post", map[string]string{
			"title":       "First",
			"description": "hello world",
		}))
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("Missing title", func(t *testing.T) {
		s := newTestServer(new(MockUserRepository), new(MockFollowRepository), new(MockPostRepository), new(MockCommentRepository))
		app := fiber.New()
		asUser(app, 1)
		app.Post("/api/post", s.CreatePost)

		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/post", map[string]string{
			"description": "hello world",
		}))
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestGetPostDetails(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		postRepo := new(MockPostRepository)
		postRepo.On("GetDetails", mock.Anything, uint(5)).Return(&models.Post{
			ID:     5,
			Title:  "First",
			UserID: 1,
			User:   models.User{ID: 1, Handle: "alice"},
		}, nil)

		s := newTestServer(new(MockUserRepository), new(MockFollowRepository), postRepo, new(MockCommentRepository))
		app := fiber.New()
		asUser(app, 1)
		app.Get("/api/posts/:id", s.GetPostDetails)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/posts/5", nil))
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			ID     uint `json:"id"`
			Author *struct {
				UserName string `json:"userName"`
			} `json:"author"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, uint(5), body.ID)
		require.NotNil(t, body.Author)
		assert.Equal(t, "alice", body.Author.UserName)
	})

	t.Run("Not found", func(t *testing.T) {
		postRepo := new(MockPostRepository)
		postRepo.On("GetDetails", mock.Anything, uint(42)).Return(nil, models.NewNotFoundError("Post not found/No details found"))

		s := newTestServer(new(MockUserRepository), new(MockFollowRepository), postRepo, new(MockCommentRepository))
		app := fiber.New()
		asUser(app, 1)
		app.Get("/api/posts/:id", s.GetPostDetails)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/posts/42", nil))
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestGetAllPosts(t *testing.T) {
	t.Run("Empty result is an empty array", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("GetByID", mock.Anything, uint(1)).Return(&models.User{ID: 1, Handle: "alice"}, nil)
		postRepo := new(MockPostRepository)
		postRepo.On("GetByUserID", mock.Anything, uint(1)).Return([]*models.Post{}, nil)

		s := newTestServer(userRepo, new(MockFollowRepository), postRepo, new(MockCommentRepository))
		app := fiber.New()
		asUser(app, 1)
		app.Get("/api/all-posts", s.GetAllPosts)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/all-posts", nil))
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body []any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Empty(t, body)
	})
}

func TestDeletePost(t *testing.T) {
	t.Run("Owner deletes", func(t *testing.T) {
		postRepo := new(MockPostRepository)
		postRepo.On("GetByID", mock.Anything, uint(5)).Return(&models.Post{ID: 5, UserID: 1}, nil)
		postRepo.On("Delete", mock.Anything, uint(5)).Return(nil)

		s := newTestServer(actorRepo(), new(MockFollowRepository), postRepo, new(MockCommentRepository))
		app := fiber.New()
		asUser(app, 1)
		app.Delete("/api/post/:id", s.DeletePost)

		resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/api/post/5", nil))
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			Message string `json:"message"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "Post deleted successfully", body.Message)
	})

	t.Run("Non-owner is rejected", func(t *testing.T) {
		postRepo := new(MockPostRepository)
		postRepo.On("GetByID", mock.Anything, uint(5)).Return(&models.Post{ID: 5, UserID: 2}, nil)

		s := newTestServer(actorRepo(), new(MockFollowRepository), postRepo, new(MockCommentRepository))
		app := fiber.New()
		asUser(app, 1)
		app.Delete("/api/post/:id", s.DeletePost)

		resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/api/post/5", nil))
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestLikeUnlikeHandlers(t *testing.T) {
	t.Run("Like", func(t *testing.T) {
		postRepo := new(MockPostRepository)
		postRepo.On("IsLiked", mock.Anything, uint(1), uint(5)).Return(false, nil)
		postRepo.On("Like", mock.Anything, uint(1), uint(5)).Return(nil)

		s := newTestServer(actorRepo(), new(MockFollowRepository), postRepo, new(MockCommentRepository))
		app := fiber.New()
		asUser(app, 1)
		app.Post("/api/like/:id", s.LikePost)

		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/like/5", nil))
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			Message string `json:"message"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "You liked the post with id: 5", body.Message)
	})

	t.Run("Double like", func(t *testing.T) {
		postRepo := new(MockPostRepository)
		postRepo.On("IsLiked", mock.Anything, uint(1), uint(5)).Return(true, nil)

		s := newTestServer(actorRepo(), new(MockFollowRepository), postRepo, new(MockCommentRepository))
		app := fiber.New()
		asUser(app, 1)
		app.Post("/api/like/:id", s.LikePost)

		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/like/5", nil))
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("Unlike without like", func(t *testing.T) {
		postRepo := new(MockPostRepository)
		postRepo.On("IsLiked", mock.Anything, uint(1), uint(5)).Return(false, nil)

		s := newTestServer(actorRepo(), new(MockFollowRepository), postRepo, new(MockCommentRepository))
		app := fiber.New()
		asUser(app, 1)
		app.Post("/api/unlike/:id", s.UnlikePost)

		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/unlike/5", nil))
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})
}

func TestCommentPost(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		postRepo := new(MockPostRepository)
		postRepo.On("GetByID", mock.Anything, uint(5)).Return(&models.Post{ID: 5, UserID: 2}, nil)
		commentRepo := new(MockCommentRepository)
		commentRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

		s := newTestServer(actorRepo(), new(MockFollowRepository), postRepo, commentRepo)
		app := fiber.New()
		asUser(app, 1)
		app.Post("/api/comment/:id", s.CommentPost)

		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/comment/5", map[string]string{
			"comment": "nice post",
		}))
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var body struct {
			Success bool   `json:"success"`
			Message string `json:"message"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.True(t, body.Success)
		assert.Equal(t, "You commented on the post with id: 5", body.Message)
	})

	t.Run("Missing post", func(t *testing.T) {
		postRepo := new(MockPostRepository)
		postRepo.On("GetByID", mock.Anything, uint(42)).Return(nil, models.NewNotFoundError("Post not found"))

		s := newTestServer(actorRepo(), new(MockFollowRepository), postRepo, new(MockCommentRepository))
		app := fiber.New()
		asUser(app, 1)
		app.Post("/api/comment/:id", s.CommentPost)

		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/comment/42", map[string]string{
			"comment": "nice post",
		}))
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
