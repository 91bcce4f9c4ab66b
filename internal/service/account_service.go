// Package service implements the business logic of the application.
package service

import (
	"context"
	"fmt"

	"ripple/internal/models"
	"ripple/internal/observability"
	"ripple/internal/repository"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/crypto/bcrypt"
)

// TokenIssuer signs access tokens for authenticated users.
type TokenIssuer interface {
	Issue(userID uint, email string) (string, error)
}

type AccountService struct {
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
	tokens     TokenIssuer
}

type RegisterInput struct {
	Handle   string
	Email    string
	Password string
}

type LoginInput struct {
	Identifier string
	Password   string
}

type UpdateAccountInput struct {
	UserID   uint
	Handle   string
	Password string
}

// RegisterResult is returned on successful account creation.
type RegisterResult struct {
	Success bool   `json:"success"`
	UserID  uint   `json:"userId"`
	Email   string `json:"email"`
	Token   string `json:"token"`
}

// LoginResult is returned on successful authentication.
type LoginResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	UserID  uint   `json:"userId"`
	Email   string `json:"email"`
	Token   string `json:"token"`
}

// ActionResult reports the outcome of an idempotent-style action.
type ActionResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func NewAccountService(userRepo repository.UserRepository, followRepo repository.FollowRepository, tokens TokenIssuer) *AccountService {
	return &AccountService{userRepo: userRepo, followRepo: followRepo, tokens: tokens}
}

func (s *AccountService) Register(ctx context.Context, in RegisterInput) (*RegisterResult, error) {
	byHandle, err := s.userRepo.GetByHandle(ctx, in.Handle)
	if err != nil {
		return nil, err
	}
	byEmail, err := s.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	// Handle conflicts take precedence when both collide.
	if byHandle != nil {
		observability.RecordAuthAttempt("register", "conflict")
		return nil, models.NewConflictError("Username already exist")
	}
	if byEmail != nil {
		observability.RecordAuthAttempt("register", "conflict")
		return nil, models.NewConflictError("Email already exist")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Handle:   in.Handle,
		Email:    in.Email,
		Password: string(hashed),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		observability.RecordAuthAttempt("register", "error")
		return nil, err
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	observability.RecordAuthAttempt("register", "success")
	return &RegisterResult{
		Success: true,
		UserID:  user.ID,
		Email:   user.Email,
		Token:   token,
	}, nil
}

func (s *AccountService) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	user, err := s.userRepo.GetByHandle(ctx, in.Identifier)
	if err != nil {
		return nil, err
	}
	if user == nil {
		user, err = s.userRepo.GetByEmail(ctx, in.Identifier)
		if err != nil {
			return nil, err
		}
	}
	if user == nil {
		observability.RecordAuthAttempt("login", "not_found")
		return nil, models.NewNotFoundError("User not found")
	}

	if cmpErr := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)); cmpErr != nil {
		observability.RecordAuthAttempt("login", "bad_password")
		return nil, models.NewValidationError("Password is incorrect")
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	observability.RecordAuthAttempt("login", "success")
	return &LoginResult{
		Success: true,
		Message: "Login successful",
		UserID:  user.ID,
		Email:   user.Email,
		Token:   token,
	}, nil
}

func (s *AccountService) UpdateAccount(ctx context.Context, in UpdateAccountInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	if in.Handle != "" {
		existing, err := s.userRepo.GetByHandle(ctx, in.Handle)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != in.UserID {
			return nil, models.NewConflictError("This username is already taken, take another username")
		}
		user.Handle = in.Handle
	}
	if in.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, models.NewInternalError(err)
		}
		user.Password = string(hashed)
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AccountService) GetAccount(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	followers, err := s.followRepo.CountFollowers(ctx, id)
	if err != nil {
		return nil, err
	}
	following, err := s.followRepo.CountFollowing(ctx, id)
	if err != nil {
		return nil, err
	}
	user.FollowerCount = followers
	user.FollowingCount = following
	return user, nil
}

// ToggleFollow follows the target if no edge exists, otherwise unfollows.
func (s *AccountService) ToggleFollow(ctx context.Context, followerID, followeeID uint) (*ActionResult, error) {
	if followerID == followeeID {
		return nil, models.NewNotFoundError("You cannot follow yourself")
	}

	observability.AddTraceAttributesToContext(ctx,
		attribute.Int("follow.follower_id", int(followerID)),
		attribute.Int("follow.followee_id", int(followeeID)),
	)

	followee, err := s.userRepo.GetByID(ctx, followeeID)
	if err != nil {
		return nil, err
	}

	following, err := s.followRepo.IsFollowing(ctx, followerID, followeeID)
	if err != nil {
		return nil, err
	}

	if following {
		if err := s.followRepo.Unfollow(ctx, followerID, followeeID); err != nil {
			return nil, models.NewGeneralError("Could not unfollow the User")
		}
		observability.RecordFollowToggle("unfollow")
		return &ActionResult{
			Success: true,
			Message: fmt.Sprintf("You have unfollowed the User %s", followee.Handle),
		}, nil
	}

	if err := s.followRepo.Follow(ctx, followerID, followeeID); err != nil {
		return nil, models.NewGeneralError("Could not follow the user")
	}
	observability.RecordFollowToggle("follow")
	return &ActionResult{
		Success: true,
		Message: fmt.Sprintf("You have followed the user %s", followee.Handle),
	}, nil
}
