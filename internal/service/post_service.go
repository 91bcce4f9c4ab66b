package service

import (
	"context"
	"fmt"

	"ripple/internal/models"
	"ripple/internal/observability"
	"ripple/internal/repository"
)

type PostService struct {
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
	userRepo    repository.UserRepository
}

type CreatePostInput struct {
	UserID      uint
	Title       string
	Description string
}

type CommentInput struct {
	UserID uint
	PostID uint
	Body   string
}

// CommentResult reports a created comment.
type CommentResult struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	CommentID uint   `json:"commentId"`
}

func NewPostService(postRepo repository.PostRepository, commentRepo repository.CommentRepository, userRepo repository.UserRepository) *PostService {
	return &PostService{postRepo: postRepo, commentRepo: commentRepo, userRepo: userRepo}
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	const maxTitleLen = 300

	if in.Title == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if len(in.Title) > maxTitleLen {
		return nil, models.NewValidationError("Title too long (max 300 characters)")
	}
	if in.Description == "" {
		return nil, models.NewValidationError("Description is required")
	}

	if _, err := s.userRepo.GetByID(ctx, in.UserID); err != nil {
		return nil, err
	}

	post := &models.Post{
		Title:       in.Title,
		Description: in.Description,
		UserID:      in.UserID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	observability.PostsCreatedTotal.Inc()
	return post, nil
}

func (s *PostService) GetPostDetails(ctx context.Context, id uint) (*models.Post, error) {
	ctx, span := observability.GetTraceLayer().TraceServiceMethod(ctx, "post_service", "GetPostDetails")
	defer span.End()

	post, err := s.postRepo.GetDetails(ctx, id)
	if err != nil {
		observability.RecordErrorInContext(ctx, err)
		return nil, err
	}
	post.AttachAuthor()
	return post, nil
}

func (s *PostService) GetAllPosts(ctx context.Context, userID uint) ([]*models.Post, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	posts, err := s.postRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, p := range posts {
		p.AttachAuthor()
	}
	return posts, nil
}

func (s *PostService) DeletePost(ctx context.Context, userID, postID uint) (*ActionResult, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if post.UserID != userID {
		return nil, models.NewUnauthorizedError("You are not authorized to delete this post")
	}

	if err := s.postRepo.Delete(ctx, postID); err != nil {
		return nil, err
	}
	return &ActionResult{Success: true, Message: "Post deleted successfully"}, nil
}

func (s *PostService) LikePost(ctx context.Context, userID, postID uint) (*ActionResult, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	// The post itself is not fetched here; the membership check and the
	// store's foreign keys cover a missing post.
	liked, err := s.postRepo.IsLiked(ctx, userID, postID)
	if err != nil {
		return nil, err
	}
	if liked {
		observability.RecordLikeTransition("like", "rejected")
		return nil, models.NewForbiddenError("You have already liked this post")
	}

	if err := s.postRepo.Like(ctx, userID, postID); err != nil {
		observability.RecordLikeTransition("like", "error")
		return nil, err
	}

	observability.RecordLikeTransition("like", "success")
	return &ActionResult{
		Success: true,
		Message: fmt.Sprintf("You liked the post with id: %d", postID),
	}, nil
}

func (s *PostService) UnlikePost(ctx context.Context, userID, postID uint) (*ActionResult, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	liked, err := s.postRepo.IsLiked(ctx, userID, postID)
	if err != nil {
		return nil, err
	}
	if !liked {
		observability.RecordLikeTransition("unlike", "rejected")
		return nil, models.NewForbiddenError("You have not liked this post")
	}

	if err := s.postRepo.Unlike(ctx, userID, postID); err != nil {
		observability.RecordLikeTransition("unlike", "error")
		return nil, err
	}

	observability.RecordLikeTransition("unlike", "success")
	return &ActionResult{
		Success: true,
		Message: fmt.Sprintf("You unliked the post with id: %d", postID),
	}, nil
}

func (s *PostService) CommentPost(ctx context.Context, in CommentInput) (*CommentResult, error) {
	if in.Body == "" {
		return nil, models.NewValidationError("Comment body is required")
	}

	if _, err := s.userRepo.GetByID(ctx, in.UserID); err != nil {
		return nil, err
	}
	if _, err := s.postRepo.GetByID(ctx, in.PostID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Body:   in.Body,
		UserID: in.UserID,
		PostID: in.PostID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	observability.CommentsCreatedTotal.Inc()
	return &CommentResult{
		Success:   true,
		Message:   fmt.Sprintf("You commented on the post with id: %d", in.PostID),
		CommentID: comment.ID,
	}, nil
}
