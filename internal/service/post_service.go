package service

import (
	"context"

	"ripple/internal/models"
	"ripple/internal/observability"
	"ripple/internal/repository"
)

type PostService struct {
	postRepo repository.PostRepository
}

type CreatePostInput struct {
	UserID  uint
	Title   string
	Content string
}

type ListPostsInput struct {
	Limit  int
	Offset int
}

type UpdatePostInput struct {
	UserID  uint
	PostID  uint
	Title   string
	Content string
}

type DeletePostInput struct {
	UserID uint
	PostID uint
}

func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

const (
	maxTitleLen   = 300
	maxContentLen = 50000
)

func validatePostFields(title, content string) error {
	if title == "" {
		return models.NewValidationError("Title is required")
	}
	if len(title) > maxTitleLen {
		return models.NewValidationError("Title too long (max 300 characters)")
	}
	if content == "" {
		return models.NewValidationError("Content is required")
	}
	if len(content) > maxContentLen {
		return models.NewValidationError("Content too long (max 50000 characters)")
	}
	return nil
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	ctx, span := observability.TraceServiceCall(ctx, "PostService", "CreatePost")
	defer span.End()

	if err := validatePostFields(in.Title, in.Content); err != nil {
		return nil, err
	}

	post := &models.Post{
		Title:   in.Title,
		Content: in.Content,
		UserID:  in.UserID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	observability.PostsCreated.Inc()

	// Refetch so the response carries the author and zeroed counts.
	return s.postRepo.GetByID(ctx, post.ID)
}

func (s *PostService) ListPosts(ctx context.Context, in ListPostsInput) ([]*models.Post, error) {
	return s.postRepo.List(ctx, in.Limit, in.Offset)
}

func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

// UpdatePost overwrites both title and content; there is no partial update.
func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	ctx, span := observability.TraceServiceCall(ctx, "PostService", "UpdatePost")
	defer span.End()

	if err := validatePostFields(in.Title, in.Content); err != nil {
		return nil, err
	}

	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}

	if post.UserID != in.UserID {
		return nil, models.NewForbiddenError("You can only update your own posts")
	}

	post.Title = in.Title
	post.Content = in.Content

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) DeletePost(ctx context.Context, in DeletePostInput) error {
	ctx, span := observability.TraceServiceCall(ctx, "PostService", "DeletePost")
	defer span.End()

	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return err
	}

	if post.UserID != in.UserID {
		return models.NewForbiddenError("You can only delete your own posts")
	}

	if err := s.postRepo.DeleteCascade(ctx, in.PostID); err != nil {
		return err
	}
	observability.PostsDeleted.Inc()
	return nil
}
