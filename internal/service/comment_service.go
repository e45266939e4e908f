package service

import (
	"context"

	"ripple/internal/models"
	"ripple/internal/observability"
	"ripple/internal/repository"
)

type CommentService struct {
	commentRepo repository.CommentRepository
}

type CreateCommentInput struct {
	UserID  uint
	PostID  uint
	Content string
}

type DeleteCommentInput struct {
	UserID    uint
	CommentID uint
}

func NewCommentService(commentRepo repository.CommentRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo}
}

const maxCommentLen = 10000

// CreateComment attaches a comment to the given post ID. The post is not
// looked up first: comments reference posts procedurally, and a comment on an
// ID with no live post is simply never surfaced by any listing of real posts.
func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	ctx, span := observability.TraceServiceCall(ctx, "CommentService", "CreateComment")
	defer span.End()

	if in.Content == "" {
		return nil, models.NewValidationError("Content is required")
	}
	if len(in.Content) > maxCommentLen {
		return nil, models.NewValidationError("Comment too long (max 10000 characters)")
	}

	comment := &models.Comment{
		Content: in.Content,
		UserID:  in.UserID,
		PostID:  in.PostID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	observability.CommentsCreated.Inc()

	// Refetch so the response carries the commenter's username.
	return s.commentRepo.GetByID(ctx, comment.ID)
}

// ListComments returns a post's comments oldest-first. An unknown post ID
// yields an empty list, not an error.
func (s *CommentService) ListComments(ctx context.Context, postID uint) ([]*models.Comment, error) {
	return s.commentRepo.ListByPost(ctx, postID)
}

func (s *CommentService) DeleteComment(ctx context.Context, in DeleteCommentInput) error {
	ctx, span := observability.TraceServiceCall(ctx, "CommentService", "DeleteComment")
	defer span.End()

	comment, err := s.commentRepo.GetByID(ctx, in.CommentID)
	if err != nil {
		return err
	}

	if comment.UserID != in.UserID {
		return models.NewForbiddenError("You can only delete your own comments")
	}

	return s.commentRepo.Delete(ctx, in.CommentID)
}
