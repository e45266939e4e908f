package service

import (
	"context"

	"ripple/internal/models"
	"ripple/internal/observability"
	"ripple/internal/repository"
)

type ReactionService struct {
	reactionRepo repository.ReactionRepository
	postRepo     repository.PostRepository
}

// ReactInput carries a reaction: Like true for a like, false for a dislike.
type ReactInput struct {
	UserID uint
	PostID uint
	Like   bool
}

func NewReactionService(reactionRepo repository.ReactionRepository, postRepo repository.PostRepository) *ReactionService {
	return &ReactionService{
		reactionRepo: reactionRepo,
		postRepo:     postRepo,
	}
}

// React records or replaces the caller's reaction to a post and returns the
// post with refreshed counts. A second reaction from the same user overwrites
// the first; there is never more than one row per (user, post).
func (s *ReactionService) React(ctx context.Context, in ReactInput) (*models.Post, error) {
	ctx, span := observability.TraceServiceCall(ctx, "ReactionService", "React")
	defer span.End()

	if _, err := s.postRepo.GetByID(ctx, in.PostID); err != nil {
		return nil, err
	}

	reaction := &models.Reaction{
		UserID: in.UserID,
		PostID: in.PostID,
		Kind:   in.Like,
	}
	if err := s.reactionRepo.Upsert(ctx, reaction); err != nil {
		return nil, err
	}
	observability.RecordReaction(in.Like)

	return s.postRepo.GetByID(ctx, in.PostID)
}
