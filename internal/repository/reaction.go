// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"

	"ripple/internal/cache"
	"ripple/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReactionRepository defines interface for reaction operations
type ReactionRepository interface {
	Upsert(ctx context.Context, reaction *models.Reaction) error
	GetByUserAndPost(ctx context.Context, userID, postID uint) (*models.Reaction, error)
	CountByPost(ctx context.Context, postID uint, kind bool) (int64, error)
}

type reactionRepository struct {
	db *gorm.DB
}

// NewReactionRepository creates a new ReactionRepository
func NewReactionRepository(db *gorm.DB) ReactionRepository {
	return &reactionRepository{db: db}
}

// Upsert inserts the reaction or, when the caller already reacted to the
// post, overwrites the stored kind. The conflict target is the unique
// (user_id, post_id) index, so concurrent calls settle on the last write.
func (r *reactionRepository) Upsert(ctx context.Context, reaction *models.Reaction) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "post_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"kind", "updated_at"}),
	}).Create(reaction).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidatePost(ctx, reaction.PostID)
	return nil
}

// GetByUserAndPost returns (nil, nil) when the user has not reacted to the post.
func (r *reactionRepository) GetByUserAndPost(ctx context.Context, userID, postID uint) (*models.Reaction, error) {
	var reaction models.Reaction
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		First(&reaction).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &reaction, nil
}

func (r *reactionRepository) CountByPost(ctx context.Context, postID uint, kind bool) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Reaction{}).
		Where("post_id = ? AND kind = ?", postID, kind).
		Count(&count).Error
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}
