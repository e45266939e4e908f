package service

import (
	"context"
	"errors"
	"testing"

	"ripple/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reactionRepoStub is a stub for repository.ReactionRepository.
type reactionRepoStub struct {
	upsertFn           func(context.Context, *models.Reaction) error
	getByUserAndPostFn func(context.Context, uint, uint) (*models.Reaction, error)
	countByPostFn      func(context.Context, uint, bool) (int64, error)
}

func (s *reactionRepoStub) Upsert(ctx context.Context, reaction *models.Reaction) error {
	return s.upsertFn(ctx, reaction)
}
func (s *reactionRepoStub) GetByUserAndPost(ctx context.Context, userID, postID uint) (*models.Reaction, error) {
	return s.getByUserAndPostFn(ctx, userID, postID)
}
func (s *reactionRepoStub) CountByPost(ctx context.Context, postID uint, kind bool) (int64, error) {
	return s.countByPostFn(ctx, postID, kind)
}

func noopReactionRepo() *reactionRepoStub {
	return &reactionRepoStub{
		upsertFn:           func(_ context.Context, _ *models.Reaction) error { return nil },
		getByUserAndPostFn: func(_ context.Context, _, _ uint) (*models.Reaction, error) { return nil, nil },
		countByPostFn:      func(_ context.Context, _ uint, _ bool) (int64, error) { return 0, nil },
	}
}

func TestReactionService_React_MissingPost(t *testing.T) {
	t.Parallel()

	postRepo := noopPostRepo()
	postRepo.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
		return nil, models.NewNotFoundError("Post", id)
	}

	reactionRepo := noopReactionRepo()
	reactionRepo.upsertFn = func(_ context.Context, _ *models.Reaction) error {
		t.Fatal("upsert must not be reached when the post does not exist")
		return nil
	}

	svc := NewReactionService(reactionRepo, postRepo)
	_, err := svc.React(context.Background(), ReactInput{UserID: 1, PostID: 99, Like: true})
	require.Error(t, err)

	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}

func TestReactionService_React_UpsertsAndReturnsCounts(t *testing.T) {
	t.Parallel()

	calls := 0
	postRepo := noopPostRepo()
	postRepo.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
		calls++
		post := &models.Post{ID: id, UserID: 2}
		if calls > 1 {
			post.LikesCount = 1
		}
		return post, nil
	}

	var upserted *models.Reaction
	reactionRepo := noopReactionRepo()
	reactionRepo.upsertFn = func(_ context.Context, r *models.Reaction) error {
		upserted = r
		return nil
	}

	svc := NewReactionService(reactionRepo, postRepo)
	post, err := svc.React(context.Background(), ReactInput{UserID: 1, PostID: 4, Like: true})
	require.NoError(t, err)

	require.NotNil(t, upserted)
	assert.EqualValues(t, 1, upserted.UserID)
	assert.EqualValues(t, 4, upserted.PostID)
	assert.True(t, upserted.Kind)
	assert.Equal(t, 1, post.LikesCount, "returned post should carry post-upsert counts")
}

func TestReactionService_React_DislikeKind(t *testing.T) {
	t.Parallel()

	var upserted *models.Reaction
	reactionRepo := noopReactionRepo()
	reactionRepo.upsertFn = func(_ context.Context, r *models.Reaction) error {
		upserted = r
		return nil
	}

	svc := NewReactionService(reactionRepo, noopPostRepo())
	_, err := svc.React(context.Background(), ReactInput{UserID: 1, PostID: 4, Like: false})
	require.NoError(t, err)
	require.NotNil(t, upserted)
	assert.False(t, upserted.Kind)
}
