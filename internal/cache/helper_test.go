package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedUser struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

func setupMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { SetClient(nil) })
	return mr
}

func TestGetJSON_MissAndHit(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	var got cachedUser
	found, err := GetJSON(ctx, UserKey(1), &got)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, SetJSON(ctx, UserKey(1), cachedUser{ID: 1, Username: "alice"}, UserTTL))

	found, err = GetJSON(ctx, UserKey(1), &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "alice", got.Username)
}

func TestCacheAside_FetchesOnceThenServesFromCache(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	calls := 0
	fetch := func(dest *cachedUser) func() error {
		return func() error {
			calls++
			*dest = cachedUser{ID: 7, Username: "bob"}
			return nil
		}
	}

	var first cachedUser
	require.NoError(t, CacheAside(ctx, UserKey(7), &first, time.Minute, fetch(&first)))
	assert.Equal(t, 1, calls)

	var second cachedUser
	require.NoError(t, CacheAside(ctx, UserKey(7), &second, time.Minute, fetch(&second)))
	assert.Equal(t, 1, calls, "second read should be served from cache")
	assert.Equal(t, "bob", second.Username)
}

func TestInvalidatePost_DropsPostAndComments(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, PostKey(3), map[string]any{"id": 3}, PostTTL))
	require.NoError(t, SetJSON(ctx, CommentsKey(3), []int{1, 2}, CommentsTTL))

	InvalidatePost(ctx, 3)

	assert.False(t, mr.Exists(PostKey(3)))
	assert.False(t, mr.Exists(CommentsKey(3)))
}

func TestHelpers_NilClientAreNoOps(t *testing.T) {
	SetClient(nil)
	ctx := context.Background()

	var got cachedUser
	found, err := GetJSON(ctx, UserKey(9), &got)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, SetJSON(ctx, UserKey(9), cachedUser{}, time.Minute))
	Invalidate(ctx, UserKey(9))
}
