package server

import (
	"fmt"
	"net/http"
	"testing"

	"ripple/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Walks the whole lifecycle: two users register, one posts, both react and
// comment, then the author deletes the post and everything attached to it
// disappears.
func TestFullPostLifecycle(t *testing.T) {
	app := newTestApp(t)

	alice := registerUser(t, app, "alice")
	bob := registerUser(t, app, "bob")

	// Alice posts.
	post := createPost(t, app, alice.Token, "Lifecycle", "watch this post live and die")

	// Both react: Bob likes, Alice dislikes her own post.
	resp := react(t, app, bob.Token, post.ID, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()

	resp = react(t, app, alice.Token, post.ID, false)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	withCounts := decodeBody[models.Post](t, resp)
	assert.Equal(t, 1, withCounts.LikesCount)
	assert.Equal(t, 1, withCounts.DislikesCount)

	// Bob flips to dislike; the like disappears.
	resp = react(t, app, bob.Token, post.ID, false)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	withCounts = decodeBody[models.Post](t, resp)
	assert.Equal(t, 0, withCounts.LikesCount)
	assert.Equal(t, 2, withCounts.DislikesCount)

	// Both comment.
	createComment(t, app, bob.Token, post.ID, "first!")
	createComment(t, app, alice.Token, post.ID, "thanks for stopping by")

	resp = doReq(t, app, authReq(t, http.MethodGet,
		fmt.Sprintf("/api/posts/%d/comments", post.ID), bob.Token, nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	comments := decodeBody[[]models.Comment](t, resp)
	require.Len(t, comments, 2)
	assert.Equal(t, bob.Username, comments[0].User.Username)
	assert.Equal(t, alice.Username, comments[1].User.Username)

	// The feed shows the post with its counts.
	resp = doReq(t, app, authReq(t, http.MethodGet, "/api/posts", bob.Token, nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	feed := decodeBody[[]models.Post](t, resp)
	require.Len(t, feed, 1)
	assert.Equal(t, 2, feed[0].DislikesCount)

	// Bob cannot delete Alice's post.
	resp = doReq(t, app, authReq(t, http.MethodDelete,
		fmt.Sprintf("/api/posts/%d", post.ID), bob.Token, nil))
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	_ = resp.Body.Close()

	// Alice deletes it; reactions and comments go with it.
	resp = doReq(t, app, authReq(t, http.MethodDelete,
		fmt.Sprintf("/api/posts/%d", post.ID), alice.Token, nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()

	resp = doReq(t, app, authReq(t, http.MethodGet, "/api/posts", alice.Token, nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	feed = decodeBody[[]models.Post](t, resp)
	assert.Empty(t, feed)

	resp = doReq(t, app, authReq(t, http.MethodGet,
		fmt.Sprintf("/api/posts/%d/comments", post.ID), alice.Token, nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	comments = decodeBody[[]models.Comment](t, resp)
	assert.Empty(t, comments)
}

func TestHealthEndpoints(t *testing.T) {
	app := newTestApp(t)

	resp := doReq(t, app, jsonReq(t, http.MethodGet, "/health/live", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()

	resp = doReq(t, app, jsonReq(t, http.MethodGet, "/health/ready", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	type readiness struct {
		Status string `json:"status"`
		Checks struct {
			Database string `json:"database"`
			Redis    string `json:"redis"`
		} `json:"checks"`
	}
	body := decodeBody[readiness](t, resp)

	assert.Equal(t, "healthy", body.Status)
	assert.Equal(t, "healthy", body.Checks.Database)
	// Redis is optional; without a client the API still reports ready.
	assert.Equal(t, "unavailable", body.Checks.Redis)
}
