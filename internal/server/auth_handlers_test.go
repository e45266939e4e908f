package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"ripple/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_DuplicateEmailRejected(t *testing.T) {
	app := newTestApp(t)

	email := fmt.Sprintf("dupe_%d@example.com", time.Now().UnixNano())
	first := map[string]string{
		"username": "first" + uuid.NewString()[:8],
		"email":    email,
		"password": "TestPass123",
	}
	resp := doReq(t, app, jsonReq(t, http.MethodPost, "/api/auth/register", first))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	_ = resp.Body.Close()

	second := map[string]string{
		"username": "second" + uuid.NewString()[:8],
		"email":    email,
		"password": "TestPass123",
	}
	resp = doReq(t, app, jsonReq(t, http.MethodPost, "/api/auth/register", second))
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody[models.ErrorResponse](t, resp)
	assert.Equal(t, models.CodeDuplicateIdentity, body.Code)
}

func TestRegister_DuplicateUsernameRejected(t *testing.T) {
	app := newTestApp(t)

	username := "taken" + uuid.NewString()[:8]
	first := map[string]string{
		"username": username,
		"email":    fmt.Sprintf("a_%d@example.com", time.Now().UnixNano()),
		"password": "TestPass123",
	}
	resp := doReq(t, app, jsonReq(t, http.MethodPost, "/api/auth/register", first))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	_ = resp.Body.Close()

	second := map[string]string{
		"username": username,
		"email":    fmt.Sprintf("b_%d@example.com", time.Now().UnixNano()),
		"password": "TestPass123",
	}
	resp = doReq(t, app, jsonReq(t, http.MethodPost, "/api/auth/register", second))
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody[models.ErrorResponse](t, resp)
	assert.Equal(t, models.CodeDuplicateIdentity, body.Code)
}

func TestRegister_InvalidInputRejected(t *testing.T) {
	app := newTestApp(t)

	cases := []struct {
		name    string
		payload map[string]string
	}{
		{"missing fields", map[string]string{"username": "someone"}},
		{"short password", map[string]string{
			"username": "someone" + uuid.NewString()[:6],
			"email":    "someone@example.com",
			"password": "ab1",
		}},
		{"password without digit", map[string]string{
			"username": "someone" + uuid.NewString()[:6],
			"email":    "someone@example.com",
			"password": "allletters",
		}},
		{"bad email", map[string]string{
			"username": "someone" + uuid.NewString()[:6],
			"email":    "not-an-email",
			"password": "TestPass123",
		}},
		{"bad username", map[string]string{
			"username": "x",
			"email":    "short@example.com",
			"password": "TestPass123",
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := doReq(t, app, jsonReq(t, http.MethodPost, "/api/auth/register", tc.payload))
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestLogin_ReturnsTokenForValidCredentials(t *testing.T) {
	app := newTestApp(t)

	email := fmt.Sprintf("login_%d@example.com", time.Now().UnixNano())
	register := map[string]string{
		"username": "login" + uuid.NewString()[:8],
		"email":    email,
		"password": "TestPass123",
	}
	resp := doReq(t, app, jsonReq(t, http.MethodPost, "/api/auth/register", register))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	_ = resp.Body.Close()

	resp = doReq(t, app, jsonReq(t, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    email,
		"password": "TestPass123",
	}))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Token string `json:"token"`
		User  struct {
			Email string `json:"email"`
		} `json:"user"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	_ = resp.Body.Close()

	assert.NotEmpty(t, body.Token)
	assert.Equal(t, email, body.User.Email)
}

// Unknown email and wrong password must be indistinguishable to the caller.
func TestLogin_InvalidCredentialsAreUniform(t *testing.T) {
	app := newTestApp(t)

	email := fmt.Sprintf("uniform_%d@example.com", time.Now().UnixNano())
	register := map[string]string{
		"username": "uniform" + uuid.NewString()[:8],
		"email":    email,
		"password": "TestPass123",
	}
	resp := doReq(t, app, jsonReq(t, http.MethodPost, "/api/auth/register", register))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	_ = resp.Body.Close()

	wrongPassword := doReq(t, app, jsonReq(t, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    email,
		"password": "WrongPass999",
	}))
	require.Equal(t, http.StatusUnauthorized, wrongPassword.StatusCode)
	wrongBody := decodeBody[models.ErrorResponse](t, wrongPassword)

	unknownEmail := doReq(t, app, jsonReq(t, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "nobody@example.com",
		"password": "WrongPass999",
	}))
	require.Equal(t, http.StatusUnauthorized, unknownEmail.StatusCode)
	unknownBody := decodeBody[models.ErrorResponse](t, unknownEmail)

	assert.Equal(t, "Invalid credentials", wrongBody.Error)
	assert.Equal(t, wrongBody.Error, unknownBody.Error)
}

func TestCurrentUser_ReturnsUsername(t *testing.T) {
	app := newTestApp(t)
	user := registerUser(t, app, "whoami")

	resp := doReq(t, app, authReq(t, http.MethodGet, "/api/user", user.Token, nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody[map[string]string](t, resp)
	assert.Equal(t, user.Username, body["username"])
}

func TestProtectedRoutes_RequireToken(t *testing.T) {
	app := newTestApp(t)

	resp := doReq(t, app, jsonReq(t, http.MethodGet, "/api/user", nil))
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body := decodeBody[models.ErrorResponse](t, resp)
	assert.Equal(t, "No token", body.Error)
}

func TestProtectedRoutes_RejectBadToken(t *testing.T) {
	app := newTestApp(t)
	user := registerUser(t, app, "badtoken")

	cases := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-jwt"},
		// The header carries the raw token; a Bearer prefix makes it unparseable.
		{"bearer prefixed", "Bearer " + user.Token},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := doReq(t, app, authReq(t, http.MethodGet, "/api/user", tc.token, nil))
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		})
	}
}
