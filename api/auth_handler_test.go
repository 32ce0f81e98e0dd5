package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterThenLogin(t *testing.T) {
	db := newTestDB(t)
	router := newTestRouter(t, db)

	resp := doRequest(t, router, http.MethodPost, "/api/auth/register",
		map[string]string{"username": "alice", "email": "alice@example.com", "password": "secret123"}, "")
	require.Equal(t, http.StatusCreated, resp.Code)

	body := decodeBody[map[string]any](t, resp)
	assert.NotEmpty(t, body["token"])
	user := body["user"].(map[string]any)
	assert.Equal(t, "alice", user["username"])
	// The password hash must never appear in responses.
	assert.NotContains(t, user, "password")

	resp = doRequest(t, router, http.MethodPost, "/api/auth/login",
		map[string]string{"email": "alice@example.com", "password": "secret123"}, "")
	require.Equal(t, http.StatusOK, resp.Code)

	token := decodeBody[map[string]any](t, resp)["token"].(string)
	require.NotEmpty(t, token)

	// The issued token is accepted by the protect middleware.
	resp = doRequest(t, router, http.MethodGet, "/api/contact", nil, token)
	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestLogin_WrongPassword(t *testing.T) {
	db := newTestDB(t)
	router := newTestRouter(t, db)
	createTestUser(t, db, "alice")

	resp := doRequest(t, router, http.MethodPost, "/api/auth/login",
		map[string]string{"email": "alice@example.com", "password": "wrong"}, "")
	require.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Equal(t, "Invalid email or password", decodeBody[ErrorResponse](t, resp).Message)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	router := newTestRouter(t, db)
	createTestUser(t, db, "alice")

	resp := doRequest(t, router, http.MethodPost, "/api/auth/register",
		map[string]string{"username": "alice2", "email": "alice@example.com", "password": "secret123"}, "")
	require.Equal(t, http.StatusConflict, resp.Code)
}

func TestProtect_RejectsGarbageToken(t *testing.T) {
	db := newTestDB(t)
	router := newTestRouter(t, db)

	resp := doRequest(t, router, http.MethodGet, "/api/contact", nil, "not-a-token")
	require.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Equal(t, "Not authorized, token failed", decodeBody[ErrorResponse](t, resp).Message)
}
