package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"armory/internal/testutil"
)

func doAuthRequest(t *testing.T, e *echo.Echo, path, body string, handle echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, handle(e.NewContext(req, rec)))
	return rec
}

func TestAuthHandler_SignUp(t *testing.T) {
	testutil.RequireDB(t, testDB)
	e := newTestEcho()
	handler := NewAuthHandler(testDB, "test-secret")

	t.Run("creates user and returns token", func(t *testing.T) {
		ts := time.Now().UnixNano() % 1000000000
		body := fmt.Sprintf(`{"username":"reg%d","email":"reg%d@example.com","password":"password123"}`, ts, ts)

		rec := doAuthRequest(t, e, "/api/auth/signup", body, handler.SignUp)
		assert.Equal(t, http.StatusCreated, rec.Code)

		var resp AuthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, fmt.Sprintf("reg%d", ts), resp.User.Username)
	})

	t.Run("duplicate returns 409", func(t *testing.T) {
		ts := time.Now().UnixNano() % 1000000000
		body := fmt.Sprintf(`{"username":"dup%d","email":"dup%d@example.com","password":"password123"}`, ts, ts)

		rec := doAuthRequest(t, e, "/api/auth/signup", body, handler.SignUp)
		require.Equal(t, http.StatusCreated, rec.Code)

		rec = doAuthRequest(t, e, "/api/auth/signup", body, handler.SignUp)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("invalid payload returns 400", func(t *testing.T) {
		rec := doAuthRequest(t, e, "/api/auth/signup", `{"username":"x"}`, handler.SignUp)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAuthHandler_SignIn(t *testing.T) {
	testutil.RequireDB(t, testDB)
	e := newTestEcho()
	handler := NewAuthHandler(testDB, "test-secret")

	ts := time.Now().UnixNano() % 1000000000
	username := fmt.Sprintf("login%d", ts)
	signUpBody := fmt.Sprintf(`{"username":%q,"email":"login%d@example.com","password":"password123"}`, username, ts)
	rec := doAuthRequest(t, e, "/api/auth/signup", signUpBody, handler.SignUp)
	require.Equal(t, http.StatusCreated, rec.Code)

	t.Run("valid credentials", func(t *testing.T) {
		body := fmt.Sprintf(`{"username":%q,"password":"password123"}`, username)
		rec := doAuthRequest(t, e, "/api/auth/signin", body, handler.SignIn)
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp AuthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Token)
	})

	t.Run("wrong password returns 401", func(t *testing.T) {
		body := fmt.Sprintf(`{"username":%q,"password":"wrongpassword"}`, username)
		rec := doAuthRequest(t, e, "/api/auth/signin", body, handler.SignIn)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unknown user returns 401", func(t *testing.T) {
		rec := doAuthRequest(t, e, "/api/auth/signin", `{"username":"ghostuser","password":"password123"}`, handler.SignIn)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
