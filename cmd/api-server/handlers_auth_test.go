package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleStatus(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/api/v1/status", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"OK"}`, rec.Body.String())
}

func TestHandleHealthDB(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/api/v1/health/db", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var res responseHealthDB
	decodeBody(t, rec, &res)
	assert.Equal(t, "sqlite", res.DB)
	assert.Equal(t, "local", res.Host)
	assert.True(t, res.HasDatabaseURL)
	assert.Empty(t, res.Error)
}

func TestHandleRegister(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"email":    "  Alice@Example.com ",
		"password": "secret-password",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var res responseAuth
	decodeBody(t, rec, &res)
	assert.Equal(t, "alice@example.com", res.User.Email)
	assert.NotZero(t, res.User.ID)
	assert.NotEmpty(t, res.Token)
	assert.NotContains(t, rec.Body.String(), "secret-password")
	assert.NotContains(t, rec.Body.String(), "passwordHash")

	t.Run("duplicate email", func(t *testing.T) {
		rec := app.do(t, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
			"email":    "alice@example.com",
			"password": "another-password",
		})
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("invalid input", func(t *testing.T) {
		rec := app.do(t, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
			"email":    "not-an-email",
			"password": "",
		})
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), `"email"`)
		assert.Contains(t, rec.Body.String(), `"password"`)
	})

	t.Run("unknown field", func(t *testing.T) {
		rec := app.do(t, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
			"email":    "bob@example.com",
			"password": "secret-password",
			"role":     "admin",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandleLogin(t *testing.T) {
	app := newTestApp(t)
	app.register(t, "alice@example.com")

	t.Run("wrong password", func(t *testing.T) {
		rec := app.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
			"email":    "alice@example.com",
			"password": "wrong",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unknown email", func(t *testing.T) {
		rec := app.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
			"email":    "nobody@example.com",
			"password": "secret-password",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("cookie session", func(t *testing.T) {
		rec := app.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
			"email":    "ALICE@example.com",
			"password": "secret-password",
		})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, _tokenCookieName, cookies[0].Name)
		assert.True(t, cookies[0].HttpOnly)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
		req.AddCookie(cookies[0])
		me := httptest.NewRecorder()
		app.handler.ServeHTTP(me, req)

		require.Equal(t, http.StatusOK, me.Code, me.Body.String())
		var res responseMe
		decodeBody(t, me, &res)
		assert.Equal(t, "alice@example.com", res.User.Email)
	})
}

func TestHandleLogout(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodPost, "/api/v1/auth/logout", "", nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, _tokenCookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestRequireUser(t *testing.T) {
	app := newTestApp(t)

	tests := []struct {
		name  string
		token string
	}{
		{name: "missing token", token: ""},
		{name: "garbage token", token: "not-a-jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := app.do(t, http.MethodGet, "/api/v1/dashboard", tt.token, nil)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
		})
	}

	t.Run("token of a deleted user", func(t *testing.T) {
		token, err := app.tokens.Sign(999)
		require.NoError(t, err)

		rec := app.do(t, http.MethodGet, "/api/v1/auth/me", token, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestNotFoundAndMethodNotAllowed(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/api/v1/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = app.do(t, http.MethodPut, "/api/v1/status", "", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
