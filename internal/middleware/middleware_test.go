package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shopcart/internal/config"
	"shopcart/internal/repository"
	auth "shopcart/internal/usecase/auth_usecase"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

type stubLoader map[string]bool

func (s stubLoader) LoadUserByUsername(_ context.Context, username string) (auth.Principal, error) {
	if !s[username] {
		return auth.Principal{}, repository.ErrUserNotFound
	}
	return auth.Principal{Username: username, Authorities: []string{}}, nil
}

func sign(t *testing.T, method jwt.SigningMethod, secret string, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func validClaims(sub string) jwt.MapClaims {
	now := time.Now()
	return jwt.MapClaims{
		"sub": sub,
		"iat": now.Unix(),
		"exp": now.Add(time.Hour).Unix(),
	}
}

func newTestEcho(loader PrincipalLoader) *echo.Echo {
	e := echo.New()
	api := e.Group("/api", AuthJWT(config.Config{JWTSecret: testSecret}), PrincipalGuard(loader))

	api.GET("/item", func(c echo.Context) error {
		return c.String(http.StatusOK, c.Get(CtxUsernameKey).(string))
	})
	api.POST("/user/create", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	api.GET("/user/create", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return e
}

func do(e *echo.Echo, method, path, authz string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if authz != "" {
		req.Header.Set(HeaderString, authz)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAuthJWT_ValidToken(t *testing.T) {
	e := newTestEcho(stubLoader{"Username": true})
	tok := sign(t, jwt.SigningMethodHS256, testSecret, validClaims("Username"))

	rec := do(e, http.MethodGet, "/api/item", TokenPrefix+tok)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Username", rec.Body.String())
}

func TestAuthJWT_Rejects(t *testing.T) {
	expired := validClaims("Username")
	expired["exp"] = time.Now().Add(-time.Minute).Unix()

	cases := []struct {
		name  string
		authz string
	}{
		{"no header", ""},
		{"not bearer", "Basic abc"},
		{"empty token", "Bearer "},
		{"garbage", "Bearer not-a-jwt"},
		{"wrong secret", TokenPrefix + sign(t, jwt.SigningMethodHS256, "other", validClaims("Username"))},
		{"wrong alg", TokenPrefix + sign(t, jwt.SigningMethodHS512, testSecret, validClaims("Username"))},
		{"expired", TokenPrefix + sign(t, jwt.SigningMethodHS256, testSecret, expired)},
		{"no subject", TokenPrefix + sign(t, jwt.SigningMethodHS256, testSecret, jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()})},
	}

	e := newTestEcho(stubLoader{"Username": true})
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(e, http.MethodGet, "/api/item", tc.authz)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.JSONEq(t, `{"error":"unauthorized"}`, rec.Body.String())
		})
	}
}

func TestAuthJWT_SignUpIsPublic(t *testing.T) {
	e := newTestEcho(stubLoader{})

	assert.Equal(t, http.StatusOK, do(e, http.MethodPost, SignUpURL, "").Code)
	// POST以外は保護されたまま
	assert.Equal(t, http.StatusUnauthorized, do(e, http.MethodGet, SignUpURL, "").Code)
}

func TestPrincipalGuard_UnknownSubject(t *testing.T) {
	e := newTestEcho(stubLoader{})
	tok := sign(t, jwt.SigningMethodHS256, testSecret, validClaims("deleted"))

	rec := do(e, http.MethodGet, "/api/item", TokenPrefix+tok)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
