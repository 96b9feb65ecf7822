package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fashion-store/internal/logger"
	"fashion-store/internal/model"
	"fashion-store/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

const secret = "testsecret"

func newContext(auth string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func httpError(t *testing.T, err error) *echo.HTTPError {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	return he
}

func TestExtractClaims(t *testing.T) {
	// missing header
	ctx, _ := newContext("")
	_, err := extractClaims(ctx, secret)
	he := httpError(t, err)
	require.Equal(t, http.StatusUnauthorized, he.Code)
	require.Equal(t, "Unauthorized access", he.Message)

	// blank header must not pass unauthenticated
	ctx, _ = newContext("   ")
	_, err = extractClaims(ctx, secret)
	he = httpError(t, err)
	require.Equal(t, "Unauthorized access", he.Message)

	// bad format
	ctx, _ = newContext("BadHeader")
	_, err = extractClaims(ctx, secret)
	he = httpError(t, err)
	require.Equal(t, "Unauthorized access", he.Message)

	// empty token after scheme
	ctx, _ = newContext("Bearer ")
	_, err = extractClaims(ctx, secret)
	he = httpError(t, err)
	require.Equal(t, "Unauthorized access", he.Message)

	// invalid token: failure description is surfaced
	ctx, _ = newContext("Bearer invalid")
	_, err = extractClaims(ctx, secret)
	he = httpError(t, err)
	require.Equal(t, http.StatusUnauthorized, he.Code)
	require.Equal(t, service.ErrMalformedToken.Error(), he.Message)

	// expired token
	tok, err := service.IssueAccessToken(model.User{ID: 1, Email: "a@x.com"}, secret, -time.Minute)
	require.NoError(t, err)
	ctx, _ = newContext("Bearer " + tok)
	_, err = extractClaims(ctx, secret)
	he = httpError(t, err)
	require.Equal(t, http.StatusUnauthorized, he.Code)
	require.Equal(t, "Token expired", he.Message)

	// valid token
	tok, err = service.IssueAccessToken(model.User{ID: 1, Email: "a@x.com"}, secret, time.Minute)
	require.NoError(t, err)
	ctx, _ = newContext("Bearer " + tok)
	claims, err := extractClaims(ctx, secret)
	require.NoError(t, err)
	require.Equal(t, 1, claims.UserID)
	require.Equal(t, "a@x.com", claims.Email)
}

func TestRequireAuth(t *testing.T) {
	tok, err := service.IssueAccessToken(model.User{ID: 2, Email: "b@x.com"}, secret, time.Minute)
	require.NoError(t, err)

	// success path
	ctx, rec := newContext("Bearer " + tok)
	called := false
	handler := RequireAuth(secret)(func(c echo.Context) error {
		called = true
		cl := c.Get(ContextUserKey).(*service.Claims)
		require.Equal(t, 2, cl.UserID)
		require.Equal(t, "b@x.com", cl.Email)
		return c.String(http.StatusOK, "ok")
	})
	require.NoError(t, handler(ctx))
	require.True(t, called)
	require.Equal(t, http.StatusOK, rec.Code)

	// missing token
	ctx, _ = newContext("")
	called = false
	err = RequireAuth(secret)(func(echo.Context) error { called = true; return nil })(ctx)
	require.Error(t, err)
	require.False(t, called)

	// wrong secret
	ctx, _ = newContext("Bearer " + tok)
	called = false
	err = RequireAuth("othersecret")(func(echo.Context) error { called = true; return nil })(ctx)
	require.Error(t, err)
	require.False(t, called)
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter("test", &buf)

	e := echo.New()
	e.Use(RequestLogger(log))
	e.GET("/ok", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, buf.String(), `"uri":"/ok"`)
	require.Contains(t, buf.String(), `"status":200`)
}
