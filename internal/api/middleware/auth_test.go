package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kazilop/CarCleanTGApp2/internal/service/clients"
)

func identityCapturingHandler(captured *clients.Identity) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := IdentityFromContext(r.Context())
		if ok {
			*captured = identity
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuth_ReadsTelegramHeaders(t *testing.T) {
	var captured clients.Identity
	h := Auth(12345)(identityCapturingHandler(&captured))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Telegram-User-ID", "100")
	req.Header.Set("X-Telegram-Username", "petr")
	req.Header.Set("X-Telegram-First-Name", "Петр")
	req.Header.Set("X-Telegram-Last-Name", "Петров")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(100), captured.TelegramID)
	require.NotNil(t, captured.Username)
	assert.Equal(t, "petr", *captured.Username)
	assert.Equal(t, "Петр Петров", captured.DisplayName())
}

func TestAuth_FallsBackToDemoUser(t *testing.T) {
	var captured clients.Identity
	h := Auth(12345)(identityCapturingHandler(&captured))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(12345), captured.TelegramID)
	assert.Equal(t, "Демо Пользователь", captured.DisplayName())
}

func TestAuth_RejectsMalformedUserID(t *testing.T) {
	h := Auth(12345)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Telegram-User-ID", "not-a-number")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

type stubChecker struct {
	allowed map[int64]bool
	err     error
}

func (c stubChecker) IsAuthorizedAdmin(_ context.Context, tgID int64) (bool, error) {
	return c.allowed[tgID], c.err
}

type nopLogger struct{}

func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestAdminOnly_AllowsAdmin(t *testing.T) {
	checker := stubChecker{allowed: map[int64]bool{100: true}}

	reached := false
	h := Auth(12345)(AdminOnly(checker, nopLogger{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	})))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Telegram-User-ID", "100")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, reached)
}

func TestAdminOnly_RejectsNonAdmin(t *testing.T) {
	checker := stubChecker{allowed: map[int64]bool{}}

	h := Auth(12345)(AdminOnly(checker, nopLogger{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached")
	})))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Telegram-User-ID", "100")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
