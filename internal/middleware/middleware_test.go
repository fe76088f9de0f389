package middleware_test

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/remittance_pricing/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func signToken(t *testing.T, secret string, claims middleware.Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func validClaims(accountType string) middleware.Claims {
	return middleware.Claims{
		AccountType: accountType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			Issuer:    "remit-identity",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func newAuthRouter() *gin.Engine {
	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(slog.Default()))
	r.Use(middleware.AuthMiddleware(testSecret, "remit-identity"))
	r.GET("/me", func(c *gin.Context) {
		userID, _ := middleware.GetUserIDFromContext(c)
		accountType, _ := middleware.GetAccountTypeFromContext(c)
		c.JSON(http.StatusOK, gin.H{"user": userID, "account_type": accountType})
	})
	return r
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	r := newAuthRouter()

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, validClaims("Corporative")))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user":"user-1","account_type":"corporative"}`, w.Body.String())
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	expired := validClaims("personal")
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))

	otherIssuer := validClaims("personal")
	otherIssuer.Issuer = "someone-else"

	noSubject := validClaims("personal")
	noSubject.Subject = ""

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "not bearer", header: "Basic abc"},
		{name: "wrong secret", header: "Bearer " + signToken(t, "other", validClaims("personal"))},
		{name: "expired", header: "Bearer " + signToken(t, testSecret, expired)},
		{name: "wrong issuer", header: "Bearer " + signToken(t, testSecret, otherIssuer)},
		{name: "missing subject", header: "Bearer " + signToken(t, testSecret, noSubject)},
		{name: "unknown account type", header: "Bearer " + signToken(t, testSecret, validClaims("vip"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newAuthRouter()
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), "error")
		})
	}
}

func TestStructuredLoggingMiddleware_RequestID(t *testing.T) {
	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(slog.Default()))
	r.GET("/ping", func(c *gin.Context) {
		assert.NotNil(t, middleware.GetLoggerFromCtx(c.Request.Context()))
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
}

func TestGetAccountTypeFromContext_Missing(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	_, ok := middleware.GetAccountTypeFromContext(c)
	assert.False(t, ok)
	_, ok = middleware.GetUserIDFromContext(c)
	assert.False(t, ok)
}

func TestRateLimit_MemoryStore(t *testing.T) {
	instance, err := middleware.NewLimiter("2-M", nil)
	require.NoError(t, err)

	r := gin.New()
	r.Use(middleware.RateLimit(instance))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestNewLimiter_InvalidRate(t *testing.T) {
	_, err := middleware.NewLimiter("lots", nil)
	assert.Error(t, err)
}
