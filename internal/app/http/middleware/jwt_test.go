package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bettools-app/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := tok.SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func protectedRouter(extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := append([]gin.HandlerFunc{AuthMiddleware()}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetUint("user_id"),
			"email":   c.GetString("email"),
		})
	})
	r.GET("/protected", handlers...)
	return r
}

func doGet(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	config.JWT_SECRET = "test-secret"
	r := protectedRouter()

	t.Run("missing header", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, doGet(r, "").Code)
	})

	t.Run("not a bearer token", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, doGet(r, "Basic abc").Code)
	})

	t.Run("wrong signature", func(t *testing.T) {
		tok := signToken(t, "other-secret", jwt.MapClaims{
			"user_id": 1, "exp": time.Now().Add(time.Hour).Unix(),
		})
		assert.Equal(t, http.StatusUnauthorized, doGet(r, "Bearer "+tok).Code)
	})

	t.Run("expired token", func(t *testing.T) {
		tok := signToken(t, "test-secret", jwt.MapClaims{
			"user_id": 1, "exp": time.Now().Add(-time.Hour).Unix(),
		})
		assert.Equal(t, http.StatusUnauthorized, doGet(r, "Bearer "+tok).Code)
	})

	t.Run("valid token passes claims through", func(t *testing.T) {
		tok := signToken(t, "test-secret", jwt.MapClaims{
			"user_id": float64(42),
			"email":   "punter@example.com",
			"role":    "user",
			"exp":     time.Now().Add(time.Hour).Unix(),
		})
		w := doGet(r, "Bearer "+tok)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"user_id":42`)
		assert.Contains(t, w.Body.String(), "punter@example.com")
	})
}

func TestRequireRole(t *testing.T) {
	config.JWT_SECRET = "test-secret"
	r := protectedRouter(RequireRole("admin"))

	userTok := signToken(t, "test-secret", jwt.MapClaims{
		"user_id": float64(1), "role": "user", "exp": time.Now().Add(time.Hour).Unix(),
	})
	assert.Equal(t, http.StatusForbidden, doGet(r, "Bearer "+userTok).Code)

	adminTok := signToken(t, "test-secret", jwt.MapClaims{
		"user_id": float64(1), "role": "admin", "exp": time.Now().Add(time.Hour).Unix(),
	})
	assert.Equal(t, http.StatusOK, doGet(r, "Bearer "+adminTok).Code)
}
