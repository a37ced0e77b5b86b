package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func authedRouter(role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	group := r.Group("/")
	group.Use(AuthMiddleware(testSecret))
	if role != "" {
		group.Use(RequireRole(role))
	}
	group.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetUint("user_id"),
			"email":   c.GetString("email"),
		})
	})
	return r
}

func request(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"user_id": 7,
		"email":   "jane@example.com",
		"role":    "user",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	rec := request(authedRouter(""), token)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"user_id":7`)
	assert.Contains(t, rec.Body.String(), `"email":"jane@example.com"`)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	rec := request(authedRouter(""), "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_WrongSecret(t *testing.T) {
	token := signToken(t, "other-secret", jwt.MapClaims{
		"user_id": 7,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	rec := request(authedRouter(""), token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"user_id": 7,
		"exp":     time.Now().Add(-time.Hour).Unix(),
	})

	rec := request(authedRouter(""), token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRole(t *testing.T) {
	adminToken := signToken(t, testSecret, jwt.MapClaims{
		"user_id": 1,
		"role":    "admin",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	userToken := signToken(t, testSecret, jwt.MapClaims{
		"user_id": 2,
		"role":    "user",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	r := authedRouter("admin")

	rec := request(r, adminToken)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = request(r, userToken)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
