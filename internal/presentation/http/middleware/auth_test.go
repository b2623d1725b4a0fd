package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/stockpro/stockpro-api/pkg/utils"
)

func newAuthRouter(jwtManager *utils.JWTManager, permission string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	group := r.Group("/", AuthMiddleware(jwtManager))
	group.GET("/items", RequirePermission(permission), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	jwtManager := utils.NewJWTManager("test-secret", 15*time.Minute, 24*time.Hour)
	router := newAuthRouter(jwtManager, "manage-items")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/items", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareBadToken(t *testing.T) {
	jwtManager := utils.NewJWTManager("test-secret", 15*time.Minute, 24*time.Hour)
	router := newAuthRouter(jwtManager, "manage-items")

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/items", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareTokenFromOtherSecret(t *testing.T) {
	jwtManager := utils.NewJWTManager("test-secret", 15*time.Minute, 24*time.Hour)
	other := utils.NewJWTManager("other-secret", 15*time.Minute, 24*time.Hour)
	router := newAuthRouter(jwtManager, "manage-items")

	token, err := other.GenerateAccessToken(uuid.New(), "cashier@stockpro.test", nil, nil)
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/items", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequirePermissionDeniesWithout(t *testing.T) {
	jwtManager := utils.NewJWTManager("test-secret", 15*time.Minute, 24*time.Hour)
	router := newAuthRouter(jwtManager, "manage-items")

	token, err := jwtManager.GenerateAccessToken(
		uuid.New(), "cashier@stockpro.test",
		[]string{"staff"}, []string{"checkout", "record-stock"})
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/items", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequirePermissionAllowsWith(t *testing.T) {
	jwtManager := utils.NewJWTManager("test-secret", 15*time.Minute, 24*time.Hour)
	router := newAuthRouter(jwtManager, "manage-items")

	token, err := jwtManager.GenerateAccessToken(
		uuid.New(), "admin@stockpro.test",
		[]string{"admin"}, []string{"manage-items"})
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/items", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	expired := utils.NewJWTManager("test-secret", -time.Minute, 24*time.Hour)
	router := newAuthRouter(expired, "manage-items")

	token, err := expired.GenerateAccessToken(uuid.New(), "cashier@stockpro.test", nil, nil)
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/items", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
