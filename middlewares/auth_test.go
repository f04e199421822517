package middlewares

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/projectitp2025/FlexiHirewebProject-sub003/entity"
	"github.com/projectitp2025/FlexiHirewebProject-sub003/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newAuthRouter(roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/whoami", AuthMiddleware(testSecret, roles...), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userId": utils.CurrentUserID(c),
			"role":   utils.CurrentRole(c),
		})
	})
	return r
}

func doGet(t *testing.T, r *gin.Engine, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewarePassesIdentityToHandlers(t *testing.T) {
	token, err := utils.GenerateToken(42, entity.RoleFreelancer, testSecret, time.Hour)
	require.NoError(t, err)

	w := doGet(t, newAuthRouter(), token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"userId":42`)
	assert.Contains(t, w.Body.String(), fmt.Sprintf("%q", entity.RoleFreelancer))
}

func TestAuthMiddlewareRejections(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		w := doGet(t, newAuthRouter(), "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		w := doGet(t, newAuthRouter(), "not-a-jwt")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := utils.GenerateToken(1, entity.RoleClient, "other-secret", time.Hour)
		require.NoError(t, err)
		w := doGet(t, newAuthRouter(), token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("role not allowed", func(t *testing.T) {
		token, err := utils.GenerateToken(1, entity.RoleClient, testSecret, time.Hour)
		require.NoError(t, err)
		w := doGet(t, newAuthRouter(entity.RoleAdmin), token)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
