package middlewares

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/quark1412/FoodyRush-sub000/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	admin := r.Group("/", AuthMiddleware(testSecret))
	admin.GET("/products", RequirePermission("PRODUCTS"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"data": "products"})
	})
	admin.GET("/orders", RequirePermission("ORDERS"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"data": "orders"})
	})
	return r
}

func accessToken(t *testing.T, permissions []string) string {
	t.Helper()
	pair, err := utils.GenerateTokenPair(1, "admin", permissions, testSecret, time.Hour, time.Hour)
	require.NoError(t, err)
	return pair.AccessToken
}

func TestPermissionGateForbidsMissingPermission(t *testing.T) {
	r := testRouter()
	token := accessToken(t, []string{"ORDERS"})

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	var body struct {
		Code  int    `json:"code"`
		Title string `json:"title"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 403, body.Code)
	assert.Equal(t, "Forbidden", body.Title)
}

func TestPermissionGateAllowsGrantedPermission(t *testing.T) {
	r := testRouter()
	token := accessToken(t, []string{"ORDERS"})

	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthMiddlewareRejectsRefreshToken(t *testing.T) {
	r := testRouter()
	pair, err := utils.GenerateTokenPair(1, "admin", []string{"ORDERS"}, testSecret, time.Hour, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	req.Header.Set("Authorization", "Bearer "+pair.RefreshToken)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	r := testRouter()
	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
