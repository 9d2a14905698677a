package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/horizontrails/agency-backoffice/internal/models"
	"github.com/horizontrails/agency-backoffice/pkg/jwt"
)

func setupTestJWTService() *jwt.Service {
	return jwt.NewService(
		"test-access-secret-key-123456789",
		"test-refresh-secret-key-123456789",
		time.Hour,
		24*time.Hour,
	)
}

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func serve(router *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_Success(t *testing.T) {
	jwtService := setupTestJWTService()
	router := setupTestRouter()

	token, err := jwtService.GenerateAccessToken("u-1", "admin", models.RoleAdmin)
	require.NoError(t, err)

	router.GET("/protected", AuthMiddleware(jwtService, quietLogger()), func(c *gin.Context) {
		userCtx, exists := GetUserContext(c)
		require.True(t, exists)
		c.JSON(http.StatusOK, gin.H{"success": true, "data": userCtx})
	})

	w := serve(router, "/protected", "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"userId":"u-1"`)
	assert.Contains(t, w.Body.String(), `"role":"admin"`)
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	jwtService := setupTestJWTService()
	router := setupTestRouter()
	router.GET("/protected", AuthMiddleware(jwtService, quietLogger()), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "should not reach here"})
	})

	wrongService := jwt.NewService("wrong-secret-key", "wrong-refresh-secret", time.Hour, 24*time.Hour)
	foreign, err := wrongService.GenerateAccessToken("u-1", "admin", models.RoleAdmin)
	require.NoError(t, err)

	refresh, err := jwtService.GenerateRefreshToken("u-1", "admin")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		code   string
	}{
		{"Missing header", "", "MISSING_AUTH_HEADER"},
		{"Missing Bearer", "some-token", "INVALID_AUTH_FORMAT"},
		{"Wrong prefix", "Basic some-token", "INVALID_AUTH_FORMAT"},
		{"Empty Bearer", "Bearer ", "INVALID_AUTH_FORMAT"},
		{"Malformed token", "Bearer invalid.token.here", "INVALID_TOKEN"},
		{"Wrong secret", "Bearer " + foreign, "INVALID_TOKEN"},
		{"Refresh token", "Bearer " + refresh, "INVALID_TOKEN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(router, "/protected", tt.header)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), tt.code)
			assert.Contains(t, w.Body.String(), `"success":false`)
		})
	}
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	jwtService := jwt.NewService(
		"test-access-secret-key-123456789",
		"test-refresh-secret-key-123456789",
		-time.Minute,
		24*time.Hour,
	)
	router := setupTestRouter()

	token, err := jwtService.GenerateAccessToken("u-1", "admin", models.RoleAdmin)
	require.NoError(t, err)

	router.GET("/protected", AuthMiddleware(jwtService, quietLogger()), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "should not reach here"})
	})

	w := serve(router, "/protected", "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "TOKEN_EXPIRED")
}

func TestRequireRole(t *testing.T) {
	jwtService := setupTestJWTService()
	logger := quietLogger()

	t.Run("Admin passes", func(t *testing.T) {
		router := setupTestRouter()
		router.GET("/admin", AuthMiddleware(jwtService, logger), RequireRole(models.RoleAdmin), func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"success": true})
		})
		token, err := jwtService.GenerateAccessToken("u-1", "admin", models.RoleAdmin)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, serve(router, "/admin", "Bearer "+token).Code)
	})

	t.Run("Staff is forbidden", func(t *testing.T) {
		router := setupTestRouter()
		router.GET("/admin", AuthMiddleware(jwtService, logger), RequireRole(models.RoleAdmin), func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "should not reach here"})
		})
		token, err := jwtService.GenerateAccessToken("u-2", "ops", models.RoleStaff)
		require.NoError(t, err)

		w := serve(router, "/admin", "Bearer "+token)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "INSUFFICIENT_PERMISSIONS")
	})

	t.Run("Multiple roles allowed", func(t *testing.T) {
		router := setupTestRouter()
		router.GET("/desk", AuthMiddleware(jwtService, logger), RequireRole(models.RoleAdmin, models.RoleStaff), func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"success": true})
		})
		token, err := jwtService.GenerateAccessToken("u-2", "ops", models.RoleStaff)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, serve(router, "/desk", "Bearer "+token).Code)
	})

	t.Run("No user context", func(t *testing.T) {
		router := setupTestRouter()
		router.GET("/no-auth", RequireRole(models.RoleAdmin), func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "should not reach here"})
		})

		w := serve(router, "/no-auth", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "MISSING_USER_CONTEXT")
	})
}

func TestGetUserContext(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	expected := UserContext{UserID: "u-1", Username: "admin", Role: models.RoleAdmin}
	c.Set(UserContextKey, expected)

	userCtx, exists := GetUserContext(c)
	assert.True(t, exists)
	assert.Equal(t, expected, userCtx)

	c2, _ := gin.CreateTestContext(httptest.NewRecorder())
	_, exists = GetUserContext(c2)
	assert.False(t, exists)

	c3, _ := gin.CreateTestContext(httptest.NewRecorder())
	c3.Set(UserContextKey, "wrong type")
	_, exists = GetUserContext(c3)
	assert.False(t, exists)
}
