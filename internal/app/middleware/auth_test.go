package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	service_auth "github.com/mojianxun/newshub/pkg/service/auth"
)

func setupAuthedRouter(t *testing.T, tokenSvc service_auth.TokenService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	mw := NewMiddleware(tokenSvc)
	engine.POST("/protected", mw.JWTAuth(), func(c *gin.Context) {
		userID, ok := CurrentUserID(c)
		require.True(t, ok, "认证通过后应能取到用户ID")
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	return engine
}

func TestJWTAuthMissingHeader(t *testing.T) {
	engine := setupAuthedRouter(t, service_auth.NewTokenService("secret"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthMalformedHeader(t *testing.T) {
	engine := setupAuthedRouter(t, service_auth.NewTokenService("secret"))

	// 缺少 Bearer 前缀
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	req.Header.Set("Authorization", "just-a-token")
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthInvalidToken(t *testing.T) {
	engine := setupAuthedRouter(t, service_auth.NewTokenService("secret"))

	// 凭证存在但校验失败，约定返回 403 而不是 401
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	req.Header.Set("Authorization", "Bearer invalid.token.here")
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestJWTAuthWrongSecret(t *testing.T) {
	other := service_auth.NewTokenService("other-secret")
	token, err := other.IssueAccessToken(context.Background(), 5)
	require.NoError(t, err)

	engine := setupAuthedRouter(t, service_auth.NewTokenService("secret"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestJWTAuthValidToken(t *testing.T) {
	tokenSvc := service_auth.NewTokenService("secret")
	token, err := tokenSvc.IssueAccessToken(context.Background(), 9)
	require.NoError(t, err)

	engine := setupAuthedRouter(t, tokenSvc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":9`)
}
