/*
 * @Description: JWT 认证中间件
 * @Author: 墨见寻
 * @Date: 2026-03-06 09:30:44
 * @LastEditTime: 2026-05-22 15:17:09
 * @LastEditors: 墨见寻
 */
package middleware

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mojianxun/newshub/internal/pkg/auth"
	"github.com/mojianxun/newshub/pkg/response"
	service_auth "github.com/mojianxun/newshub/pkg/service/auth"
)

type Middleware struct {
	tokenSvc service_auth.TokenService
}

func NewMiddleware(tokenSvc service_auth.TokenService) *Middleware {
	return &Middleware{tokenSvc: tokenSvc}
}

// JWTAuth 是一个强制性的JWT认证中间件，只挂在写操作路由上。
// 凭证缺失或格式不对返回 401；凭证存在但校验失败返回 403。
// 这条 401/403 的不对称是接口契约的一部分。
func (m *Middleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.Request.Header.Get("Authorization")
		if authHeader == "" {
			response.Fail(c, http.StatusUnauthorized, "请求未携带Token，无权限访问")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			response.Fail(c, http.StatusUnauthorized, "Token格式不正确")
			c.Abort()
			return
		}

		claims, err := m.tokenSvc.ParseAccessToken(c.Request.Context(), parts[1])
		if err != nil {
			log.Printf("[JWTAuth] Token解析失败: %v", err)
			response.Fail(c, http.StatusForbidden, "无效或已过期的Token")
			c.Abort()
			return
		}

		c.Set(auth.ClaimsKey, claims)
		c.Next()
	}
}

// CurrentUserID 从请求上下文中取出认证中间件写入的调用者身份。
// 下游始终通过显式参数传递该身份，而不是各处读取全局状态。
func CurrentUserID(c *gin.Context) (uint, bool) {
	claimsValue, exists := c.Get(auth.ClaimsKey)
	if !exists {
		return 0, false
	}
	claims, ok := claimsValue.(*auth.CustomClaims)
	if !ok {
		return 0, false
	}
	return claims.UserID, true
}
