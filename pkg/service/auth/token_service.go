/*
 * @Description:
 * @Author: 墨见寻
 * @Date: 2026-03-05 10:02:16
 * @LastEditTime: 2026-04-19 21:15:40
 * @LastEditors: 墨见寻
 */
package auth

import (
	"context"
	"fmt"

	"github.com/mojianxun/newshub/internal/pkg/auth"
)

// TokenService 负责访问令牌的签发与校验。
type TokenService interface {
	IssueAccessToken(ctx context.Context, userID uint) (string, error)
	ParseAccessToken(ctx context.Context, accessToken string) (*auth.CustomClaims, error)
}

type tokenService struct {
	secret []byte
}

// NewTokenService 构造函数
func NewTokenService(secret string) TokenService {
	return &tokenService{secret: []byte(secret)}
}

func (s *tokenService) IssueAccessToken(ctx context.Context, userID uint) (string, error) {
	if len(s.secret) == 0 {
		return "", fmt.Errorf("JWT_SECRET 未配置，无法生成令牌")
	}
	return auth.GenerateToken(userID, s.secret)
}

// ParseAccessToken 负责解析和验证 access token。
// 任何非法输入（签名错误、格式损坏、已过期）都以 error 返回。
func (s *tokenService) ParseAccessToken(ctx context.Context, accessToken string) (*auth.CustomClaims, error) {
	if len(s.secret) == 0 {
		return nil, fmt.Errorf("JWT_SECRET 未配置，无法解析令牌")
	}
	return auth.ParseToken(accessToken, s.secret)
}
