package auth

import "github.com/golang-jwt/jwt/v5"

// ClaimsKey 是用于在 gin.Context 中存储和检索调用者身份的键。
const ClaimsKey = "user_claims"

// CustomClaims 定义了 JWT 的自定义 Claims 结构体。
// UserID 是用户在数据库中的自增主键。
type CustomClaims struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}
