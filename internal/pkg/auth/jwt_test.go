package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var testSecret = []byte("unit-test-secret")

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken(42, testSecret)
	if err != nil {
		t.Fatalf("GenerateToken 返回错误: %v", err)
	}

	claims, err := ParseToken(token, testSecret)
	if err != nil {
		t.Fatalf("ParseToken 返回错误: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, 期望 42", claims.UserID)
	}
	if claims.Issuer != "newshub" {
		t.Errorf("Issuer = %q, 期望 newshub", claims.Issuer)
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken(1, testSecret)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ParseToken(token, []byte("another-secret")); err == nil {
		t.Error("错误密钥解析应当失败")
	}
}

func TestParseTokenGarbage(t *testing.T) {
	if _, err := ParseToken("not-a-jwt", testSecret); err == nil {
		t.Error("非法格式应当失败")
	}
}

func TestParseExpiredToken(t *testing.T) {
	// 手工构造一个已过期的令牌
	now := time.Now()
	claims := CustomClaims{
		UserID: 7,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
			NotBefore: jwt.NewNumericDate(now.Add(-2 * time.Hour)),
			Issuer:    "newshub",
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := ParseToken(token, testSecret); err == nil {
		t.Error("过期令牌解析应当失败")
	}
}

func TestGenerateTokenEmptySecret(t *testing.T) {
	if _, err := GenerateToken(1, nil); err == nil {
		t.Error("空密钥应当返回错误")
	}
}
