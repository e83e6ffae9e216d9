// Package token 提供了用于生成和验证访客 JSON Web Tokens (JWT) 的功能。
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTManager 负责管理 JWT 的生成和验证。
type JWTManager struct {
	secretKey []byte        // secretKey 用于签名和验证 token 的密钥
	tokenDur  time.Duration // tokenDur 定义了访客 token 的有效期
}

// VisitorClaims 定义了访客 token 中携带的数据。
// 访客是匿名的，token 只用来把请求关联到同一份偏好记录和工作区。
type VisitorClaims struct {
	VisitorID string `json:"visitorId"`
	jwt.RegisteredClaims
}

// NewJWTManager 创建一个新的 JWTManager 实例。
// expireHours 为 0 时签发的 token 不过期。
func NewJWTManager(secret string, expireHours int) *JWTManager {
	return &JWTManager{
		secretKey: []byte(secret),
		tokenDur:  time.Hour * time.Duration(expireHours),
	}
}

// GenerateToken 为给定的访客签发一个新的 token。
func (m *JWTManager) GenerateToken(visitorID string) (string, error) {
	now := time.Now()
	claims := VisitorClaims{
		VisitorID: visitorID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   visitorID,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	if m.tokenDur > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(m.tokenDur))
	}
	// 使用 HS256 签名方法创建新的 token 对象
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secretKey)
}

// VerifyToken 验证给定的 token 字符串。
// 如果 token 有效，它会返回 VisitorClaims 对象；签名不匹配或已过期时返回错误。
func (m *JWTManager) VerifyToken(tokenString string) (*VisitorClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &VisitorClaims{}, func(token *jwt.Token) (interface{}, error) {
		// 检查签名方法是否为 HMAC
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secretKey, nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*VisitorClaims); ok && token.Valid && claims.VisitorID != "" {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}
