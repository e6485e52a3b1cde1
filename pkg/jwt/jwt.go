package jwt

import (
	"errors"
	"fmt"
	"time"

	"ttland-cms/config"

	"github.com/golang-jwt/jwt/v5"
)

// JWT错误定义
var (
	ErrTokenExpired     = errors.New("token已过期")
	ErrTokenNotValidYet = errors.New("token尚未激活")
	ErrTokenMalformed   = errors.New("token格式错误")
	ErrTokenInvalid     = errors.New("token无效")
	ErrWrongTokenType   = errors.New("token类型不匹配")
)

// TokenType 令牌类型
type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// CustomClaims JWT载荷，user_id 为 users 表的 uuid
type CustomClaims struct {
	UserId    string    `json:"user_id"`
	TokenType TokenType `json:"token_type"`
	jwt.RegisteredClaims
}

// JWTManager JWT管理器
type JWTManager struct {
	signingKey    []byte
	issuer        string
	accessExpiry  time.Duration
	refreshExpiry time.Duration
}

// NewJWTManager 从配置创建JWT管理器
func NewJWTManager() *JWTManager {
	cfg := config.GetConfig()
	return &JWTManager{
		signingKey:    []byte(cfg.JWT.SigningKey),
		issuer:        cfg.JWT.Issuer,
		accessExpiry:  cfg.JWT.AccessExpiry,
		refreshExpiry: cfg.JWT.RefreshExpiry,
	}
}

// GenerateTokenPair 为用户签发 access/refresh 令牌对
func (j *JWTManager) GenerateTokenPair(userId string) (access string, refresh string, err error) {
	access, err = j.generate(userId, TokenTypeAccess, j.accessExpiry)
	if err != nil {
		return "", "", err
	}
	refresh, err = j.generate(userId, TokenTypeRefresh, j.refreshExpiry)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

// GenerateAccessToken 签发 access 令牌
func (j *JWTManager) GenerateAccessToken(userId string) (string, error) {
	return j.generate(userId, TokenTypeAccess, j.accessExpiry)
}

func (j *JWTManager) generate(userId string, tokenType TokenType, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := CustomClaims{
		UserId:    userId,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userId,
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    j.issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.signingKey)
}

// ParseToken 解析token
func (j *JWTManager) ParseToken(tokenString string) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		// 验证签名方法
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("意外的签名方法: %v", token.Header["alg"])
		}
		return j.signingKey, nil
	})

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenNotValidYet):
			return nil, ErrTokenNotValidYet
		default:
			return nil, ErrTokenInvalid
		}
	}

	if claims, ok := token.Claims.(*CustomClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrTokenInvalid
}

// ParseTokenOfType 解析并校验令牌类型
func (j *JWTManager) ParseTokenOfType(tokenString string, tokenType TokenType) (*CustomClaims, error) {
	claims, err := j.ParseToken(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != tokenType {
		return nil, ErrWrongTokenType
	}
	return claims, nil
}

// RefreshAccessToken 用 refresh 令牌换取新的 access 令牌
func (j *JWTManager) RefreshAccessToken(refreshToken string) (string, error) {
	claims, err := j.ParseTokenOfType(refreshToken, TokenTypeRefresh)
	if err != nil {
		return "", err
	}
	return j.GenerateAccessToken(claims.UserId)
}
