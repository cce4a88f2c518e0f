package utils

import (
	"errors"
	"time"

	"go-splendor/config"

	"github.com/golang-jwt/jwt/v4"
)

var accessSecret = []byte("access-secret")
var refreshSecret = []byte("refresh-secret")

const (
	accessTTL  = 2 * time.Hour
	refreshTTL = 7 * 24 * time.Hour
)

// Init 用配置里的密钥替换默认值
func Init(cfg *config.Config) {
	if cfg.JWTAccessSecret != "" {
		accessSecret = []byte(cfg.JWTAccessSecret)
	}
	if cfg.JWTRefreshSecret != "" {
		refreshSecret = []byte(cfg.JWTRefreshSecret)
	}
}

type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

func newToken(userID, issuer string, ttl time.Duration, secret []byte) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    issuer,
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func GenerateAccessToken(userID string) (string, error) {
	return newToken(userID, "splendor-access", accessTTL, accessSecret)
}

func GenerateRefreshToken(userID string) (string, error) {
	return newToken(userID, "splendor-refresh", refreshTTL, refreshSecret)
}

func ParseAccessToken(tokenStr string) (*Claims, error) {
	return parseToken(tokenStr, accessSecret)
}

func ParseRefreshToken(tokenStr string) (*Claims, error) {
	return parseToken(tokenStr, refreshSecret)
}

func parseToken(tokenStr string, secret []byte) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}
