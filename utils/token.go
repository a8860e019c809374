package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"property-backend/config"
)

// GenerateAccessToken issues a signed HS256 token for the admin user.
func GenerateAccessToken(username string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		ExpiresAt: jwt.NewNumericDate(now.Add(24 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(now),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.JWTSecret())
}
