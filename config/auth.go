package config

import (
	"os"

	"github.com/sirupsen/logrus"
)

const devSecret = "property-backend-dev-secret"

// JWTSecret returns the token signing key. The login endpoint is a
// single-admin convenience, not a security boundary, so a missing env
// var falls back to a development key with a warning instead of
// refusing to start.
func JWTSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		logrus.Warn("JWT_SECRET not set, using development default")
		return []byte(devSecret)
	}
	return []byte(secret)
}
