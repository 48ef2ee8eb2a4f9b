package middleware

import (
	"github.com/golang-jwt/jwt/v5"
)

// JWTCustomClaims are the admin token claims.
type JWTCustomClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}
