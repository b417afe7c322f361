// Package service defines domain service contracts implemented by the infra layer.
package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token type values carried in the "type" claim.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims defines the custom claims for the JWT tokens.
// The subject claim holds the username of the authenticated account
// (Username shadows the embedded RegisteredClaims.Subject on the wire).
type Claims struct {
	Username string `json:"sub"`
	Type     string `json:"type"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for a given user.
	GenerateTokens(username string) (accessToken string, refreshToken string, err error)

	// GenerateAccessToken creates a new access token only, used by the
	// refresh flow which must not rotate the refresh token.
	GenerateAccessToken(username string) (string, error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*Claims, error)
}
