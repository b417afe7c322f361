package usecase

import (
	"context"

	"pizzeria/internal/domain/entity"
)

// --- Input DTOs ---

// SignupInput defines the data required to register a new account.
type SignupInput struct {
	Username string
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// TokenPairOutput returns the generated tokens after a successful login.
type TokenPairOutput struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// AccessTokenOutput returns a fresh access token from the refresh flow.
type AccessTokenOutput struct {
	AccessToken string `json:"access_token"`
}

// UserUsecase defines the interface for account-related business operations.
type UserUsecase interface {
	// Signup registers a new account with a hashed password credential.
	Signup(ctx context.Context, input *SignupInput) (*entity.User, error)

	// Login verifies credentials and issues an access/refresh token pair.
	Login(ctx context.Context, input *LoginInput) (*TokenPairOutput, error)

	// Refresh exchanges a valid refresh token for a new access token.
	Refresh(ctx context.Context, refreshToken string) (*AccessTokenOutput, error)
}
