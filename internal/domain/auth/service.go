package auth

import "context"

// AuthService defines business logic for authentication
type AuthService interface {
	// Register creates a user account
	Register(ctx context.Context, req RegisterRequest) (UserResponse, error)

	// Login verifies credentials and issues an access/refresh token pair
	Login(ctx context.Context, req LoginRequest) (TokenPairResponse, error)

	// Refresh rotates a refresh token into a new token pair
	Refresh(ctx context.Context, refreshToken string) (TokenPairResponse, error)

	// Logout revokes the refresh token
	Logout(ctx context.Context, refreshToken string) error
}
