package user

import (
	"context"

	"github.com/google/uuid"
)

// Service is the account business logic contract.
type Service interface {
	Signup(ctx context.Context, req SignupRequest) (*SignupResponse, error)
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)

	// Logout bumps the token version so every issued token is revoked.
	Logout(ctx context.Context, userID uuid.UUID) error
}
