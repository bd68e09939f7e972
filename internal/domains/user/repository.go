package user

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the data access contract for accounts.
type Repository interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)

	// IncrementTokenVersion revokes every outstanding session token.
	IncrementTokenVersion(ctx context.Context, id uuid.UUID) error

	// Ban suspends the account and revokes its sessions in one statement.
	Ban(ctx context.Context, id uuid.UUID) error
}
