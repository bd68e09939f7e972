package admin

import (
	"context"

	"github.com/google/uuid"
)

// Service is the moderation contract. Every operation here sits behind the
// admin role check at the boundary.
type Service interface {
	// BanUser suspends the account and revokes its active sessions.
	BanUser(ctx context.Context, userID uuid.UUID) error

	// DeleteClub removes a club with its memberships and posts.
	DeleteClub(ctx context.Context, clubID uuid.UUID) error
}
