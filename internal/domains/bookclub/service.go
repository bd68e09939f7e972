package bookclub

import (
	"context"

	"github.com/google/uuid"
)

// Service is the club business logic contract.
type Service interface {
	// Create makes the club and the creator's founding membership in one
	// transaction.
	Create(ctx context.Context, creatorID uuid.UUID, req CreateClubRequest) (*ClubView, error)

	GetForUser(ctx context.Context, userID uuid.UUID) ([]MemberClub, error)

	// GetDetail returns the full club page with isMember computed for the
	// requesting user.
	GetDetail(ctx context.Context, clubID, requestingUserID uuid.UUID) (*Detail, error)

	Search(ctx context.Context, query string) ([]ClubView, error)

	// Update applies a creator-only partial update. Changing the current
	// book clears the club's forum thread.
	Update(ctx context.Context, clubID, requestingUserID uuid.UUID, req UpdateClubRequest) (*ClubView, error)

	Join(ctx context.Context, clubID, userID uuid.UUID) error

	// Delete removes a club outright. Admin use only.
	Delete(ctx context.Context, clubID uuid.UUID) error
}
