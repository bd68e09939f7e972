package bookclub

import (
	"context"

	"github.com/google/uuid"

	"github.com/BrieHudson/Chapter-Chat-Backend/pkg/database"
)

// Repository is the club data access contract. Methods taking a Queryer
// participate in the caller's transaction. The membership methods double as
// the forum's club directory.
type Repository interface {
	CreateClub(ctx context.Context, q database.Queryer, c *BookClub) error

	// AddMember inserts a membership row. Returns a duplicate sentinel when
	// the (user, club) pair already exists.
	AddMember(ctx context.Context, q database.Queryer, m *Membership) error

	GetByID(ctx context.Context, q database.Queryer, id uuid.UUID) (*BookClub, error)

	// GetView returns the club with creator and current-book summaries.
	GetView(ctx context.Context, id uuid.UUID) (*ClubView, error)

	// ListForUser returns every club the user belongs to, newest join first.
	ListForUser(ctx context.Context, userID uuid.UUID) ([]MemberClub, error)

	// Search matches query as a case-insensitive substring of name or
	// description.
	Search(ctx context.Context, query string) ([]ClubView, error)

	// UpdateClub applies the non-nil patch fields.
	UpdateClub(ctx context.Context, q database.Queryer, id uuid.UUID, p Patch) error

	IsMember(ctx context.Context, clubID, userID uuid.UUID) (bool, error)

	// ClubCurrentBook returns the club's current book id, with found=false
	// when the club does not exist.
	ClubCurrentBook(ctx context.Context, clubID uuid.UUID) (uuid.UUID, bool, error)

	// DeleteClub removes the club; memberships and posts cascade.
	DeleteClub(ctx context.Context, id uuid.UUID) error
}
