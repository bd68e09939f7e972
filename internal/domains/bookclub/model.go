package bookclub

import (
	"time"

	"github.com/google/uuid"

	"github.com/BrieHudson/Chapter-Chat-Backend/internal/domains/book"
	"github.com/BrieHudson/Chapter-Chat-Backend/internal/domains/forum"
	"github.com/BrieHudson/Chapter-Chat-Backend/internal/domains/user"
)

// BookClub is a reading group. The club always has a current book; forum
// discussion is scoped to it and cleared when the club moves on.
type BookClub struct {
	ID            uuid.UUID `json:"id" db:"id"`
	Name          string    `json:"name" db:"name"`
	Description   string    `json:"description" db:"description"`
	ImageURL      *string   `json:"image_url,omitempty" db:"image_url"`
	CreatorID     uuid.UUID `json:"creator_id" db:"creator_id"`
	InitialBookID uuid.UUID `json:"initial_book_id" db:"initial_book_id"`
	CurrentBookID uuid.UUID `json:"current_book_id" db:"current_book_id"`
	MeetingTime   time.Time `json:"meeting_time" db:"meeting_time"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Membership ties a user to a club. One row per (user, club) pair, enforced
// by a uniqueness constraint rather than find-then-create.
type Membership struct {
	ID         uuid.UUID `json:"id" db:"id"`
	UserID     uuid.UUID `json:"user_id" db:"user_id"`
	BookClubID uuid.UUID `json:"book_club_id" db:"book_club_id"`
	JoinedAt   time.Time `json:"joined_at" db:"joined_at"`
}

// ClubView is a club enriched with its creator and current book.
type ClubView struct {
	BookClub
	Creator     user.Summary `json:"creator"`
	CurrentBook book.Summary `json:"current_book"`
}

// MemberClub is one row of a user's club list.
type MemberClub struct {
	ClubView
	JoinedAt    time.Time `json:"joined_at"`
	MemberCount int       `json:"member_count"`
}

// Detail is the full club page: club, creator, current book, membership flag
// for the requesting user, and the forum thread newest first.
type Detail struct {
	ClubView
	IsMember bool                   `json:"isMember"`
	Posts    []forum.PostWithAuthor `json:"posts"`
}

// Patch carries resolved column updates for a partial club update. Nil
// fields are left untouched.
type Patch struct {
	Name          *string
	Description   *string
	ImageURL      *string
	MeetingTime   *time.Time
	CurrentBookID *uuid.UUID
}

// IsZero reports whether the patch changes nothing.
func (p Patch) IsZero() bool {
	return p.Name == nil && p.Description == nil && p.ImageURL == nil &&
		p.MeetingTime == nil && p.CurrentBookID == nil
}
