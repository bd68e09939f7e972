package forum

import (
	"time"

	"github.com/google/uuid"
)

// Post is one message in a club's discussion thread. Posts are append-only
// and scoped to the book the club is currently reading: when the club moves
// to a new book the thread is cleared.
type Post struct {
	ID               uuid.UUID  `json:"id" db:"id"`
	BookClubID       uuid.UUID  `json:"book_club_id" db:"book_club_id"`
	UserID           uuid.UUID  `json:"user_id" db:"user_id"`
	BookID           *uuid.UUID `json:"book_id,omitempty" db:"book_id"`
	Content          string     `json:"content" db:"content"`
	ContainsSpoilers bool       `json:"contains_spoilers" db:"contains_spoilers"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// PostWithAuthor is a post joined with its author's public fields.
type PostWithAuthor struct {
	Post
	Username string `json:"username"`
}
