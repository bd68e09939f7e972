package readinglist

import (
	"time"

	"github.com/google/uuid"

	"github.com/BrieHudson/Chapter-Chat-Backend/internal/domains/book"
)

// Status classifies one user's relationship to one book.
// There is no transition graph: any status may move to any other directly.
type Status string

const (
	StatusWantToRead Status = "want_to_read"
	StatusReading    Status = "reading"
	StatusRead       Status = "read"
)

func (s Status) Valid() bool {
	switch s {
	case StatusWantToRead, StatusReading, StatusRead:
		return true
	}
	return false
}

// AllStatuses in bucket order.
func AllStatuses() []Status {
	return []Status{StatusWantToRead, StatusReading, StatusRead}
}

// Entry is one (user, book, status) row. A user holds at most one entry per
// book, enforced by a unique constraint on (user_id, book_id).
type Entry struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	BookID    uuid.UUID `json:"book_id" db:"book_id"`
	Status    Status    `json:"status" db:"status"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// EntryWithBook joins an entry with its book summary for listing.
type EntryWithBook struct {
	Entry
	Book book.Summary `json:"book"`
}

// GroupedLists is the three-bucket view of a user's reading list.
// Buckets are always non-nil, empty when the user has nothing there.
type GroupedLists struct {
	WantToRead []book.Summary `json:"want_to_read"`
	Reading    []book.Summary `json:"reading"`
	Read       []book.Summary `json:"read"`
}
