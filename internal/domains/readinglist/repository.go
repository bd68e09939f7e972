package readinglist

import (
	"context"

	"github.com/google/uuid"

	"github.com/BrieHudson/Chapter-Chat-Backend/pkg/database"
)

// Repository is the reading-list data access contract. Methods taking a
// Queryer participate in the caller's transaction.
type Repository interface {
	Insert(ctx context.Context, q database.Queryer, e *Entry) error
	ListWithBooks(ctx context.Context, userID uuid.UUID) ([]EntryWithBook, error)

	// FindByStatus locates the unique entry at (user, book, status).
	FindByStatus(ctx context.Context, q database.Queryer, userID, bookID uuid.UUID, status Status) (*Entry, error)

	UpdateStatus(ctx context.Context, q database.Queryer, entryID uuid.UUID, to Status) error

	// Delete removes the entry regardless of status. Deleting a missing
	// entry is a no-op, not an error.
	Delete(ctx context.Context, userID, bookID uuid.UUID) error
}
