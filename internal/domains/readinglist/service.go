package readinglist

import (
	"context"

	"github.com/google/uuid"

	"github.com/BrieHudson/Chapter-Chat-Backend/internal/domains/book"
)

// Service owns the per-user book-status classification and the transitions
// between statuses.
type Service interface {
	// AddBook resolves the referenced book and files it under status,
	// atomically. Returns the resolved book.
	AddBook(ctx context.Context, userID uuid.UUID, ref book.Reference, status Status) (*book.Book, error)

	// GetGrouped partitions the user's entries into the three buckets.
	GetGrouped(ctx context.Context, userID uuid.UUID) (*GroupedLists, error)

	// MoveBook retargets the unique entry at (user, book, from) to status
	// to, atomically. Not-found rolls back with no partial effects.
	MoveBook(ctx context.Context, userID, bookID uuid.UUID, from, to Status) (*Entry, error)

	// DeleteBook removes the entry in any status; idempotent.
	DeleteBook(ctx context.Context, userID, bookID uuid.UUID) error
}
