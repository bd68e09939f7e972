package book

import (
	"context"

	"github.com/google/uuid"

	"github.com/BrieHudson/Chapter-Chat-Backend/pkg/database"
)

// Repository is the catalog data access contract. Methods taking a Queryer
// participate in the caller's transaction.
type Repository interface {
	GetByID(ctx context.Context, q database.Queryer, id uuid.UUID) (*Book, error)
	FindByGoogleID(ctx context.Context, q database.Queryer, googleID string) (*Book, error)
	FindByTitleAuthor(ctx context.Context, q database.Queryer, title, author string) (*Book, error)

	// UpsertByGoogleID inserts b, or returns the existing row when another
	// writer got there first. Safe under concurrent first-time inserts.
	UpsertByGoogleID(ctx context.Context, q database.Queryer, b *Book) (*Book, error)

	Create(ctx context.Context, q database.Queryer, b *Book) error
}
