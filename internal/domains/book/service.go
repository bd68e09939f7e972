package book

import (
	"context"

	"github.com/BrieHudson/Chapter-Chat-Backend/internal/infrastructure/googlebooks"
	"github.com/BrieHudson/Chapter-Chat-Backend/pkg/database"
)

// Resolver deduplicates external book references into local catalog rows.
// The Queryer lets callers resolve inside their own transaction so a failed
// multi-row operation never leaves an orphaned book reference.
type Resolver interface {
	Resolve(ctx context.Context, q database.Queryer, ref Reference) (*Book, error)
}

// Service is the catalog business logic contract, including the Google
// Books proxy endpoints.
type Service interface {
	Resolver

	SearchVolumes(ctx context.Context, query string, maxResults int) (*googlebooks.SearchResult, error)

	// GetByGoogleID serves the local row when the book is already in the
	// catalog and falls back to the external API otherwise.
	GetByGoogleID(ctx context.Context, googleID string) (interface{}, error)
}
