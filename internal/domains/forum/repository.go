package forum

import (
	"context"

	"github.com/google/uuid"

	"github.com/BrieHudson/Chapter-Chat-Backend/pkg/database"
)

// Repository is the forum data access contract. Methods taking a Queryer
// participate in the caller's transaction.
type Repository interface {
	Insert(ctx context.Context, q database.Queryer, p *Post) error
	ListForClub(ctx context.Context, q database.Queryer, clubID uuid.UUID) ([]PostWithAuthor, error)

	// DeleteForClub clears the club's entire thread. Used when the club
	// moves on to a different book.
	DeleteForClub(ctx context.Context, q database.Queryer, clubID uuid.UUID) (int64, error)
}
