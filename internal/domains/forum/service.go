package forum

import (
	"context"

	"github.com/google/uuid"
)

// ClubDirectory answers the two club questions the forum needs without
// depending on the club domain directly.
type ClubDirectory interface {
	// ClubCurrentBook returns the club's current book id. The boolean is
	// false when the club does not exist.
	ClubCurrentBook(ctx context.Context, clubID uuid.UUID) (uuid.UUID, bool, error)

	IsMember(ctx context.Context, clubID, userID uuid.UUID) (bool, error)
}

// Service owns the append-only discussion log of each club.
type Service interface {
	// ListForClub returns the club's posts newest first, each with its
	// author's public fields.
	ListForClub(ctx context.Context, clubID uuid.UUID) ([]PostWithAuthor, error)

	// CreatePost appends a post for a club member. The post's book defaults
	// to the club's current book when the request names none.
	CreatePost(ctx context.Context, clubID, authorID uuid.UUID, req CreatePostRequest) (*PostWithAuthor, error)
}
