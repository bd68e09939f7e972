package book

import (
	"time"

	"github.com/google/uuid"
)

// Book is a catalog entry. Rows are created lazily the first time a given
// external reference is seen and never deleted.
type Book struct {
	ID            uuid.UUID  `json:"id" db:"id"`
	Title         string     `json:"title" db:"title"`
	Author        string     `json:"author" db:"author"`
	ISBN          *string    `json:"isbn,omitempty" db:"isbn"`
	Description   *string    `json:"description,omitempty" db:"description"`
	ThumbnailURL  *string    `json:"thumbnail_url,omitempty" db:"thumbnail_url"`
	GoogleBooksID *string    `json:"google_books_id,omitempty" db:"google_books_id"`
	Genre         *string    `json:"genre,omitempty" db:"genre"`
	PublishedDate *time.Time `json:"published_date,omitempty" db:"published_date"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Placeholder values when a reference arrives without title or author.
const (
	UnknownTitle  = "Unknown Title"
	UnknownAuthor = "Unknown Author"
)

// Reference identifies a book from the caller's side: an external catalog id,
// a title/author pair, or both. The resolver deduplicates references into
// local rows.
type Reference struct {
	GoogleBooksID string `json:"book_id,omitempty"`
	Title         string `json:"title,omitempty"`
	Author        string `json:"author,omitempty"`
	ISBN          string `json:"isbn,omitempty"`
	Description   string `json:"description,omitempty"`
	ThumbnailURL  string `json:"thumbnail_url,omitempty"`
}

// IsZero reports whether the reference carries nothing to resolve by.
func (r Reference) IsZero() bool {
	return r.GoogleBooksID == "" && r.Title == "" && r.Author == ""
}

// Summary is the slice of a book embedded in clubs and reading lists.
type Summary struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Author        string    `json:"author"`
	GoogleBooksID *string   `json:"google_books_id,omitempty"`
	ImageURL      *string   `json:"image_url,omitempty"`
	Description   *string   `json:"description,omitempty"`
}

func (b *Book) Summary() Summary {
	return Summary{
		ID:            b.ID,
		Title:         b.Title,
		Author:        b.Author,
		GoogleBooksID: b.GoogleBooksID,
		ImageURL:      b.ThumbnailURL,
		Description:   b.Description,
	}
}
