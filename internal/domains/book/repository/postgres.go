package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/BrieHudson/Chapter-Chat-Backend/internal/domains/book"
	"github.com/BrieHudson/Chapter-Chat-Backend/pkg/database"
)

// ErrBookNotFound is a repository-level sentinel; services decide how (or
// whether) it surfaces to callers.
var ErrBookNotFound = errors.New("book not found")

type postgresBookRepository struct{}

func NewPostgresBookRepository() book.Repository {
	return &postgresBookRepository{}
}

const bookColumns = `id, title, author, isbn, description, thumbnail_url, google_books_id, genre, published_date, created_at, updated_at`

func scanBook(row pgx.Row) (*book.Book, error) {
	b := &book.Book{}
	err := row.Scan(
		&b.ID,
		&b.Title,
		&b.Author,
		&b.ISBN,
		&b.Description,
		&b.ThumbnailURL,
		&b.GoogleBooksID,
		&b.Genre,
		&b.PublishedDate,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *postgresBookRepository) GetByID(ctx context.Context, q database.Queryer, id uuid.UUID) (*book.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE id = $1`

	b, err := scanBook(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book: %w", err)
	}
	return b, nil
}

func (r *postgresBookRepository) FindByGoogleID(ctx context.Context, q database.Queryer, googleID string) (*book.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE google_books_id = $1`

	b, err := scanBook(q.QueryRow(ctx, query, googleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to find book by google id: %w", err)
	}
	return b, nil
}

func (r *postgresBookRepository) FindByTitleAuthor(ctx context.Context, q database.Queryer, title, author string) (*book.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE title = $1 AND author = $2`

	b, err := scanBook(q.QueryRow(ctx, query, title, author))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to find book by title/author: %w", err)
	}
	return b, nil
}

func (r *postgresBookRepository) UpsertByGoogleID(ctx context.Context, q database.Queryer, b *book.Book) (*book.Book, error) {
	// The do-nothing update on conflict lets RETURNING yield the winner's
	// row without modifying it, so two concurrent first-time inserts for the
	// same google_books_id converge on a single book.
	query := `
		INSERT INTO books (id, title, author, isbn, description, thumbnail_url, google_books_id, genre, published_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (google_books_id)
		DO UPDATE SET google_books_id = EXCLUDED.google_books_id
		RETURNING ` + bookColumns

	stored, err := scanBook(q.QueryRow(ctx, query,
		b.ID,
		b.Title,
		b.Author,
		b.ISBN,
		b.Description,
		b.ThumbnailURL,
		b.GoogleBooksID,
		b.Genre,
		b.PublishedDate,
		b.CreatedAt,
		b.UpdatedAt,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to upsert book: %w", err)
	}
	return stored, nil
}

func (r *postgresBookRepository) Create(ctx context.Context, q database.Queryer, b *book.Book) error {
	query := `
		INSERT INTO books (id, title, author, isbn, description, thumbnail_url, google_books_id, genre, published_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := q.Exec(ctx, query,
		b.ID,
		b.Title,
		b.Author,
		b.ISBN,
		b.Description,
		b.ThumbnailURL,
		b.GoogleBooksID,
		b.Genre,
		b.PublishedDate,
		b.CreatedAt,
		b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create book: %w", err)
	}
	return nil
}
