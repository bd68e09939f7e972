package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/BrieHudson/Chapter-Chat-Backend/internal/domains/book"
	"github.com/BrieHudson/Chapter-Chat-Backend/internal/domains/readinglist"
	"github.com/BrieHudson/Chapter-Chat-Backend/pkg/database"
)

var (
	ErrEntryNotFound  = errors.New("reading list entry not found")
	ErrDuplicateEntry = errors.New("reading list entry already exists")
)

type postgresReadingListRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresReadingListRepository(pool *pgxpool.Pool) readinglist.Repository {
	return &postgresReadingListRepository{pool: pool}
}

func (r *postgresReadingListRepository) Insert(ctx context.Context, q database.Queryer, e *readinglist.Entry) error {
	query := `
		INSERT INTO reading_lists (id, user_id, book_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := q.Exec(ctx, query, e.ID, e.UserID, e.BookID, e.Status, e.CreatedAt, e.UpdatedAt)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return ErrDuplicateEntry
		}
		return fmt.Errorf("failed to insert reading list entry: %w", err)
	}
	return nil
}

func (r *postgresReadingListRepository) ListWithBooks(ctx context.Context, userID uuid.UUID) ([]readinglist.EntryWithBook, error) {
	query := `
		SELECT rl.id, rl.user_id, rl.book_id, rl.status, rl.created_at, rl.updated_at,
		       b.id, b.title, b.author, b.google_books_id, b.thumbnail_url, b.description
		FROM reading_lists rl
		JOIN books b ON b.id = rl.book_id
		WHERE rl.user_id = $1
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reading list entries: %w", err)
	}
	defer rows.Close()

	var entries []readinglist.EntryWithBook
	for rows.Next() {
		var e readinglist.EntryWithBook
		var b book.Summary
		err := rows.Scan(
			&e.ID, &e.UserID, &e.BookID, &e.Status, &e.CreatedAt, &e.UpdatedAt,
			&b.ID, &b.Title, &b.Author, &b.GoogleBooksID, &b.ImageURL, &b.Description,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reading list row: %w", err)
		}
		e.Book = b
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read reading list rows: %w", err)
	}

	return entries, nil
}

func (r *postgresReadingListRepository) FindByStatus(ctx context.Context, q database.Queryer, userID, bookID uuid.UUID, status readinglist.Status) (*readinglist.Entry, error) {
	query := `
		SELECT id, user_id, book_id, status, created_at, updated_at
		FROM reading_lists
		WHERE user_id = $1 AND book_id = $2 AND status = $3
	`

	e := &readinglist.Entry{}
	err := q.QueryRow(ctx, query, userID, bookID, status).Scan(
		&e.ID, &e.UserID, &e.BookID, &e.Status, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to find reading list entry: %w", err)
	}
	return e, nil
}

func (r *postgresReadingListRepository) UpdateStatus(ctx context.Context, q database.Queryer, entryID uuid.UUID, to readinglist.Status) error {
	query := `UPDATE reading_lists SET status = $1, updated_at = NOW() WHERE id = $2`

	tag, err := q.Exec(ctx, query, to, entryID)
	if err != nil {
		return fmt.Errorf("failed to update reading list status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrEntryNotFound
	}
	return nil
}

func (r *postgresReadingListRepository) Delete(ctx context.Context, userID, bookID uuid.UUID) error {
	query := `DELETE FROM reading_lists WHERE user_id = $1 AND book_id = $2`

	// Zero rows affected is fine: delete is idempotent.
	if _, err := r.pool.Exec(ctx, query, userID, bookID); err != nil {
		return fmt.Errorf("failed to delete reading list entry: %w", err)
	}
	return nil
}
