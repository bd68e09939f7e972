package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/BrieHudson/Chapter-Chat-Backend/internal/domains/bookclub"
	"github.com/BrieHudson/Chapter-Chat-Backend/pkg/database"
)

var (
	ErrClubNotFound        = errors.New("book club not found")
	ErrDuplicateMembership = errors.New("membership already exists")
)

const viewColumns = `
	c.id, c.name, c.description, c.image_url, c.creator_id, c.initial_book_id,
	c.current_book_id, c.meeting_time, c.created_at, c.updated_at,
	u.id, u.username,
	b.id, b.title, b.author, b.google_books_id, b.thumbnail_url, b.description
`

type postgresBookClubRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresBookClubRepository(pool *pgxpool.Pool) bookclub.Repository {
	return &postgresBookClubRepository{pool: pool}
}

func (r *postgresBookClubRepository) CreateClub(ctx context.Context, q database.Queryer, c *bookclub.BookClub) error {
	query := `
		INSERT INTO book_clubs (id, name, description, image_url, creator_id, initial_book_id, current_book_id, meeting_time, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := q.Exec(ctx, query,
		c.ID, c.Name, c.Description, c.ImageURL, c.CreatorID,
		c.InitialBookID, c.CurrentBookID, c.MeetingTime, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert book club: %w", err)
	}
	return nil
}

func (r *postgresBookClubRepository) AddMember(ctx context.Context, q database.Queryer, m *bookclub.Membership) error {
	query := `
		INSERT INTO book_club_memberships (id, user_id, book_club_id, joined_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := q.Exec(ctx, query, m.ID, m.UserID, m.BookClubID, m.JoinedAt)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return ErrDuplicateMembership
		}
		return fmt.Errorf("failed to insert membership: %w", err)
	}
	return nil
}

func (r *postgresBookClubRepository) GetByID(ctx context.Context, q database.Queryer, id uuid.UUID) (*bookclub.BookClub, error) {
	query := `
		SELECT id, name, description, image_url, creator_id, initial_book_id,
		       current_book_id, meeting_time, created_at, updated_at
		FROM book_clubs
		WHERE id = $1
	`

	c := &bookclub.BookClub{}
	err := q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Description, &c.ImageURL, &c.CreatorID, &c.InitialBookID,
		&c.CurrentBookID, &c.MeetingTime, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrClubNotFound
		}
		return nil, fmt.Errorf("failed to find book club: %w", err)
	}
	return c, nil
}

func (r *postgresBookClubRepository) GetView(ctx context.Context, id uuid.UUID) (*bookclub.ClubView, error) {
	query := `
		SELECT ` + viewColumns + `
		FROM book_clubs c
		JOIN users u ON u.id = c.creator_id
		JOIN books b ON b.id = c.current_book_id
		WHERE c.id = $1
	`

	v := &bookclub.ClubView{}
	if err := scanView(r.pool.QueryRow(ctx, query, id), v); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrClubNotFound
		}
		return nil, fmt.Errorf("failed to load book club view: %w", err)
	}
	return v, nil
}

func (r *postgresBookClubRepository) ListForUser(ctx context.Context, userID uuid.UUID) ([]bookclub.MemberClub, error) {
	query := `
		SELECT ` + viewColumns + `,
		       m.joined_at,
		       (SELECT COUNT(*) FROM book_club_memberships mc WHERE mc.book_club_id = c.id) AS member_count
		FROM book_club_memberships m
		JOIN book_clubs c ON c.id = m.book_club_id
		JOIN users u ON u.id = c.creator_id
		JOIN books b ON b.id = c.current_book_id
		WHERE m.user_id = $1
		ORDER BY m.joined_at DESC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user clubs: %w", err)
	}
	defer rows.Close()

	var clubs []bookclub.MemberClub
	for rows.Next() {
		var mc bookclub.MemberClub
		err := rows.Scan(
			&mc.ID, &mc.Name, &mc.Description, &mc.ImageURL, &mc.CreatorID, &mc.InitialBookID,
			&mc.CurrentBookID, &mc.MeetingTime, &mc.CreatedAt, &mc.UpdatedAt,
			&mc.Creator.ID, &mc.Creator.Username,
			&mc.CurrentBook.ID, &mc.CurrentBook.Title, &mc.CurrentBook.Author,
			&mc.CurrentBook.GoogleBooksID, &mc.CurrentBook.ImageURL, &mc.CurrentBook.Description,
			&mc.JoinedAt, &mc.MemberCount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user club row: %w", err)
		}
		clubs = append(clubs, mc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read user club rows: %w", err)
	}

	return clubs, nil
}

func (r *postgresBookClubRepository) Search(ctx context.Context, query string) ([]bookclub.ClubView, error) {
	sql := `
		SELECT ` + viewColumns + `
		FROM book_clubs c
		JOIN users u ON u.id = c.creator_id
		JOIN books b ON b.id = c.current_book_id
		WHERE c.name ILIKE $1 OR c.description ILIKE $1
		ORDER BY c.created_at DESC
	`

	rows, err := r.pool.Query(ctx, sql, "%"+query+"%")
	if err != nil {
		return nil, fmt.Errorf("failed to search book clubs: %w", err)
	}
	defer rows.Close()

	var clubs []bookclub.ClubView
	for rows.Next() {
		var v bookclub.ClubView
		if err := scanView(rows, &v); err != nil {
			return nil, fmt.Errorf("failed to scan book club row: %w", err)
		}
		clubs = append(clubs, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read book club rows: %w", err)
	}

	return clubs, nil
}

func (r *postgresBookClubRepository) UpdateClub(ctx context.Context, q database.Queryer, id uuid.UUID, p bookclub.Patch) error {
	sets := []string{"updated_at = NOW()"}
	args := []interface{}{id}

	add := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if p.Name != nil {
		add("name", *p.Name)
	}
	if p.Description != nil {
		add("description", *p.Description)
	}
	if p.ImageURL != nil {
		add("image_url", *p.ImageURL)
	}
	if p.MeetingTime != nil {
		add("meeting_time", *p.MeetingTime)
	}
	if p.CurrentBookID != nil {
		add("current_book_id", *p.CurrentBookID)
	}

	query := fmt.Sprintf("UPDATE book_clubs SET %s WHERE id = $1", strings.Join(sets, ", "))

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update book club: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrClubNotFound
	}
	return nil
}

func (r *postgresBookClubRepository) IsMember(ctx context.Context, clubID, userID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM book_club_memberships WHERE book_club_id = $1 AND user_id = $2)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, clubID, userID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check membership: %w", err)
	}
	return exists, nil
}

func (r *postgresBookClubRepository) ClubCurrentBook(ctx context.Context, clubID uuid.UUID) (uuid.UUID, bool, error) {
	query := `SELECT current_book_id FROM book_clubs WHERE id = $1`

	var bookID uuid.UUID
	err := r.pool.QueryRow(ctx, query, clubID).Scan(&bookID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, false, nil
		}
		return uuid.Nil, false, fmt.Errorf("failed to load club current book: %w", err)
	}
	return bookID, true, nil
}

func (r *postgresBookClubRepository) DeleteClub(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM book_clubs WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete book club: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrClubNotFound
	}
	return nil
}

// scanView reads one view row in viewColumns order.
func scanView(row pgx.Row, v *bookclub.ClubView) error {
	return row.Scan(
		&v.ID, &v.Name, &v.Description, &v.ImageURL, &v.CreatorID, &v.InitialBookID,
		&v.CurrentBookID, &v.MeetingTime, &v.CreatedAt, &v.UpdatedAt,
		&v.Creator.ID, &v.Creator.Username,
		&v.CurrentBook.ID, &v.CurrentBook.Title, &v.CurrentBook.Author,
		&v.CurrentBook.GoogleBooksID, &v.CurrentBook.ImageURL, &v.CurrentBook.Description,
	)
}
