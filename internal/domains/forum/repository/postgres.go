package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/BrieHudson/Chapter-Chat-Backend/internal/domains/forum"
	"github.com/BrieHudson/Chapter-Chat-Backend/pkg/database"
)

type postgresForumRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresForumRepository(pool *pgxpool.Pool) forum.Repository {
	return &postgresForumRepository{pool: pool}
}

func (r *postgresForumRepository) Insert(ctx context.Context, q database.Queryer, p *forum.Post) error {
	query := `
		INSERT INTO forum_posts (id, book_club_id, user_id, book_id, content, contains_spoilers, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := q.Exec(ctx, query,
		p.ID, p.BookClubID, p.UserID, p.BookID, p.Content, p.ContainsSpoilers, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert forum post: %w", err)
	}
	return nil
}

func (r *postgresForumRepository) ListForClub(ctx context.Context, q database.Queryer, clubID uuid.UUID) ([]forum.PostWithAuthor, error) {
	query := `
		SELECT p.id, p.book_club_id, p.user_id, p.book_id, p.content, p.contains_spoilers,
		       p.created_at, p.updated_at, u.username
		FROM forum_posts p
		JOIN users u ON u.id = p.user_id
		WHERE p.book_club_id = $1
		ORDER BY p.created_at DESC
	`

	rows, err := q.Query(ctx, query, clubID)
	if err != nil {
		return nil, fmt.Errorf("failed to list forum posts: %w", err)
	}
	defer rows.Close()

	var posts []forum.PostWithAuthor
	for rows.Next() {
		var p forum.PostWithAuthor
		err := rows.Scan(
			&p.ID, &p.BookClubID, &p.UserID, &p.BookID, &p.Content, &p.ContainsSpoilers,
			&p.CreatedAt, &p.UpdatedAt, &p.Username,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan forum post row: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read forum post rows: %w", err)
	}

	return posts, nil
}

func (r *postgresForumRepository) DeleteForClub(ctx context.Context, q database.Queryer, clubID uuid.UUID) (int64, error) {
	query := `DELETE FROM forum_posts WHERE book_club_id = $1`

	tag, err := q.Exec(ctx, query, clubID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete forum posts: %w", err)
	}
	return tag.RowsAffected(), nil
}
