package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/BrieHudson/Chapter-Chat-Backend/internal/domains/user"
	"github.com/BrieHudson/Chapter-Chat-Backend/internal/shared/middleware"
	"github.com/BrieHudson/Chapter-Chat-Backend/pkg/database"
)

type postgresUserRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresAuthLoader exposes the same store to the auth middleware.
func NewPostgresAuthLoader(pool *pgxpool.Pool) middleware.UserLoader {
	return &postgresUserRepository{pool: pool}
}

func NewPostgresUserRepository(pool *pgxpool.Pool) user.Repository {
	return &postgresUserRepository{pool: pool}
}

const userColumns = `id, username, email, password_hash, token_version, role, banned, created_at`

func scanUser(row pgx.Row) (*user.User, error) {
	u := &user.User{}
	err := row.Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.TokenVersion,
		&u.Role,
		&u.Banned,
		&u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *postgresUserRepository) Create(ctx context.Context, u *user.User) error {
	query := `
		INSERT INTO users (id, username, email, password_hash, token_version, role, banned, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.pool.Exec(ctx, query,
		u.ID,
		u.Username,
		u.Email,
		u.PasswordHash,
		u.TokenVersion,
		u.Role,
		u.Banned,
		u.CreatedAt,
	)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return user.ErrCredentialsTaken()
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (r *postgresUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	u, err := scanUser(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound()
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

func (r *postgresUserRepository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`

	u, err := scanUser(r.pool.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound()
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}
	return u, nil
}

func (r *postgresUserRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE username = $1 OR email = $2)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, username, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return exists, nil
}

func (r *postgresUserRepository) IncrementTokenVersion(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE users SET token_version = token_version + 1 WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to increment token version: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound()
	}
	return nil
}

func (r *postgresUserRepository) Ban(ctx context.Context, id uuid.UUID) error {
	// Bumping token_version in the same statement makes the ban take effect
	// on the next request, not at token expiry.
	query := `UPDATE users SET banned = TRUE, token_version = token_version + 1 WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to ban user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound()
	}
	return nil
}

// LoadAuthUser implements middleware.UserLoader for the auth middleware's
// token-version check.
func (r *postgresUserRepository) LoadAuthUser(ctx context.Context, id uuid.UUID) (*middleware.AuthUser, error) {
	query := `SELECT id, role, banned, token_version FROM users WHERE id = $1`

	au := &middleware.AuthUser{}
	err := r.pool.QueryRow(ctx, query, id).Scan(&au.ID, &au.Role, &au.Banned, &au.TokenVersion)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound()
		}
		return nil, fmt.Errorf("failed to load auth user: %w", err)
	}
	return au, nil
}
