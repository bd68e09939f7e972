package user

import (
	"time"

	"github.com/google/uuid"
)

// User is the account entity behind every authenticated request.
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`

	// TokenVersion invalidates all previously issued session tokens when
	// incremented (forced logout, ban).
	TokenVersion int `json:"-" db:"token_version"`

	Role   string `json:"role" db:"role"`
	Banned bool   `json:"-" db:"banned"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Summary is the public slice of a user embedded in clubs and posts.
type Summary struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

func (u *User) Summary() Summary {
	return Summary{ID: u.ID, Username: u.Username}
}
