package domain

import (
	"time"
)

// YearNote holds the single free-text planning note a user keeps per year.
type YearNote struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	Year      int       `json:"year"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// User represents an account that owns items. Only what the auth
// middleware and login need; profile management is out of scope.
type User struct {
	ID           int        `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	IsActive     bool       `json:"is_active"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// ItemFilter represents filter criteria for item list queries
type ItemFilter struct {
	Category Category
	Status   Status
	Owner    Owner
	Search   string
}
