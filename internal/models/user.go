package models

import "time"

// User roles.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// ValidRole reports whether role is one of the known user roles.
func ValidRole(role string) bool {
	return role == RoleUser || role == RoleAdmin
}

// UserDB represents a user record in the database.
type UserDB struct {
	ID           int64     `json:"id" db:"id"`                 // Primary key
	Email        string    `json:"email" db:"email"`           // Unique email
	Username     string    `json:"username" db:"username"`     // Username
	Role         string    `json:"role" db:"role"`             // USER or ADMIN
	IsActive     bool      `json:"is_active" db:"is_active"`   // Active flag
	PasswordHash *string   `json:"-" db:"password_hash"`       // NULL for OAuth-only accounts, never serialized
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
}

// UserSummary is the user shape returned by API endpoints.
type UserSummary struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Summary converts a DB record to its API representation.
func (u *UserDB) Summary() UserSummary {
	return UserSummary{
		ID:       u.ID,
		Email:    u.Email,
		Username: u.Username,
		Role:     u.Role,
	}
}

// AdminUserDB is a user row joined with its application count for the admin list.
type AdminUserDB struct {
	ID               int64     `json:"id" db:"id"`
	Email            string    `json:"email" db:"email"`
	Username         string    `json:"username" db:"username"`
	Role             string    `json:"role" db:"role"`
	IsActive         bool      `json:"is_active" db:"is_active"`
	ApplicationCount int64     `json:"application_count" db:"application_count"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
}
