package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Role is an access-level tag attached to a user.
type Role string

// Supported roles
const (
	RoleStudent Role = "STUDENT"
	RoleAdmin   Role = "ADMIN"
)

// ParseRole normalizes s and reports whether it names a supported role.
func ParseRole(s string) (Role, bool) {
	role := Role(strings.ToUpper(strings.TrimSpace(s)))
	switch role {
	case RoleStudent, RoleAdmin:
		return role, true
	}
	return "", false
}

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `db:"id"`            // Primary key
	Name         string    `db:"name"`          // Display name
	Email        string    `db:"email"`         // Unique email, stored lowercase
	PasswordHash string    `db:"password_hash"` // bcrypt hash
	Role         Role      `db:"role"`          // STUDENT or ADMIN
	College      *string   `db:"college"`       // Optional college name
	CreatedAt    time.Time `db:"created_at"`    // Creation timestamp
}

// User is the public view of a user, without credentials.
type User struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Role    Role      `json:"role"`
	College *string   `json:"college"`
}

// Public strips credentials from the database record.
func (u *UserDB) Public() *User {
	return &User{
		ID:      u.UserID,
		Name:    u.Name,
		Email:   u.Email,
		Role:    u.Role,
		College: u.College,
	}
}

// RegisterInput carries validated registration fields.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     Role
	College  *string
}
