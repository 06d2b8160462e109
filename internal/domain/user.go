package domain

import "time"

type UserRole string

const (
	RoleAgent UserRole = "agent"
	RoleAdmin UserRole = "admin"
)

type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email" validate:"required,email"`
	PasswordHash string    `json:"-"`
	Role         UserRole  `json:"role"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Session identifies the acting user for every service call that needs
// authorization. It is built from verified JWT claims by the HTTP layer;
// services never read it from global state.
type Session struct {
	UserID int64
	Role   UserRole
}

func (s Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}
