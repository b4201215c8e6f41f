package models

import "time"

type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

// User is a stored credential record. PasswordHash never leaves the
// repository and service layers.
type User struct {
	ID           string
	Email        string
	PasswordHash []byte
	FirstName    string
	LastName     string
	Role         UserRole
	CreatedAt    time.Time
}

// Identity returns the user with the password stripped.
func (u User) Identity() Identity {
	return Identity{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
	}
}

// Identity is the authenticated user as persisted in the session store.
type Identity struct {
	ID        string   `json:"id"`
	Email     string   `json:"email"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Role      UserRole `json:"role"`
}

type Session struct {
	ID        string
	Identity  Identity
	ExpiresAt time.Time
}
