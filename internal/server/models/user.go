// Package models contains the server-side domain types persisted in
// PostgreSQL. Repositories read and write these; services never touch
// SQL rows directly.
package models

import "time"

// Role controls what a user may mutate beyond their own content.
type Role string

const (
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)

type User struct {
	ID           string
	Email        string
	UserName     string
	DisplayName  string
	PasswordHash []byte
	Role         Role
	CreatedAt    time.Time
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
