package entity

import "time"

// Valid roles for User.
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
)

// User is a dashboard user of the system.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, never plaintext past registration
	Name         string
	Role         string // admin, editor
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
