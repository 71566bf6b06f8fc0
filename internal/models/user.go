package models

import "time"

// User roles.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	Location  string     `json:"location"`
	Country   string     `json:"country"`
	Role      string     `json:"role"`
	Password  string     `json:"-"` // bcrypt hash, never serialized
	CreatedAt time.Time  `json:"createdAt"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}
