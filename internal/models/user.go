package models

import "time"

// User is a persisted account row. The bcrypt hash never leaves the
// server: it is excluded from JSON and from session serialization.
type User struct {
	ID           int       `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Principal is the authenticated identity attached to a session.
// It carries only the fields a request needs; the password hash is
// never copied into session state.
type Principal struct {
	UserID int    `json:"user_id"`
	Email  string `json:"email"`
}

// Principal derives the session-scoped identity from a user row.
func (u *User) Principal() Principal {
	return Principal{UserID: u.ID, Email: u.Email}
}
