// Package models defines server-side data models persisted in the database.
package models

import "time"

// User is a registered account. PasswordHash is a bcrypt hash and must never
// be serialized outward; the JSON tag guards the common mistake.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// CurrentUser is the identity resolved from a bearer token for the duration
// of one request. It is never persisted.
type CurrentUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}
