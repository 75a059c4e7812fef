// Package models contains the server-side data structures backed by the
// Postgres store.
package models

import "time"

// User is the identity record credentials are checked against. Password
// holds the stored password reference; its internal format (plaintext or
// hash) is owned by the store and interpreted only by the configured
// verifier. It is read-only to this service.
type User struct {
	ID        string
	Email     string
	Password  string
	CreatedAt time.Time
}
