// Package models defines the persisted shapes of Daybook resources and the
// ownership predicate applied before any access to them.
package models

import "time"

// UserID is the opaque identity of a registered user. It is a distinct type
// so an identity can never be confused with other string-typed fields such
// as titles or content.
type UserID string

func (id UserID) String() string { return string(id) }

// User holds a registered account. PasswordHash is a salted one-way argon2id
// digest in encoded form; the raw password is never stored.
type User struct {
	ID           UserID
	Username     string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}
