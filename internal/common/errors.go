// Package common defines shared sentinel errors and small utilities used
// across Daybook layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Registration / credential errors. ErrInvalidCredentials deliberately
	// does not say which factor failed; ErrInvalidInput marks malformed
	// request input such as a missing registration field.
	ErrAlreadyExists      = errors.New("already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidInput       = errors.New("invalid input")

	// Token errors (invalid signature, malformed input, or past expiry).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// ErrDecryptionFailed means stored ciphertext could not be opened with
	// the key persisted next to it. Under correct operation this never
	// fires; treat it as a data-integrity fault, not a caller error.
	ErrDecryptionFailed = errors.New("decryption failed")

	// Generic internal flow control.
	ErrInternal = errors.New("internal error")
)
