// Package common defines shared constants and sentinel errors used across
// client and server layers of foldervault. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// ErrNoEncryptionKey is returned when a decrypted view is requested while
	// the vault is locked. Callers are expected to prompt for unlock.
	ErrNoEncryptionKey = errors.New("no encryption key")

	// ErrorInvalidKey is returned when a key has an unusable length.
	ErrorInvalidKey = errors.New("invalid key")

	// ErrorProfileExists is returned when a local profile is initialized twice.
	ErrorProfileExists = errors.New("local profile already exists")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)
