package storage

import "context"

// Service describes a key/value store for serializable values.
type Service interface {
	// Get decodes the value stored under key into v. It reports false, and
	// leaves v untouched, when nothing is stored under key.
	Get(ctx context.Context, key string, v any) (bool, error)

	// Save stores v under key, replacing any previous value.
	Save(ctx context.Context, key string, v any) error

	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}
