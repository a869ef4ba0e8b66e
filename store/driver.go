package store

import (
	"context"
	"database/sql"
)

// Driver is an interface for store driver.
// Every record the store owns is persisted as an opaque serialized value
// under a namespaced key, so a driver only implements key/value access.
type Driver interface {
	GetDB() *sql.DB
	Close() error

	// Get returns the raw value for a key. The boolean is false when the
	// key is absent; absence is not an error.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set writes the raw value for a key, replacing any prior value.
	Set(ctx context.Context, key string, value string) error

	// Delete removes a key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
