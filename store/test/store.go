// Package test provides store helpers for tests.
package test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lumenhq/lumen/internal/dateutil"
	"github.com/lumenhq/lumen/internal/profile"
	"github.com/lumenhq/lumen/store"
	"github.com/lumenhq/lumen/store/db/sqlite"
)

// NewTestingStore creates a store backed by a throwaway SQLite database.
func NewTestingStore(ctx context.Context, t *testing.T) *store.Store {
	return NewTestingStoreWithClock(ctx, t, dateutil.SystemClock{})
}

// NewTestingStoreWithClock creates a testing store with a pinned clock so
// date-dependent behavior is reproducible.
func NewTestingStoreWithClock(ctx context.Context, t *testing.T, clock dateutil.Clock) *store.Store {
	dir := t.TempDir()
	p := &profile.Profile{
		Mode:   "dev",
		Driver: "sqlite",
		Data:   dir,
		DSN:    filepath.Join(dir, "lumen_test.db"),
	}
	driver, err := sqlite.NewDB(p)
	require.NoError(t, err)

	st := store.NewWithClock(driver, p, clock)
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}
