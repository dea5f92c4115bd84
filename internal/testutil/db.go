// Package testutil provides helpers for seeding recipe databases in tests.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/larder/internal/infrastructure/sqlite"
)

// NewTestDB creates a migrated database in a temp directory. It is closed
// automatically when the test finishes.
func NewTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db, err := sqlite.NewDB(filepath.Join(t.TempDir(), "larder.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}
