package sqlite

import (
	"database/sql"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/larder/internal/recipes/domain"
)

// TestNewDB_CreatesDirectory verifies that NewDB creates the parent directory if missing.
func TestNewDB_CreatesDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "nested", "larder.db")

	db, err := NewDB(dbPath)
	require.NoError(t, err, "NewDB should succeed even with nested non-existent directories")
	defer db.Close()

	info, err := os.Stat(filepath.Dir(dbPath))
	require.NoError(t, err, "Directory should exist after NewDB")
	require.True(t, info.IsDir(), "Should be a directory")

	// Windows does not support Unix permissions
	if runtime.GOOS != "windows" {
		require.Equal(t, os.FileMode(0700), info.Mode().Perm(), "Directory should have 0700 permissions")
	}
}

// TestNewDB_RunsMigrations verifies that NewDB runs migrations and creates the recipes table.
func TestNewDB_RunsMigrations(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "larder.db")

	db, err := NewDB(dbPath)
	require.NoError(t, err, "NewDB should succeed")
	defer db.Close()

	var tableName string
	err = db.conn.QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='recipes'",
	).Scan(&tableName)
	require.NoError(t, err, "recipes table should exist after migrations")
	require.Equal(t, "recipes", tableName)
}

// TestNewDB_PreMigrationBackup verifies that a .bak file is created before migrations
// when an existing database file is present.
func TestNewDB_PreMigrationBackup(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "larder.db")

	db1, err := NewDB(dbPath)
	require.NoError(t, err, "First NewDB should succeed")

	_, err = db1.conn.Exec(
		"INSERT INTO recipes (guid, name, created_at, modified_at) VALUES (?, ?, ?, ?)",
		"test-guid", "Test Recipe", 1000, 1000,
	)
	require.NoError(t, err, "Should be able to insert test data")
	db1.Close()

	// Opening again should snapshot the existing file first
	db2, err := NewDB(dbPath)
	require.NoError(t, err, "Second NewDB should succeed")
	defer db2.Close()

	info, err := os.Stat(dbPath + ".bak")
	require.NoError(t, err, "Backup file should exist after second NewDB")
	require.Greater(t, info.Size(), int64(0), "Backup file should have content")
}

// TestNewDB_WALMode verifies that WAL mode is enabled via PRAGMA query.
func TestNewDB_WALMode(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "larder.db")

	db, err := NewDB(dbPath)
	require.NoError(t, err, "NewDB should succeed")
	defer db.Close()

	var journalMode string
	err = db.conn.QueryRow("PRAGMA journal_mode").Scan(&journalMode)
	require.NoError(t, err, "Should be able to query journal_mode")
	require.Equal(t, "wal", journalMode, "Journal mode should be WAL")
}

// TestNewDB_BusyTimeout verifies that busy timeout is set to 5000ms via PRAGMA query.
func TestNewDB_BusyTimeout(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "larder.db")

	db, err := NewDB(dbPath)
	require.NoError(t, err, "NewDB should succeed")
	defer db.Close()

	var busyTimeout int
	err = db.conn.QueryRow("PRAGMA busy_timeout").Scan(&busyTimeout)
	require.NoError(t, err, "Should be able to query busy_timeout")
	require.Equal(t, 5000, busyTimeout, "Busy timeout should be 5000ms")
}

// TestDB_Close verifies that the connection closes cleanly.
func TestDB_Close(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "larder.db")

	db, err := NewDB(dbPath)
	require.NoError(t, err, "NewDB should succeed")

	require.NoError(t, db.Close(), "Close should succeed")
	require.Error(t, db.conn.Ping(), "Ping should fail after Close")
}

// TestDB_RecipeRepository verifies that RecipeRepository returns an implementation
// that satisfies the domain.RecipeRepository interface.
func TestDB_RecipeRepository(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "larder.db")

	db, err := NewDB(dbPath)
	require.NoError(t, err, "NewDB should succeed")
	defer db.Close()

	repo := db.RecipeRepository()
	require.NotNil(t, repo, "RecipeRepository should not return nil")

	var _ domain.RecipeRepository = repo
}

// TestDB_Connection verifies that Connection returns the underlying *sql.DB.
func TestDB_Connection(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "larder.db")

	db, err := NewDB(dbPath)
	require.NoError(t, err, "NewDB should succeed")
	defer db.Close()

	conn := db.Connection()
	require.NotNil(t, conn, "Connection should not return nil")
	require.IsType(t, (*sql.DB)(nil), conn)
	require.NoError(t, conn.Ping(), "Connection should be pingable")
}

// TestNewDB_MultipleCalls verifies that opening the same database twice is safe.
func TestNewDB_MultipleCalls(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "larder.db")

	db1, err := NewDB(dbPath)
	require.NoError(t, err, "First NewDB should succeed")
	defer db1.Close()

	db2, err := NewDB(dbPath)
	require.NoError(t, err, "Second NewDB should succeed (WAL mode allows concurrent access)")
	defer db2.Close()

	var count1, count2 int
	err = db1.conn.QueryRow("SELECT COUNT(*) FROM recipes").Scan(&count1)
	require.NoError(t, err, "First connection should be able to query")

	err = db2.conn.QueryRow("SELECT COUNT(*) FROM recipes").Scan(&count2)
	require.NoError(t, err, "Second connection should be able to query")
}

// TestNewDB_InvalidPath verifies that NewDB returns an error for unwritable paths.
func TestNewDB_InvalidPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("Unix-specific restricted path test")
	}
	if os.Geteuid() == 0 {
		t.Skip("running as root, restricted paths are writable")
	}

	_, err := NewDB("/proc/larder-test.db")
	require.Error(t, err, "NewDB should fail for path in restricted directory")
}
