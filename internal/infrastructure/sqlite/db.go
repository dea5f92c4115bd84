// Package sqlite provides the SQLite-backed persistence layer for recipes.
//
// NewDB opens (or creates) the database file, applies embedded schema
// migrations and hands out repositories over the shared connection. Before
// migrations run against an existing file, a .bak copy is written next to it
// so a bad migration never eats the only copy of someone's recipe box.
package sqlite

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/zjrosen/larder/internal/log"
	"github.com/zjrosen/larder/internal/recipes/domain"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// DB wraps the SQLite connection and owns its lifecycle.
type DB struct {
	conn *sql.DB
	path string
}

// NewDB opens the database at path, creating parent directories (0700) and
// the file itself as needed, then runs pending migrations.
func NewDB(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	if err := backupExisting(path); err != nil {
		return nil, fmt.Errorf("backup database: %w", err)
	}

	dsn := "file:" + path +
		"?_pragma=journal_mode(wal)" +
		"&_pragma=foreign_keys(on)" +
		"&_pragma=busy_timeout(5000)"
	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := conn.Ping(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := runMigrations(conn); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	log.Info(log.CatDB, "Database ready", "path", path)
	return &DB{conn: conn, path: path}, nil
}

// backupExisting copies the database file to <path>.bak when it exists.
// The backup is taken before migrations touch the file.
func backupExisting(path string) error {
	src, err := os.Open(path) //nolint:gosec // G304: path is the configured database location
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer func() { _ = src.Close() }()

	dst, err := os.OpenFile(path+".bak", os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0600) //nolint:gosec // G304: derived from the database location
	if err != nil {
		return err
	}
	defer func() { _ = dst.Close() }()

	_, err = io.Copy(dst, src)
	return err
}

func runMigrations(conn *sql.DB) error {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("load migration source: %w", err)
	}
	driver, err := migratesqlite.WithInstance(conn, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("create migration driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", source, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

// RecipeRepository returns a repository backed by this database.
func (d *DB) RecipeRepository() domain.RecipeRepository {
	return newRecipeRepository(d.conn)
}

// Connection exposes the underlying *sql.DB for callers that need raw access.
func (d *DB) Connection() *sql.DB {
	return d.conn
}

// Path returns the database file location.
func (d *DB) Path() string {
	return d.path
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.conn.Close()
}
