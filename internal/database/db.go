// Package database provides database connection and initialization functionality.
package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

//go:embed schemas/*.sql
var schemas embed.FS

// DatabaseProfile defines different configuration profiles for databases
type DatabaseProfile string

const (
	// ProfileMemory - in-process only, discarded on restart
	ProfileMemory DatabaseProfile = "memory"
	// ProfileCache - file backed, tuned for speed over durability
	ProfileCache DatabaseProfile = "cache"
)

// DB wraps the database connection
type DB struct {
	conn    *sql.DB
	path    string
	profile DatabaseProfile
	name    string // Database name for logging
}

// Config holds database configuration
type Config struct {
	Path    string
	Profile DatabaseProfile
	Name    string // Friendly name for logging and schema lookup (e.g., "cache")
}

// New opens the database described by cfg and verifies it answers.
// Memory paths force ProfileMemory; file paths default to ProfileCache.
func New(cfg Config) (*DB, error) {
	if err := cfg.resolve(); err != nil {
		return nil, err
	}

	conn, err := sql.Open("sqlite", buildConnectionString(cfg.Path, cfg.Profile))
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", cfg.Name, err)
	}
	configureConnectionPool(conn, cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to ping database %s: %w", cfg.Name, err)
	}

	return &DB{conn: conn, path: cfg.Path, profile: cfg.Profile, name: cfg.Name}, nil
}

func (cfg *Config) resolve() error {
	if isMemoryPath(cfg.Path) {
		cfg.Profile = ProfileMemory
		return nil
	}

	abs, err := filepath.Abs(cfg.Path)
	if err != nil {
		return fmt.Errorf("failed to resolve database path %q: %w", cfg.Path, err)
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0755); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}
	cfg.Path = abs
	if cfg.Profile == "" {
		cfg.Profile = ProfileCache
	}
	return nil
}

func isMemoryPath(path string) bool {
	return path == ":memory:" || strings.Contains(path, "mode=memory")
}

// buildConnectionString creates SQLite connection string with profile-specific PRAGMAs
func buildConnectionString(path string, profile DatabaseProfile) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}

	var pragmas []string
	switch profile {
	case ProfileMemory:
		pragmas = append(pragmas, "_pragma=temp_store(MEMORY)")
	case ProfileCache:
		pragmas = append(pragmas,
			"_pragma=journal_mode(WAL)",
			"_pragma=synchronous(OFF)", // it's a cache
			"_pragma=temp_store(MEMORY)",
		)
	}
	pragmas = append(pragmas, "_pragma=busy_timeout(5000)")

	return path + sep + strings.Join(pragmas, "&")
}

// configureConnectionPool sizes the pool for the profile. A plain ":memory:"
// path gives every connection its own private database, so it gets one.
func configureConnectionPool(conn *sql.DB, cfg Config) {
	switch {
	case cfg.Path == ":memory:":
		conn.SetMaxOpenConns(1)
		conn.SetConnMaxLifetime(0)
	case cfg.Profile == ProfileMemory:
		// the shared database lives only while some connection holds it open
		conn.SetMaxOpenConns(4)
		conn.SetMaxIdleConns(4)
		conn.SetConnMaxLifetime(0)
		conn.SetConnMaxIdleTime(0)
	default:
		conn.SetMaxOpenConns(10)
		conn.SetMaxIdleConns(2)
		conn.SetConnMaxLifetime(24 * time.Hour)
		conn.SetConnMaxIdleTime(30 * time.Minute)
	}
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

// Conn returns the underlying sql.DB connection
// Used by repositories to execute queries
func (db *DB) Conn() *sql.DB {
	return db.conn
}

// Name returns the database name for logging
func (db *DB) Name() string {
	return db.name
}

// Profile returns the database profile
func (db *DB) Profile() DatabaseProfile {
	return db.profile
}

// Migrate applies the embedded schema named after the database
func (db *DB) Migrate() error {
	content, err := schemas.ReadFile("schemas/" + db.name + "_schema.sql")
	if err != nil {
		// Unknown database name, nothing to apply
		return nil
	}

	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction for %s schema: %w", db.name, err)
	}

	if _, err := tx.Exec(string(content)); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to execute %s schema: %w", db.name, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit %s schema: %w", db.name, err)
	}

	return nil
}

// HealthCheck verifies the connection answers a trivial query
func (db *DB) HealthCheck(ctx context.Context) error {
	var one int
	if err := db.conn.QueryRowContext(ctx, "SELECT 1").Scan(&one); err != nil {
		return fmt.Errorf("database %s health check failed: %w", db.name, err)
	}
	return nil
}
