// Package clientdata caches raw upstream gateway responses as JSON blobs with
// an expiry, so a gateway can answer from cache or fall back to stale data.
package clientdata

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Table names a cache table. Only the declared tables are accepted.
type Table string

const (
	TableEIAHistory    Table = "eia_history"
	TableNewsAPISearch Table = "newsapi_search"
)

// AllTables lists every cache table, in cleanup order
var AllTables = []Table{
	TableEIAHistory,
	TableNewsAPISearch,
}

func (t Table) valid() bool {
	for _, known := range AllTables {
		if t == known {
			return true
		}
	}
	return false
}

// check guards table names, which are interpolated into SQL
func (t Table) check() error {
	if !t.valid() {
		return fmt.Errorf("invalid table name: %s", t)
	}
	return nil
}

// TableStats counts the entries of one table
type TableStats struct {
	Table   Table `json:"table"`
	Entries int64 `json:"entries"`
	Expired int64 `json:"expired"`
}

// Repository reads and writes cache entries
type Repository struct {
	db  *sql.DB
	now func() time.Time
}

// NewRepository creates a repository over an open cache database
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db, now: time.Now}
}

// Store marshals data and upserts it under key, expiring after ttl
func (r *Repository) Store(table Table, key string, data interface{}, ttl time.Duration) error {
	if err := table.check(); err != nil {
		return err
	}

	blob, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal %s entry: %w", table, err)
	}

	stmt := fmt.Sprintf(`INSERT INTO %s (key, data, expires_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET data = excluded.data, expires_at = excluded.expires_at`, table)
	if _, err := r.db.Exec(stmt, key, string(blob), r.now().Add(ttl).Unix()); err != nil {
		return fmt.Errorf("failed to store %s entry: %w", table, err)
	}
	return nil
}

// GetIfFresh returns the entry while it has not expired.
// A missing or expired entry yields nil, nil.
func (r *Repository) GetIfFresh(table Table, key string) (json.RawMessage, error) {
	return r.lookup(table, key, true)
}

// Get returns the entry whether or not it has expired.
// A missing entry yields nil, nil.
func (r *Repository) Get(table Table, key string) (json.RawMessage, error) {
	return r.lookup(table, key, false)
}

func (r *Repository) lookup(table Table, key string, freshOnly bool) (json.RawMessage, error) {
	if err := table.check(); err != nil {
		return nil, err
	}

	var (
		blob      string
		expiresAt int64
	)
	row := r.db.QueryRow(fmt.Sprintf("SELECT data, expires_at FROM %s WHERE key = ?", table), key)
	switch err := row.Scan(&blob, &expiresAt); {
	case errors.Is(err, sql.ErrNoRows):
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("failed to read %s entry: %w", table, err)
	}

	if freshOnly && expiresAt <= r.now().Unix() {
		return nil, nil
	}
	return json.RawMessage(blob), nil
}

// Delete removes one entry
func (r *Repository) Delete(table Table, key string) error {
	if err := table.check(); err != nil {
		return err
	}

	if _, err := r.db.Exec(fmt.Sprintf("DELETE FROM %s WHERE key = ?", table), key); err != nil {
		return fmt.Errorf("failed to delete %s entry: %w", table, err)
	}
	return nil
}

// DeleteExpired purges entries that expired before now and reports how many went
func (r *Repository) DeleteExpired(table Table) (int64, error) {
	if err := table.check(); err != nil {
		return 0, err
	}

	res, err := r.db.Exec(fmt.Sprintf("DELETE FROM %s WHERE expires_at < ?", table), r.now().Unix())
	if err != nil {
		return 0, fmt.Errorf("failed to purge %s: %w", table, err)
	}
	return res.RowsAffected()
}

// DeleteAllExpired purges every table. On error the counts gathered so far are returned.
func (r *Repository) DeleteAllExpired() (map[Table]int64, error) {
	purged := make(map[Table]int64, len(AllTables))
	for _, table := range AllTables {
		n, err := r.DeleteExpired(table)
		if err != nil {
			return purged, err
		}
		purged[table] = n
	}
	return purged, nil
}

// Stats counts live and expired entries per table
func (r *Repository) Stats() ([]TableStats, error) {
	now := r.now().Unix()
	stats := make([]TableStats, 0, len(AllTables))

	for _, table := range AllTables {
		s := TableStats{Table: table}
		query := fmt.Sprintf("SELECT COUNT(*), COALESCE(SUM(CASE WHEN expires_at <= ? THEN 1 ELSE 0 END), 0) FROM %s", table)
		if err := r.db.QueryRow(query, now).Scan(&s.Entries, &s.Expired); err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", table, err)
		}
		stats = append(stats, s)
	}
	return stats, nil
}
