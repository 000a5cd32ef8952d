package dataset

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Entry is one cached source snapshot.
type Entry struct {
	Value     []byte
	FetchedAt time.Time
	ExpiresAt time.Time
}

// Cache provides SQLite-backed caching for raw source bytes.
type Cache struct {
	db  *sql.DB
	now func() time.Time
}

// NewCache creates a new dataset cache. The dataset_cache table must exist
// (see migrations.Apply).
func NewCache(db *sql.DB) *Cache {
	return &Cache{db: db, now: time.Now}
}

// Get retrieves a cached entry by key.
// Returns false if not found or expired.
func (c *Cache) Get(ctx context.Context, key string) (Entry, bool) {
	var e Entry
	err := c.db.QueryRowContext(ctx,
		"SELECT value, fetched_at, expires_at FROM dataset_cache WHERE key = ?", key,
	).Scan(&e.Value, &e.FetchedAt, &e.ExpiresAt)

	if err != nil || !c.now().Before(e.ExpiresAt) {
		return Entry{}, false
	}
	return e, true
}

// Set stores value fetched at fetchedAt, expiring ttl later.
func (c *Cache) Set(ctx context.Context, key string, value []byte, fetchedAt time.Time, ttl time.Duration) error {
	fetchedAt = fetchedAt.UTC()
	expiresAt := fetchedAt.Add(ttl)

	_, err := c.db.ExecContext(ctx,
		`INSERT INTO dataset_cache (key, value, fetched_at, expires_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET
		   value = excluded.value,
		   fetched_at = excluded.fetched_at,
		   expires_at = excluded.expires_at`,
		key, value, fetchedAt, expiresAt,
	)
	if err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Delete removes a cached value.
func (c *Cache) Delete(ctx context.Context, key string) error {
	_, err := c.db.ExecContext(ctx, "DELETE FROM dataset_cache WHERE key = ?", key)
	if err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// Prune removes all expired entries.
// Returns the number of entries removed.
func (c *Cache) Prune(ctx context.Context) (int64, error) {
	result, err := c.db.ExecContext(ctx,
		"DELETE FROM dataset_cache WHERE expires_at < ?", c.now().UTC(),
	)
	if err != nil {
		return 0, fmt.Errorf("cache prune: %w", err)
	}
	return result.RowsAffected()
}
