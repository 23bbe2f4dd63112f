// Package cache stores rendered HTML in a SQLite database so unchanged
// classes are not printed twice.
package cache

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/tliron/commonlog"
	_ "modernc.org/sqlite"
)

var log = commonlog.GetLogger("srcview.cache")

// ErrMiss is returned by Get when nothing is stored under a key.
var ErrMiss = errors.New("cache miss")

// Key identifies one rendering: the class, the exact source it was
// rendered from and the printer options fingerprint.
func Key(class string, source []byte, options string) string {
	h := sha256.New()
	for _, part := range [][]byte{[]byte(class), source, []byte(options)} {
		fmt.Fprintf(h, "%d:", len(part))
		h.Write(part)
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Cache manages the render database.
type Cache struct {
	db     *sql.DB
	dbPath string
}

// Open opens or creates the cache database at path, creating its directory
// when needed.
func Open(path string) (*Cache, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create cache dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open cache db: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	c := &Cache{db: db, dbPath: path}
	if err := c.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	log.Debugf("opened render cache %s", path)
	return c, nil
}

// Close closes the database connection.
func (c *Cache) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}

// Path returns the database file path.
func (c *Cache) Path() string {
	return c.dbPath
}

// Get returns the HTML stored under key.
func (c *Cache) Get(key string) (string, error) {
	var html string
	err := c.db.QueryRow("SELECT html FROM renders WHERE key = ?", key).Scan(&html)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrMiss
	}
	if err != nil {
		return "", fmt.Errorf("get %s: %w", key, err)
	}
	if _, err := c.db.Exec("UPDATE renders SET hits = hits + 1 WHERE key = ?", key); err != nil {
		log.Warningf("count hit for %s: %s", key, err)
	}
	return html, nil
}

// Put stores html for class under key, replacing any earlier entry.
func (c *Cache) Put(key, class, html string) error {
	_, err := c.db.Exec(`
		INSERT INTO renders (key, class, html, rendered_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET html = excluded.html, rendered_at = excluded.rendered_at`,
		key, class, html, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("put %s: %w", class, err)
	}
	return nil
}

// Clear removes every entry.
func (c *Cache) Clear() error {
	if _, err := c.db.Exec("DELETE FROM renders"); err != nil {
		return fmt.Errorf("clear cache: %w", err)
	}
	return nil
}

// Stats summarizes the cache contents.
type Stats struct {
	Entries int64
	Classes int64
	Hits    int64
}

// Stats returns statistics about the cache contents.
func (c *Cache) Stats() (*Stats, error) {
	var s Stats
	err := c.db.QueryRow(
		"SELECT COUNT(*), COUNT(DISTINCT class), COALESCE(SUM(hits), 0) FROM renders",
	).Scan(&s.Entries, &s.Classes, &s.Hits)
	if err != nil {
		return nil, fmt.Errorf("cache stats: %w", err)
	}
	return &s, nil
}
