package cache

// schemaSQL defines the render table: one row per rendered class, keyed by
// the hash of its inputs.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS renders (
    key TEXT PRIMARY KEY,
    class TEXT NOT NULL,
    html TEXT NOT NULL,
    hits INTEGER NOT NULL DEFAULT 0,
    rendered_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_renders_class ON renders(class);
`

func (c *Cache) initSchema() error {
	_, err := c.db.Exec(schemaSQL)
	return err
}
