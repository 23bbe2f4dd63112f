package cache

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestCache(t *testing.T) *Cache {
	t.Helper()
	c, err := Open(filepath.Join(t.TempDir(), "nested", "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

func TestKey(t *testing.T) {
	base := Key("com/example/A", []byte("class A {}"), "tabs/4")

	tests := []struct {
		name    string
		key     string
		changed bool
	}{
		{"same inputs", Key("com/example/A", []byte("class A {}"), "tabs/4"), false},
		{"other class", Key("com/example/B", []byte("class A {}"), "tabs/4"), true},
		{"other source", Key("com/example/A", []byte("class A { }"), "tabs/4"), true},
		{"other options", Key("com/example/A", []byte("class A {}"), "spaces/4"), true},
		{"shifted boundary", Key("com/example/Aclass", []byte(" A {}"), "tabs/4"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.changed, tt.key != base)
		})
	}
	assert.Len(t, base, 64)
}

func TestGetPut(t *testing.T) {
	c := setupTestCache(t)
	key := Key("A", []byte("src"), "opts")

	_, err := c.Get(key)
	assert.ErrorIs(t, err, ErrMiss)

	require.NoError(t, c.Put(key, "A", "<b>first</b>"))
	require.NoError(t, c.Put(key, "A", "<b>second</b>"))

	html, err := c.Get(key)
	require.NoError(t, err)
	assert.Equal(t, "<b>second</b>", html)

	stats, err := c.Stats()
	require.NoError(t, err)
	assert.Equal(t, &Stats{Entries: 1, Classes: 1, Hits: 1}, stats)
}

func TestClear(t *testing.T) {
	c := setupTestCache(t)
	require.NoError(t, c.Put("k1", "A", "a"))
	require.NoError(t, c.Put("k2", "B", "b"))

	stats, err := c.Stats()
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.Entries)
	assert.Equal(t, int64(2), stats.Classes)

	require.NoError(t, c.Clear())
	_, err = c.Get("k1")
	assert.ErrorIs(t, err, ErrMiss)

	stats, err = c.Stats()
	require.NoError(t, err)
	assert.Equal(t, &Stats{}, stats)
}
