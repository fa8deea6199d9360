package dscgfx

import (
	"database/sql"
	"fmt"

	"github.com/bodgit/dscgfx/asset"
	_ "github.com/mattn/go-sqlite3"
)

// Cache stores converted graphics keyed by the SHA-1 of the source image
// and the conversion options.
type Cache struct {
	db *sql.DB
}

// NewCache opens or creates the cache database in file.
func NewCache(file string) (*Cache, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_busy_timeout=5000", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS graphic (id INTEGER PRIMARY KEY NOT NULL, sha1 TEXT NOT NULL, options TEXT NOT NULL, data BLOB NOT NULL, UNIQUE (sha1, options))"); err != nil {
		db.Close()
		return nil, err
	}

	return &Cache{
		db: db,
	}, nil
}

// Close closes the database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Lookup returns the graphic previously stored for the given source hash
// and options, or nil if there isn't one.
func (c *Cache) Lookup(sha, options string) (*asset.Graphic, error) {
	var b []byte
	switch err := c.db.QueryRow("SELECT data FROM graphic WHERE sha1 = ? AND options = ?", sha, options).Scan(&b); err {
	case sql.ErrNoRows:
		return nil, nil
	case nil:
		g := new(asset.Graphic)
		if err := g.UnmarshalBinary(b); err != nil {
			return nil, err
		}
		return g, nil
	default:
		return nil, err
	}
}

// Store saves g for the given source hash and options, replacing any
// existing entry.
func (c *Cache) Store(sha, options string, g *asset.Graphic) error {
	b, err := g.MarshalBinary()
	if err != nil {
		return err
	}
	if _, err := c.db.Exec("INSERT OR REPLACE INTO graphic (sha1, options, data) VALUES (?, ?, ?)", sha, options, b); err != nil {
		return err
	}
	return nil
}

// Len returns the number of stored graphics.
func (c *Cache) Len() (int, error) {
	var n int
	if err := c.db.QueryRow("SELECT COUNT(*) FROM graphic").Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// Purge removes every stored graphic.
func (c *Cache) Purge() error {
	if _, err := c.db.Exec("DELETE FROM graphic"); err != nil {
		return err
	}
	return nil
}
