package docstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)
)

// Ensure CacheStore implements Source
var _ Source = (*CacheStore)(nil)

// CacheStore is the SQLite-backed local mirror of the remote collections.
// Fetch matches queries in memory over the cached rows; the mirror worker
// keeps the rows warm via Put/ReplaceCollection/DeleteStale.
type CacheStore struct {
	db *sql.DB
}

// OpenCache opens (or creates) the cache database at the given path.
// Parent directories are created and migrations run automatically.
func OpenCache(dbPath string) (*CacheStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	if err := runCacheMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run cache migrations: %w", err)
	}

	return &CacheStore{db: db}, nil
}

// Close closes the database connection.
func (c *CacheStore) Close() error {
	return c.db.Close()
}

func (c *CacheStore) Name() string { return "cache" }

// Fetch returns the cached documents of the collection that match the query.
// Rows come back in insertion order, which preserves the arrival order of
// the mirrored server responses.
func (c *CacheStore) Fetch(ctx context.Context, q Query) ([]Document, error) {
	rows, err := c.db.QueryContext(ctx,
		"SELECT id, fields FROM documents WHERE collection = ? ORDER BY rowid",
		q.Collection,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query cached documents: %w", err)
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var (
			id        string
			fieldsRaw []byte
		)
		if err := rows.Scan(&id, &fieldsRaw); err != nil {
			return nil, fmt.Errorf("failed to scan cached document: %w", err)
		}

		var fields map[string]any
		if err := json.Unmarshal(fieldsRaw, &fields); err != nil {
			return nil, fmt.Errorf("failed to decode cached document %q: %w", id, err)
		}

		doc := Document{ID: id, Fields: fields}
		if q.Match(doc) {
			docs = append(docs, doc)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read cached documents: %w", err)
	}

	return docs, nil
}

// Put upserts documents into the collection, stamping them with the current
// fetch time. Existing rows keep their insertion order.
func (c *CacheStore) Put(ctx context.Context, collection string, docs []Document) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UnixNano()
	for _, doc := range docs {
		fieldsRaw, err := json.Marshal(doc.Fields)
		if err != nil {
			return fmt.Errorf("failed to encode document %q: %w", doc.ID, err)
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO documents (collection, id, fields, fetched_at)
			VALUES (?, ?, ?, ?)
			ON CONFLICT (collection, id) DO UPDATE SET
				fields = excluded.fields,
				fetched_at = excluded.fetched_at
		`, collection, doc.ID, fieldsRaw, now)
		if err != nil {
			return fmt.Errorf("failed to upsert document %q: %w", doc.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// ReplaceCollection atomically swaps the entire collection for the given
// documents.
func (c *CacheStore) ReplaceCollection(ctx context.Context, collection string, docs []Document) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM documents WHERE collection = ?", collection); err != nil {
		return fmt.Errorf("failed to clear collection %q: %w", collection, err)
	}

	now := time.Now().UnixNano()
	for _, doc := range docs {
		fieldsRaw, err := json.Marshal(doc.Fields)
		if err != nil {
			return fmt.Errorf("failed to encode document %q: %w", doc.ID, err)
		}

		_, err = tx.ExecContext(ctx,
			"INSERT INTO documents (collection, id, fields, fetched_at) VALUES (?, ?, ?, ?)",
			collection, doc.ID, fieldsRaw, now,
		)
		if err != nil {
			return fmt.Errorf("failed to insert document %q: %w", doc.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// DeleteStale removes rows of the collection whose last fetch is older than
// the cutoff. The mirror worker calls this after a window upsert to drop
// documents the server no longer returns.
func (c *CacheStore) DeleteStale(ctx context.Context, collection string, cutoff time.Time) error {
	_, err := c.db.ExecContext(ctx,
		"DELETE FROM documents WHERE collection = ? AND fetched_at < ?",
		collection, cutoff.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("failed to delete stale documents: %w", err)
	}
	return nil
}
