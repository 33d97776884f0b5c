package docstore

import "database/sql"

// Schema for the local document mirror. Runs on startup; idempotent.
const cacheSchema = `
CREATE TABLE IF NOT EXISTS documents (
    collection TEXT NOT NULL,
    id         TEXT NOT NULL,
    fields     TEXT NOT NULL,
    fetched_at INTEGER NOT NULL,
    PRIMARY KEY (collection, id)
);

CREATE INDEX IF NOT EXISTS idx_documents_fetched_at ON documents(collection, fetched_at);
`

func runCacheMigrations(db *sql.DB) error {
	_, err := db.Exec(cacheSchema)
	return err
}
