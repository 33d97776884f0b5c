package provider

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresPhotoStore keeps admin-uploaded photo overrides. The upstream
// document keeps its own photo field; an override replaces it in responses
// without touching the mirrored document.
type PostgresPhotoStore struct {
	db *pgxpool.Pool
}

func NewPostgresPhotoStore(db *pgxpool.Pool) *PostgresPhotoStore {
	return &PostgresPhotoStore{db: db}
}

// --------------------------------------------------
// All overrides, keyed by provider id
// --------------------------------------------------
func (s *PostgresPhotoStore) Overrides(ctx context.Context) (map[string]string, error) {
	rows, err := s.db.Query(ctx, `
		SELECT provider_id, url
		FROM provider_photos
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	overrides := make(map[string]string)

	for rows.Next() {
		var providerID, url string
		if err := rows.Scan(&providerID, &url); err != nil {
			return nil, err
		}
		overrides[providerID] = url
	}

	return overrides, rows.Err()
}

// --------------------------------------------------
// Save or replace an override
// --------------------------------------------------
func (s *PostgresPhotoStore) Save(
	ctx context.Context,
	providerID string,
	url string,
) error {

	_, err := s.db.Exec(ctx, `
		INSERT INTO provider_photos (provider_id, url, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (provider_id)
		DO UPDATE SET url = EXCLUDED.url, updated_at = NOW()
	`, providerID, url)

	return err
}
