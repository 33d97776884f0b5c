package additive

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Exists(ctx context.Context, name string) (bool, error) {
	query := `SELECT 1 FROM additives WHERE name=$1 LIMIT 1`

	var one int
	err := s.db.QueryRow(ctx, query, name).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *PostgresStore) Get(ctx context.Context, name string) (*Additive, error) {
	query := `
		SELECT name, type, liked, icon
		FROM additives WHERE name=$1
	`

	a := &Additive{}
	err := s.db.QueryRow(ctx, query, name).Scan(&a.Name, &a.Type, &a.Liked, &a.Icon)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Insert is first-writer-wins: a concurrent insert for the same name leaves
// the existing row untouched.
func (s *PostgresStore) Insert(ctx context.Context, a *Additive) error {
	query := `
		INSERT INTO additives (name, type, liked, icon)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (name) DO NOTHING
	`
	_, err := s.db.Exec(ctx, query, a.Name, a.Type, a.Liked, a.Icon)
	return err
}

func (s *PostgresStore) UpdateLike(ctx context.Context, name string, disliked bool) error {
	query := `UPDATE additives SET liked=$2 WHERE name=$1`

	tag, err := s.db.Exec(ctx, query, name, !disliked)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) ListByType(ctx context.Context, typ Type) ([]*Additive, error) {
	query := `
		SELECT name, type, liked, icon
		FROM additives WHERE type=$1
		ORDER BY name
	`

	rows, err := s.db.Query(ctx, query, typ)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var additives []*Additive
	for rows.Next() {
		a := &Additive{}
		if err := rows.Scan(&a.Name, &a.Type, &a.Liked, &a.Icon); err != nil {
			return nil, err
		}
		additives = append(additives, a)
	}
	return additives, rows.Err()
}
