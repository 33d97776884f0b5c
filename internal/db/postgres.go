package db

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ConnectPostgres opens the connection pool from DATABASE_URL and makes sure
// the schema exists.
func ConnectPostgres(ctx context.Context) (*pgxpool.Pool, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return nil, errors.New("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse DATABASE_URL: %w", err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres ping failed: %w", err)
	}

	if err := initSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return pool, nil
}

// initSchema creates or updates the database schema
func initSchema(ctx context.Context, pool *pgxpool.Pool) error {

	// -------------------------------
	// USERS
	// -------------------------------
	userTableSQL := `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			role VARCHAR(50) NOT NULL DEFAULT 'USER',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, userTableSQL); err != nil {
		return err
	}

	// -------------------------------
	// ADDITIVES (user-facing like state lives here)
	// -------------------------------
	additiveTableSQL := `
		CREATE TABLE IF NOT EXISTS additives (
			name VARCHAR(255) PRIMARY KEY,
			type VARCHAR(50) NOT NULL,
			liked BOOLEAN NOT NULL DEFAULT TRUE,
			icon VARCHAR(255) NOT NULL DEFAULT '',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, additiveTableSQL); err != nil {
		return err
	}

	// -------------------------------
	// PROVIDER PHOTO OVERRIDES
	// -------------------------------
	photoTableSQL := `
		CREATE TABLE IF NOT EXISTS provider_photos (
			provider_id VARCHAR(255) PRIMARY KEY,
			url VARCHAR(500) NOT NULL,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, photoTableSQL); err != nil {
		return err
	}

	return nil
}
