package db

import (
	"context"
	"os"
	"testing"
)

// TestConnectPostgres runs only against a real database.
func TestConnectPostgres(t *testing.T) {
	if os.Getenv("DATABASE_URL") == "" {
		t.Skip("DATABASE_URL not set, skipping integration test")
	}

	pool, err := ConnectPostgres(context.Background())
	if err != nil {
		t.Fatalf("expected connection and schema init to succeed: %v", err)
	}
	defer pool.Close()
}
