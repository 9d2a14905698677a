package database

import (
	"context"
	_ "embed"
	"fmt"
)

//go:embed migrations/001_schema.sql
var schemaSQL string

// EnsureSchema creates the tables when they do not exist yet
func EnsureSchema(ctx context.Context, db DB) error {
	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
