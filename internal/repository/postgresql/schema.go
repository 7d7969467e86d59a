package postgresql

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/cmlabs-hris/teamtime-backend-go/internal/pkg/database"
	"github.com/google/uuid"
)

//go:embed schema.sql
var schema string

// InitSchema creates missing tables; it is safe to run on every start.
func InitSchema(ctx context.Context, db *database.DB) error {
	if _, err := db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

// newID returns a time-ordered UUID for a new row.
func newID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate id: %w", err)
	}
	return id.String(), nil
}
