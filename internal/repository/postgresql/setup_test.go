package postgresql_test

import (
	"context"
	"os"
	"testing"

	"github.com/cmlabs-hris/teamtime-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/teamtime-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/require"
)

// newTestDB connects to TEST_DATABASE_URL, applies the schema and empties every table.
func newTestDB(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := database.NewPostgreSQLDB(dsn)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	ctx := context.Background()
	require.NoError(t, postgresql.InitSchema(ctx, db))

	_, err = db.Exec(ctx, `TRUNCATE TABLE refresh_tokens, attendance, records, employees, projects, users, auth_users CASCADE`)
	require.NoError(t, err)

	return db
}
