package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/teamtime-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/teamtime-backend-go/internal/pkg/identity"
	"github.com/jackc/pgx/v5/pgconn"
)

// credentialStore backs identity.LocalProvider with the auth_users table.
type credentialStore struct {
	db *database.DB
}

func NewCredentialStore(db *database.DB) identity.CredentialStore {
	return &credentialStore{db: db}
}

// CreateCredential implements identity.CredentialStore.
func (s *credentialStore) CreateCredential(ctx context.Context, id, email, passwordHash string) error {
	q := GetQuerier(ctx, s.db)

	_, err := q.Exec(ctx, `
		INSERT INTO auth_users (id, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
	`, id, email, passwordHash)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return identity.ErrIdentityExists
		}
		return fmt.Errorf("failed to create credential: %w", err)
	}
	return nil
}

// UpdateCredentialPassword implements identity.CredentialStore.
func (s *credentialStore) UpdateCredentialPassword(ctx context.Context, id, passwordHash string) error {
	q := GetQuerier(ctx, s.db)

	tag, err := q.Exec(ctx, `UPDATE auth_users SET password_hash = $1, updated_at = NOW() WHERE id = $2`, passwordHash, id)
	if err != nil {
		return fmt.Errorf("failed to update credential: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return identity.ErrIdentityNotFound
	}
	return nil
}

// DeleteCredential implements identity.CredentialStore.
func (s *credentialStore) DeleteCredential(ctx context.Context, id string) error {
	q := GetQuerier(ctx, s.db)

	tag, err := q.Exec(ctx, `DELETE FROM auth_users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete credential: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return identity.ErrIdentityNotFound
	}
	return nil
}
