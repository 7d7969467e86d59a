package identity

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// CredentialStore persists identities for the local provider.
type CredentialStore interface {
	CreateCredential(ctx context.Context, id, email, passwordHash string) error
	UpdateCredentialPassword(ctx context.Context, id, passwordHash string) error
	DeleteCredential(ctx context.Context, id string) error
}

// LocalProvider keeps identities in the application's own database.
type LocalProvider struct {
	store CredentialStore
}

func NewLocalProvider(store CredentialStore) *LocalProvider {
	return &LocalProvider{store: store}
}

func (p *LocalProvider) CreateUser(ctx context.Context, email, password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate identity id: %w", err)
	}

	if err := p.store.CreateCredential(ctx, id.String(), email, string(hash)); err != nil {
		return "", err
	}
	return id.String(), nil
}

func (p *LocalProvider) UpdatePassword(ctx context.Context, id, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	return p.store.UpdateCredentialPassword(ctx, id, string(hash))
}

func (p *LocalProvider) DeleteUser(ctx context.Context, id string) error {
	return p.store.DeleteCredential(ctx, id)
}
