package identity

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type memoryStore struct {
	creds map[string][2]string // id -> email, hash
	err   error
}

func (m *memoryStore) CreateCredential(ctx context.Context, id, email, hash string) error {
	if m.err != nil {
		return m.err
	}
	m.creds[id] = [2]string{email, hash}
	return nil
}

func (m *memoryStore) UpdateCredentialPassword(ctx context.Context, id, hash string) error {
	c, ok := m.creds[id]
	if !ok {
		return ErrIdentityNotFound
	}
	c[1] = hash
	m.creds[id] = c
	return nil
}

func (m *memoryStore) DeleteCredential(ctx context.Context, id string) error {
	if _, ok := m.creds[id]; !ok {
		return ErrIdentityNotFound
	}
	delete(m.creds, id)
	return nil
}

func TestLocalProvider(t *testing.T) {
	ctx := context.Background()
	store := &memoryStore{creds: map[string][2]string{}}
	p := NewLocalProvider(store)

	id, err := p.CreateUser(ctx, "alice@teamtime.local", "password-1")
	require.NoError(t, err)

	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())

	cred := store.creds[id]
	assert.Equal(t, "alice@teamtime.local", cred[0])
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(cred[1]), []byte("password-1")))

	require.NoError(t, p.UpdatePassword(ctx, id, "password-2"))
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(store.creds[id][1]), []byte("password-2")))

	require.NoError(t, p.DeleteUser(ctx, id))
	assert.ErrorIs(t, p.DeleteUser(ctx, id), ErrIdentityNotFound)
}

func TestLocalProvider_StoreError(t *testing.T) {
	p := NewLocalProvider(&memoryStore{creds: map[string][2]string{}, err: errors.New("db down")})
	_, err := p.CreateUser(context.Background(), "a@b.c", "password-1")
	assert.EqualError(t, err, "db down")
}

func TestEmail(t *testing.T) {
	assert.Equal(t, "alice@teamtime.local", Email("Alice", "teamtime.local"))
}
