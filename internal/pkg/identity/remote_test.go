package identity

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoteProvider_CreateUser(t *testing.T) {
	var gotAuth, gotAPIKey string
	var gotBody adminUserRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/admin/users", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		gotAPIKey = r.Header.Get("apikey")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"auth-123","email":"alice@teamtime.local"}`))
	}))
	defer srv.Close()

	p := NewRemoteProvider(context.Background(), srv.URL, "service-key")
	id, err := p.CreateUser(context.Background(), "alice@teamtime.local", "s3cret-pass")

	require.NoError(t, err)
	assert.Equal(t, "auth-123", id)
	assert.Equal(t, "Bearer service-key", gotAuth)
	assert.Equal(t, "service-key", gotAPIKey)
	assert.Equal(t, "alice@teamtime.local", gotBody.Email)
	assert.Equal(t, "s3cret-pass", gotBody.Password)
	assert.True(t, gotBody.EmailConfirm)
}

func TestRemoteProvider_CreateUser_Exists(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"error_code":"email_exists"}`))
	}))
	defer srv.Close()

	p := NewRemoteProvider(context.Background(), srv.URL, "k")
	_, err := p.CreateUser(context.Background(), "a@b.c", "password1")
	assert.ErrorIs(t, err, ErrIdentityExists)
}

func TestRemoteProvider_CreateUser_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer srv.Close()

	p := NewRemoteProvider(context.Background(), srv.URL, "k")
	_, err := p.CreateUser(context.Background(), "a@b.c", "password1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrIdentityExists)
	assert.Contains(t, err.Error(), "500")
}

func TestRemoteProvider_DeleteUser(t *testing.T) {
	var deleted string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		if r.URL.Path == "/admin/users/missing" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		deleted = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	p := NewRemoteProvider(context.Background(), srv.URL, "k")

	require.NoError(t, p.DeleteUser(context.Background(), "auth-123"))
	assert.Equal(t, "/admin/users/auth-123", deleted)

	assert.ErrorIs(t, p.DeleteUser(context.Background(), "missing"), ErrIdentityNotFound)
}

func TestRemoteProvider_UpdatePassword(t *testing.T) {
	var body adminUserRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/admin/users/auth-1", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		_, _ = w.Write([]byte(`{"id":"auth-1"}`))
	}))
	defer srv.Close()

	p := NewRemoteProvider(context.Background(), srv.URL, "k")
	require.NoError(t, p.UpdatePassword(context.Background(), "auth-1", "new-password"))
	assert.Equal(t, "new-password", body.Password)
	assert.Empty(t, body.Email)
}
