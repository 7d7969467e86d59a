package scope

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/teamtime-backend-go/internal/domain/project"
	"github.com/cmlabs-hris/teamtime-backend-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProjects struct {
	project.ProjectRepository
}

func (fakeProjects) GetByKey(ctx context.Context, key string) (project.Project, error) {
	if key == "CORE" {
		return project.Project{ID: "p-core", Key: key}, nil
	}
	return project.Project{}, pgx.ErrNoRows
}

func withClaims(t *testing.T, claims map[string]interface{}) context.Context {
	t.Helper()
	token, _, err := jwtauth.New("HS256", []byte("secret"), nil).Encode(claims)
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name   string
		claims map[string]interface{}
		want   ProjectScope
	}{
		{"admin", map[string]interface{}{"user_id": "u", "role": "admin", "project_key": "CORE"}, ProjectScope{}},
		{"manager without key", map[string]interface{}{"user_id": "u", "role": "manager"}, ProjectScope{}},
		{"user", map[string]interface{}{"user_id": "u", "role": "user", "project_key": "CORE"}, ProjectScope{Restricted: true, ProjectID: "p-core", ProjectKey: "CORE"}},
		{"user with stale key", map[string]interface{}{"user_id": "u", "role": "user", "project_key": "GONE"}, ProjectScope{Restricted: true, ProjectKey: "GONE"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(withClaims(t, tt.claims), fakeProjects{})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve_NoClaims(t *testing.T) {
	_, err := Resolve(context.Background(), fakeProjects{})
	assert.ErrorIs(t, err, user.ErrMissingClaims)
}

func TestAllows(t *testing.T) {
	core := "p-core"
	web := "p-web"

	assert.True(t, ProjectScope{}.Allows(nil))
	assert.True(t, ProjectScope{Restricted: true, ProjectID: core}.Allows(&core))
	assert.False(t, ProjectScope{Restricted: true, ProjectID: core}.Allows(&web))
	assert.False(t, ProjectScope{Restricted: true, ProjectID: core}.Allows(nil))
	assert.False(t, ProjectScope{Restricted: true}.Allows(&core))
}
