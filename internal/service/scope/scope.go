// Package scope resolves which project a caller is limited to.
package scope

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/teamtime-backend-go/internal/domain/project"
	"github.com/cmlabs-hris/teamtime-backend-go/internal/domain/user"
	"github.com/jackc/pgx/v5"
)

// ProjectScope is the resolved project restriction of a caller.
// When Restricted is set and ProjectID is empty the caller sees nothing.
type ProjectScope struct {
	Restricted bool
	ProjectID  string
	ProjectKey string
}

// Allows reports whether rows of projectID are visible.
func (p ProjectScope) Allows(projectID *string) bool {
	if !p.Restricted {
		return true
	}
	return projectID != nil && p.ProjectID != "" && *projectID == p.ProjectID
}

// Resolve reads the caller from ctx and maps its project key to a project id.
func Resolve(ctx context.Context, projects project.ProjectRepository) (ProjectScope, error) {
	caller, err := user.ScopeFromContext(ctx)
	if err != nil {
		return ProjectScope{}, err
	}
	if !caller.Restricted() {
		return ProjectScope{}, nil
	}

	ps := ProjectScope{Restricted: true, ProjectKey: caller.ProjectKey}
	if caller.ProjectKey == "" {
		return ps, nil
	}

	p, err := projects.GetByKey(ctx, caller.ProjectKey)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ps, nil
		}
		return ProjectScope{}, fmt.Errorf("failed to resolve project scope: %w", err)
	}
	ps.ProjectID = p.ID
	return ps, nil
}
