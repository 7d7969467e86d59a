package employee

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/teamtime-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/teamtime-backend-go/internal/domain/project"
	"github.com/cmlabs-hris/teamtime-backend-go/internal/domain/record"
	"github.com/cmlabs-hris/teamtime-backend-go/internal/pkg/validator"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	coreID = "0192f0a0-0000-7000-8000-000000000001"
	webID  = "0192f0a0-0000-7000-8000-000000000002"
)

type fakeProjectRepo struct {
	project.ProjectRepository
}

func (fakeProjectRepo) GetByID(ctx context.Context, id string) (project.Project, error) {
	switch id {
	case coreID:
		return project.Project{ID: coreID, Key: "CORE"}, nil
	case webID:
		return project.Project{ID: webID, Key: "WEB"}, nil
	}
	return project.Project{}, pgx.ErrNoRows
}

func (fakeProjectRepo) GetByKey(ctx context.Context, key string) (project.Project, error) {
	switch key {
	case "CORE":
		return project.Project{ID: coreID, Key: "CORE"}, nil
	case "WEB":
		return project.Project{ID: webID, Key: "WEB"}, nil
	}
	return project.Project{}, pgx.ErrNoRows
}

type fakeEmployeeRepo struct {
	employees  map[string]employee.Employee
	lastFilter employee.ListEmployeeFilter
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	core, web := coreID, webID
	return &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"e-1": {ID: "e-1", FullName: "Ana", ProjectID: &core},
		"e-2": {ID: "e-2", FullName: "Budi", ProjectID: &web},
		"e-3": {ID: "e-3", FullName: "Citra"},
	}}
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	e, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, pgx.ErrNoRows
	}
	return e, nil
}

func (f *fakeEmployeeRepo) List(ctx context.Context, filter employee.ListEmployeeFilter) ([]employee.Employee, error) {
	f.lastFilter = filter
	var out []employee.Employee
	for _, id := range []string{"e-1", "e-2", "e-3"} {
		e, ok := f.employees[id]
		if !ok {
			continue
		}
		if filter.ProjectID != nil && (e.ProjectID == nil || *e.ProjectID != *filter.ProjectID) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	e.ID = "e-new"
	f.employees[e.ID] = e
	return e, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	e, ok := f.employees[req.ID]
	if !ok {
		return employee.Employee{}, pgx.ErrNoRows
	}
	if req.FullName != nil {
		e.FullName = *req.FullName
	}
	if req.ProjectID != nil {
		if *req.ProjectID == "" {
			e.ProjectID = nil
		} else {
			e.ProjectID = req.ProjectID
		}
	}
	f.employees[e.ID] = e
	return e, nil
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.employees[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.employees, id)
	return nil
}

type fakeRecordCounter struct {
	record.RecordRepository
	counts map[string]int
}

func (f fakeRecordCounter) CountByEmployee(ctx context.Context, employeeID string) (int, error) {
	return f.counts[employeeID], nil
}

func asRole(t *testing.T, role, projectKey string) context.Context {
	t.Helper()
	claims := map[string]interface{}{"user_id": "u-1", "role": role}
	if projectKey != "" {
		claims["project_key"] = projectKey
	}
	token, _, err := jwtauth.New("HS256", []byte("secret"), nil).Encode(claims)
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func names(list []employee.EmployeeResponse) []string {
	out := make([]string, 0, len(list))
	for _, e := range list {
		out = append(out, e.FullName)
	}
	return out
}

func TestList(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := NewEmployeeService(repo, fakeProjectRepo{}, fakeRecordCounter{})

	t.Run("admin sees everyone", func(t *testing.T) {
		list, err := svc.List(asRole(t, "admin", ""), employee.ListEmployeeFilter{})
		require.NoError(t, err)
		assert.Equal(t, []string{"Ana", "Budi", "Citra"}, names(list))
	})

	t.Run("admin filters by project", func(t *testing.T) {
		web := webID
		list, err := svc.List(asRole(t, "admin", ""), employee.ListEmployeeFilter{ProjectID: &web})
		require.NoError(t, err)
		assert.Equal(t, []string{"Budi"}, names(list))
	})

	t.Run("user is pinned to own project", func(t *testing.T) {
		list, err := svc.List(asRole(t, "user", "CORE"), employee.ListEmployeeFilter{})
		require.NoError(t, err)
		assert.Equal(t, []string{"Ana"}, names(list))
		require.NotNil(t, repo.lastFilter.ProjectID)
		assert.Equal(t, coreID, *repo.lastFilter.ProjectID)
	})

	t.Run("user asking for another project gets nothing", func(t *testing.T) {
		web := webID
		list, err := svc.List(asRole(t, "user", "CORE"), employee.ListEmployeeFilter{ProjectID: &web})
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("user with unknown project key gets nothing", func(t *testing.T) {
		list, err := svc.List(asRole(t, "user", "GONE"), employee.ListEmployeeFilter{})
		require.NoError(t, err)
		assert.Empty(t, list)
	})
}

func TestGet(t *testing.T) {
	svc := NewEmployeeService(newFakeEmployeeRepo(), fakeProjectRepo{}, fakeRecordCounter{})

	e, err := svc.Get(asRole(t, "manager", "WEB"), "e-2")
	require.NoError(t, err)
	assert.Equal(t, "Budi", e.FullName)

	_, err = svc.Get(asRole(t, "manager", "WEB"), "e-1")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	_, err = svc.Get(asRole(t, "admin", ""), "missing")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestCreate(t *testing.T) {
	svc := NewEmployeeService(newFakeEmployeeRepo(), fakeProjectRepo{}, fakeRecordCounter{})
	ctx := context.Background()

	core := coreID
	created, err := svc.Create(ctx, employee.CreateEmployeeRequest{FullName: "Dewi", Title: "QA", ProjectID: &core})
	require.NoError(t, err)
	assert.Equal(t, "e-new", created.ID)

	unknown := "0192f0a0-0000-7000-8000-0000000000ff"
	_, err = svc.Create(ctx, employee.CreateEmployeeRequest{FullName: "Eko", ProjectID: &unknown})
	assert.ErrorIs(t, err, employee.ErrProjectNotFound)

	_, err = svc.Create(ctx, employee.CreateEmployeeRequest{FullName: " "})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestUpdate(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := NewEmployeeService(repo, fakeProjectRepo{}, fakeRecordCounter{})
	ctx := context.Background()

	empty := ""
	updated, err := svc.Update(ctx, employee.UpdateEmployeeRequest{ID: "e-1", ProjectID: &empty})
	require.NoError(t, err)
	assert.Nil(t, updated.ProjectID)

	name := "Ana Maria"
	_, err = svc.Update(ctx, employee.UpdateEmployeeRequest{ID: "missing", FullName: &name})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestDelete(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := NewEmployeeService(repo, fakeProjectRepo{}, fakeRecordCounter{counts: map[string]int{"e-1": 2}})
	ctx := context.Background()

	assert.ErrorIs(t, svc.Delete(ctx, "e-1"), employee.ErrEmployeeHasRecords)
	require.NoError(t, svc.Delete(ctx, "e-3"))
	assert.NotContains(t, repo.employees, "e-3")
	assert.ErrorIs(t, svc.Delete(ctx, "e-3"), employee.ErrEmployeeNotFound)
}
