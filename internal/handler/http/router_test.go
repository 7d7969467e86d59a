package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/cmlabs-hris/teamtime-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/teamtime-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/teamtime-backend-go/internal/domain/backup"
	"github.com/cmlabs-hris/teamtime-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/teamtime-backend-go/internal/domain/holiday"
	"github.com/cmlabs-hris/teamtime-backend-go/internal/domain/project"
	"github.com/cmlabs-hris/teamtime-backend-go/internal/domain/record"
	"github.com/cmlabs-hris/teamtime-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/teamtime-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/teamtime-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===== STUB SERVICES =====

type stubAuthService struct {
	auth.AuthService
	loggedOut []auth.LogoutRequest
}

func (s *stubAuthService) Logout(ctx context.Context, req auth.LogoutRequest) error {
	s.loggedOut = append(s.loggedOut, req)
	return nil
}

func (s *stubAuthService) Me(ctx context.Context, userID string) (auth.MeResponse, error) {
	return auth.MeResponse{UserID: userID, Username: "ana", Role: "user"}, nil
}

type stubAttendanceService struct {
	saved  []attendance.SaveDayRequest
	err    error
	months []string
}

func (s *stubAttendanceService) GetMonth(ctx context.Context, employeeID, month string) (attendance.MonthResponse, error) {
	s.months = append(s.months, employeeID+"/"+month)
	if s.err != nil {
		return attendance.MonthResponse{}, s.err
	}
	return attendance.MonthResponse{EmployeeID: employeeID, Month: month}, nil
}

func (s *stubAttendanceService) SaveDay(ctx context.Context, req attendance.SaveDayRequest) (attendance.DayResponse, error) {
	s.saved = append(s.saved, req)
	if s.err != nil {
		return attendance.DayResponse{}, s.err
	}
	return attendance.DayResponse{EmployeeID: req.EmployeeID, Month: req.Month, Day: req.Day}, nil
}

func (s *stubAttendanceService) ClearDay(ctx context.Context, req attendance.ClearDayRequest) error {
	return s.err
}

func (s *stubAttendanceService) ListStatuses() []attendance.StatusResponse {
	return []attendance.StatusResponse{{Value: attendance.StatusPresent, Label: "Present", Color: "#22c55e"}}
}

func (s *stubAttendanceService) ListHolidays(month string) ([]holiday.Holiday, error) {
	if month == "bad" {
		return nil, attendance.ErrInvalidMonthKey
	}
	return []holiday.Holiday{{Date: "2025-12-25", Name: "Christmas Day"}}, nil
}

type stubProjectService struct {
	project.ProjectService
	createErr error
}

func (s *stubProjectService) List(ctx context.Context) ([]project.ProjectResponse, error) {
	return []project.ProjectResponse{{ID: "p-1", Key: "CORE", Name: "Core"}}, nil
}

func (s *stubProjectService) Create(ctx context.Context, req project.CreateProjectRequest) (project.ProjectResponse, error) {
	if s.createErr != nil {
		return project.ProjectResponse{}, s.createErr
	}
	return project.ProjectResponse{ID: "p-2", Key: req.Key, Name: req.Name}, nil
}

type stubEmployeeService struct {
	employee.EmployeeService
	filters []employee.ListEmployeeFilter
}

func (s *stubEmployeeService) List(ctx context.Context, filter employee.ListEmployeeFilter) ([]employee.EmployeeResponse, error) {
	s.filters = append(s.filters, filter)
	return []employee.EmployeeResponse{}, nil
}

func (s *stubEmployeeService) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
}

type stubRecordService struct {
	record.RecordService
	filters []record.RecordFilter
}

func (s *stubRecordService) List(ctx context.Context, filter record.RecordFilter) ([]record.RecordResponse, error) {
	s.filters = append(s.filters, filter)
	return []record.RecordResponse{}, filter.Validate()
}

type stubUserService struct {
	user.UserService
	provisionErr error
	deleted      [][2]string
}

func (s *stubUserService) Provision(ctx context.Context, req user.CreateUserRequest) (user.ProvisionResponse, error) {
	if s.provisionErr != nil {
		return user.ProvisionResponse{}, s.provisionErr
	}
	return user.ProvisionResponse{ID: "u-new", AuthUserID: "auth-new"}, nil
}

func (s *stubUserService) Delete(ctx context.Context, id string, actorID string) error {
	s.deleted = append(s.deleted, [2]string{id, actorID})
	return nil
}

type stubBackupService struct {
	backup.BackupService
}

func (stubBackupService) Snapshot(ctx context.Context) (backup.Snapshot, error) {
	return backup.Snapshot{
		Version:     backup.SnapshotVersion,
		GeneratedAt: time.Date(2025, time.April, 1, 8, 30, 0, 0, time.UTC),
	}, nil
}

func (stubBackupService) ListStored(ctx context.Context) ([]string, error) {
	return nil, backup.ErrStorageNotConfigured
}

// ===== HELPERS =====

type routerFixture struct {
	router     http.Handler
	jwtService *jwt.JWTService
	auth       *stubAuthService
	attendance *stubAttendanceService
	project    *stubProjectService
	employee   *stubEmployeeService
	record     *stubRecordService
	user       *stubUserService
}

func newRouterFixture(t *testing.T) *routerFixture {
	t.Helper()

	jwtService, err := jwt.NewJWTService("router-test-secret", "1h", "24h")
	require.NoError(t, err)

	f := &routerFixture{
		jwtService: jwtService,
		auth:       &stubAuthService{},
		attendance: &stubAttendanceService{},
		project:    &stubProjectService{},
		employee:   &stubEmployeeService{},
		record:     &stubRecordService{},
		user:       &stubUserService{},
	}
	f.router = NewRouter(RouterConfig{
		AllowedOrigins: []string{"http://localhost:3000"},
		Env:            "test",
		Version:        "test",
		LogLevel:       slog.LevelError,
	}, jwtService, Handlers{
		Auth:       NewAuthHandler(jwtService, f.auth),
		Attendance: NewAttendanceHandler(f.attendance),
		Project:    NewProjectHandler(f.project),
		Employee:   NewEmployeeHandler(f.employee),
		Record:     NewRecordHandler(f.record),
		User:       NewUserHandler(f.user),
		Backup:     NewBackupHandler(stubBackupService{}),
	})
	return f
}

func (f *routerFixture) token(t *testing.T, role user.Role, projectKey string) string {
	t.Helper()
	u := user.User{ID: "u-" + string(role), Username: string(role), Role: role}
	if projectKey != "" {
		u.ProjectKey = &projectKey
	}
	token, _, err := f.jwtService.GenerateAccessToken(u)
	require.NoError(t, err)
	return token
}

func (f *routerFixture) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	resp := decodeBody(t, w)
	assert.False(t, resp["success"].(bool))
	return resp["error"].(map[string]interface{})["code"].(string)
}

// ===== AUTHENTICATION =====

func TestRouter_RequiresAccessToken(t *testing.T) {
	f := newRouterFixture(t)

	w := f.do(t, http.MethodGet, "/api/v1/projects", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	refresh, _, err := f.jwtService.GenerateRefreshToken("u-1")
	require.NoError(t, err)
	w = f.do(t, http.MethodGet, "/api/v1/projects", refresh, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = f.do(t, http.MethodGet, "/api/v1/projects", f.token(t, user.RoleUser, "CORE"), nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_LogoutRevokesAccessToken(t *testing.T) {
	f := newRouterFixture(t)
	token := f.token(t, user.RoleManager, "")

	w := f.do(t, http.MethodPost, "/api/v1/auth/logout", token, map[string]string{"refresh_token": "r-1"})
	require.Equal(t, http.StatusOK, w.Code)

	require.Len(t, f.auth.loggedOut, 1)
	assert.Equal(t, token, f.auth.loggedOut[0].AccessToken)
	assert.Equal(t, "r-1", f.auth.loggedOut[0].RefreshToken)
	assert.Positive(t, f.auth.loggedOut[0].AccessTokenExpiresAt)

	// the stub does not revoke, so do what the real service does
	f.jwtService.RevokeToken(token, f.auth.loggedOut[0].AccessTokenExpiresAt)
	w = f.do(t, http.MethodGet, "/api/v1/auth/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_Me(t *testing.T) {
	f := newRouterFixture(t)

	w := f.do(t, http.MethodGet, "/api/v1/auth/me", f.token(t, user.RoleUser, "CORE"), nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "u-user", data["user_id"])
}

// ===== PERMISSIONS =====

func TestRouter_AttendanceEditRequiresManager(t *testing.T) {
	f := newRouterFixture(t)
	path := "/api/v1/employees/e-1/attendance/2025-03/days/14"
	body := map[string]string{"status": "present", "start_time": "09:00", "end_time": "19:00"}

	w := f.do(t, http.MethodPut, path, f.token(t, user.RoleUser, "CORE"), body)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, f.attendance.saved)

	w = f.do(t, http.MethodPut, path, f.token(t, user.RoleManager, ""), body)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, f.attendance.saved, 1)
	saved := f.attendance.saved[0]
	assert.Equal(t, "e-1", saved.EmployeeID)
	assert.Equal(t, "2025-03", saved.Month)
	assert.Equal(t, 14, saved.Day)
	assert.Equal(t, "19:00", saved.EndTime)

	// users may still read the month
	w = f.do(t, http.MethodGet, "/api/v1/employees/e-1/attendance/2025-03", f.token(t, user.RoleUser, "CORE"), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"e-1/2025-03"}, f.attendance.months)
}

func TestRouter_AdminPanel(t *testing.T) {
	f := newRouterFixture(t)

	w := f.do(t, http.MethodGet, "/api/v1/backup", f.token(t, user.RoleManager, ""), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = f.do(t, http.MethodPost, "/api/v1/users", f.token(t, user.RoleManager, ""), map[string]string{"username": "x"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = f.do(t, http.MethodDelete, "/api/v1/users/u-9", f.token(t, user.RoleAdmin, ""), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, [][2]string{{"u-9", "u-admin"}}, f.user.deleted)
}

func TestRouter_ViewPermissions(t *testing.T) {
	f := newRouterFixture(t)
	guest := f.token(t, user.Role("guest"), "")

	for _, path := range []string{
		"/api/v1/records",
		"/api/v1/records/r-1",
		"/api/v1/employees/e-1/attendance/2025-03",
		"/api/v1/users",
		"/api/v1/backup/stored",
	} {
		w := f.do(t, http.MethodGet, path, guest, nil)
		assert.Equal(t, http.StatusForbidden, w.Code, path)
		assert.Equal(t, "FORBIDDEN", errorCode(t, w), path)
	}
	assert.Empty(t, f.attendance.months)

	w := f.do(t, http.MethodGet, "/api/v1/users", f.token(t, user.RoleUser, "CORE"), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, decodeBody(t, w)["error"].(map[string]interface{})["message"], "user.manage")

	w = f.do(t, http.MethodGet, "/api/v1/records", f.token(t, user.RoleUser, "CORE"), nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_ProjectCreateRequiresAdmin(t *testing.T) {
	f := newRouterFixture(t)
	body := map[string]string{"key": "OPS", "name": "Operations"}

	w := f.do(t, http.MethodPost, "/api/v1/projects", f.token(t, user.RoleManager, ""), body)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = f.do(t, http.MethodPost, "/api/v1/projects", f.token(t, user.RoleAdmin, ""), body)
	assert.Equal(t, http.StatusCreated, w.Code)
}

// ===== ERROR MAPPING =====

func TestRouter_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(f *routerFixture)
		method string
		path   string
		body   interface{}
		status int
		code   string
	}{
		{
			name:   "invalid day from service",
			setup:  func(f *routerFixture) { f.attendance.err = attendance.ErrInvalidDay },
			method: http.MethodPut,
			path:   "/api/v1/employees/e-1/attendance/2025-02/days/30",
			body:   map[string]string{"status": "present"},
			status: http.StatusBadRequest,
			code:   "BAD_REQUEST",
		},
		{
			name:   "non numeric day",
			method: http.MethodPut,
			path:   "/api/v1/employees/e-1/attendance/2025-02/days/first",
			body:   map[string]string{"status": "present"},
			status: http.StatusBadRequest,
			code:   "BAD_REQUEST",
		},
		{
			name: "validation errors",
			setup: func(f *routerFixture) {
				f.attendance.err = validator.ValidationErrors{{Field: "end_time", Message: "end_time must be in HH:MM format"}}
			},
			method: http.MethodPut,
			path:   "/api/v1/employees/e-1/attendance/2025-02/days/3",
			body:   map[string]string{"end_time": "25:99"},
			status: http.StatusUnprocessableEntity,
			code:   "VALIDATION_ERROR",
		},
		{
			name:   "day not found",
			setup:  func(f *routerFixture) { f.attendance.err = attendance.ErrDayNotFound },
			method: http.MethodDelete,
			path:   "/api/v1/employees/e-1/attendance/2025-02/days/3",
			status: http.StatusNotFound,
			code:   "NOT_FOUND",
		},
		{
			name:   "employee not found",
			method: http.MethodGet,
			path:   "/api/v1/employees/e-404",
			status: http.StatusNotFound,
			code:   "NOT_FOUND",
		},
		{
			name:   "duplicate project key",
			setup:  func(f *routerFixture) { f.project.createErr = project.ErrProjectKeyExists },
			method: http.MethodPost,
			path:   "/api/v1/projects",
			body:   map[string]string{"key": "CORE", "name": "Core"},
			status: http.StatusConflict,
			code:   "CONFLICT",
		},
		{
			name:   "identity provider failure",
			setup:  func(f *routerFixture) { f.user.provisionErr = user.ErrIdentityProvisionFailed },
			method: http.MethodPost,
			path:   "/api/v1/users",
			body:   map[string]string{"username": "budi", "password": "secret123", "role": "manager"},
			status: http.StatusBadGateway,
			code:   "BAD_GATEWAY",
		},
		{
			name:   "storage not configured",
			method: http.MethodGet,
			path:   "/api/v1/backup/stored",
			status: http.StatusServiceUnavailable,
			code:   "SERVICE_UNAVAILABLE",
		},
		{
			name:   "bad holiday month",
			method: http.MethodGet,
			path:   "/api/v1/holidays?month=bad",
			status: http.StatusBadRequest,
			code:   "BAD_REQUEST",
		},
		{
			name:   "invalid record filter",
			method: http.MethodGet,
			path:   "/api/v1/records?month=2025-13",
			status: http.StatusUnprocessableEntity,
			code:   "VALIDATION_ERROR",
		},
		{
			name:   "unknown route",
			method: http.MethodGet,
			path:   "/api/v1/nothing-here",
			status: http.StatusNotFound,
			code:   "NOT_FOUND",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRouterFixture(t)
			if tt.setup != nil {
				tt.setup(f)
			}

			w := f.do(t, tt.method, tt.path, f.token(t, user.RoleAdmin, ""), tt.body)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.code, errorCode(t, w))
		})
	}
}

// ===== HANDLERS =====

func TestRouter_ProvisionReturnsID(t *testing.T) {
	f := newRouterFixture(t)

	w := f.do(t, http.MethodPost, "/api/v1/users", f.token(t, user.RoleAdmin, ""),
		map[string]string{"username": "budi", "password": "secret123", "role": "user", "project_key": "CORE"})
	require.Equal(t, http.StatusOK, w.Code)

	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "u-new", data["id"])
}

func TestRouter_ListFiltersFromQuery(t *testing.T) {
	f := newRouterFixture(t)
	token := f.token(t, user.RoleAdmin, "")

	w := f.do(t, http.MethodGet, "/api/v1/employees?project_id=p-1", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, f.employee.filters, 1)
	require.NotNil(t, f.employee.filters[0].ProjectID)
	assert.Equal(t, "p-1", *f.employee.filters[0].ProjectID)

	w = f.do(t, http.MethodGet, "/api/v1/records?month=2025-03", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, f.record.filters, 1)
	assert.Nil(t, f.record.filters[0].ProjectID)
	require.NotNil(t, f.record.filters[0].Month)
	assert.Equal(t, "2025-03", *f.record.filters[0].Month)
}

func TestRouter_StatusesAndHolidays(t *testing.T) {
	f := newRouterFixture(t)
	token := f.token(t, user.RoleUser, "CORE")

	w := f.do(t, http.MethodGet, "/api/v1/attendance/statuses", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"color":"#22c55e"`)

	w = f.do(t, http.MethodGet, "/api/v1/holidays", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = f.do(t, http.MethodGet, "/api/v1/holidays?month=2025-12", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Christmas Day")
}

func TestRouter_BackupExportDownload(t *testing.T) {
	f := newRouterFixture(t)

	w := f.do(t, http.MethodGet, "/api/v1/backup?download=true", f.token(t, user.RoleAdmin, ""), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Header().Get("Content-Disposition"), "teamtime-20250401T083000Z.json"))

	var snap backup.Snapshot
	require.NoError(t, json.NewDecoder(w.Body).Decode(&snap))
	assert.Equal(t, backup.SnapshotVersion, snap.Version)
}
