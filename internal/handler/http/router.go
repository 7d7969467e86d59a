package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/cmlabs-hris/teamtime-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/teamtime-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/teamtime-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/teamtime-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

// RouterConfig carries the request-independent settings of the router.
type RouterConfig struct {
	AllowedOrigins []string
	Env            string
	Version        string
	LogLevel       slog.Level
}

// Handlers groups every HTTP handler mounted by NewRouter.
type Handlers struct {
	Auth       AuthHandler
	Attendance AttendanceHandler
	Project    ProjectHandler
	Employee   EmployeeHandler
	Record     RecordHandler
	User       UserHandler
	Backup     BackupHandler
}

func NewRouter(cfg RouterConfig, JWTService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(cfg.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "teamtime"),
		slog.String("version", cfg.Version),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  cfg.LogLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService))

			r.Post("/auth/logout", h.Auth.Logout)
			r.Get("/auth/me", h.Auth.Me)

			r.Get("/attendance/statuses", h.Attendance.ListStatuses)
			r.Get("/holidays", h.Attendance.ListHolidays)

			r.Route("/projects", func(r chi.Router) {
				r.Get("/", h.Project.List)
				r.Get("/{id}", h.Project.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionProjectManage))
					r.Post("/", h.Project.Create)
					r.Put("/{id}", h.Project.Update)
					r.Delete("/{id}", h.Project.Delete)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.ListEmployees)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionEmployeeManage))
					r.Post("/", h.Employee.CreateEmployee)
				})

				r.Route("/{employeeID}", func(r chi.Router) {
					r.Get("/", h.Employee.GetEmployee)

					r.Group(func(r chi.Router) {
						r.Use(middleware.RequirePermission(user.PermissionEmployeeManage))
						r.Put("/", h.Employee.UpdateEmployee)
						r.Delete("/", h.Employee.DeleteEmployee)
					})

					r.Route("/attendance/{month}", func(r chi.Router) {
						r.With(middleware.RequirePermission(user.PermissionAttendanceView)).Get("/", h.Attendance.GetMonth)

						r.Group(func(r chi.Router) {
							r.Use(middleware.RequirePermission(user.PermissionAttendanceEdit))
							r.Put("/days/{day}", h.Attendance.SaveDay)
							r.Delete("/days/{day}", h.Attendance.ClearDay)
						})
					})
				})
			})

			r.Route("/records", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionRecordView))
					r.Get("/", h.Record.List)
					r.Get("/{id}", h.Record.Get)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionRecordManage))
					r.Post("/", h.Record.Create)
					r.Put("/{id}", h.Record.Update)
					r.Delete("/{id}", h.Record.Delete)
				})
			})

			// Admin panel
			r.Route("/users", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionUserManage))
				r.Post("/", h.User.Provision)
				r.Get("/", h.User.List)
				r.Get("/{id}", h.User.Get)
				r.Put("/{id}", h.User.Update)
				r.Put("/{id}/password", h.User.ResetPassword)
				r.Delete("/{id}", h.User.Delete)
			})

			r.Route("/backup", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionBackupExport))
				r.Get("/", h.Backup.Export)
				r.Get("/stored", h.Backup.ListStored)
				r.Post("/stored", h.Backup.WriteNow)
				r.Get("/stored/{name}", h.Backup.DownloadStored)
			})
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "Route not found")
	})
	return r
}
