package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/teamtime-backend-go/internal/config"
	"github.com/cmlabs-hris/teamtime-backend-go/internal/fixtures"
	appHTTP "github.com/cmlabs-hris/teamtime-backend-go/internal/handler/http"
	"github.com/cmlabs-hris/teamtime-backend-go/internal/pkg/cron"
	"github.com/cmlabs-hris/teamtime-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/teamtime-backend-go/internal/pkg/identity"
	"github.com/cmlabs-hris/teamtime-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/teamtime-backend-go/internal/pkg/storage"
	"github.com/cmlabs-hris/teamtime-backend-go/internal/repository/postgresql"
	attendanceService "github.com/cmlabs-hris/teamtime-backend-go/internal/service/attendance"
	serviceAuth "github.com/cmlabs-hris/teamtime-backend-go/internal/service/auth"
	backupService "github.com/cmlabs-hris/teamtime-backend-go/internal/service/backup"
	employeeService "github.com/cmlabs-hris/teamtime-backend-go/internal/service/employee"
	projectService "github.com/cmlabs-hris/teamtime-backend-go/internal/service/project"
	recordService "github.com/cmlabs-hris/teamtime-backend-go/internal/service/record"
	userService "github.com/cmlabs-hris/teamtime-backend-go/internal/service/user"
)

const version = "v1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.App.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	if err := postgresql.InitSchema(ctx, db); err != nil {
		log.Fatal("Error applying schema: ", err)
	}

	holidays, err := fixtures.LoadHolidayTable(cfg.Holidays.File)
	if err != nil {
		log.Fatal("Error loading holidays: ", err)
	}
	slog.Info("Holiday table loaded", "entries", holidays.Len(), "years", holidays.Years())

	transactor := postgresql.NewTransactor(db)
	userRepo := postgresql.NewUserRepository(db)
	projectRepo := postgresql.NewProjectRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	recordRepo := postgresql.NewRecordRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	JWTRepository := postgresql.NewJWTRepository(db)

	JWTService, err := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	if err != nil {
		log.Fatal("Error creating JWT service: ", err)
	}

	var identityProvider identity.Provider
	switch cfg.Identity.Provider {
	case "local":
		identityProvider = identity.NewLocalProvider(postgresql.NewCredentialStore(db))
	case "remote":
		identityProvider = identity.NewRemoteProvider(ctx, cfg.Identity.BaseURL, cfg.Identity.ServiceKey)
	default:
		log.Fatal("Unsupported identity provider: ", cfg.Identity.Provider)
	}

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(cfg.Storage.BasePath)
		if err != nil {
			log.Fatal("Failed to initialize local storage: ", err)
		}
	case "none":
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	authSvc := serviceAuth.NewAuthService(transactor, userRepo, JWTService, JWTRepository)
	attendanceSvc := attendanceService.NewAttendanceService(transactor, holidays, attendanceRepo, employeeRepo, projectRepo)
	projectSvc := projectService.NewProjectService(projectRepo, recordRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, projectRepo, recordRepo)
	recordSvc := recordService.NewRecordService(recordRepo, projectRepo, employeeRepo)
	userSvc := userService.NewUserService(transactor, userRepo, projectRepo, JWTRepository, identityProvider, cfg.Identity.EmailDomain)
	backupSvc := backupService.NewBackupService(transactor, projectRepo, employeeRepo, recordRepo, userRepo, attendanceRepo, fileStorage, cfg.Backup.Prefix)

	scheduler := cron.NewScheduler()
	if cfg.Backup.Enabled {
		if fileStorage == nil {
			log.Fatal("BACKUP_ENABLED requires file storage")
		}
		cron.NewBackupJobs(backupSvc, cfg.Backup.Interval, cfg.Backup.Keep).RegisterJobs(scheduler)
	}
	scheduler.Start(ctx)
	defer scheduler.Stop()

	router := appHTTP.NewRouter(appHTTP.RouterConfig{
		AllowedOrigins: cfg.App.AllowedOrigins,
		Env:            cfg.App.Env,
		Version:        version,
		LogLevel:       level,
	}, JWTService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(JWTService, authSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Project:    appHTTP.NewProjectHandler(projectSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Record:     appHTTP.NewRecordHandler(recordSvc),
		User:       appHTTP.NewUserHandler(userSvc),
		Backup:     appHTTP.NewBackupHandler(backupSvc),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("Server running", "addr", srv.Addr, "env", cfg.App.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
	}
}
