package cli

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/teamtime-backend-go/internal/config"
	"github.com/cmlabs-hris/teamtime-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/teamtime-backend-go/internal/pkg/identity"
	"github.com/cmlabs-hris/teamtime-backend-go/internal/repository/postgresql"
)

// env is the database-backed part of the server wiring, opened per command.
type env struct {
	cfg *config.Config
	db  *database.DB
}

func openEnv(ctx context.Context) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	if err := postgresql.InitSchema(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &env{cfg: cfg, db: db}, nil
}

func (e *env) identityProvider(ctx context.Context) (identity.Provider, error) {
	switch e.cfg.Identity.Provider {
	case "local":
		return identity.NewLocalProvider(postgresql.NewCredentialStore(e.db)), nil
	case "remote":
		return identity.NewRemoteProvider(ctx, e.cfg.Identity.BaseURL, e.cfg.Identity.ServiceKey), nil
	default:
		return nil, fmt.Errorf("unsupported identity provider: %s", e.cfg.Identity.Provider)
	}
}

func (e *env) Close() {
	e.db.Close()
}
