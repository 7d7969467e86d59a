package cli

import (
	"fmt"

	"github.com/cmlabs-hris/teamtime-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/teamtime-backend-go/internal/repository/postgresql"
	userService "github.com/cmlabs-hris/teamtime-backend-go/internal/service/user"
	"github.com/spf13/cobra"
)

var createAdminCmd = LeafCommand{
	Use:   "create-admin",
	Short: "Provision the first admin account",
	Args:  cobra.NoArgs,
	StrFlags: []StringFlag{
		{Name: "username", Usage: "admin username"},
		{Name: "password", Usage: "admin password (at least 8 characters)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		username, _ := cmd.Flags().GetString("username")
		password, _ := cmd.Flags().GetString("password")
		if username == "" || password == "" {
			return fmt.Errorf("--username and --password are required")
		}

		e, err := openEnv(cmd.Context())
		if err != nil {
			return err
		}
		defer e.Close()

		provider, err := e.identityProvider(cmd.Context())
		if err != nil {
			return err
		}

		svc := userService.NewUserService(
			postgresql.NewTransactor(e.db),
			postgresql.NewUserRepository(e.db),
			postgresql.NewProjectRepository(e.db),
			postgresql.NewJWTRepository(e.db),
			provider,
			e.cfg.Identity.EmailDomain,
		)
		resp, err := svc.Provision(cmd.Context(), user.CreateUserRequest{
			Username: username,
			Password: password,
			Role:     string(user.RoleAdmin),
		})
		if err != nil {
			return err
		}

		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "created admin %s (id %s)\n", username, resp.ID)
		return nil
	},
}.Build()
