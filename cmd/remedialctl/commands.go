package main

import (
	"fmt"

	"github.com/paani/remedial-learning-app/internal/backup"
	"github.com/paani/remedial-learning-app/internal/data"
	"github.com/paani/remedial-learning-app/internal/db"
	"github.com/paani/remedial-learning-app/internal/password"
	"github.com/paani/remedial-learning-app/internal/service"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newMigrateCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back schema migrations",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				if err := db.MigrateUp(c.cfg); err != nil {
					return err
				}
				c.logger.Info(cmd.Context(), "migrations applied")
				return nil
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back every migration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				if err := db.MigrateDown(c.cfg); err != nil {
					return err
				}
				c.logger.Info(cmd.Context(), "migrations rolled back")
				return nil
			},
		},
	)
	return cmd
}

func newBackupCmd(c *cli) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Write a JSON snapshot of every table except sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if dir == "" {
				dir = c.cfg.BackupDir
			}

			c.cfg.PostgresAutoMigrate = false
			pool, err := db.New(ctx, c.cfg, c.logger)
			if err != nil {
				return err
			}
			defer pool.Close()

			path, err := backup.NewExporter(pool).WriteFile(ctx, dir)
			if err != nil {
				return err
			}
			c.logger.Info(ctx, "backup written", zap.String("path", path))
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "target directory (defaults to BACKUP_DIR)")
	return cmd
}

func newPurgeSessionsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "purge-sessions",
		Short: "Delete expired sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			c.cfg.PostgresAutoMigrate = false
			pool, err := db.New(ctx, c.cfg, c.logger)
			if err != nil {
				return err
			}
			defer pool.Close()

			identity := service.NewIdentityService(
				data.NewUserRepository(pool),
				data.NewSessionRepository(pool),
				password.NewBcryptHasher(c.cfg.BcryptCost),
				nil,
				0,
				c.cfg.SessionTTLDays,
			)
			purged, err := identity.PurgeExpiredSessions(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "purged %d expired sessions\n", purged)
			return nil
		},
	}
}
