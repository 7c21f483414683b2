package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/paani/remedial-learning-app/internal/config"
	"github.com/paani/remedial-learning-app/pkg/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type cli struct {
	cfg    *config.Config
	logger *logging.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:           "remedialctl",
		Short:         "Administration tasks for the remedial learning service",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			zapLogger, err := zap.NewDevelopment()
			if err != nil {
				return err
			}
			c.logger = logging.New(zapLogger)

			c.cfg, err = config.New()
			return err
		},
	}

	root.AddCommand(
		newMigrateCmd(c),
		newBackupCmd(c),
		newPurgeSessionsCmd(c),
	)
	return root
}
