package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/GoSim-25-26J-441/planner-backend/config"
	"github.com/GoSim-25-26J-441/planner-backend/internal/logging"
)

// env is loaded once by the root command before any subcommand runs.
type env struct {
	cfg *config.Config
	log *zap.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	e := &env{}

	root := &cobra.Command{
		Use:           "worker",
		Short:         "Operational tasks for the planner backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger, err := logging.New(cfg.App.Environment, cfg.App.LogLevel)
			if err != nil {
				return err
			}
			e.cfg, e.log = cfg, logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if e.log != nil {
				_ = e.log.Sync()
			}
		},
	}

	root.AddCommand(
		newMigrateCmd(e),
		newSweepCmd(e),
		newPromptsCmd(e),
	)
	return root
}
