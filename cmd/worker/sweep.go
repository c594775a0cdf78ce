package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/GoSim-25-26J-441/planner-backend/internal/bootstrap"
	"github.com/GoSim-25-26J-441/planner-backend/internal/planner/repository"
	"github.com/GoSim-25-26J-441/planner-backend/internal/planner/sweeper"
)

func newSweepCmd(e *env) *cobra.Command {
	var once bool

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Mark applications stuck in pending enrichment as failed",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			db, err := bootstrap.OpenDB(ctx, &e.cfg.Database)
			if err != nil {
				return err
			}
			defer db.Close()

			s := sweeper.New(repository.NewApplicationRepository(db), e.cfg.Sweeper.StaleAfter, e.log)
			if once {
				n, err := s.RunOnce(ctx)
				if err != nil {
					return err
				}
				e.log.Info("sweep complete", zap.Int64("failed", n))
				return nil
			}

			if err := s.Start(ctx, e.cfg.Sweeper.Schedule); err != nil {
				return err
			}
			<-ctx.Done()
			s.Stop()
			return nil
		},
	}

	cmd.Flags().BoolVar(&once, "once", false, "run a single sweep and exit")
	return cmd
}
