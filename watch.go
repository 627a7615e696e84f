package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/maastricht-university/speechscore/orchestrator"
)

// NewWatchCmd creates the watch command.
func NewWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <dir>",
		Short: "Score transcripts as they are written into a directory",
		Long: `Watch a directory for transcript files and write a JSON report next to each
one (intro.txt -> intro.score.json). Transcripts already present without a report
are scored on start.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := args[0]
			if info, err := os.Stat(dir); err != nil {
				return err
			} else if !info.IsDir() {
				return fmt.Errorf("%s is not a directory", dir)
			}

			rt, err := setup(cmd)
			if err != nil {
				return err
			}
			workers, _ := cmd.Flags().GetInt("workers")
			if workers <= 0 {
				workers = rt.cfg.Watch.Workers
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			rt.registry.Warm(ctx)
			w := orchestrator.NewWatcher(dir, rt.cfg.Watch.Extension, workers, rt.pipeline, rt.log)
			return w.Run(ctx)
		},
	}
	cmd.Flags().Int("workers", 0, "Concurrent scoring workers (overrides config)")
	return cmd
}
