package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/maastricht-university/speechscore/server"
)

// NewServeCmd creates the serve command.
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the scoring API and web page",
		Long: `Serve POST /score, GET /healthz and a small web page.

Configured optional services are probed once at startup; any that are unreachable
stay on their heuristic fallback for the life of the process.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := setup(cmd)
			if err != nil {
				return err
			}
			addr, _ := cmd.Flags().GetString("addr")
			if addr == "" {
				addr = rt.cfg.Server.Addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			rt.registry.Warm(ctx)
			rt.log.WithField("services", rt.registry.Status()).Info("optional services probed")

			srv := server.New(addr, rt.cfg.Server.MaxBodyBytes, rt.pipeline, rt.registry.Status, rt.log)
			return srv.Run(ctx)
		},
	}
	cmd.Flags().String("addr", "", "Listen address (overrides config)")
	return cmd
}
