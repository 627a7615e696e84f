package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/maastricht-university/speechscore/config"
	"github.com/maastricht-university/speechscore/orchestrator"
	"github.com/maastricht-university/speechscore/services"
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "speechscore",
		Short: "Score self-introduction transcripts against a speaking rubric",
		Long: `speechscore evaluates a self-introduction transcript on content and structure,
speech rate, grammar and vocabulary, clarity and engagement, and reports a 0-100 score
with per-criterion feedback.

Grammar checking, sentiment and semantic similarity use external services when they
are configured and reachable; otherwise deterministic heuristics are used.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("config", "", "Path to config file (default: search config/$CONFIG_ENV, ., $XDG_CONFIG_HOME/speechscore)")
	cmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (overrides config)")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewScoreCmd())
	cmd.AddCommand(NewWatchCmd())
	cmd.AddCommand(NewRubricCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app is what every scoring command needs.
type app struct {
	cfg      *config.Root
	log      *logrus.Logger
	registry *services.Registry
	pipeline *orchestrator.Pipeline
}

func setup(cmd *cobra.Command) (*app, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	level, _ := cmd.Flags().GetString("log-level")
	if level == "" {
		level = cfg.Log.Level
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = "debug"
	}
	log, err := newLogger(cmd.ErrOrStderr(), level, cfg.Log.Format)
	if err != nil {
		return nil, err
	}
	if cfg.File != "" {
		log.WithField("file", cfg.File).Debug("config loaded")
	}

	reg := services.New(cfg.Services, log)
	return &app{
		cfg:      cfg,
		log:      log,
		registry: reg,
		pipeline: orchestrator.NewPipeline(reg.Services(), log),
	}, nil
}

func newLogger(out io.Writer, level, format string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	log := logrus.New()
	log.SetOutput(out)
	log.SetLevel(lvl)
	switch format {
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	default:
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return log, nil
}
