package main

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/maastricht-university/speechscore/config"
)

// Set at build time via -ldflags "-X main.version=...".
var (
	version = ""
	commit  = ""
	date    = ""
)

// buildSetting looks up a VCS setting stamped by the Go toolchain.
func buildSetting(key string) string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range info.Settings {
		if s.Key == key {
			return s.Value
		}
	}
	return ""
}

func getVersion() string {
	if version != "" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "(devel)"
}

func getCommit() string {
	if commit != "" {
		return commit
	}
	rev := buildSetting("vcs.revision")
	switch {
	case rev == "":
		return "unknown"
	case len(rev) > 7:
		return rev[:7]
	default:
		return rev
	}
}

func getDate() string {
	if date != "" {
		return date
	}
	if t := buildSetting("vcs.time"); t != "" {
		return t
	}
	return "unknown"
}

// backends names what each optional capability will run on: the configured
// service URL, or the built-in heuristic.
func backends(c config.Services) [][2]string {
	pick := func(url string) string {
		if url == "" {
			return "heuristic"
		}
		return url
	}
	sentiment := c.Sentiment.URL
	if c.Sentiment.Backend == config.SentimentNone {
		sentiment = ""
	}
	return [][2]string{
		{"grammar", pick(c.Grammar.URL)},
		{"sentiment", pick(sentiment)},
		{"embedding", pick(c.Embedding.URL)},
	}
}

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information and configured backends",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "speechscore %s\n", getVersion())
			fmt.Fprintf(out, "  commit: %s\n", getCommit())
			fmt.Fprintf(out, "  built:  %s\n", getDate())

			path, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(path)
			if err != nil {
				fmt.Fprintf(out, "backends: unknown (%v)\n", err)
				return
			}
			fmt.Fprintln(out, "backends:")
			for _, b := range backends(cfg.Services) {
				fmt.Fprintf(out, "  %-10s %s\n", b[0]+":", b[1])
			}
		},
	}
}
