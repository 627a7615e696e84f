package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/maastricht-university/speechscore/orchestrator"
	"github.com/maastricht-university/speechscore/report"
)

// NewScoreCmd creates the score command.
func NewScoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score [file|-]",
		Short: "Score one transcript",
		Long: `Score a transcript read from a file, or from standard input when the
argument is "-" or omitted, and print the report.`,
		Example: `  speechscore score intro.txt
  speechscore score --duration 52 --format markdown intro.txt
  cat intro.txt | speechscore score -`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatName, _ := cmd.Flags().GetString("format")
			format, err := report.ParseFormat(formatName)
			if err != nil {
				return err
			}

			text, err := readTranscript(cmd, args)
			if err != nil {
				return err
			}

			t := orchestrator.Transcript{Text: text}
			if cmd.Flags().Changed("duration") {
				d, _ := cmd.Flags().GetFloat64("duration")
				t.DurationSeconds = &d
			}

			rt, err := setup(cmd)
			if err != nil {
				return err
			}
			r, err := rt.pipeline.Score(cmd.Context(), t)
			if err != nil {
				return err
			}
			return report.Write(cmd.OutOrStdout(), r, format)
		},
	}
	cmd.Flags().Float64("duration", 0, "Spoken duration in seconds")
	cmd.Flags().StringP("format", "f", string(report.FormatJSON), "Output format: json, yaml, markdown")
	return cmd
}

func readTranscript(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read transcript: %w", err)
	}
	return string(b), nil
}
