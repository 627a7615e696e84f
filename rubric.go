package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/maastricht-university/speechscore/rubric"
)

// NewRubricCmd creates the rubric command.
func NewRubricCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rubric",
		Short: "Write the rubric CSV",
		Long: `Write the human-readable rubric table (criterion, description, keywords,
weight, min_words, max_words). The table documents the intended weighting; the
scorer does not read it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, _ := cmd.Flags().GetString("output")
			if out == "-" {
				return rubric.WriteCSV(cmd.OutOrStdout(), rubric.Rows)
			}
			if err := rubric.WriteFile(out, rubric.Rows); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringP("output", "o", "rubrics.csv", `Output path, "-" for stdout`)
	return cmd
}
