// Package report implements the command-line interface for generating
// catalog summary reports.
package report

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonesrussell/gocourses/cmd/common"
	"github.com/jonesrussell/gocourses/internal/report"
)

// Command returns the report command.
func Command() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate a markdown summary of the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := common.NewCommandDeps()
			if err != nil {
				return fmt.Errorf("failed to get dependencies: %w", err)
			}

			generator := report.NewGenerator(deps.Catalog, deps.Repository, deps.Logger)
			summary, err := generator.Build()
			if err != nil {
				return fmt.Errorf("failed to build report: %w", err)
			}

			out := os.Stdout
			if output != "" {
				file, createErr := os.Create(output)
				if createErr != nil {
					return fmt.Errorf("failed to create output file: %w", createErr)
				}
				defer file.Close()
				out = file
			}

			if err := report.WriteMarkdown(out, summary); err != nil {
				return fmt.Errorf("failed to write report: %w", err)
			}
			if output != "" {
				deps.Logger.Info("Report written", "path", output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the report to a file instead of stdout")
	return cmd
}
