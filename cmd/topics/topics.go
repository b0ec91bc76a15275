// Package topics implements the command-line interface for browsing and
// resolving catalog topics.
package topics

import (
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/jonesrussell/gocourses/cmd/common"
	"github.com/jonesrussell/gocourses/internal/domain"
)

// Command returns the topics command with its subcommands.
func Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "topics",
		Short: "Browse and resolve catalog topics",
	}
	cmd.AddCommand(newListCommand())
	cmd.AddCommand(newSearchCommand())
	cmd.AddCommand(newValidateCommand())
	return cmd
}

// newListCommand creates the topics list command.
func newListCommand() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog topics",
		Long:  `List every topic in the catalog, most populated first.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := common.NewCommandDeps()
			if err != nil {
				return fmt.Errorf("failed to get dependencies: %w", err)
			}

			topics := deps.Catalog.AvailableTopics()
			if all {
				topics = deps.Catalog.AllTopics()
			}
			if len(topics) == 0 {
				deps.Logger.Info("No topics in catalog",
					"courses_dir", deps.Config.GetCatalogConfig().CoursesDir,
				)
				return nil
			}

			renderTopicTable(topics)
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "include topics without course files")
	return cmd
}

// newSearchCommand creates the topics search command.
func newSearchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search topics by slug or name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := common.NewCommandDeps()
			if err != nil {
				return fmt.Errorf("failed to get dependencies: %w", err)
			}

			matches := deps.Catalog.SearchTopics(args[0])
			if len(matches) == 0 {
				deps.Logger.Info("No topics matched", "query", args[0])
				return nil
			}

			var topics []domain.Topic
			for _, slug := range matches {
				if topic, ok := deps.Catalog.Topic(slug); ok {
					topics = append(topics, topic)
				}
			}
			renderTopicTable(topics)
			return nil
		},
	}
}

// newValidateCommand creates the topics validate command.
func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <topic>...",
		Short: "Resolve free-text topic references to canonical slugs",
		Long: `Resolve each argument against the catalog using exact, alias, and
fuzzy matching, and print the canonical slugs that survive.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := common.NewCommandDeps()
			if err != nil {
				return fmt.Errorf("failed to get dependencies: %w", err)
			}

			validated := deps.Catalog.ValidateTopics(args)
			if len(validated) == 0 {
				deps.Logger.Info("No topics resolved", "input", strings.Join(args, ", "))
				return nil
			}
			fmt.Println(strings.Join(validated, "\n"))
			return nil
		},
	}
}

// renderTopicTable prints topics as a table to stdout.
func renderTopicTable(topics []domain.Topic) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)

	t.AppendHeader(table.Row{"Slug", "Name", "Section", "Courses"})
	for _, topic := range topics {
		t.AppendRow(table.Row{
			topic.Slug,
			topic.DisplayName(),
			topic.Section,
			topic.CourseCount,
		})
	}
	t.Render()
}
