// Package courses implements the command-line interface for listing and
// searching courses in the catalog.
package courses

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/jonesrussell/gocourses/cmd/common"
	"github.com/jonesrussell/gocourses/internal/domain"
	"github.com/jonesrussell/gocourses/internal/repository"
)

const defaultTopLimit = 10

// Command returns the courses command with its subcommands.
func Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "courses",
		Short: "List and search courses",
	}
	cmd.AddCommand(newListCommand())
	cmd.AddCommand(newSearchCommand())
	cmd.AddCommand(newTopCommand())
	return cmd
}

// newListCommand creates the courses list command.
func newListCommand() *cobra.Command {
	var (
		topics   []string
		noDedupe bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List courses for one or more topics",
		Long: `List the courses of the given topics. Topic references go through the
same resolution as everywhere else, so aliases and close misspellings work.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := common.NewCommandDeps()
			if err != nil {
				return fmt.Errorf("failed to get dependencies: %w", err)
			}

			slugs := deps.Catalog.ValidateTopics(topics)
			if len(slugs) == 0 {
				deps.Logger.Info("No matching topics", "input", strings.Join(topics, ", "))
				return nil
			}

			courses, err := deps.Repository.LoadMultipleTopics(slugs, deps.Catalog, !noDedupe)
			if err != nil {
				return fmt.Errorf("failed to load courses: %w", err)
			}
			renderCourseTable(courses)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&topics, "topics", nil, "topics to list (required)")
	cmd.Flags().BoolVar(&noDedupe, "no-dedupe", false, "keep courses that appear under several topics")
	_ = cmd.MarkFlagRequired("topics")
	return cmd
}

// newSearchCommand creates the courses search command.
func newSearchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search <name>",
		Short: "Find the best course match for a name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := common.NewCommandDeps()
			if err != nil {
				return fmt.Errorf("failed to get dependencies: %w", err)
			}

			name := strings.Join(args, " ")
			course, score, ok := deps.Repository.SearchCourseByName(name, nil, deps.Catalog)
			if !ok {
				deps.Logger.Info("No course matched", "query", name)
				return nil
			}

			url := course.URL
			if url == "" {
				url = repository.GenerateCourseURL(course.Title)
			}
			fmt.Printf("%s\n  instructor: %s\n  topic: %s\n  score: %.2f\n  url: %s\n",
				course.Title, course.Instructor, course.Topic, score, url)
			return nil
		},
	}
}

// newTopCommand creates the courses top command.
func newTopCommand() *cobra.Command {
	var (
		metric string
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "top",
		Short: "Show the top courses across the whole catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := common.NewCommandDeps()
			if err != nil {
				return fmt.Errorf("failed to get dependencies: %w", err)
			}

			courses, err := deps.Repository.LoadMultipleTopics(
				deps.Catalog.AvailableSlugs(), deps.Catalog, true)
			if err != nil {
				return fmt.Errorf("failed to load courses: %w", err)
			}

			less, err := courseLess(metric, courses)
			if err != nil {
				return err
			}
			sort.SliceStable(courses, less)
			if len(courses) > limit {
				courses = courses[:limit]
			}
			renderCourseTable(courses)
			return nil
		},
	}

	cmd.Flags().StringVar(&metric, "by", "rating", "ranking metric: rating or reviews")
	cmd.Flags().IntVar(&limit, "limit", defaultTopLimit, "number of courses to show")
	return cmd
}

// courseLess returns the descending sort predicate for a ranking metric.
func courseLess(metric string, courses []domain.Course) (func(a, b int) bool, error) {
	switch metric {
	case "rating":
		return func(a, b int) bool {
			if courses[a].RatingValue() != courses[b].RatingValue() {
				return courses[a].RatingValue() > courses[b].RatingValue()
			}
			return courses[a].ReviewsValue() > courses[b].ReviewsValue()
		}, nil
	case "reviews":
		return func(a, b int) bool {
			return courses[a].ReviewsValue() > courses[b].ReviewsValue()
		}, nil
	default:
		return nil, fmt.Errorf("unknown metric: %s", metric)
	}
}

// renderCourseTable prints courses as a table to stdout.
func renderCourseTable(courses []domain.Course) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)

	t.AppendHeader(table.Row{"Title", "Instructor", "Topic", "Rating", "Reviews", "Price"})
	for i := range courses {
		course := &courses[i]
		t.AppendRow(table.Row{
			course.Title,
			course.Instructor,
			course.Topic,
			course.Rating,
			course.ReviewsCount,
			course.Price,
		})
	}
	t.Render()
}
