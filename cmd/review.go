package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/RandomEggs/randomEggsTracker/internal/domain"
)

var reviewPlain bool

// reviewCmd represents the review command
var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Review completed tasks",
	Long: `Show the history of completed tasks, grouped by month and day the
way the web client presents it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		overview, err := app.tasks.CompletedOverview(ctx)
		if err != nil {
			return fmt.Errorf("failed to fetch completed tasks: %w", err)
		}

		md := completedMarkdown(overview)
		if reviewPlain {
			fmt.Println(md)
			return nil
		}

		out, err := glamour.Render(md, "dark")
		if err != nil {
			fmt.Println(md)
			return nil
		}
		fmt.Println(strings.TrimSpace(out))
		return nil
	},
}

func init() {
	reviewCmd.Flags().BoolVar(&reviewPlain, "plain", false, "Print raw markdown (for piping)")
}

// completedMarkdown renders the grouped overview as a markdown document.
// Month, day and time labels come from the server and pass through untouched.
func completedMarkdown(overview *domain.CompletedOverview) string {
	var b strings.Builder

	b.WriteString("# Completed Tasks\n\n")
	if overview == nil || overview.TotalCompleted == 0 {
		b.WriteString("No completed tasks yet.\n")
		return b.String()
	}
	fmt.Fprintf(&b, "%d tasks completed in total.\n", overview.TotalCompleted)

	for _, month := range overview.Months {
		fmt.Fprintf(&b, "\n## %s (%d)\n", month.MonthLabel, month.TotalTasks)
		for _, day := range month.Days {
			fmt.Fprintf(&b, "\n### %s\n\n", day.DateLabel)
			for _, task := range day.Tasks {
				fmt.Fprintf(&b, "- %s (%s)\n", task.Title, task.TimeLabel)
			}
		}
	}

	return b.String()
}
