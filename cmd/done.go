package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/RandomEggs/randomEggsTracker/internal/domain"
)

// doneCmd represents the done command
var doneCmd = &cobra.Command{
	Use:   "done [task]",
	Short: "Mark a task as done",
	Long: `Mark a task as done. The task reference may be an id or a title;
titles are fuzzy-matched against the open task list.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		ref := strings.Join(args, " ")

		task, err := app.tasks.ResolveTask(ctx, ref)
		if err != nil {
			if errors.Is(err, domain.ErrTaskNotFound) {
				return fmt.Errorf("no open task matches %q", ref)
			}
			return fmt.Errorf("failed to resolve task: %w", err)
		}

		if err := app.tasks.SetStatus(ctx, task.ID, domain.StatusDone); err != nil {
			return fmt.Errorf("failed to complete task: %w", err)
		}

		if jsonOutput {
			fmt.Printf("{\"completed\": true, \"task_id\": %d}\n", task.ID)
			return nil
		}

		fmt.Printf("✅ Completed: %s (#%d)\n", task.Title, task.ID)
		return nil
	},
}
