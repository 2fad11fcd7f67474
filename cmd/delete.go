package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/RandomEggs/randomEggsTracker/internal/domain"
)

var deleteYes bool

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete [task]",
	Short: "Delete a task",
	Long: `Delete a task by id or title (fuzzy-matched). Use with caution -
this cannot be undone.`,
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

		// Confirm deletion
		if !deleteYes && !jsonOutput {
			fmt.Printf("Delete %q (#%d)? [y/N]: ", task.Title, task.ID)
			var confirm string
			_, _ = fmt.Scanln(&confirm)
			if confirm != "y" && confirm != "Y" {
				fmt.Println("Deletion cancelled.")
				return nil
			}
		}

		if err := app.tasks.DeleteTask(ctx, task.ID); err != nil {
			return fmt.Errorf("failed to delete task: %w", err)
		}

		if jsonOutput {
			fmt.Printf("{\"deleted\": true, \"task_id\": %d}\n", task.ID)
			return nil
		}

		fmt.Printf("🗑️  Deleted: %s\n", task.Title)
		return nil
	},
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Skip the confirmation prompt")
}
