package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/RandomEggs/randomEggsTracker/internal/domain"
)

// editCmd represents the edit command
var editCmd = &cobra.Command{
	Use:   "edit [task] [new title]",
	Short: "Rename a task",
	Long: `Rename a task. The first argument is the task reference (id or
title, fuzzy-matched); the remaining arguments form the new title.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		ref := args[0]
		title := strings.Join(args[1:], " ")

		task, err := app.tasks.ResolveTask(ctx, ref)
		if err != nil {
			if errors.Is(err, domain.ErrTaskNotFound) {
				return fmt.Errorf("no open task matches %q", ref)
			}
			return fmt.Errorf("failed to resolve task: %w", err)
		}

		if err := app.tasks.Rename(ctx, task.ID, title); err != nil {
			return fmt.Errorf("failed to rename task: %w", err)
		}

		if jsonOutput {
			data := fmt.Sprintf("{\"renamed\": true, \"task_id\": %d, \"title\": %q}", task.ID, strings.TrimSpace(title))
			fmt.Println(data)
			return nil
		}

		fmt.Printf("✏️  Renamed %q to %q\n", task.Title, strings.TrimSpace(title))
		return nil
	},
}
