package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/RandomEggs/randomEggsTracker/internal/domain"
	"github.com/RandomEggs/randomEggsTracker/internal/services"
)

var addStatus string

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Add a new task",
	Long:  `Add a new task to the shared task list.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		req := services.AddTaskRequest{
			Title:  strings.Join(args, " "),
			Status: domain.TaskStatus(addStatus),
		}

		task, err := app.tasks.AddTask(ctx, req)
		if err != nil {
			return fmt.Errorf("failed to add task: %w", err)
		}

		if jsonOutput {
			data := map[string]interface{}{
				"id":         task.ID,
				"title":      task.Title,
				"status":     string(task.Status),
				"created_at": task.CreatedAt.Format("2006-01-02T15:04:05"),
			}
			jsonData, err := json.MarshalIndent(data, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal task: %w", err)
			}
			fmt.Println(string(jsonData))
			return nil
		}

		fmt.Printf("✅ Task added: %s (#%d)\n", task.Title, task.ID)
		return nil
	},
}

func init() {
	addCmd.Flags().StringVarP(&addStatus, "status", "s", "", "Initial status (pending, in_progress)")
}
