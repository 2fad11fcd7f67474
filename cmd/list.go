package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RandomEggs/randomEggsTracker/internal/domain"
)

var listStatus string

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List open tasks",
	Long: `List the open tasks from the server, newest first. Done tasks are
not returned by the server; see "eggtimer review" for those.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		var filter *domain.TaskStatus
		if listStatus != "" {
			status := domain.TaskStatus(listStatus)
			if !status.Valid() || status == domain.StatusDone {
				return fmt.Errorf("invalid status %q: must be pending or in_progress", listStatus)
			}
			filter = &status
		}

		tasks, err := app.tasks.ListTasks(ctx)
		if err != nil {
			return fmt.Errorf("failed to list tasks: %w", err)
		}

		if filter != nil {
			filtered := tasks[:0]
			for _, task := range tasks {
				if task.Status == *filter {
					filtered = append(filtered, task)
				}
			}
			tasks = filtered
		}

		if jsonOutput {
			var taskList []map[string]interface{}
			for _, task := range tasks {
				taskList = append(taskList, map[string]interface{}{
					"id":         task.ID,
					"title":      task.Title,
					"status":     string(task.Status),
					"created_at": task.CreatedAt.Format("2006-01-02T15:04:05"),
				})
			}
			data := map[string]interface{}{
				"tasks": taskList,
				"count": len(taskList),
			}
			jsonData, err := json.MarshalIndent(data, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal tasks: %w", err)
			}
			fmt.Println(string(jsonData))
			return nil
		}

		if len(tasks) == 0 {
			fmt.Println("No open tasks.")
			return nil
		}

		fmt.Printf("%s Tasks (%d):\n\n", app.config.Theme.IconTask, len(tasks))
		for _, task := range tasks {
			fmt.Printf("  %s %s  #%d\n", statusGlyph(task.Status), task.Title, task.ID)
		}

		return nil
	},
}

func init() {
	listCmd.Flags().StringVarP(&listStatus, "status", "s", "", "Filter by status (pending, in_progress)")
}

func statusGlyph(status domain.TaskStatus) string {
	switch status {
	case domain.StatusPending:
		return "○"
	case domain.StatusInProgress:
		return "◐"
	case domain.StatusDone:
		return "●"
	default:
		return "?"
	}
}
