package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/RandomEggs/randomEggsTracker/internal/domain"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show focus statistics",
	Long:  `Display the per-day focus totals for the recent window as a bar chart.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		points, err := app.stats.FocusStats(ctx)
		if err != nil {
			return fmt.Errorf("failed to get stats: %w", err)
		}

		if jsonOutput {
			var rows []map[string]interface{}
			for _, p := range points {
				rows = append(rows, map[string]interface{}{
					"date":          p.Date,
					"sessions":      p.Sessions,
					"focus_minutes": p.Minutes(),
				})
			}
			data := map[string]interface{}{
				"stats":          rows,
				"total_sessions": domain.TotalSessions(points),
				"total_minutes":  domain.TotalFocusMinutes(points),
			}
			jsonData, err := json.MarshalIndent(data, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal stats: %w", err)
			}
			fmt.Println(string(jsonData))
			return nil
		}

		fmt.Println()
		fmt.Print(renderFocusChart(points))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

// renderFocusChart renders the per-day bars in server order, scaled to the
// busiest day.
func renderFocusChart(points []domain.StatsPoint) string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E05E4B"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	valueStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F2A65A"))
	barStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#E05E4B"))

	var b strings.Builder

	fmt.Fprintf(&b, "  %s\n", titleStyle.Render("Focus, last 7 days"))
	fmt.Fprintf(&b, "  %s\n\n", dimStyle.Render(strings.Repeat("─", 40)))

	if len(points) == 0 {
		fmt.Fprintf(&b, "  %s\n\n", dimStyle.Render("No focus sessions recorded yet."))
		return b.String()
	}

	maxMinutes := 0
	for _, p := range points {
		if p.Minutes() > maxMinutes {
			maxMinutes = p.Minutes()
		}
	}

	maxBarWidth := 30
	for _, p := range points {
		barWidth := 0
		if maxMinutes > 0 {
			barWidth = int(math.Round(float64(p.Minutes()) / float64(maxMinutes) * float64(maxBarWidth)))
		}
		if barWidth < 1 && p.Minutes() > 0 {
			barWidth = 1
		}
		fmt.Fprintf(&b, "  %s %s %s\n",
			dimStyle.Render(fmt.Sprintf("%-8s", p.Date)),
			barStyle.Render(strings.Repeat("█", barWidth)),
			valueStyle.Render(fmt.Sprintf("%dm", p.Minutes())),
		)
	}

	fmt.Fprintf(&b, "\n  Total: %s sessions, %s focused\n\n",
		valueStyle.Render(fmt.Sprintf("%d", domain.TotalSessions(points))),
		valueStyle.Render(fmt.Sprintf("%dm", domain.TotalFocusMinutes(points))),
	)

	return b.String()
}
