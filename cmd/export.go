package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/RandomEggs/randomEggsTracker/internal/adapters/export"
)

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export focus stats and open tasks",
	Long: `Export your focus stats and open tasks as CSV, Markdown or PDF.
CSV and Markdown default to stdout; PDF requires --out.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExport(context.Background())
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "Output format: csv, markdown or pdf")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Write to a file instead of stdout")
}

func runExport(ctx context.Context) error {
	if err := validateExportTarget(exportFormat, exportOut); err != nil {
		return err
	}

	stats, err := app.stats.FocusStats(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch stats: %w", err)
	}

	report := export.Report{
		GeneratedAt: time.Now(),
		Stats:       stats,
	}
	if exportFormat != "csv" {
		tasks, err := app.tasks.ListTasks(ctx)
		if err != nil {
			return fmt.Errorf("failed to fetch tasks: %w", err)
		}
		report.Tasks = tasks
	}

	if exportFormat == "pdf" {
		if err := export.WritePDF(exportOut, report); err != nil {
			return err
		}
		fmt.Printf("Exported to %s\n", exportOut)
		return nil
	}

	var w io.Writer = os.Stdout
	if exportOut != "" {
		f, err := os.Create(exportOut)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", exportOut, err)
		}
		defer func() { _ = f.Close() }()
		w = f
	}

	switch exportFormat {
	case "csv":
		err = export.WriteCSV(w, stats)
	default:
		err = export.WriteMarkdown(w, report)
	}
	if err != nil {
		return err
	}

	if exportOut != "" {
		fmt.Printf("Exported to %s\n", exportOut)
	}
	return nil
}

// validateExportTarget rejects unknown formats and a PDF export with no
// destination file.
func validateExportTarget(format, out string) error {
	switch format {
	case "csv", "markdown", "md":
	case "pdf":
		if out == "" {
			return fmt.Errorf("pdf export requires --out FILE")
		}
	default:
		return fmt.Errorf("unknown format %q: must be csv, markdown or pdf", format)
	}
	return nil
}
