// Package export renders focus stats and open tasks as csv, markdown or
// PDF reports.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/RandomEggs/randomEggsTracker/internal/domain"
)

// Report bundles everything a rendered export contains.
type Report struct {
	GeneratedAt time.Time
	Stats       []domain.StatsPoint
	Tasks       []domain.Task
}

// statusMarker returns the checkbox marker for a task status.
func statusMarker(status domain.TaskStatus) string {
	switch status {
	case domain.StatusInProgress:
		return "~"
	case domain.StatusDone:
		return "x"
	default:
		return " "
	}
}

// WriteCSV writes one row per day: date, sessions, focus minutes.
func WriteCSV(w io.Writer, stats []domain.StatsPoint) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"date", "sessions", "focus_minutes"}); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, p := range stats {
		row := []string{p.Date, strconv.Itoa(p.Sessions), strconv.Itoa(p.Minutes())}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteMarkdown writes the report as a markdown document.
func WriteMarkdown(w io.Writer, report Report) error {
	var b strings.Builder

	b.WriteString("# Focus Report\n\n")
	fmt.Fprintf(&b, "Generated %s\n\n", report.GeneratedAt.Format("2006-01-02 15:04"))

	b.WriteString("## Focus by day\n\n")
	if len(report.Stats) == 0 {
		b.WriteString("No sessions recorded.\n")
	} else {
		b.WriteString("| Date | Sessions | Minutes |\n")
		b.WriteString("|------|---------:|--------:|\n")
		for _, p := range report.Stats {
			fmt.Fprintf(&b, "| %s | %d | %d |\n", p.Date, p.Sessions, p.Minutes())
		}
		fmt.Fprintf(&b, "\nTotal: %d sessions, %d minutes focused.\n",
			domain.TotalSessions(report.Stats), domain.TotalFocusMinutes(report.Stats))
	}

	b.WriteString("\n## Open tasks\n\n")
	if len(report.Tasks) == 0 {
		b.WriteString("All clear.\n")
	} else {
		for _, task := range report.Tasks {
			fmt.Fprintf(&b, "- [%s] %s (%s)\n", statusMarker(task.Status), task.Title, task.Status.Label())
		}
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write markdown: %w", err)
	}
	return nil
}

// WritePDF renders an A4 report and writes it to path.
func WritePDF(path string, report Report) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Focus Report")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 8, "Generated "+report.GeneratedAt.Format("2006-01-02 15:04"))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "Focus by day")
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 12)
	if len(report.Stats) == 0 {
		pdf.Cell(0, 8, "No sessions recorded.")
		pdf.Ln(8)
	}
	for _, p := range report.Stats {
		pdf.Cell(0, 8, fmt.Sprintf("%-10s  %d sessions  %d min", p.Date, p.Sessions, p.Minutes()))
		pdf.Ln(6)
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Total: %d sessions, %d minutes focused",
		domain.TotalSessions(report.Stats), domain.TotalFocusMinutes(report.Stats)))
	pdf.Ln(12)

	if len(report.Tasks) > 0 {
		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(0, 10, "Open tasks")
		pdf.Ln(8)

		pdf.SetFont("Arial", "", 12)
		for _, task := range report.Tasks {
			line := fmt.Sprintf("[%s] %s", statusMarker(task.Status), task.Title)
			pdf.MultiCell(0, 8, line, "", "", false)
		}
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("failed to write pdf: %w", err)
	}
	return nil
}
