package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/RandomEggs/randomEggsTracker/internal/domain"
)

func sampleReport() Report {
	return Report{
		GeneratedAt: time.Date(2025, 8, 20, 9, 30, 0, 0, time.UTC),
		Stats: []domain.StatsPoint{
			{Date: "18 Aug", Sessions: 2, TotalDuration: 3000},
			{Date: "19 Aug", Sessions: 1, TotalDuration: 1500},
		},
		Tasks: []domain.Task{
			{ID: 1, Title: "Review pull request", Status: domain.StatusInProgress},
			{ID: 2, Title: "Plan sprint", Status: domain.StatusPending},
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleReport().Stats); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("WriteCSV() wrote %d lines, want 3", len(lines))
	}
	if lines[0] != "date,sessions,focus_minutes" {
		t.Errorf("header = %q, want date,sessions,focus_minutes", lines[0])
	}
	if lines[1] != "18 Aug,2,50" {
		t.Errorf("first row = %q, want 18 Aug,2,50", lines[1])
	}
	if lines[2] != "19 Aug,1,25" {
		t.Errorf("second row = %q, want 19 Aug,1,25", lines[2])
	}
}

func TestWriteCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	if got := strings.TrimSpace(buf.String()); got != "date,sessions,focus_minutes" {
		t.Errorf("empty export should contain only the header, got %q", got)
	}
}

func TestWriteMarkdown(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteMarkdown(&buf, sampleReport()); err != nil {
		t.Fatalf("WriteMarkdown() error = %v", err)
	}
	doc := buf.String()

	for _, want := range []string{
		"# Focus Report",
		"Generated 2025-08-20 09:30",
		"| 18 Aug | 2 | 50 |",
		"| 19 Aug | 1 | 25 |",
		"Total: 3 sessions, 75 minutes focused.",
		"## Open tasks",
		"- [~] Review pull request (In Progress)",
		"- [ ] Plan sprint (Pending)",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("markdown missing %q", want)
		}
	}
}

func TestWriteMarkdown_Empty(t *testing.T) {
	var buf bytes.Buffer
	report := Report{GeneratedAt: time.Now()}
	if err := WriteMarkdown(&buf, report); err != nil {
		t.Fatalf("WriteMarkdown() error = %v", err)
	}
	doc := buf.String()

	if !strings.Contains(doc, "No sessions recorded.") {
		t.Error("empty markdown should note there are no sessions")
	}
	if !strings.Contains(doc, "All clear.") {
		t.Error("empty markdown should note there are no open tasks")
	}
}

func TestWritePDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.pdf")
	if err := WritePDF(path, sampleReport()); err != nil {
		t.Fatalf("WritePDF() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading pdf: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("WritePDF() wrote an empty file")
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("file does not start with a PDF header, got %q", data[:4])
	}
}
