package cmd

import (
	"strings"
	"testing"

	"github.com/RandomEggs/randomEggsTracker/internal/domain"
)

func sampleOverview() *domain.CompletedOverview {
	return &domain.CompletedOverview{
		TotalCompleted: 3,
		Months: []domain.CompletedMonth{
			{
				MonthLabel: "August 2025",
				TotalTasks: 3,
				Days: []domain.CompletedDay{
					{
						DateLabel:  "Wed, Aug 20",
						TasksCount: 2,
						Tasks: []domain.CompletedTask{
							{ID: 4, Title: "Review pull request", TimeLabel: "14:32"},
							{ID: 7, Title: "Write release notes", TimeLabel: "16:05"},
						},
					},
					{
						DateLabel:  "Mon, Aug 18",
						TasksCount: 1,
						Tasks: []domain.CompletedTask{
							{ID: 2, Title: "Plan sprint", TimeLabel: "09:10"},
						},
					},
				},
			},
		},
	}
}

func TestCompletedMarkdown(t *testing.T) {
	md := completedMarkdown(sampleOverview())

	for _, want := range []string{
		"# Completed Tasks",
		"3 tasks completed in total.",
		"## August 2025 (3)",
		"### Wed, Aug 20",
		"- Review pull request (14:32)",
		"- Write release notes (16:05)",
		"### Mon, Aug 18",
		"- Plan sprint (09:10)",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown should contain %q, got:\n%s", want, md)
		}
	}
}

func TestCompletedMarkdown_Empty(t *testing.T) {
	md := completedMarkdown(&domain.CompletedOverview{})

	if !strings.Contains(md, "No completed tasks yet.") {
		t.Errorf("empty overview should say so, got:\n%s", md)
	}
}

func TestCompletedMarkdown_Nil(t *testing.T) {
	md := completedMarkdown(nil)

	if !strings.Contains(md, "No completed tasks yet.") {
		t.Errorf("nil overview should render the empty message, got:\n%s", md)
	}
}

func TestReviewCmd_PlainFlag(t *testing.T) {
	flag := reviewCmd.Flags().Lookup("plain")
	if flag == nil {
		t.Fatal("reviewCmd should have --plain flag")
	}
}
