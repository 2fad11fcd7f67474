package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"github.com/RandomEggs/randomEggsTracker/internal/adapters/git"
	"github.com/RandomEggs/randomEggsTracker/internal/domain"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start [task]",
	Short: "Start a focus session",
	Long: `Start the countdown and open the dashboard. An optional task
reference (id or title, fuzzy-matched against the open task list) links
the session to that task.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(os.Stdout.Fd()) {
			return fmt.Errorf("the dashboard needs a terminal; use subcommands like \"eggtimer list\" in scripts")
		}

		ctx := setupSignalHandler()

		if len(args) > 0 {
			ref := strings.Join(args, " ")
			task, err := app.tasks.ResolveTask(ctx, ref)
			if err != nil {
				if errors.Is(err, domain.ErrTaskNotFound) {
					return fmt.Errorf("no open task matches %q", ref)
				}
				return fmt.Errorf("failed to resolve task: %w", err)
			}
			app.timer.SetActiveTask(&task.ID)
			fmt.Printf("%s Focusing on %q\n", app.config.Theme.IconApp, task.Title)
		}

		if info, err := app.git.Detect(ctx, ""); err == nil {
			dirty := ""
			if !info.IsClean {
				dirty = " *"
			}
			where := info.Branch
			if info.Repository != "" {
				where = info.Repository + " " + where
			}
			fmt.Printf("%s %s @ %s%s\n", app.config.Theme.IconGit, where, git.ShortCommit(info.Commit), dirty)
		}

		if err := app.timer.Start(ctx); err != nil {
			return fmt.Errorf("failed to start timer: %w", err)
		}

		return launchDashboard(ctx)
	},
}
