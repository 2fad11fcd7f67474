package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/RandomEggs/randomEggsTracker/internal/adapters/tui"
	"github.com/RandomEggs/randomEggsTracker/internal/config"
	"github.com/RandomEggs/randomEggsTracker/internal/domain"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View and edit durations, server and notifications",
	Long: `Interactively edit the timer durations, backend server settings and
notification toggles. One change per invocation; everything is saved to
~/.eggtimer/config.toml.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		printCurrentConfig(app.config)

		items := []tui.PickerItem{
			{Label: "Preset", Desc: "Apply a work/break preset"},
			{Label: "Durations", Desc: "Set work and break lengths"},
			{Label: "Server", Desc: "Backend URL"},
			{Label: "Notifications", Desc: "Desktop notification toggles"},
			{Label: "Quit", Desc: "Leave everything as it is"},
		}
		result := tui.RunPicker("Change:", items, "", &app.config.Theme)
		if result.Aborted {
			return nil
		}

		switch result.Index {
		case 0:
			return editPreset(app.config)
		case 1:
			return editDurations(app.config)
		case 2:
			return editServer(app.config)
		case 3:
			return editNotifications(app.config)
		default:
			fmt.Println("  No changes made.")
			return nil
		}
	},
}

// configPresetCmd applies a named preset non-interactively.
var configPresetCmd = &cobra.Command{
	Use:   "preset [name]",
	Short: "Apply a duration preset",
	Long:  `Apply one of the built-in duration presets: classic, extended or quick.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return editPreset(app.config)
		}

		preset, err := domain.FindPreset(args[0])
		if err != nil {
			return err
		}
		return applyPreset(app.config, preset)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPresetCmd)
}

func printCurrentConfig(cfg *config.Config) {
	work, brk := cfg.Durations()

	notifStatus := "off"
	if cfg.Notifications.Enabled {
		notifStatus = "on"
		if cfg.Notifications.Sound {
			notifStatus = "on (with sound)"
		}
	}

	fmt.Println()
	fmt.Println("  Current configuration:")
	fmt.Println()
	fmt.Printf("    Work duration:   %s\n", formatMinutes(work))
	fmt.Printf("    Break duration:  %s\n", formatMinutes(brk))
	fmt.Printf("    Server:          %s (timeout %s)\n", cfg.Server.URL, cfg.Server.Timeout)
	fmt.Printf("    Notifications:   %s\n", notifStatus)
	fmt.Println()
}

func editPreset(cfg *config.Config) error {
	items := make([]tui.PickerItem, len(domain.Presets))
	for i, p := range domain.Presets {
		items[i] = tui.PickerItem{
			Label: p.Name,
			Desc:  fmt.Sprintf("%d min work / %d min break", int(p.Work.Minutes()), int(p.Break.Minutes())),
		}
	}
	result := tui.RunPicker("Preset:", items, "", &cfg.Theme)
	if result.Aborted {
		fmt.Println("  No changes made.")
		return nil
	}
	return applyPreset(cfg, domain.Presets[result.Index])
}

func applyPreset(cfg *config.Config, preset domain.Preset) error {
	cfg.ApplyPreset(preset.Work, preset.Break)
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	fmt.Printf("\n  Saved: %s\n", preset.Label())
	return nil
}

func editDurations(cfg *config.Config) error {
	work, brk := cfg.Durations()

	workResult := tui.RunTextPrompt(fmt.Sprintf("Work duration [%s]:", formatMinutes(work)), "e.g. 25m or 1h", &cfg.Theme)
	if workResult.Aborted {
		fmt.Println("  No changes made.")
		return nil
	}
	if workResult.Value != "" {
		parsed, err := time.ParseDuration(workResult.Value)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", workResult.Value, err)
		}
		if parsed <= 0 {
			return domain.ErrInvalidDuration
		}
		work = parsed
	}

	breakResult := tui.RunTextPrompt(fmt.Sprintf("Break duration [%s]:", formatMinutes(brk)), "e.g. 5m", &cfg.Theme)
	if breakResult.Aborted {
		fmt.Println("  No changes made.")
		return nil
	}
	if breakResult.Value != "" {
		parsed, err := time.ParseDuration(breakResult.Value)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", breakResult.Value, err)
		}
		if parsed <= 0 {
			return domain.ErrInvalidDuration
		}
		brk = parsed
	}

	cfg.Timer.WorkDuration = config.Duration(work)
	cfg.Timer.BreakDuration = config.Duration(brk)
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Printf("\n  Saved: %s work / %s break\n", formatMinutes(work), formatMinutes(brk))
	return nil
}

func editServer(cfg *config.Config) error {
	result := tui.RunTextPrompt(fmt.Sprintf("Backend URL [%s]:", cfg.Server.URL), "Enter to keep", &cfg.Theme)
	if result.Aborted || result.Value == "" {
		fmt.Println("  No changes made.")
		return nil
	}

	cfg.Server.URL = strings.TrimRight(result.Value, "/")
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Printf("\n  Saved: server %s\n", cfg.Server.URL)
	return nil
}

func editNotifications(cfg *config.Config) error {
	items := []tui.PickerItem{
		{Label: "Off", Desc: "No desktop notifications"},
		{Label: "On", Desc: "Visual only"},
		{Label: "On with sound", Desc: "Visual plus alert sound"},
	}
	result := tui.RunPicker("Notifications:", items, "", &cfg.Theme)
	if result.Aborted {
		fmt.Println("  No changes made.")
		return nil
	}

	cfg.Notifications.Enabled = result.Index > 0
	cfg.Notifications.Sound = result.Index == 2
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	status := "off"
	if cfg.Notifications.Enabled {
		status = "on"
		if cfg.Notifications.Sound {
			status = "on (with sound)"
		}
	}
	fmt.Printf("\n  Saved: notifications %s\n", status)
	return nil
}
