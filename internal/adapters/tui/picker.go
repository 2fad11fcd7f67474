package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/RandomEggs/randomEggsTracker/internal/config"
)

// PickerItem represents one option in the picker.
type PickerItem struct {
	Label string
	Desc  string
}

// PickerResult holds the outcome of a picker interaction.
type PickerResult struct {
	Index   int
	Aborted bool
}

// TextPromptResult holds the outcome of a text prompt.
type TextPromptResult struct {
	Value   string
	Aborted bool
}

// promptStyles carries the lipgloss styles shared by the picker and the
// text prompt, resolved once from the theme.
type promptStyles struct {
	title  lipgloss.Style
	active lipgloss.Style
	dim    lipgloss.Style
}

func newPromptStyles(theme config.ThemeConfig) promptStyles {
	return promptStyles{
		title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.ColorTitle)),
		active: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.ColorWork)),
		dim:    lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ColorHelp)),
	}
}

type menuModel struct {
	title   string
	footer  string
	items   []PickerItem
	cursor  int
	aborted bool
	styles  promptStyles
}

func (m menuModel) Init() tea.Cmd { return nil }

func (m menuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case "enter":
		return m, tea.Quit
	case "ctrl+c", "esc":
		m.aborted = true
		return m, tea.Quit
	}
	return m, nil
}

func (m menuModel) View() string {
	lines := []string{
		"",
		m.styles.title.Render("  " + m.title),
		"",
	}
	for i, item := range m.items {
		lines = append(lines, m.itemRow(item, i == m.cursor))
	}
	if m.footer != "" {
		lines = append(lines, "", m.styles.dim.Render("  "+m.footer))
	}
	lines = append(lines, "", m.styles.dim.Render("  ↑/↓ navigate · enter select · esc back"), "")

	return strings.Join(lines, "\n")
}

func (m menuModel) itemRow(item PickerItem, selected bool) string {
	text := fmt.Sprintf("%-14s %s", item.Label, item.Desc)
	if !selected {
		return m.styles.dim.Render("    " + text)
	}
	return "  " + m.styles.active.Render("▸ "+text)
}

// RunPicker launches an interactive arrow-key picker and returns the selected index.
func RunPicker(title string, items []PickerItem, footer string, theme *config.ThemeConfig) PickerResult {
	m := menuModel{
		title:  title,
		footer: footer,
		items:  items,
		styles: newPromptStyles(resolveTheme(theme)),
	}

	out, err := tea.NewProgram(m).Run()
	if err != nil {
		return PickerResult{Aborted: true}
	}
	final, ok := out.(menuModel)
	if !ok || final.aborted {
		return PickerResult{Aborted: true}
	}
	return PickerResult{Index: final.cursor}
}

type promptModel struct {
	title   string
	input   textinput.Model
	aborted bool
	styles  promptStyles
}

func (m promptModel) Init() tea.Cmd { return textinput.Blink }

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			return m, tea.Quit
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m promptModel) View() string {
	header := m.styles.title.Render("  "+m.title) + " " + m.input.View()
	help := m.styles.dim.Render("  enter confirm · esc back")
	return "\n" + header + "\n\n" + help + "\n"
}

// RunTextPrompt launches a styled text input prompt.
func RunTextPrompt(title string, placeholder string, theme *config.ThemeConfig) TextPromptResult {
	input := textinput.New()
	input.Placeholder = placeholder
	input.CharLimit = 120
	input.Width = 50
	input.Focus()

	m := promptModel{
		title:  title,
		input:  input,
		styles: newPromptStyles(resolveTheme(theme)),
	}

	out, err := tea.NewProgram(m).Run()
	if err != nil {
		return TextPromptResult{Aborted: true}
	}
	final, ok := out.(promptModel)
	if !ok || final.aborted {
		return TextPromptResult{Aborted: true}
	}
	return TextPromptResult{Value: strings.TrimSpace(final.input.Value())}
}
