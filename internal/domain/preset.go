package domain

import (
	"fmt"
	"time"
)

// Preset is a named pair of work and break durations.
type Preset struct {
	Name  string
	Work  time.Duration
	Break time.Duration
}

// Presets lists the built-in duration presets selectable via config.
var Presets = []Preset{
	{Name: "classic", Work: 25 * time.Minute, Break: 5 * time.Minute},
	{Name: "extended", Work: 50 * time.Minute, Break: 10 * time.Minute},
	{Name: "quick", Work: 15 * time.Minute, Break: 3 * time.Minute},
}

// FindPreset looks up a preset by name.
func FindPreset(name string) (Preset, error) {
	for _, p := range Presets {
		if p.Name == name {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("unknown preset %q: must be one of classic, extended, quick", name)
}

// Label returns a display string for the preset.
func (p Preset) Label() string {
	return fmt.Sprintf("%s (%d/%d)", p.Name, int(p.Work.Minutes()), int(p.Break.Minutes()))
}
