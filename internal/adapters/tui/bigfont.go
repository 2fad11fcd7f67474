package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// The banner clock draws each digit as a 5-row, 4-column seven-segment
// cell. Colons are 1 column wide.
type segFlags uint8

const (
	segTop segFlags = 1 << iota
	segTopRight
	segBottomRight
	segBottom
	segBottomLeft
	segTopLeft
	segMiddle
)

var digitSegments = map[rune]segFlags{
	'0': segTop | segTopRight | segBottomRight | segBottom | segBottomLeft | segTopLeft,
	'1': segTopRight | segBottomRight,
	'2': segTop | segTopRight | segMiddle | segBottomLeft | segBottom,
	'3': segTop | segTopRight | segMiddle | segBottomRight | segBottom,
	'4': segTopLeft | segTopRight | segMiddle | segBottomRight,
	'5': segTop | segTopLeft | segMiddle | segBottomRight | segBottom,
	'6': segTop | segTopLeft | segMiddle | segBottomLeft | segBottomRight | segBottom,
	'7': segTop | segTopRight | segBottomRight,
	'8': segTop | segTopRight | segBottomRight | segBottom | segBottomLeft | segTopLeft | segMiddle,
	'9': segTop | segTopRight | segBottomRight | segBottom | segTopLeft | segMiddle,
}

var colonColumn = [clockRows]string{" ", "█", " ", "█", " "}

const (
	clockRows = 5
	// Below this terminal width the clock falls back to a plain line.
	bannerMinWidth = 40
)

func (s segFlags) has(f segFlags) bool { return s&f != 0 }

// glyphRow renders one row of a digit cell from its lit segments.
func glyphRow(segs segFlags, row int) string {
	bar := func(lit bool) string {
		if lit {
			return "████"
		}
		return sides(segs, row)
	}
	switch row {
	case 0:
		return bar(segs.has(segTop))
	case 2:
		return bar(segs.has(segMiddle))
	case 4:
		return bar(segs.has(segBottom))
	default:
		return sides(segs, row)
	}
}

// sides renders the vertical segments flanking a row.
func sides(segs segFlags, row int) string {
	var left, right bool
	switch {
	case row <= 1:
		left, right = segs.has(segTopLeft), segs.has(segTopRight)
	case row == 2:
		left = segs.has(segTopLeft) || segs.has(segBottomLeft)
		right = segs.has(segTopRight) || segs.has(segBottomRight)
	default:
		left, right = segs.has(segBottomLeft), segs.has(segBottomRight)
	}

	cell := [4]byte{' ', ' ', ' ', ' '}
	if left {
		cell[0] = 0
	}
	if right {
		cell[3] = 0
	}
	var b strings.Builder
	for _, c := range cell {
		if c == 0 {
			b.WriteString("█")
		} else {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// renderClock renders a time string like "24:32" as banner text. Falls back
// to a single styled line when the terminal is too narrow.
func renderClock(timeStr string, style lipgloss.Style, width int) string {
	if width < bannerMinWidth {
		return style.Render(timeStr)
	}

	rows := make([]string, clockRows)
	for row := 0; row < clockRows; row++ {
		var b strings.Builder
		for _, ch := range timeStr {
			cell := ""
			if ch == ':' {
				cell = colonColumn[row]
			} else if segs, ok := digitSegments[ch]; ok {
				cell = glyphRow(segs, row)
			} else {
				continue
			}
			if b.Len() > 0 {
				b.WriteString(" ")
			}
			b.WriteString(cell)
		}
		rows[row] = style.Render(b.String())
	}
	return strings.Join(rows, "\n")
}
