package pivot

import (
	"strings"
	"unicode/utf8"

	"rosterxl/pkg/roster/models"
)

// WidthConfig bounds the computed column widths.
type WidthConfig struct {
	// Min keeps headers readable.
	Min int `yaml:"min"`
	// Max avoids excessively wide columns.
	Max int `yaml:"max"`
	// Padding is extra characters of breathing room.
	Padding int `yaml:"padding"`
}

// DefaultWidthConfig returns the standard width bounds.
func DefaultWidthConfig() WidthConfig {
	return WidthConfig{Min: 8, Max: 60, Padding: 2}
}

// ColumnWidths computes a display width per column index: the longest
// single line across the header and every cell in the column, padded and
// clamped to the configured bounds. Columns with no text get no entry so
// the writer keeps its default width. Columns are independent of each
// other and of row order.
func ColumnWidths(m *models.AssignmentMatrix, cfg WidthConfig) map[int]int {
	widths := make(map[int]int, len(m.Columns))
	for col, name := range m.Columns {
		longest := longestLine(name)
		for _, row := range m.Rows {
			if col >= len(row) {
				continue
			}
			if n := longestLine(row[col]); n > longest {
				longest = n
			}
		}
		if longest == 0 {
			continue
		}
		width := longest + cfg.Padding
		if width < cfg.Min {
			width = cfg.Min
		}
		if width > cfg.Max {
			width = cfg.Max
		}
		widths[col] = width
	}
	return widths
}

// longestLine returns the character count of the longest line in text,
// or 0 for blank text.
func longestLine(text string) int {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0
	}
	longest := 0
	for _, line := range strings.Split(text, "\n") {
		if n := utf8.RuneCountInString(line); n > longest {
			longest = n
		}
	}
	return longest
}
