// Package roster provides the top-level conversion API: read a roster
// workbook, pivot it into the course assignment matrix, and write the
// result with autosized columns.
package roster

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"rosterxl/pkg/roster/pivot"
)

// Options configures a conversion run.
type Options struct {
	// CourseFile is the newline-delimited course list; empty means no
	// course filtering or reordering.
	CourseFile string `yaml:"course_file"`
	// Sheet selects the input sheet by name; empty means the first sheet.
	Sheet string `yaml:"sheet"`
	// UppercaseHeaders uppercases the header row after reading.
	UppercaseHeaders bool `yaml:"uppercase_headers"`
	// DropEmptyRows drops rows that are empty across all columns.
	DropEmptyRows bool `yaml:"drop_empty_rows"`
	// Widths bounds the computed column widths.
	Widths pivot.WidthConfig `yaml:"widths"`
	// Logger receives progress logging; nil disables it.
	Logger *zap.Logger `yaml:"-"`
}

// DefaultOptions returns the defaults used when no config file is given.
func DefaultOptions() Options {
	return Options{Widths: pivot.DefaultWidthConfig()}
}

// LoadOptions reads a YAML config file on top of the defaults.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()
	data, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("parse config %s: %w", path, err)
	}
	return opts, nil
}
