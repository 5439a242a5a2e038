package roster

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, 8, opts.Widths.Min)
	assert.Equal(t, 60, opts.Widths.Max)
	assert.Equal(t, 2, opts.Widths.Padding)
	assert.Empty(t, opts.CourseFile)
}

func TestLoadOptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `course_file: courses.txt
sheet: Roster
drop_empty_rows: true
widths:
  min: 10
  padding: 3
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	opts, err := LoadOptions(path)
	require.NoError(t, err)

	assert.Equal(t, "courses.txt", opts.CourseFile)
	assert.Equal(t, "Roster", opts.Sheet)
	assert.True(t, opts.DropEmptyRows)
	assert.False(t, opts.UppercaseHeaders)

	// Unset width fields keep their defaults.
	assert.Equal(t, 10, opts.Widths.Min)
	assert.Equal(t, 60, opts.Widths.Max)
	assert.Equal(t, 3, opts.Widths.Padding)
}

func TestLoadOptionsMissingFile(t *testing.T) {
	_, err := LoadOptions(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadOptionsInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("widths: [not a map"), 0644))

	_, err := LoadOptions(path)
	require.Error(t, err)
}
