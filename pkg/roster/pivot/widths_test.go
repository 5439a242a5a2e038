package pivot

import (
	"strings"
	"testing"

	"rosterxl/pkg/roster/models"
)

func TestColumnWidthsClamping(t *testing.T) {
	matrix := &models.AssignmentMatrix{
		Columns: []string{"A", "B"},
		Rows: [][]string{
			{"x", strings.Repeat("y", 50)},
		},
	}

	widths := ColumnWidths(matrix, DefaultWidthConfig())

	// Longest line 1 + padding 2 is below the minimum of 8.
	if got := widths[0]; got != 8 {
		t.Errorf("column 0 width = %d, expected 8", got)
	}
	// Longest line 50 + padding 2 fits under the maximum of 60.
	if got := widths[1]; got != 52 {
		t.Errorf("column 1 width = %d, expected 52", got)
	}
}

func TestColumnWidthsMaxBound(t *testing.T) {
	matrix := &models.AssignmentMatrix{
		Columns: []string{"A"},
		Rows: [][]string{
			{strings.Repeat("y", 200)},
		},
	}

	widths := ColumnWidths(matrix, DefaultWidthConfig())
	if got := widths[0]; got != 60 {
		t.Errorf("width = %d, expected cap at 60", got)
	}
}

func TestColumnWidthsLongestSingleLine(t *testing.T) {
	// Multi-line cells measure per line, not total length.
	matrix := &models.AssignmentMatrix{
		Columns: []string{"A"},
		Rows: [][]string{
			{"short\n" + strings.Repeat("z", 20) + "\ntiny"},
		},
	}

	widths := ColumnWidths(matrix, DefaultWidthConfig())
	if got := widths[0]; got != 22 {
		t.Errorf("width = %d, expected 22 (longest line 20 + padding 2)", got)
	}
}

func TestColumnWidthsHeaderCounts(t *testing.T) {
	matrix := &models.AssignmentMatrix{
		Columns: []string{models.CourseNameColumn},
		Rows: [][]string{
			{"ab"},
		},
	}

	widths := ColumnWidths(matrix, DefaultWidthConfig())
	// "Course Name" is 11 characters; the header is part of the column.
	if got := widths[0]; got != 13 {
		t.Errorf("width = %d, expected 13", got)
	}
}

func TestColumnWidthsSkipsEmptyColumns(t *testing.T) {
	matrix := &models.AssignmentMatrix{
		Columns: []string{"A", ""},
		Rows: [][]string{
			{"x", "   "},
		},
	}

	widths := ColumnWidths(matrix, DefaultWidthConfig())
	if _, ok := widths[1]; ok {
		t.Error("expected no width entry for a column with no text")
	}
}

func TestColumnWidthsEmptyMatrix(t *testing.T) {
	widths := ColumnWidths(&models.AssignmentMatrix{}, DefaultWidthConfig())
	if len(widths) != 0 {
		t.Errorf("expected no widths, got %v", widths)
	}
}
