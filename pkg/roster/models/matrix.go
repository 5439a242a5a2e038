package models

// CourseNameColumn is the label of the mandatory first output column.
const CourseNameColumn = "Course Name"

// AssignmentMatrix is the pivoted output: one row per course, one column
// per location, each cell a newline-joined summary of the contributing
// records. Columns[0] is always CourseNameColumn and Rows[i][0] holds the
// row's course name. Every row has len(Columns) cells.
type AssignmentMatrix struct {
	Columns []string
	Rows    [][]string
}

// Cell returns the text at (row, col), or "" when out of range.
func (m *AssignmentMatrix) Cell(row, col int) string {
	if row < 0 || row >= len(m.Rows) {
		return ""
	}
	if col < 0 || col >= len(m.Rows[row]) {
		return ""
	}
	return m.Rows[row][col]
}
