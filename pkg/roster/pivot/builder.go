// Package pivot implements the roster-to-matrix transformation: date
// normalization, per-record summaries, grouping into the course x
// location assignment matrix, and column width hints for the writer.
package pivot

import (
	"sort"
	"strings"

	"rosterxl/pkg/roster/models"
)

// groupKey identifies one (course, location) cell of the matrix.
type groupKey struct {
	course   string
	location string
}

// cleanRow is a record that survived trimming and summary computation.
type cleanRow struct {
	course   string
	location string
	summary  string
}

// Build pivots roster records into the assignment matrix.
//
// Courses become rows and locations become columns. When courseFilter is
// non-empty it both restricts the rows to the listed courses (exact match
// on trimmed names) and dictates the row order, including entries with no
// matching data, which come out as empty rows. Without a filter, rows
// follow first-encountered course order. Columns always follow
// first-encountered location order in the summary-bearing data.
//
// The only error is *MissingColumnsError, returned before any record is
// processed when the header lacks required columns.
func Build(table models.RosterTable, courseFilter []string) (*models.AssignmentMatrix, error) {
	if err := checkColumns(table); err != nil {
		return nil, err
	}

	rows := make([]cleanRow, 0, len(table.Records))
	for _, rec := range table.Records {
		location := strings.TrimSpace(rec.Location)
		course := strings.TrimSpace(rec.Course)
		if location == "" || course == "" {
			continue
		}
		summary := Summarize(rec)
		if summary == "" {
			continue
		}
		rows = append(rows, cleanRow{course: course, location: location, summary: summary})
	}

	filter := normalizeFilter(courseFilter)
	if len(filter) > 0 {
		allowed := make(map[string]struct{}, len(filter))
		for _, course := range filter {
			allowed[course] = struct{}{}
		}
		kept := make([]cleanRow, 0, len(rows))
		for _, row := range rows {
			if _, ok := allowed[row.course]; ok {
				kept = append(kept, row)
			}
		}
		rows = kept
	}

	if len(rows) == 0 {
		return emptyMatrix(filter), nil
	}

	courseOrder := newOrderedSet()
	locationOrder := newOrderedSet()
	cells := make(map[groupKey][]string)
	for _, row := range rows {
		courseOrder.add(row.course)
		locationOrder.add(row.location)
		key := groupKey{course: row.course, location: row.location}
		cells[key] = append(cells[key], row.summary)
	}

	rowAxis := courseOrder.values
	if len(filter) > 0 {
		rowAxis = filter
	}

	matrix := &models.AssignmentMatrix{
		Columns: append([]string{models.CourseNameColumn}, locationOrder.values...),
	}
	for _, course := range rowAxis {
		row := make([]string, len(matrix.Columns))
		row[0] = course
		for i, location := range locationOrder.values {
			row[i+1] = strings.Join(cells[groupKey{course: course, location: location}], "\n")
		}
		matrix.Rows = append(matrix.Rows, row)
	}
	return matrix, nil
}

// checkColumns validates the sheet header against the required schema.
func checkColumns(table models.RosterTable) error {
	var missing []string
	for _, col := range models.RequiredColumns() {
		if !table.HasColumn(col) {
			missing = append(missing, col)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)
	return &MissingColumnsError{Columns: missing}
}

// normalizeFilter trims filter entries and removes duplicates while
// preserving the original order.
func normalizeFilter(courses []string) []string {
	set := newOrderedSet()
	for _, course := range courses {
		if trimmed := strings.TrimSpace(course); trimmed != "" {
			set.add(trimmed)
		}
	}
	return set.values
}

// emptyMatrix implements the two-case policy for a filtered-out input:
// with a filter, one row per filter entry under the course column alone;
// without one, just the empty course column.
func emptyMatrix(filter []string) *models.AssignmentMatrix {
	matrix := &models.AssignmentMatrix{Columns: []string{models.CourseNameColumn}}
	for _, course := range filter {
		matrix.Rows = append(matrix.Rows, []string{course})
	}
	return matrix
}

// orderedSet records first-encounter order with set membership, keeping
// axis ordering independent of map iteration.
type orderedSet struct {
	seen   map[string]struct{}
	values []string
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: make(map[string]struct{})}
}

func (s *orderedSet) add(v string) {
	if _, ok := s.seen[v]; ok {
		return
	}
	s.seen[v] = struct{}{}
	s.values = append(s.values, v)
}
