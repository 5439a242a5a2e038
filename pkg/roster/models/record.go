// Package models defines the data structures shared by the roster
// reader, the pivot core, and the workbook writer.
package models

// Column names the input sheet must carry. Additional columns are
// ignored by the reader.
const (
	ColLocation = "LocName"
	ColCourse   = "Course Name"
	ColStatus   = "JobStatus"
	ColStart    = "Start Date"
	ColEnd      = "End Date"
)

// RequiredColumns lists every column the pivot needs, in sheet order.
func RequiredColumns() []string {
	return []string{ColLocation, ColCourse, ColStatus, ColStart, ColEnd}
}

// RosterRecord is one input row. Consumed read-only by the pivot.
type RosterRecord struct {
	Location  string
	Course    string
	JobStatus string
	Start     DateValue
	End       DateValue
}

// RosterTable is the decoded input sheet: the header as read (so schema
// validation can name what is missing) plus the typed records.
type RosterTable struct {
	Columns []string
	Records []RosterRecord
}

// HasColumn reports whether the header contains name exactly.
func (t RosterTable) HasColumn(name string) bool {
	for _, col := range t.Columns {
		if col == name {
			return true
		}
	}
	return false
}
