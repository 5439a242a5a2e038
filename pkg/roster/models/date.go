package models

import "time"

// DateKind discriminates the representations a date-like cell can take.
type DateKind int

const (
	// DateAbsent means the cell was empty or not a value.
	DateAbsent DateKind = iota
	// DateSerial is a spreadsheet day-count serial (day 0 = 1899-12-30).
	DateSerial
	// DateCalendar is an already-resolved calendar date.
	DateCalendar
	// DateText is raw cell text to be parsed best-effort.
	DateText
)

// DateValue is a tagged union over the ways a roster sheet can encode a
// date. Exactly one of Serial, Time, or Text is meaningful, selected by
// Kind.
type DateValue struct {
	Kind   DateKind
	Serial float64
	Time   time.Time
	Text   string
}

// AbsentDate returns the missing-value representation.
func AbsentDate() DateValue {
	return DateValue{Kind: DateAbsent}
}

// SerialDate wraps a numeric spreadsheet serial.
func SerialDate(serial float64) DateValue {
	return DateValue{Kind: DateSerial, Serial: serial}
}

// CalendarDate wraps an already-resolved time.
func CalendarDate(t time.Time) DateValue {
	return DateValue{Kind: DateCalendar, Time: t}
}

// TextDate wraps raw cell text.
func TextDate(text string) DateValue {
	return DateValue{Kind: DateText, Text: text}
}

// IsAbsent reports whether the value carries no date at all.
func (d DateValue) IsAbsent() bool {
	return d.Kind == DateAbsent
}
