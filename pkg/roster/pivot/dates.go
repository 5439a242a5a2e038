package pivot

import (
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"rosterxl/pkg/roster/models"
)

// spanLayout renders dates as yy/mm/dd in summary cells.
const spanLayout = "06/01/02"

// textLayouts are the accepted formats for best-effort text date parsing,
// tried in order. The first match wins, so more specific layouts come
// before shorter ones that could also match.
var textLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006 15:04:05",
	"01/02/2006",
	"1/2/2006",
	"01-02-2006",
	"01-02-06",
	"1/2/06",
	"02-Jan-2006",
	"Jan 2, 2006",
	"January 2, 2006",
}

// NormalizeDate resolves a date-like cell value to a calendar date.
// Numeric serials are interpreted as day counts from the 1899-12-30
// spreadsheet epoch; text is parsed against textLayouts. Anything that
// does not resolve reports ok=false; normalization never fails with an
// error.
func NormalizeDate(v models.DateValue) (time.Time, bool) {
	switch v.Kind {
	case models.DateCalendar:
		return v.Time, true
	case models.DateSerial:
		t, err := excelize.ExcelDateToTime(v.Serial, false)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	case models.DateText:
		text := strings.TrimSpace(v.Text)
		if text == "" {
			return time.Time{}, false
		}
		for _, layout := range textLayouts {
			if t, err := time.Parse(layout, text); err == nil {
				return t, true
			}
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}

// Summarize renders the single-line summary for one record: the date
// span (both dates, one date, or nothing) and the trimmed job status,
// joined with a space. An empty result means the record carries no
// reportable information.
func Summarize(rec models.RosterRecord) string {
	start, hasStart := NormalizeDate(rec.Start)
	end, hasEnd := NormalizeDate(rec.End)

	var span string
	switch {
	case hasStart && hasEnd:
		span = start.Format(spanLayout) + " - " + end.Format(spanLayout)
	case hasStart:
		span = start.Format(spanLayout)
	case hasEnd:
		span = end.Format(spanLayout)
	}

	pieces := make([]string, 0, 2)
	if span != "" {
		pieces = append(pieces, span)
	}
	if status := strings.TrimSpace(rec.JobStatus); status != "" {
		pieces = append(pieces, status)
	}
	return strings.Join(pieces, " ")
}
