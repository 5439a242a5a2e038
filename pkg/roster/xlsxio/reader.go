// Package xlsxio moves roster data in and out of xlsx workbooks.
package xlsxio

import (
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"rosterxl/pkg/roster/models"
)

// ReadOptions tweaks how the roster sheet is decoded.
type ReadOptions struct {
	// Sheet selects the sheet by name; empty means the first sheet.
	Sheet string
	// UppercaseHeaders uppercases the header row after reading.
	UppercaseHeaders bool
	// DropEmptyRows skips rows that are empty across all columns.
	DropEmptyRows bool
}

// ReadRoster decodes one sheet of the workbook at path into a typed
// table. The header row is kept verbatim (trimmed) so the pivot can
// validate the schema; data rows become RosterRecords, with unknown
// columns ignored.
func ReadRoster(path string, opts ReadOptions) (models.RosterTable, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return models.RosterTable{}, err
	}
	defer f.Close()

	sheet := opts.Sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return models.RosterTable{}, err
	}
	if len(rows) == 0 {
		return models.RosterTable{}, nil
	}

	columns := make([]string, len(rows[0]))
	for i, name := range rows[0] {
		name = strings.TrimSpace(name)
		if opts.UppercaseHeaders {
			name = strings.ToUpper(name)
		}
		columns[i] = name
	}

	locationCol := columnIndex(columns, models.ColLocation)
	courseCol := columnIndex(columns, models.ColCourse)
	statusCol := columnIndex(columns, models.ColStatus)
	startCol := columnIndex(columns, models.ColStart)
	endCol := columnIndex(columns, models.ColEnd)

	table := models.RosterTable{Columns: columns}
	for _, raw := range rows[1:] {
		if opts.DropEmptyRows && emptyRow(raw) {
			continue
		}
		table.Records = append(table.Records, models.RosterRecord{
			Location:  cellAt(raw, locationCol),
			Course:    cellAt(raw, courseCol),
			JobStatus: cellAt(raw, statusCol),
			Start:     dateCell(cellAt(raw, startCol)),
			End:       dateCell(cellAt(raw, endCol)),
		})
	}
	return table, nil
}

func columnIndex(columns []string, name string) int {
	for i, col := range columns {
		if col == name {
			return i
		}
	}
	return -1
}

func cellAt(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}

func emptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// dateCell classifies a raw cell into the date tagged union: blank is
// absent, numeric text is a spreadsheet serial, anything else is text
// for best-effort parsing.
func dateCell(s string) models.DateValue {
	s = strings.TrimSpace(s)
	if s == "" {
		return models.AbsentDate()
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		return models.SerialDate(serial)
	}
	return models.TextDate(s)
}
