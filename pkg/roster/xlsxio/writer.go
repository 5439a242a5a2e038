package xlsxio

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"rosterxl/pkg/roster/models"
)

// AssignmentSheet is the sheet name the matrix is written to.
const AssignmentSheet = "CourseAssignment"

// WriteMatrix writes the matrix to a new workbook at path, creating
// parent directories as needed. widths maps zero-based column indexes to
// character widths; columns without an entry keep the default width.
func WriteMatrix(path string, m *models.AssignmentMatrix, widths map[int]int) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), AssignmentSheet); err != nil {
		return err
	}

	if err := writeRow(f, 1, m.Columns); err != nil {
		return err
	}
	for i, row := range m.Rows {
		if err := writeRow(f, i+2, row); err != nil {
			return err
		}
	}

	for col, width := range widths {
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return fmt.Errorf("column %d: %w", col, err)
		}
		if err := f.SetColWidth(AssignmentSheet, name, name, float64(width)); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}

func writeRow(f *excelize.File, rowNum int, values []string) error {
	for col, value := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, rowNum)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(AssignmentSheet, cell, value); err != nil {
			return err
		}
	}
	return nil
}
