package roster

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"rosterxl/pkg/roster/pivot"
	"rosterxl/pkg/roster/xlsxio"
)

// Convert reads the roster sheet from source, pivots it into the course
// assignment matrix, and writes the matrix to the CourseAssignment sheet
// of a new workbook at destination.
//
// Structural problems (missing source, unreadable or empty course list,
// missing required columns) abort the run before anything is written;
// unparseable date cells never do.
func Convert(source, destination string, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	if _, err := os.Stat(source); err != nil {
		return fmt.Errorf("%w: %s", ErrSourceNotFound, source)
	}

	var courses []string
	if opts.CourseFile != "" {
		var err error
		courses, err = ReadCourseList(opts.CourseFile)
		if err != nil {
			return err
		}
		logger.Debug("course list loaded",
			zap.String("path", opts.CourseFile),
			zap.Int("courses", len(courses)))
	}

	table, err := xlsxio.ReadRoster(source, xlsxio.ReadOptions{
		Sheet:            opts.Sheet,
		UppercaseHeaders: opts.UppercaseHeaders,
		DropEmptyRows:    opts.DropEmptyRows,
	})
	if err != nil {
		return fmt.Errorf("read roster: %w", err)
	}
	logger.Debug("roster read", zap.String("source", source), zap.Int("records", len(table.Records)))

	matrix, err := pivot.Build(table, courses)
	if err != nil {
		return err
	}

	widths := pivot.ColumnWidths(matrix, opts.Widths)

	if err := xlsxio.WriteMatrix(destination, matrix, widths); err != nil {
		return fmt.Errorf("write matrix: %w", err)
	}
	logger.Info("assignment matrix written",
		zap.String("destination", destination),
		zap.Int("courses", len(matrix.Rows)),
		zap.Int("columns", len(matrix.Columns)))
	return nil
}
