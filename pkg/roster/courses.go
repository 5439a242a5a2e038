package roster

import (
	"fmt"
	"os"
	"strings"
)

// ReadCourseList loads course names from a newline-delimited text file.
// Names are trimmed and blank lines dropped; duplicates are kept because
// the pivot deduplicates while preserving order. Returns
// ErrCourseListNotFound when the file cannot be read and
// ErrCourseListEmpty when nothing usable remains.
func ReadCourseList(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrCourseListNotFound, path)
	}

	var courses []string
	for _, line := range strings.Split(string(data), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			courses = append(courses, line)
		}
	}
	if len(courses) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrCourseListEmpty, path)
	}
	return courses, nil
}
