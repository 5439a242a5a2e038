package pivot

import (
	"fmt"
	"strings"
)

// MissingColumnsError reports required columns absent from the input
// sheet header. The transformation produces no output when it is
// returned.
type MissingColumnsError struct {
	// Columns holds the missing column names, sorted.
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("input sheet missing required columns: %s", strings.Join(e.Columns, ", "))
}
