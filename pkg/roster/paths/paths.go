// Package paths handles output naming and the path plumbing around the
// CLI: timestamped destination names, normalization of pasted or dropped
// paths, and the interactive source-selection prompts.
package paths

import (
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"
)

// TimestampedOutputName returns a file name like 251103-2342-Source.xlsx
// using the given local time.
func TimestampedOutputName(source string, now time.Time) string {
	return now.Format("060102-1504") + "-" + filepath.Base(source)
}

// DefaultOutputPath builds the timestamped output path in directory, or
// alongside source when directory is empty.
func DefaultOutputPath(source, directory string, now time.Time) string {
	dir := directory
	if dir == "" {
		dir = filepath.Dir(source)
	}
	return filepath.Join(dir, TimestampedOutputName(source, now))
}

// NormalizeDropPath cleans a path pasted or dropped into the CLI:
// surrounding Tk-style braces are stripped, file:// URLs are decoded
// (with Windows drive handling), and a leading ~ is expanded. ok=false
// means the input cannot be turned into a path at all.
func NormalizeDropPath(raw string) (string, bool) {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return "", false
	}

	if strings.HasPrefix(cleaned, "{") && strings.HasSuffix(cleaned, "}") {
		cleaned = cleaned[1 : len(cleaned)-1]
	}

	if strings.HasPrefix(cleaned, "file://") {
		parsed, err := url.Parse(cleaned)
		if err != nil {
			return "", false
		}
		part := parsed.Path
		if part == "" {
			return "", false
		}
		if runtime.GOOS == "windows" && strings.HasPrefix(part, "/") {
			part = strings.TrimLeft(part, "/")
			if parsed.Host != "" {
				part = parsed.Host + ":" + part
			}
		}
		cleaned = part
	}

	if cleaned == "~" || strings.HasPrefix(cleaned, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			cleaned = filepath.Join(home, strings.TrimPrefix(cleaned, "~"))
		}
	}

	return cleaned, true
}
