package paths

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// ErrInputClosed indicates the prompt's input ended before a valid
// answer was given.
var ErrInputClosed = errors.New("prompt input closed")

// Prompter runs the interactive path-selection flow over a terminal (or
// any reader/writer pair in tests).
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewPrompter wraps in/out for prompting.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// Directory asks for a directory until an existing one is named.
// Blank input picks fallback (the working directory when fallback is
// empty). Input without a slash, backslash, or ".." is treated as a
// subfolder of the fallback; anything else is resolved relative to the
// working directory.
func (p *Prompter) Directory(kind, fallback string) (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	if fallback == "" {
		fallback = cwd
	}

	for {
		fmt.Fprintf(p.out, "Enter %s directory relative to %s (use '..' or slashes for other locations, blank for %s): ",
			kind, cwd, fallback)
		raw, err := p.readLine()
		if err != nil {
			return "", err
		}

		var candidate string
		switch {
		case raw == "":
			candidate = fallback
		case strings.ContainsAny(raw, `/\`) || strings.Contains(raw, ".."):
			candidate = expandUser(raw)
			if !filepath.IsAbs(candidate) {
				candidate = filepath.Join(cwd, candidate)
			}
		default:
			fmt.Fprintf(p.out, "No '..' or slash detected; assuming a subfolder of %s.\n", fallback)
			candidate = filepath.Join(fallback, raw)
		}
		candidate = filepath.Clean(candidate)

		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			fmt.Fprintf(p.out, "%s directory set to: %s\n", capitalize(kind), candidate)
			return candidate, nil
		}
		fmt.Fprintf(p.out, "Could not find %s directory: %s. Please try again.\n", kind, candidate)
	}
}

// Filename asks for a file name inside dir, validating existence when
// mustExist is set.
func (p *Prompter) Filename(kind, dir string, mustExist bool) (string, error) {
	for {
		fmt.Fprintf(p.out, "Enter the %s file name (e.g., workbook.xlsx): ", kind)
		name, err := p.readLine()
		if err != nil {
			return "", err
		}
		if name == "" {
			fmt.Fprintln(p.out, "Please provide a file name.")
			continue
		}

		candidate := filepath.Join(dir, name)
		if mustExist {
			info, err := os.Stat(candidate)
			if err != nil || info.IsDir() {
				fmt.Fprintf(p.out, "%s file not found at %s. Try again.\n", capitalize(kind), candidate)
				continue
			}
		}
		fmt.Fprintf(p.out, "%s file confirmed: %s\n", capitalize(kind), candidate)
		return name, nil
	}
}

// SourcePath collects the input workbook path via the prompt flow.
func (p *Prompter) SourcePath() (string, error) {
	dir, err := p.Directory("input", "")
	if err != nil {
		return "", err
	}
	name, err := p.Filename("input", dir, true)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}

func (p *Prompter) readLine() (string, error) {
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", ErrInputClosed
	}
	return strings.TrimSpace(p.in.Text()), nil
}

func expandUser(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
