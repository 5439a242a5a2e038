package paths

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPrompterDirectory(t *testing.T) {
	fallback := t.TempDir()
	if err := os.Mkdir(filepath.Join(fallback, "data"), 0755); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("missing\ndata\n"), &out)

	got, err := p.Directory("input", fallback)
	if err != nil {
		t.Fatalf("Directory failed: %v", err)
	}
	if want := filepath.Join(fallback, "data"); got != want {
		t.Errorf("Directory = %q, expected %q", got, want)
	}
	if !strings.Contains(out.String(), "Please try again") {
		t.Error("Expected a retry message for the missing directory")
	}
	if !strings.Contains(out.String(), "assuming a subfolder") {
		t.Error("Expected the bare-name subfolder note")
	}
}

func TestPrompterDirectoryBlankPicksFallback(t *testing.T) {
	fallback := t.TempDir()

	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("\n"), &out)

	got, err := p.Directory("input", fallback)
	if err != nil {
		t.Fatalf("Directory failed: %v", err)
	}
	if got != fallback {
		t.Errorf("Directory = %q, expected fallback %q", got, fallback)
	}
}

func TestPrompterDirectoryAbsolutePath(t *testing.T) {
	dir := t.TempDir()

	var out bytes.Buffer
	p := NewPrompter(strings.NewReader(dir+"\n"), &out)

	got, err := p.Directory("input", "")
	if err != nil {
		t.Fatalf("Directory failed: %v", err)
	}
	if got != filepath.Clean(dir) {
		t.Errorf("Directory = %q, expected %q", got, dir)
	}
}

func TestPrompterFilename(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "book.xlsx"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("\nnope.xlsx\nbook.xlsx\n"), &out)

	got, err := p.Filename("input", dir, true)
	if err != nil {
		t.Fatalf("Filename failed: %v", err)
	}
	if got != "book.xlsx" {
		t.Errorf("Filename = %q, expected book.xlsx", got)
	}
	if !strings.Contains(out.String(), "Please provide a file name.") {
		t.Error("Expected a message for blank input")
	}
	if !strings.Contains(out.String(), "not found") {
		t.Error("Expected a message for the missing file")
	}
}

func TestPrompterSourcePath(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "book.xlsx"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	p := NewPrompter(strings.NewReader(dir+"\nbook.xlsx\n"), &out)

	got, err := p.SourcePath()
	if err != nil {
		t.Fatalf("SourcePath failed: %v", err)
	}
	if want := filepath.Join(filepath.Clean(dir), "book.xlsx"); got != want {
		t.Errorf("SourcePath = %q, expected %q", got, want)
	}
}

func TestPrompterInputClosed(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader(""), &out)

	if _, err := p.Directory("input", t.TempDir()); !errors.Is(err, ErrInputClosed) {
		t.Errorf("Expected ErrInputClosed, got %v", err)
	}
}
