// Package main provides the CLI entry point for rosterxl.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"rosterxl/pkg/roster"
	"rosterxl/pkg/roster/paths"
)

var (
	coursesPath      string
	configPath       string
	sheetName        string
	uppercaseHeaders bool
	dropEmptyRows    bool
	verbose          bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "rosterxl [input.xlsx] [output.xlsx]",
		Short: "Pivot a roster workbook into a course assignment matrix",
		Long: `rosterxl reads an assignment roster from an Excel workbook, pivots it
into a course x location matrix, and writes the matrix to a new workbook
with autosized columns.

With no input argument it starts an interactive prompt flow; with no
output argument it writes a timestamped file next to the input.`,
		Args:         cobra.MaximumNArgs(2),
		RunE:         run,
		SilenceUsage: true,
	}

	rootCmd.Flags().StringVarP(&coursesPath, "courses", "c", "", "Path to the course list file (one name per line)")
	rootCmd.Flags().StringVar(&configPath, "config", "", "Path to a YAML config file")
	rootCmd.Flags().StringVar(&sheetName, "sheet", "", "Input sheet name (default: first sheet)")
	rootCmd.Flags().BoolVar(&uppercaseHeaders, "uppercase-headers", false, "Uppercase the header row after reading")
	rootCmd.Flags().BoolVar(&dropEmptyRows, "drop-empty-rows", false, "Drop rows that are empty across all columns")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(verbose)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer logger.Sync()

	opts := roster.DefaultOptions()
	if configPath != "" {
		opts, err = roster.LoadOptions(configPath)
		if err != nil {
			return err
		}
	}
	if coursesPath != "" {
		opts.CourseFile = coursesPath
	}
	if sheetName != "" {
		opts.Sheet = sheetName
	}
	if uppercaseHeaders {
		opts.UppercaseHeaders = true
	}
	if dropEmptyRows {
		opts.DropEmptyRows = true
	}
	opts.Logger = logger

	source, destination, err := resolvePaths(cmd, args)
	if err != nil {
		return err
	}

	if err := roster.Convert(source, destination, opts); err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}
	return nil
}

// resolvePaths turns the positional arguments into source/destination
// paths, falling back to the interactive prompt flow when no input is
// given and a timestamped default when no output is given.
func resolvePaths(cmd *cobra.Command, args []string) (string, string, error) {
	switch len(args) {
	case 0:
		fmt.Fprintln(cmd.OutOrStdout(), "No paths supplied. Starting interactive prompt flow.")
		prompter := paths.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
		source, err := prompter.SourcePath()
		if err != nil {
			return "", "", err
		}
		destination := paths.DefaultOutputPath(source, "", time.Now())
		fmt.Fprintf(cmd.OutOrStdout(), "Output will be written to: %s\n", destination)
		return source, destination, nil
	case 1:
		source := normalizeArg(args[0])
		destination := paths.DefaultOutputPath(source, "", time.Now())
		fmt.Fprintf(cmd.OutOrStdout(), "No output supplied; using %s\n", filepath.Base(destination))
		return source, destination, nil
	default:
		return normalizeArg(args[0]), normalizeArg(args[1]), nil
	}
}

func normalizeArg(raw string) string {
	if path, ok := paths.NormalizeDropPath(raw); ok {
		return path
	}
	return raw
}

func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}
