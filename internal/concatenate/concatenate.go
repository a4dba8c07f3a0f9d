// Package concatenate collects source files under a set of roots and renders
// them into one Markdown-fenced document in path order.
package concatenate

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/vitruves/bindery/internal/filelock"
	"github.com/vitruves/bindery/internal/language"
	"github.com/vitruves/bindery/internal/logger"
)

// Config drives a single concatenation run.
type Config struct {
	// Roots are the directories (or files) to scan. Empty means ".".
	Roots []string
	// Exclude holds doublestar globs matched against path components and
	// root-relative paths.
	Exclude []string
	// IncludeHidden keeps entries whose name starts with a dot.
	IncludeHidden bool
	// StripComments removes comments from every collected file.
	StripComments bool
	// Gitignore honours .gitignore files found during the walk.
	Gitignore bool
	// OutputFile is the destination; it is never collected. Empty writes to
	// Stdout.
	OutputFile string
	// WorkDir is the base for display paths. Empty means the process working
	// directory.
	WorkDir string
	// Jobs bounds the number of files read in parallel (<= 0 means NumCPU).
	Jobs int
	// Progress shows a progress bar on stderr.
	Progress bool

	Logger *logger.Logger
	Stdout io.Writer
}

// Entry is one collected file.
type Entry struct {
	// Path is the display path: forward slashes, relative to the working
	// directory when the file lies below it, absolute otherwise.
	Path     string
	Content  string
	Language language.Language
}

// Run collects, renders and writes the document described by config.
func Run(config Config) error {
	log := config.Logger
	start := time.Now()
	log.Debug("Starting code concatenation")

	entries, err := Collect(config)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		log.Warning("No files found matching criteria")
	}
	log.Debug("Collected %d files", len(entries))

	document := RenderString(entries)

	if config.OutputFile != "" {
		if err := filelock.LockAndWrite(config.OutputFile, []byte(document)); err != nil {
			return fmt.Errorf("failed to write output file %s: %w", config.OutputFile, err)
		}
		log.Success("Written to %s", config.OutputFile)
	} else {
		stdout := config.Stdout
		if stdout == nil {
			stdout = os.Stdout
		}
		if _, err := io.WriteString(stdout, document); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}

	log.Success("Code concatenation completed in %s", time.Since(start).Round(time.Millisecond))
	return nil
}
