package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/vitruves/bindery/internal/concatenate"
	"github.com/vitruves/bindery/internal/config"
	"github.com/vitruves/bindery/internal/logger"
)

// Version is set at build time with -ldflags.
var Version = "dev"

type rootOptions struct {
	includeHidden bool
	noComments    bool
	outputFile    string
	exclude       []string
	noGitignore   bool
	jobs          int
	verbose       bool
	configFile    string
}

// NewRootCommand builds the bindery command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "bindery [paths...]",
		Short: "Concatenate project source files for review/analysis",
		Long: `bindery walks the given paths (the current directory by default), keeps every
file of a known language and prints them as one Markdown document, each file
under its path in a fenced code block. Files are ordered by path so the output
is stable across runs. Comments can be stripped while string literals are
left untouched.`,
		Version:       Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConcatenate(cmd, args, opts)
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&opts.includeHidden, "all", "a", false, "Include hidden files and directories")
	flags.BoolVarP(&opts.noComments, "no-comments", "n", false, "Strip comments from source before concatenation")
	flags.StringVarP(&opts.outputFile, "output", "o", "", "Output file (if not specified, output to console); it is never scanned")
	flags.StringArrayVarP(&opts.exclude, "exclude", "e", []string{}, "Exclude paths matching a glob (repeatable)")
	flags.BoolVar(&opts.noGitignore, "no-gitignore", false, "Do not honour .gitignore files")
	flags.IntVarP(&opts.jobs, "jobs", "j", runtime.NumCPU(), "Number of files read in parallel")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose output")
	flags.StringVar(&opts.configFile, "config", config.DefaultFile, "Configuration file")

	cmd.AddCommand(newLanguagesCommand())

	return cmd
}

func runConcatenate(cmd *cobra.Command, args []string, opts *rootOptions) error {
	flags := cmd.Flags()

	if flags.Changed("config") {
		if _, err := os.Stat(opts.configFile); err != nil {
			return fmt.Errorf("config file: %w", err)
		}
	}
	cfg, err := config.Load(opts.configFile)
	if err != nil {
		return err
	}

	if flags.Changed("all") {
		cfg.IncludeHidden = opts.includeHidden
	}
	if flags.Changed("no-comments") {
		cfg.StripComments = opts.noComments
	}
	if flags.Changed("no-gitignore") {
		cfg.Gitignore = !opts.noGitignore
	}
	if flags.Changed("jobs") || cfg.Jobs == 0 {
		cfg.Jobs = opts.jobs
	}

	level := logger.ParseLevel(cfg.LogLevel)
	if opts.verbose {
		level = logger.LevelDebug
	}
	log := logger.New(cmd.ErrOrStderr(), level)

	return concatenate.Run(concatenate.Config{
		Roots:         args,
		Exclude:       append(cfg.Excludes(), opts.exclude...),
		IncludeHidden: cfg.IncludeHidden,
		StripComments: cfg.StripComments,
		Gitignore:     cfg.Gitignore,
		OutputFile:    opts.outputFile,
		Jobs:          cfg.Jobs,
		Progress:      cmd.ErrOrStderr() == os.Stderr && isatty.IsTerminal(os.Stderr.Fd()),
		Logger:        log,
		Stdout:        cmd.OutOrStdout(),
	})
}
