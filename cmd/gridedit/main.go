// Package main is the entry point for the gridedit editor.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/gridedit/internal/config"
	"github.com/dshills/gridedit/internal/engine"
	"github.com/dshills/gridedit/internal/logging"
	"github.com/dshills/gridedit/internal/scenario"
	"github.com/dshills/gridedit/internal/term"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// options holds the command-line flags.
type options struct {
	configPath  string
	logLevel    string
	logFile     string
	file        string
	width       int
	showVersion bool

	// scenarios are the scenario files to run instead of the editor.
	scenarios []string
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		return 2
	}

	if opts.showVersion {
		fmt.Fprintf(stdout, "gridedit %s\n", version)
		fmt.Fprintf(stdout, "Commit: %s\n", commit)
		fmt.Fprintf(stdout, "Built: %s\n", date)
		return 0
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	scenarioMode := len(opts.scenarios) > 0
	log, closeLog, err := newLogger(cfg, scenarioMode, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer closeLog()

	if scenarioMode {
		return runScenarios(opts.scenarios, cfg, log, stdout, stderr)
	}
	if err := runEditor(opts.file, cfg, log); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("gridedit", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.configPath, "config", "", "Path to configuration file")
	fs.StringVar(&opts.configPath, "c", "", "Path to configuration file (shorthand)")
	fs.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&opts.logFile, "log-file", "", "Write logs to this file")
	fs.StringVar(&opts.file, "file", "", "Load initial content from this file")
	fs.StringVar(&opts.file, "f", "", "Load initial content from this file (shorthand)")
	fs.IntVar(&opts.width, "width", 0, "Row capacity (overrides editor.row_capacity)")
	fs.BoolVar(&opts.showVersion, "version", false, "Show version information")
	fs.BoolVar(&opts.showVersion, "v", false, "Show version information (shorthand)")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "gridedit - fixed-width text grid editor\n\n")
		fmt.Fprintf(stderr, "Usage: gridedit [options] [scenario.yaml...]\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  gridedit                       Edit an empty grid\n")
		fmt.Fprintf(stderr, "  gridedit -f notes.txt          Edit a copy of notes.txt\n")
		fmt.Fprintf(stderr, "  gridedit cases.yaml            Run scenarios and report PASS/FAIL\n")
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	opts.scenarios = fs.Args()
	return opts, nil
}

// loadConfig reads the configuration and applies flag overrides.
func loadConfig(opts options) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.logLevel != "" {
		cfg.Logging.Level = opts.logLevel
	}
	if opts.logFile != "" {
		cfg.Logging.File = opts.logFile
	}
	if opts.width != 0 {
		cfg.Editor.RowCapacity = opts.width
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger opens the configured log file. Without one, scenario mode
// logs to stderr and the editor does not log at all, since the terminal
// owns the screen.
func newLogger(cfg *config.Config, toStderr bool, stderr io.Writer) (*logging.Logger, func(), error) {
	noop := func() {}
	if cfg.Logging.File == "" {
		if !toStderr {
			return logging.NullLogger, noop, nil
		}
		return logging.New(logging.Config{Level: cfg.LogLevel(), Output: stderr, Prefix: "gridedit"}), noop, nil
	}

	f, err := os.OpenFile(cfg.Logging.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	log := logging.New(logging.Config{Level: cfg.LogLevel(), Output: f, Prefix: "gridedit"})
	return log, func() { f.Close() }, nil
}

func runScenarios(paths []string, cfg *config.Config, log *logging.Logger, stdout, stderr io.Writer) int {
	runner := scenario.NewRunner(log, cfg.EditorOptions(nil)...)

	failed := 0
	for _, path := range paths {
		scenarios, err := scenario.LoadFile(path)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			failed++
			continue
		}
		for _, res := range runner.RunAll(scenarios) {
			if res.Passed() {
				fmt.Fprintf(stdout, "PASS %s (%s)\n", res.Scenario.Name, res.Scenario.Source)
				continue
			}
			failed++
			fmt.Fprintf(stdout, "FAIL %s (%s): %v\n", res.Scenario.Name, res.Scenario.Source, res.Err)
		}
	}

	if failed > 0 {
		return 1
	}
	return 0
}

func runEditor(file string, cfg *config.Config, log *logging.Logger) error {
	edOpts := cfg.EditorOptions(log)
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return err
		}
		edOpts = append(edOpts, engine.WithContent(string(data)))
	}
	ed := engine.New[int](cfg.Editor.RowCapacity, edOpts...)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create terminal: %w", err)
	}
	t, err := term.New(screen, ed, term.Options{
		RowNumbers:   cfg.Terminal.RowNumbers,
		StatusLine:   cfg.Terminal.StatusLine,
		ShowMetadata: cfg.Terminal.ShowMetadata,
		Logger:       log,
	})
	if err != nil {
		return err
	}
	if err := t.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	defer t.Shutdown()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info("editing %d rows, width %d", ed.RowCount(), ed.Width())
	if err := t.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
