package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pubdate"
	"github.com/fwojciec/pubdate/dateparse"
	"github.com/fwojciec/pubdate/extract"
	pubslog "github.com/fwojciec/pubdate/slog"
)

func main() {
	m := NewMain()

	if err := m.Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Extractor overrides the default pipeline. Set before calling Run();
	// used for end-to-end testing.
	Extractor pubdate.DateExtractor
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pubdate"),
		kong.Description("Extract published and updated dates from HTML documents."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) > 0 && (args[0] == "help" || args[0] == "--help" || args[0] == "-h") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	extractor := m.Extractor
	if extractor == nil {
		pipeline := extract.NewExtractor(dateparse.NewParser(), pubdate.StrictDateMatcher{}, pubdate.DefaultConfig())
		extractor = pipeline
		if cli.Verbose {
			logger := slog.New(slog.NewTextHandler(stderr, nil))
			extractor = pubslog.NewLoggingExtractor(pipeline, logger)
		}
	}

	deps := &Dependencies{
		Stdin:     stdin,
		Stdout:    stdout,
		Stderr:    stderr,
		Extractor: extractor,
	}

	return kongCtx.Run(deps)
}
