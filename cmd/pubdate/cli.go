package main

import (
	"io"

	"github.com/fwojciec/pubdate"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	Extractor pubdate.DateExtractor
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log each extraction run to stderr"`

	Extract ExtractCmd `cmd:"" default:"withargs" help:"Extract published/updated dates from an HTML document"`
}

// ExtractCmd is the "extract" subcommand (also the default command).
type ExtractCmd struct {
	File string `arg:"" optional:"" type:"existingfile" help:"HTML file to read (defaults to stdin)"`
	URL  string `short:"u" help:"Article URL, used for URL date matching"`
	JSON bool   `help:"Emit JSON output"`
}
