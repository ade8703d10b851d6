package main

import (
	"context"
	"io"

	"github.com/ElektraInitiative/booktoc"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	// Src is the book source directory after config file and flag
	// resolution.
	Src string

	Builder booktoc.TreeBuilder
	Emitter booktoc.SummaryEmitter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  string `short:"c" help:"Path to the configuration file (default booktoc.toml)"`
	Verbose bool   `short:"v" help:"Log build details to stderr"`

	Gen   GenCmd   `cmd:"" help:"Build the chapter tree and write SUMMARY.md"`
	Check CheckCmd `cmd:"" help:"Build the chapter tree strictly without writing anything"`
	Print PrintCmd `cmd:"" help:"Build the chapter tree and print it"`
}

// buildOpts are the flags shared by all commands that build a tree. They
// override the configuration file; boolean flags can only enable an
// option, never disable one set in the file.
type buildOpts struct {
	Src           string `arg:"" optional:"" help:"Book source directory (overrides the config file)"`
	DeriveTitles  bool   `help:"Derive chapter titles from leading headings"`
	CreateMissing bool   `help:"Create stub index documents for directories that lack one"`
	IgnoreMissing bool   `help:"Tolerate directories without an index document"`
	IndexName     string `help:"Index document filename stem (e.g. README)"`
	Ext           string `help:"Document extension (e.g. .md)"`
}

// GenCmd is the "gen" subcommand.
type GenCmd struct {
	buildOpts
}

// CheckCmd is the "check" subcommand.
type CheckCmd struct {
	buildOpts
}

// PrintCmd is the "print" subcommand.
type PrintCmd struct {
	buildOpts
}
