package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ElektraInitiative/booktoc"
	"github.com/ElektraInitiative/booktoc/fs"
	"github.com/ElektraInitiative/booktoc/markdown"
	bslog "github.com/ElektraInitiative/booktoc/slog"
	"github.com/ElektraInitiative/booktoc/toml"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Configuration file path. Set before calling Run(). Overridden by
	// the --config flag.
	ConfigPath string
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		ConfigPath: defaultConfigPath(),
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("booktoc"),
		kong.Description("Generate a book's SUMMARY.md from its directory layout."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'booktoc --help' to see available commands")
	}
	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	// Load the configuration file, then let flags override it
	configPath := m.ConfigPath
	if cli.Config != "" {
		configPath = cli.Config
	}
	file, err := toml.Load(configPath)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", booktoc.ErrorMessage(err))
		return err
	}

	cfg := file.Config
	src := file.Src

	var opts buildOpts
	switch cmd {
	case "gen":
		opts = cli.Gen.buildOpts
	case "check":
		opts = cli.Check.buildOpts
	case "print":
		opts = cli.Print.buildOpts
	}
	if opts.Src != "" {
		src = opts.Src
	}
	if opts.DeriveTitles {
		cfg.DeriveTitleFromHeading = true
	}
	if opts.CreateMissing {
		cfg.CreateMissingIndex = true
	}
	if opts.IgnoreMissing {
		cfg.IgnoreMissingIndex = true
	}
	if opts.IndexName != "" {
		cfg.IndexBaseName = opts.IndexName
	}
	if opts.Ext != "" {
		cfg.Extension = toml.NormalizeExtension(opts.Ext)
	}

	// check must never write to the book
	if cmd == "check" {
		cfg.CreateMissingIndex = false
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "error: %s\n", booktoc.ErrorMessage(err))
		return err
	}

	// Wire core services into dependencies
	var builder booktoc.TreeBuilder = fs.NewBuilder(cfg)
	if cli.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		builder = bslog.NewLoggingBuilder(builder, logger)
	}

	deps.Src = src
	deps.Builder = builder
	deps.Emitter = markdown.NewEmitter(src)

	return kongCtx.Run(deps)
}

func defaultConfigPath() string {
	if path := os.Getenv("BOOKTOC_CONFIG"); path != "" {
		return path
	}
	return "booktoc.toml"
}
