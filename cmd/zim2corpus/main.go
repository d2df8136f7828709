package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/alecthomas/kong"
	"github.com/cybernic/zimtocorpus"
	"github.com/cybernic/zimtocorpus/bluemonday"
	"github.com/cybernic/zimtocorpus/convert"
	"github.com/cybernic/zimtocorpus/goquery"
	"github.com/cybernic/zimtocorpus/htmltomarkdown"
	"github.com/cybernic/zimtocorpus/jsonl"
	zcslog "github.com/cybernic/zimtocorpus/slog"
	"github.com/cybernic/zimtocorpus/sqlite"
	"github.com/cybernic/zimtocorpus/zim"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Ledger database path. Set before calling Run().
	LedgerPath string

	// Config file path consulted for flag defaults.
	ConfigPath string

	// SQLite database backing the run ledger.
	DB *sqlite.DB

	// Run ledger service for end-to-end testing.
	Runs zimtocorpus.RunService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		ConfigPath: defaultConfigPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Config file values become flag defaults; explicit flags win.
	cfg, err := loadConfig(m.ConfigPath)
	if err != nil {
		return err
	}
	if m.LedgerPath == "" {
		m.LedgerPath = cfg.ledgerOrDefault()
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("zim2corpus"),
		kong.Description("Convert archives of encyclopedia HTML dumps into gzip'd JSON-lines corpus files"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
		kong.Vars{
			"processes_default": strconv.Itoa(cfg.processesOrDefault()),
			"log_level_default": cfg.logLevelOrDefault(),
			"format_default":    cfg.formatOrDefault(),
		},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'zim2corpus --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	if cli.Ledger != "" {
		m.LedgerPath = cli.Ledger
	}

	// Open the run ledger
	m.DB = sqlite.NewDB(m.LedgerPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set ZIM2CORPUS_LEDGER to use a different ledger path\n")
		return fmt.Errorf("failed to open ledger at %q: %w", m.LedgerPath, err)
	}
	defer m.Close()

	m.Runs = sqlite.NewRunService(m.DB)
	deps.Runs = m.Runs

	// Wire the conversion pipeline only when it is needed. The parsed
	// command is authoritative; args[0] may be a flag.
	if kongCtx.Command() == "convert" {
		logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
			Level: logLevel(cli.Convert.LogLevel),
		}))

		var renderer zimtocorpus.Renderer = zimtocorpus.HTMLRenderer{}
		if cli.Convert.Format == "markdown" {
			renderer = htmltomarkdown.NewRenderer()
		}

		worker := &convert.Worker{
			Dumps:    zcslog.NewLoggingOpener(zim.Opener{}, logger),
			Parser:   zcslog.NewLoggingParser(goquery.NewParser(bluemonday.NewSanitizer()), logger),
			Renderer: renderer,
			Corpus:   jsonl.Factory{},
			Logger:   logger,
		}
		deps.Batch = &convert.Batch{
			Worker:    worker,
			Processes: cli.Convert.Processes,
			FailFast:  cli.Convert.FailFast,
			Runs:      m.Runs,
			Logger:    logger,
		}
	}

	return kongCtx.Run(deps)
}

// logLevel maps the --log-level flag to a slog level.
func logLevel(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func defaultLedgerPath() string {
	if path := os.Getenv("ZIM2CORPUS_LEDGER"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "zim2corpus.db"
	}
	dir := filepath.Join(home, ".zim2corpus")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "ledger.db")
}

func defaultConfigPath() string {
	if path := os.Getenv("ZIM2CORPUS_CONFIG"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".zim2corpus", "config.yaml")
}
