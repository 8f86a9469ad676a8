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
	"github.com/fwojciec/margins"
	"github.com/fwojciec/margins/bloom"
	"github.com/fwojciec/margins/fs"
	"github.com/fwojciec/margins/goquery"
	"github.com/fwojciec/margins/htmltomarkdown"
	"github.com/fwojciec/margins/ingest"
	"github.com/fwojciec/margins/letters"
	marginsslog "github.com/fwojciec/margins/slog"
	"github.com/fwojciec/margins/sqlite"
	"github.com/fwojciec/margins/telegram"
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
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Service for end-to-end testing.
	ExportService margins.ExportService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
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
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("margins"),
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
		return fmt.Errorf("no command specified. Run 'margins --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps.Detector = goquery.NewDetector()
	deps.Converter = htmltomarkdown.NewConverter()

	// The parse and inspect commands work on local files and never touch
	// the archive.
	if cmd == "parse" || cmd == "inspect" {
		return kongCtx.Run(deps)
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set MARGINS_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.ExportService = sqlite.NewExportService(m.DB)
	deps.DB = m.DB
	deps.Exports = m.ExportService

	if cmd == "import" {
		maildir := cli.Import.Maildir
		if maildir == "" {
			maildir = os.Getenv("MARGINS_MAILDIR")
		}
		if maildir == "" {
			fmt.Fprintln(stderr, "Hint: Set MARGINS_MAILDIR or pass --maildir")
			return fmt.Errorf("no maildir configured")
		}

		var mailbox margins.Mailbox = letters.NewMailbox(maildir)

		var messenger margins.Messenger
		switch {
		case cli.Import.Send:
			messenger, err = telegramMessenger()
			if err != nil {
				return err
			}
		case cli.Import.Out != "":
			messenger = fs.NewReporter(cli.Import.Out)
		}

		if cli.Import.Verbose {
			logger := slog.New(slog.NewTextHandler(stderr, nil))
			mailbox = marginsslog.NewLoggingMailbox(mailbox, logger)
			if messenger != nil {
				messenger = marginsslog.NewLoggingMessenger(messenger, logger)
			}
		}

		seen := bloom.NewFilter(seenFilterSize, seenFilterFPRate)
		if err := warmSeenFilter(ctx, seen, m.ExportService); err != nil {
			return err
		}

		deps.Ingestor = &ingest.Ingestor{
			Mailbox:     mailbox,
			Exports:     m.ExportService,
			Messenger:   messenger,
			Detector:    deps.Detector,
			Seen:        seen,
			Concurrency: cli.Import.Concurrency,
		}
	}

	if cmd == "send" {
		deps.Messenger, err = telegramMessenger()
		if err != nil {
			return err
		}
	}

	return kongCtx.Run(deps)
}

// seenFilterSize is the expected number of distinct exports the bloom
// filter should hold without excessive false positives.
const (
	seenFilterSize   = 10000
	seenFilterFPRate = 0.01
)

// telegramMessenger builds a Messenger from the TELEGRAM_BOT_TOKEN and
// TELEGRAM_CHAT_ID environment variables.
func telegramMessenger() (margins.Messenger, error) {
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN not set. Create a bot with @BotFather to get a token")
	}

	chatID, err := strconv.ParseInt(os.Getenv("TELEGRAM_CHAT_ID"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("TELEGRAM_CHAT_ID must be a numeric chat ID: %w", err)
	}

	return telegram.NewMessenger(token, chatID)
}

// warmSeenFilter seeds the bloom filter with content hashes of exports
// already in the archive.
func warmSeenFilter(ctx context.Context, seen margins.SeenFilter, exports margins.ExportService) error {
	existing, err := exports.FindExports(ctx, margins.ExportFilter{})
	if err != nil {
		return fmt.Errorf("failed to load existing exports: %w", err)
	}
	for _, e := range existing {
		seen.Add(e.ContentHash)
	}
	return nil
}

func defaultDBPath() string {
	if path := os.Getenv("MARGINS_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "margins.db"
	}
	dir := filepath.Join(home, ".margins")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "margins.db")
}
