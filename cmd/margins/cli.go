package main

import (
	"context"
	"io"

	"github.com/fwojciec/margins"
	"github.com/fwojciec/margins/ingest"
	"github.com/fwojciec/margins/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	DB        *sqlite.DB
	Exports   margins.ExportService
	Detector  margins.TemplateDetector
	Converter margins.Converter
	Ingestor  *ingest.Ingestor
	Messenger margins.Messenger
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Parse   ParseCmd   `cmd:"" help:"Parse an export file and print the markdown report"`
	Inspect InspectCmd `cmd:"" help:"Show template and structure details for an export file"`
	Import  ImportCmd  `cmd:"" help:"Import unread export emails from the maildir"`
	List    ListCmd    `cmd:"" help:"List archived exports"`
	Show    ShowCmd    `cmd:"" help:"Print an archived export"`
	Delete  DeleteCmd  `cmd:"" help:"Delete an archived export"`
	Send    SendCmd    `cmd:"" help:"Re-deliver an archived export via Telegram"`
}

// ParseCmd is the "parse" subcommand.
type ParseCmd struct {
	File string `arg:"" help:"Path to an export HTML file"`
	Raw  bool   `help:"Convert the whole document to markdown instead of extracting highlights"`
}

// InspectCmd is the "inspect" subcommand.
type InspectCmd struct {
	File string `arg:"" help:"Path to an export HTML file"`
}

// ImportCmd is the "import" subcommand.
type ImportCmd struct {
	Maildir     string `help:"Directory with .eml export messages (default: MARGINS_MAILDIR)"`
	Send        bool   `help:"Deliver each report via Telegram"`
	Out         string `help:"Write each report to this directory"`
	Verbose     bool   `short:"v" help:"Log pipeline activity"`
	Concurrency int    `short:"c" default:"4" help:"Concurrent message limit"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Limit  int `help:"Maximum number of exports to list"`
	Offset int `help:"Number of exports to skip"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID   string `arg:"" help:"Export ID"`
	Atom bool   `help:"Render as an Atom feed instead of markdown"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Export ID"`
	Force bool   `help:"Confirm deletion"`
}

// SendCmd is the "send" subcommand.
type SendCmd struct {
	ID string `arg:"" help:"Export ID"`
}
