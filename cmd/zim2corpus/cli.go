package main

import (
	"context"
	"io"

	"github.com/cybernic/zimtocorpus"
	"github.com/cybernic/zimtocorpus/convert"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Runs   zimtocorpus.RunService
	Batch  *convert.Batch
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Ledger string `help:"Path to the run ledger database (defaults to $ZIM2CORPUS_LEDGER or ~/.zim2corpus/ledger.db)"`

	Convert ConvertCmd `cmd:"" help:"Convert a directory of archives into corpus files"`
	Runs    RunsCmd    `cmd:"" help:"Inspect recorded conversion runs"`
}

// ConvertCmd is the "convert" subcommand.
type ConvertCmd struct {
	InputDir  string `short:"i" required:"" type:"existingdir" help:"Directory holding the input archives"`
	OutputDir string `short:"o" required:"" help:"Directory the corpus files are written to"`
	Processes int    `short:"P" default:"${processes_default}" help:"Number of archives converted in parallel"`
	LogLevel  string `short:"L" default:"${log_level_default}" enum:"debug,info,warn,error" help:"Log verbosity"`
	Format    string `default:"${format_default}" enum:"html,markdown" help:"Corpus record format"`
	FailFast  bool   `help:"Stop scheduling new archives after the first fatal failure"`
}

// RunsCmd groups the ledger inspection subcommands.
type RunsCmd struct {
	List RunsListCmd `cmd:"" help:"List recorded runs, most recent first"`
	Show RunsShowCmd `cmd:"" help:"Show one run and its per-archive outcomes"`
}

// RunsListCmd is the "runs list" subcommand.
type RunsListCmd struct {
	Limit int `default:"20" help:"Maximum number of runs to show"`
}

// RunsShowCmd is the "runs show" subcommand.
type RunsShowCmd struct {
	ID string `arg:"" help:"Run ID"`
}
