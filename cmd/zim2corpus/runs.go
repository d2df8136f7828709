package main

import (
	"fmt"
	"time"

	"github.com/cybernic/zimtocorpus"
)

// Run executes the runs list command.
func (c *RunsListCmd) Run(deps *Dependencies) error {
	runs, n, err := deps.Runs.FindRuns(deps.Ctx, zimtocorpus.RunFilter{Limit: c.Limit})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", zimtocorpus.ErrorMessage(err))
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(deps.Stdout, "No runs recorded. Use 'zim2corpus convert' to start one.")
		return nil
	}

	for _, run := range runs {
		fmt.Fprintf(deps.Stdout, "%s  %s  files=%d documents=%d failed=%d truncated=%d\n",
			run.ID, run.StartedAt.Format(time.RFC3339),
			run.Files, run.Documents, run.Failed, run.Truncated)
	}
	if n > len(runs) {
		fmt.Fprintf(deps.Stdout, "(%d of %d runs shown)\n", len(runs), n)
	}

	return nil
}

// Run executes the runs show command.
func (c *RunsShowCmd) Run(deps *Dependencies) error {
	runs, _, err := deps.Runs.FindRuns(deps.Ctx, zimtocorpus.RunFilter{ID: &c.ID})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", zimtocorpus.ErrorMessage(err))
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintf(deps.Stderr, "error: run %q not found. Use 'zim2corpus runs list' to see recorded runs.\n", c.ID)
		return zimtocorpus.Errorf(zimtocorpus.ENOTFOUND, "run %q not found", c.ID)
	}

	run := runs[0]
	fmt.Fprintf(deps.Stdout, "Run %s\n", run.ID)
	fmt.Fprintf(deps.Stdout, "  input:     %s\n", run.InputDir)
	fmt.Fprintf(deps.Stdout, "  output:    %s\n", run.OutputDir)
	fmt.Fprintf(deps.Stdout, "  processes: %d\n", run.Processes)
	fmt.Fprintf(deps.Stdout, "  started:   %s\n", run.StartedAt.Format(time.RFC3339))
	if run.FinishedAt != nil {
		fmt.Fprintf(deps.Stdout, "  finished:  %s\n", run.FinishedAt.Format(time.RFC3339))
	}
	fmt.Fprintf(deps.Stdout, "  files=%d documents=%d failed=%d truncated=%d\n",
		run.Files, run.Documents, run.Failed, run.Truncated)

	files, err := deps.Runs.FindRunFiles(deps.Ctx, run.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", zimtocorpus.ErrorMessage(err))
		return err
	}

	for _, file := range files {
		fmt.Fprintf(deps.Stdout, "  %-9s  %s  converted=%d", file.Status, file.Input, file.Converted)
		if file.Detail != "" {
			fmt.Fprintf(deps.Stdout, "  (%s)", file.Detail)
		}
		fmt.Fprintln(deps.Stdout)
	}

	return nil
}
