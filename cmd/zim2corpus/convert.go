package main

import (
	"fmt"
	"runtime"

	"github.com/cybernic/zimtocorpus"
	"github.com/cybernic/zimtocorpus/convert"
)

// Run executes the convert command.
func (c *ConvertCmd) Run(deps *Dependencies) error {
	if max := runtime.GOMAXPROCS(0); c.Processes < 1 || c.Processes > max {
		fmt.Fprintf(deps.Stderr, "error: processes must be between 1 and %d\n", max)
		return zimtocorpus.Errorf(zimtocorpus.EINVALID, "processes must be between 1 and %d", max)
	}

	res, err := deps.Batch.Run(deps.Ctx, c.InputDir, c.OutputDir)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", zimtocorpus.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Converted %d documents from %d files (%s).\n",
		res.Documents, res.Files, convert.FormatBytes(res.Bytes))
	if res.Truncated > 0 {
		fmt.Fprintf(deps.Stdout, "  %d truncated archives were converted up to the cut.\n", res.Truncated)
	}
	if res.Failed > 0 {
		fmt.Fprintf(deps.Stdout, "  %d files failed; see 'zim2corpus runs show %s'.\n", res.Failed, res.RunID)
		return zimtocorpus.Errorf(zimtocorpus.EINTERNAL, "%d of %d files failed", res.Failed, res.Files)
	}

	return nil
}
