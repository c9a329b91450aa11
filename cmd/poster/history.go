package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/poster"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	filter := poster.AnalysisFilter{Limit: c.Limit}
	if c.URL != "" {
		filter.URL = &c.URL
	}

	analyses, err := deps.History.FindAnalyses(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", poster.ErrorMessage(err))
		return err
	}

	if len(analyses) == 0 {
		fmt.Fprintln(deps.Stdout, "No analyses found. Use 'poster --save analyze' to record some.")
		return nil
	}

	for _, a := range analyses {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s\n",
			a.ID, a.CreatedAt.Local().Format(time.DateTime), a.Record.Name, a.URL)
	}

	return nil
}
