package main

import "github.com/fwojciec/poster"

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	a, err := deps.History.FindAnalysisByID(deps.Ctx, c.ID)
	if poster.ErrorCode(err) == poster.ENOTFOUND {
		return poster.Errorf(poster.ENOTFOUND, "analysis %q not found. Use 'poster history' to see stored analyses.", c.ID)
	} else if err != nil {
		return err
	}

	view := newPosterView(a.URL, a.Record, deps.Images)
	view.ID = a.ID
	return writeJSON(deps.Stdout, view)
}
