package main

import "github.com/fwojciec/poster"

// Run executes the split command.
func (c *SplitCmd) Run(deps *Dependencies) error {
	return writeJSON(deps.Stdout, poster.SplitTitle(c.Title))
}
