package main

import "fmt"

// Run executes the resolve command. Every reference is resolved; the capture
// cap only applies to images attached to a poster.
func (c *ResolveCmd) Run(deps *Dependencies) error {
	for _, ref := range c.Refs {
		fmt.Fprintln(deps.Stdout, deps.Images.Resolve(ref))
	}
	return nil
}
