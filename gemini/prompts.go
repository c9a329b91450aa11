package gemini

import _ "embed"

// Instructions is the system instruction sent with every extraction request.
// The heuristics it carries (price hunting, icon skipping) are kept here as
// data so they can change without touching the pipeline.
//
//go:embed prompts/instructions.txt
var Instructions string

// DegradedDirective is added to the user prompt when no page content could
// be retrieved.
//
//go:embed prompts/degraded.txt
var DegradedDirective string
