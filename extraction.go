package poster

import "context"

// ExtractionClient asks the generative model to fill the Record schema.
type ExtractionClient interface {
	// Extract sends one extraction request for url carrying content and
	// returns the model's raw text. Content may be empty.
	//
	// Failures are reported as EMISSINGCREDENTIAL, ETRANSPORT,
	// ERATELIMITED, EUNAVAILABLE or EEMPTYRESPONSE. There is no retry.
	Extract(ctx context.Context, url, content string) (string, error)
}

// Analyzer runs the whole pipeline for one URL.
type Analyzer interface {
	// Analyze retrieves the page, extracts and validates a Record.
	// It returns either a complete Record or an error, never both.
	Analyze(ctx context.Context, url string) (*Record, error)
}
