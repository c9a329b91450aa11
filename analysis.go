package poster

import (
	"context"
	"time"
)

// Analysis is a stored result of one successful pipeline run.
// The page content itself is not kept; only its hash and length.
type Analysis struct {
	ID            string    `json:"id"`
	URL           string    `json:"url"`
	Record        *Record   `json:"record"`
	ContentHash   string    `json:"contentHash"`
	ContentLength int       `json:"contentLength"`
	ContentTokens int       `json:"contentTokens,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Validate returns an error if the analysis contains invalid fields.
func (a *Analysis) Validate() error {
	if a.URL == "" {
		return Errorf(EINVALID, "analysis URL required")
	}
	if a.Record == nil {
		return Errorf(EINVALID, "analysis record required")
	}
	return nil
}

// AnalysisService represents a service for managing stored analyses.
type AnalysisService interface {
	// CreateAnalysis stores a new analysis and assigns its ID.
	CreateAnalysis(ctx context.Context, a *Analysis) error

	// FindAnalysisByID retrieves an analysis by ID.
	// Returns ENOTFOUND if the analysis does not exist.
	FindAnalysisByID(ctx context.Context, id string) (*Analysis, error)

	// FindAnalyses retrieves analyses matching the filter, newest first.
	FindAnalyses(ctx context.Context, filter AnalysisFilter) ([]*Analysis, error)
}

// AnalysisFilter represents a filter for FindAnalyses.
type AnalysisFilter struct {
	URL *string `json:"url"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
