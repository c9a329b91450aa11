package mock

import (
	"context"

	"github.com/fwojciec/poster"
)

var _ poster.AnalysisService = (*AnalysisService)(nil)

// AnalysisService is a mock implementation of poster.AnalysisService.
type AnalysisService struct {
	CreateAnalysisFn   func(ctx context.Context, a *poster.Analysis) error
	FindAnalysisByIDFn func(ctx context.Context, id string) (*poster.Analysis, error)
	FindAnalysesFn     func(ctx context.Context, filter poster.AnalysisFilter) ([]*poster.Analysis, error)
}

func (s *AnalysisService) CreateAnalysis(ctx context.Context, a *poster.Analysis) error {
	return s.CreateAnalysisFn(ctx, a)
}

func (s *AnalysisService) FindAnalysisByID(ctx context.Context, id string) (*poster.Analysis, error) {
	return s.FindAnalysisByIDFn(ctx, id)
}

func (s *AnalysisService) FindAnalyses(ctx context.Context, filter poster.AnalysisFilter) ([]*poster.Analysis, error) {
	return s.FindAnalysesFn(ctx, filter)
}
