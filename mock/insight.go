package mock

import (
	"context"

	"github.com/fwojciec/shopinsight"
)

var _ shopinsight.InsightExtractor = (*InsightExtractor)(nil)

// InsightExtractor is a mock implementation of shopinsight.InsightExtractor.
type InsightExtractor struct {
	ExtractBrandInsightsFn func(ctx context.Context, websiteURL string) (*shopinsight.BrandInsights, error)
}

func (e *InsightExtractor) ExtractBrandInsights(ctx context.Context, websiteURL string) (*shopinsight.BrandInsights, error) {
	return e.ExtractBrandInsightsFn(ctx, websiteURL)
}
