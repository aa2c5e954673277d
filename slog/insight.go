package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/shopinsight"
)

// Ensure LoggingInsightExtractor implements shopinsight.InsightExtractor.
var _ shopinsight.InsightExtractor = (*LoggingInsightExtractor)(nil)

// LoggingInsightExtractor wraps an InsightExtractor and logs one summary
// record per extraction.
type LoggingInsightExtractor struct {
	next   shopinsight.InsightExtractor
	logger *slog.Logger
}

// NewLoggingInsightExtractor creates a new LoggingInsightExtractor.
func NewLoggingInsightExtractor(next shopinsight.InsightExtractor, logger *slog.Logger) *LoggingInsightExtractor {
	return &LoggingInsightExtractor{next: next, logger: logger}
}

// ExtractBrandInsights delegates to the wrapped extractor and logs the outcome.
func (e *LoggingInsightExtractor) ExtractBrandInsights(ctx context.Context, websiteURL string) (insights *shopinsight.BrandInsights, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"url", websiteURL,
			"duration", time.Since(begin),
		}
		if insights != nil {
			attrs = append(attrs,
				"products", len(insights.ProductCatalog),
				"heroes", len(insights.HeroProducts),
				"faqs", len(insights.FAQs),
				"socials", len(insights.SocialHandles),
				"privacy_policy", insights.PrivacyPolicy != nil,
			)
		}
		if err != nil {
			attrs = append(attrs, "code", shopinsight.ErrorCode(err), "err", err)
			e.logger.Error("brand insight extraction", attrs...)
			return
		}
		e.logger.Info("brand insight extraction", attrs...)
	}(time.Now())
	return e.next.ExtractBrandInsights(ctx, websiteURL)
}
