package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/shopinsight"
)

// Ensure LoggingDiscoverer implements shopinsight.Discoverer.
var _ shopinsight.Discoverer = (*LoggingDiscoverer)(nil)

// LoggingDiscoverer wraps a Discoverer and logs what each call found.
type LoggingDiscoverer struct {
	next   shopinsight.Discoverer
	logger *slog.Logger
}

// NewLoggingDiscoverer creates a new LoggingDiscoverer.
func NewLoggingDiscoverer(next shopinsight.Discoverer, logger *slog.Logger) *LoggingDiscoverer {
	return &LoggingDiscoverer{next: next, logger: logger}
}

// DiscoverProductEndpoints delegates to the wrapped discoverer and logs
// candidate counts and the model's own confidence.
func (d *LoggingDiscoverer) DiscoverProductEndpoints(ctx context.Context, page shopinsight.Page) (discovery *shopinsight.EndpointDiscovery, err error) {
	defer func(begin time.Time) {
		var endpoints, heroes, confidence int
		if discovery != nil {
			endpoints = len(discovery.Endpoints)
			heroes = len(discovery.HeroProducts)
			confidence = discovery.OverallConfidence
		}
		d.logger.Info("product endpoint discovery",
			"url", page.URL,
			"endpoints", endpoints,
			"heroes", heroes,
			"confidence", confidence,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return d.next.DiscoverProductEndpoints(ctx, page)
}

// DiscoverFAQLinks delegates to the wrapped discoverer and logs the operation.
func (d *LoggingDiscoverer) DiscoverFAQLinks(ctx context.Context, page shopinsight.Page) (links []string, err error) {
	defer func(begin time.Time) {
		d.logger.Info("faq link discovery",
			"url", page.URL,
			"count", len(links),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return d.next.DiscoverFAQLinks(ctx, page)
}

// ExtractFAQs delegates to the wrapped discoverer and logs the operation.
func (d *LoggingDiscoverer) ExtractFAQs(ctx context.Context, page shopinsight.Page) (faqs []shopinsight.FAQ, err error) {
	defer func(begin time.Time) {
		d.logger.Info("faq extraction",
			"url", page.URL,
			"count", len(faqs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return d.next.ExtractFAQs(ctx, page)
}
