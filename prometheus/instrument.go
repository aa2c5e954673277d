package prometheus

import (
	"context"
	"time"

	"github.com/fwojciec/shopinsight"
)

var (
	_ shopinsight.Fetcher          = (*InstrumentedFetcher)(nil)
	_ shopinsight.Completer        = (*InstrumentedCompleter)(nil)
	_ shopinsight.InsightExtractor = (*InstrumentedInsightExtractor)(nil)
)

// InstrumentedFetcher records fetch counts, latency and bytes.
type InstrumentedFetcher struct {
	next    shopinsight.Fetcher
	metrics *Metrics
}

// NewInstrumentedFetcher wraps next with metrics.
func NewInstrumentedFetcher(next shopinsight.Fetcher, metrics *Metrics) *InstrumentedFetcher {
	return &InstrumentedFetcher{next: next, metrics: metrics}
}

func (f *InstrumentedFetcher) Fetch(ctx context.Context, url string) (string, error) {
	begin := time.Now()
	html, err := f.next.Fetch(ctx, url)
	f.metrics.FetchDuration.Observe(time.Since(begin).Seconds())
	f.metrics.FetchesTotal.WithLabelValues(fetchOutcome(err)).Inc()
	f.metrics.FetchedBytes.Add(float64(len(html)))
	return html, err
}

func (f *InstrumentedFetcher) Close() error {
	return f.next.Close()
}

// InstrumentedCompleter records completion counts and latency.
type InstrumentedCompleter struct {
	next    shopinsight.Completer
	metrics *Metrics
}

// NewInstrumentedCompleter wraps next with metrics.
func NewInstrumentedCompleter(next shopinsight.Completer, metrics *Metrics) *InstrumentedCompleter {
	return &InstrumentedCompleter{next: next, metrics: metrics}
}

func (c *InstrumentedCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	begin := time.Now()
	reply, err := c.next.Complete(ctx, prompt)
	c.metrics.CompletionDuration.Observe(time.Since(begin).Seconds())
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	c.metrics.CompletionsTotal.WithLabelValues(outcome).Inc()
	return reply, err
}

// InstrumentedInsightExtractor records extraction outcomes by error code.
type InstrumentedInsightExtractor struct {
	next    shopinsight.InsightExtractor
	metrics *Metrics
}

// NewInstrumentedInsightExtractor wraps next with metrics.
func NewInstrumentedInsightExtractor(next shopinsight.InsightExtractor, metrics *Metrics) *InstrumentedInsightExtractor {
	return &InstrumentedInsightExtractor{next: next, metrics: metrics}
}

func (e *InstrumentedInsightExtractor) ExtractBrandInsights(ctx context.Context, websiteURL string) (*shopinsight.BrandInsights, error) {
	begin := time.Now()
	insights, err := e.next.ExtractBrandInsights(ctx, websiteURL)
	e.metrics.ExtractionDuration.Observe(time.Since(begin).Seconds())
	e.metrics.ExtractionsTotal.WithLabelValues(shopinsight.ErrorCode(err)).Inc()
	if insights != nil {
		e.metrics.ProductsExtracted.Add(float64(len(insights.ProductCatalog) + len(insights.HeroProducts)))
	}
	return insights, err
}
