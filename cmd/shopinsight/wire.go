package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fwojciec/shopinsight"
	"github.com/fwojciec/shopinsight/discover"
	"github.com/fwojciec/shopinsight/gemini"
	"github.com/fwojciec/shopinsight/goquery"
	sihttp "github.com/fwojciec/shopinsight/http"
	"github.com/fwojciec/shopinsight/insight"
	"github.com/fwojciec/shopinsight/openrouter"
	siprom "github.com/fwojciec/shopinsight/prometheus"
	"github.com/fwojciec/shopinsight/readability"
	sislog "github.com/fwojciec/shopinsight/slog"
	"github.com/fwojciec/shopinsight/trafilatura"
	"google.golang.org/genai"
)

// Wire builds the instrumented extraction pipeline from the CLI settings.
// The returned function releases the fetcher.
func (c *CLI) Wire(ctx context.Context, logger *slog.Logger, metrics *siprom.Metrics) (shopinsight.InsightExtractor, func() error, error) {
	completer, err := c.completer(ctx)
	if err != nil {
		return nil, nil, err
	}
	completer = siprom.NewInstrumentedCompleter(completer, metrics)
	completer = sislog.NewLoggingCompleter(completer, logger.With("component", "llm"))

	fetchOpts := []sihttp.Option{sihttp.WithTimeout(c.Timeout)}
	if c.UserAgent != "" {
		fetchOpts = append(fetchOpts, sihttp.WithUserAgent(c.UserAgent))
	}
	var fetcher shopinsight.Fetcher = sihttp.NewFetcher(fetchOpts...)
	fetcher = siprom.NewInstrumentedFetcher(fetcher, metrics)
	fetcher = sislog.NewLoggingFetcher(fetcher, logger.With("component", "fetcher"))

	scraper := goquery.NewScraper()
	discoverer := sislog.NewLoggingDiscoverer(
		discover.NewDiscoverer(completer, scraper),
		logger.With("component", "discoverer"),
	)

	pipeline := &insight.Pipeline{
		Fetcher:          fetcher,
		Scraper:          scraper,
		Discoverer:       discoverer,
		ContentExtractor: c.contentExtractor(),
		Logger:           logger.With("component", "pipeline"),
		Concurrency:      c.Concurrency,
		MaxPolicyChars:   c.MaxPolicyChars,
		MinConfidence:    c.MinConfidence,
		ExtractFAQs:      c.FAQs,
		Enrich:           c.Enrich,
	}
	if c.RPS > 0 {
		pipeline.RateLimiter = insight.NewDomainLimiter(c.RPS, 1)
	}

	var extractor shopinsight.InsightExtractor = pipeline
	extractor = siprom.NewInstrumentedInsightExtractor(extractor, metrics)
	extractor = sislog.NewLoggingInsightExtractor(extractor, logger)

	return extractor, fetcher.Close, nil
}

func (c *CLI) completer(ctx context.Context) (shopinsight.Completer, error) {
	switch c.Provider {
	case "gemini":
		if c.GeminiAPIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  c.GeminiAPIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		return gemini.NewCompleter(client, c.Model, gemini.WithTimeout(c.LLMTimeout)), nil
	default:
		if c.OpenRouterAPIKey == "" {
			return nil, fmt.Errorf("OPEN_ROUTER_API_KEY not set. Get a key at https://openrouter.ai/keys")
		}
		opts := []openrouter.Option{openrouter.WithTimeout(c.LLMTimeout)}
		if c.Model != "" {
			opts = append(opts, openrouter.WithModel(c.Model))
		}
		if c.LLMURL != "" {
			opts = append(opts, openrouter.WithBaseURL(c.LLMURL))
		}
		return openrouter.NewCompleter(c.OpenRouterAPIKey, opts...), nil
	}
}

func (c *CLI) contentExtractor() shopinsight.ContentExtractor {
	if c.AboutExtractor == "readability" {
		return readability.NewExtractor()
	}
	return trafilatura.NewExtractor()
}
