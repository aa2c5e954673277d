// Package insight orchestrates brand-insight extraction for a storefront.
// It coordinates the homepage fetch, heuristic scraping, model-assisted
// discovery of product pages, and the per-candidate fetch loops.
package insight

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/shopinsight"
)

// Defaults applied when the corresponding Pipeline field is zero.
const (
	DefaultConcurrency    = 4
	DefaultMaxPolicyChars = 20000
	DefaultMaxFAQPages    = 3
)

// Ensure Pipeline implements shopinsight.InsightExtractor at compile time.
var _ shopinsight.InsightExtractor = (*Pipeline)(nil)

// Pipeline runs the extraction steps for one storefront per call. It holds
// no per-request state and is safe for concurrent use.
type Pipeline struct {
	Fetcher    shopinsight.Fetcher
	Scraper    shopinsight.Scraper
	Discoverer shopinsight.Discoverer

	// ContentExtractor produces the brand about text. Optional; without it
	// the about page body falls back to Scraper.PolicyText.
	ContentExtractor shopinsight.ContentExtractor

	// RateLimiter, when set, is waited on per host before each secondary
	// fetch.
	RateLimiter shopinsight.DomainLimiter

	Logger *slog.Logger

	// Concurrency bounds parallel candidate fetches. Result order always
	// follows discovery order.
	Concurrency int

	// MaxPolicyChars caps each policy text, in characters. Negative
	// disables the cap.
	MaxPolicyChars int

	// MinConfidence skips endpoint candidates scored below it. Zero
	// attempts every candidate.
	MinConfidence int

	// ExtractFAQs enables model-driven FAQ discovery and extraction.
	ExtractFAQs bool
	MaxFAQPages int

	// Enrich fills brand name, return/refund policies, brand about and
	// important links from the homepage and linked pages.
	Enrich bool
}

// ExtractBrandInsights fetches websiteURL and assembles its insights.
//
// The homepage fetch and every model call are fatal. Secondary page fetches
// are best-effort: failures are logged and skipped.
func (p *Pipeline) ExtractBrandInsights(ctx context.Context, websiteURL string) (*shopinsight.BrandInsights, error) {
	base, err := url.Parse(websiteURL)
	if err != nil || base.Host == "" || (base.Scheme != "http" && base.Scheme != "https") {
		return nil, shopinsight.Errorf(shopinsight.EINVALID, "invalid website URL %q", websiteURL)
	}

	home, err := p.Fetcher.Fetch(ctx, websiteURL)
	if err != nil {
		if shopinsight.ErrorCode(err) == shopinsight.EUNREACHABLE {
			p.logger().Info("homepage unreachable", "url", websiteURL, "err", err)
			return nil, shopinsight.Errorf(shopinsight.EUNREACHABLE, "website not reachable")
		}
		return nil, fmt.Errorf("fetch homepage: %w", err)
	}

	insights := shopinsight.NewBrandInsights()

	if privacyURL := p.Scraper.PrivacyPolicyURL(home, websiteURL); privacyURL != "" {
		insights.PrivacyPolicy = p.policyText(ctx, privacyURL)
	}

	insights.SocialHandles = p.Scraper.SocialHandles(home, websiteURL)
	insights.ContactDetails = append(insights.ContactDetails, p.Scraper.ContactDetails(home))

	discovery, err := p.Discoverer.DiscoverProductEndpoints(ctx, shopinsight.Page{URL: websiteURL, HTML: home})
	if err != nil {
		return nil, err
	}

	endpoints := make([]string, 0, len(discovery.Endpoints))
	for _, e := range discovery.Endpoints {
		if p.MinConfidence > 0 && e.Confidence < p.MinConfidence {
			p.logger().Debug("skipping low-confidence endpoint", "url", e.URL, "confidence", e.Confidence)
			continue
		}
		endpoints = append(endpoints, e.URL)
	}
	for _, page := range p.fetchPages(ctx, resolveAll(base, endpoints)) {
		insights.ProductCatalog = append(insights.ProductCatalog, p.Scraper.Products(page.HTML, page.URL)...)
	}

	heroLinks := make([]string, 0, len(discovery.HeroProducts))
	for _, h := range discovery.HeroProducts {
		heroLinks = append(heroLinks, h.ProductURL)
	}
	for _, page := range p.fetchPages(ctx, resolveAll(base, heroLinks)) {
		insights.HeroProducts = append(insights.HeroProducts, p.Scraper.HeroProducts(page.HTML, page.URL)...)
	}

	if p.ExtractFAQs {
		faqs, err := p.faqs(ctx, base, shopinsight.Page{URL: websiteURL, HTML: home})
		if err != nil {
			return nil, err
		}
		insights.FAQs = append(insights.FAQs, faqs...)
	}

	if p.Enrich {
		p.enrich(ctx, insights, websiteURL, home)
	}

	return insights, nil
}

// policyText fetches a policy page and returns its capped text, or nil if
// the page could not be loaded or has no text.
func (p *Pipeline) policyText(ctx context.Context, pageURL string) *string {
	html, ok := p.fetchSecondary(ctx, pageURL)
	if !ok {
		return nil
	}
	return shopinsight.OptionalString(truncate(p.Scraper.PolicyText(html), p.maxPolicyChars()))
}

func (p *Pipeline) logger() *slog.Logger {
	if p.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return p.Logger
}

func (p *Pipeline) concurrency() int {
	if p.Concurrency <= 0 {
		return DefaultConcurrency
	}
	return p.Concurrency
}

func (p *Pipeline) maxPolicyChars() int {
	if p.MaxPolicyChars == 0 {
		return DefaultMaxPolicyChars
	}
	return p.MaxPolicyChars
}

func (p *Pipeline) maxFAQPages() int {
	if p.MaxFAQPages <= 0 {
		return DefaultMaxFAQPages
	}
	return p.MaxFAQPages
}

// resolveAll resolves refs against base and drops empty, unresolvable and
// non-http results. Duplicates are removed by exact string, keeping the
// first occurrence.
func resolveAll(base *url.URL, refs []string) []string {
	out := make([]string, 0, len(refs))
	seen := make(map[string]bool, len(refs))
	for _, ref := range refs {
		resolved := resolve(base, ref)
		if resolved == "" || seen[resolved] {
			continue
		}
		seen[resolved] = true
		out = append(out, resolved)
	}
	return out
}

func resolve(base *url.URL, ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}
	u, err := base.Parse(ref)
	if err != nil {
		return ""
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return ""
	}
	return u.String()
}

// truncate returns at most limit characters of s. A negative limit
// disables truncation.
func truncate(s string, limit int) string {
	if limit < 0 || utf8.RuneCountInString(s) <= limit {
		return s
	}
	n := 0
	for i := range s {
		if n == limit {
			return strings.TrimSpace(s[:i])
		}
		n++
	}
	return s
}
