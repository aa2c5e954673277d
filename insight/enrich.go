package insight

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/fwojciec/shopinsight"
)

var (
	returnKeywords = []string{"return"}
	refundKeywords = []string{"refund"}
	aboutKeywords  = []string{"about", "our-story"}
)

// faqs discovers FAQ-like links on the homepage and extracts question and
// answer pairs from up to MaxFAQPages of them. Model failures are fatal;
// fetch failures skip the page.
func (p *Pipeline) faqs(ctx context.Context, base *url.URL, home shopinsight.Page) ([]shopinsight.FAQ, error) {
	links, err := p.Discoverer.DiscoverFAQLinks(ctx, home)
	if err != nil {
		return nil, err
	}

	urls := resolveAll(base, links)
	if len(urls) > p.maxFAQPages() {
		urls = urls[:p.maxFAQPages()]
	}

	faqs := []shopinsight.FAQ{}
	seen := make(map[string]bool)
	for _, page := range p.fetchPages(ctx, urls) {
		extracted, err := p.Discoverer.ExtractFAQs(ctx, page)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", page.URL, err)
		}
		for _, f := range extracted {
			key := strings.ToLower(f.Question)
			if seen[key] {
				continue
			}
			seen[key] = true
			faqs = append(faqs, f)
		}
	}
	return faqs, nil
}

// enrich fills the fields the core steps leave empty. Every fetch here is
// best-effort.
func (p *Pipeline) enrich(ctx context.Context, insights *shopinsight.BrandInsights, websiteURL, home string) {
	insights.BrandName = shopinsight.OptionalString(p.Scraper.BrandName(home))
	insights.ImportantLinks = p.Scraper.ImportantLinks(home, websiteURL)

	returnURL := p.Scraper.PolicyURL(home, websiteURL, returnKeywords...)
	refundURL := p.Scraper.PolicyURL(home, websiteURL, refundKeywords...)

	// Many stores publish one combined "returns & refunds" page.
	var returnText *string
	if returnURL != "" {
		returnText = p.policyText(ctx, returnURL)
		insights.ReturnPolicy = returnText
	}
	if refundURL != "" {
		if refundURL == returnURL {
			insights.RefundPolicy = returnText
		} else {
			insights.RefundPolicy = p.policyText(ctx, refundURL)
		}
	}

	if aboutURL := p.Scraper.PolicyURL(home, websiteURL, aboutKeywords...); aboutURL != "" {
		insights.BrandAbout = p.aboutText(ctx, aboutURL)
	}
}

func (p *Pipeline) aboutText(ctx context.Context, pageURL string) *string {
	html, ok := p.fetchSecondary(ctx, pageURL)
	if !ok {
		return nil
	}

	if p.ContentExtractor != nil {
		result, err := p.ContentExtractor.Extract(html)
		if err == nil && strings.TrimSpace(result.Text) != "" {
			return shopinsight.OptionalString(truncate(strings.TrimSpace(result.Text), p.maxPolicyChars()))
		}
		if err != nil {
			p.logger().Warn("content extraction failed", "url", pageURL, "err", err)
		}
	}
	return shopinsight.OptionalString(truncate(p.Scraper.PolicyText(html), p.maxPolicyChars()))
}
