// Package discover implements shopinsight.Discoverer by prompting a
// chat-completion model with page context and parsing its constrained JSON
// replies. The model itself is hidden behind shopinsight.Completer.
package discover

import (
	"context"
	"fmt"

	"github.com/fwojciec/shopinsight"
)

// Prompt context limits, in characters of raw HTML.
const (
	DiscoveryHTMLLimit = 5000
	FAQHTMLLimit       = 6000
)

// Ensure Discoverer implements shopinsight.Discoverer at compile time.
var _ shopinsight.Discoverer = (*Discoverer)(nil)

// Discoverer turns page context into prompts and model replies into typed
// candidates. It does not retry: completion and parse failures are returned.
type Discoverer struct {
	completer shopinsight.Completer
	scraper   shopinsight.Scraper
}

// NewDiscoverer creates a Discoverer. The scraper supplies the anchor hrefs
// included in discovery prompts.
func NewDiscoverer(completer shopinsight.Completer, scraper shopinsight.Scraper) *Discoverer {
	return &Discoverer{completer: completer, scraper: scraper}
}

// DiscoverProductEndpoints asks the model for homepage hero products and
// likely product listing endpoints. URLs are returned as the model wrote
// them; callers resolve them against page.URL.
func (d *Discoverer) DiscoverProductEndpoints(ctx context.Context, page shopinsight.Page) (*shopinsight.EndpointDiscovery, error) {
	prompt := BuildEndpointPrompt(d.scraper.AnchorHrefs(page.HTML), page.HTML)

	content, err := d.completer.Complete(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("product endpoint discovery: %w", err)
	}

	discovery, err := ParseEndpointDiscovery(content)
	if err != nil {
		return nil, fmt.Errorf("product endpoint discovery: %w", err)
	}
	return discovery, nil
}

// DiscoverFAQLinks asks the model for links likely to lead to FAQ, help or
// customer service pages.
func (d *Discoverer) DiscoverFAQLinks(ctx context.Context, page shopinsight.Page) ([]string, error) {
	prompt := BuildFAQLinksPrompt(d.scraper.AnchorHrefs(page.HTML), page.HTML)

	content, err := d.completer.Complete(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("faq link discovery: %w", err)
	}

	links, err := ParseFAQLinks(content)
	if err != nil {
		return nil, fmt.Errorf("faq link discovery: %w", err)
	}
	return links, nil
}

// ExtractFAQs asks the model for the question/answer pairs on page.
func (d *Discoverer) ExtractFAQs(ctx context.Context, page shopinsight.Page) ([]shopinsight.FAQ, error) {
	prompt := BuildFAQPrompt(page.URL, page.HTML)

	content, err := d.completer.Complete(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("faq extraction: %w", err)
	}

	faqs, err := ParseFAQs(content)
	if err != nil {
		return nil, fmt.Errorf("faq extraction: %w", err)
	}
	return faqs, nil
}
