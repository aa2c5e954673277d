// Package goquery implements shopinsight.Scraper with CSS selectors and
// pattern heuristics tuned for common Shopify themes.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/shopinsight"
)

var _ shopinsight.Scraper = (*Scraper)(nil)

// Scraper is a stateless set of HTML extractors. The zero value is ready to use.
type Scraper struct{}

// NewScraper creates a new Scraper.
func NewScraper() *Scraper {
	return &Scraper{}
}

// parse builds a document from raw HTML. The HTML5 parser accepts any
// input, so a nil document only results from a reader failure.
func parse(html string) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}
	return doc
}

// parseBase parses the base URL used to resolve relative links.
// Returns nil if it cannot be parsed; only absolute hrefs resolve then.
func parseBase(baseURL string) *url.URL {
	base, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil
	}
	return base
}

// resolveURL resolves href against base and returns an absolute http(s) URL.
// Returns "" for unparseable hrefs and non-HTTP schemes (mailto:, tel:,
// javascript:, data:).
func resolveURL(base *url.URL, href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}

	resolved := ref
	if base != nil {
		resolved = base.ResolveReference(ref)
	}
	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return ""
	}
	if resolved.Host == "" {
		return ""
	}
	return resolved.String()
}

// text returns the selection's text with runs of whitespace collapsed.
func text(sel *goquery.Selection) string {
	return strings.Join(strings.Fields(sel.Text()), " ")
}
