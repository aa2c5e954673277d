// Package trafilatura implements shopinsight.ContentExtractor with
// go-trafilatura, which handles sparse storefront pages well thanks to its
// fallback extractors.
package trafilatura

import (
	"strings"

	"github.com/fwojciec/shopinsight"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements shopinsight.ContentExtractor at compile time.
var _ shopinsight.ContentExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract the main text of a page.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the page title and its main content as plain text.
func (e *Extractor) Extract(rawHTML string) (*shopinsight.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, shopinsight.Errorf(shopinsight.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
		ExcludeTables:  false,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	return &shopinsight.ExtractResult{
		Title: result.Metadata.Title,
		Text:  strings.TrimSpace(result.ContentText),
	}, nil
}
