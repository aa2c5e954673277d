// Package readability implements shopinsight.ContentExtractor with
// go-readability.
package readability

import (
	"strings"

	"github.com/fwojciec/shopinsight"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements shopinsight.ContentExtractor at compile time.
var _ shopinsight.ContentExtractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract the main text of a page.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the article title and its text content.
func (e *Extractor) Extract(rawHTML string) (*shopinsight.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, shopinsight.Errorf(shopinsight.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &shopinsight.ExtractResult{
		Title: article.Title,
		Text:  strings.TrimSpace(article.TextContent),
	}, nil
}
