package mock

import "github.com/fwojciec/shopinsight"

var _ shopinsight.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor is a mock implementation of shopinsight.ContentExtractor.
type ContentExtractor struct {
	ExtractFn func(html string) (*shopinsight.ExtractResult, error)
}

func (e *ContentExtractor) Extract(html string) (*shopinsight.ExtractResult, error) {
	return e.ExtractFn(html)
}
