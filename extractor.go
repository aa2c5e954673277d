package shopinsight

// ExtractResult holds the main content extracted from an HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// Text is the main content as plain text with boilerplate
	// (nav, footer, sidebar) removed.
	Text string
}

// ContentExtractor extracts the main readable content from a page.
// It is used for free-form pages such as the brand "about" page.
type ContentExtractor interface {
	Extract(html string) (*ExtractResult, error)
}
