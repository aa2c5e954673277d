package shopinsight

import "context"

// Fetcher retrieves raw HTML from URLs.
// No JavaScript is executed; the body is returned exactly as served.
type Fetcher interface {
	// Fetch issues a GET request and returns the response body.
	// Non-2xx responses return an EUNREACHABLE error.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}
