package insight

import (
	"context"
	"net/url"

	"github.com/fwojciec/shopinsight"
	"golang.org/x/sync/errgroup"
)

// fetchPages fetches urls with bounded concurrency and returns the pages
// that loaded, in input order. Failures are logged and skipped.
func (p *Pipeline) fetchPages(ctx context.Context, urls []string) []shopinsight.Page {
	if len(urls) == 0 {
		return nil
	}

	slots := make([]*shopinsight.Page, len(urls))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency())
	for i, u := range urls {
		g.Go(func() error {
			if html, ok := p.fetchSecondary(gctx, u); ok {
				slots[i] = &shopinsight.Page{URL: u, HTML: html}
			}
			return nil
		})
	}
	_ = g.Wait()

	pages := make([]shopinsight.Page, 0, len(urls))
	for _, page := range slots {
		if page != nil {
			pages = append(pages, *page)
		}
	}
	return pages
}

// fetchSecondary fetches a non-homepage URL. It never fails the request:
// rate-limit and fetch errors are logged and reported as !ok.
func (p *Pipeline) fetchSecondary(ctx context.Context, pageURL string) (string, bool) {
	if p.RateLimiter != nil {
		host := pageURL
		if u, err := url.Parse(pageURL); err == nil {
			host = u.Host
		}
		if err := p.RateLimiter.Wait(ctx, host); err != nil {
			p.logger().Warn("skipping page", "url", pageURL, "err", err)
			return "", false
		}
	}

	html, err := p.Fetcher.Fetch(ctx, pageURL)
	if err != nil {
		p.logger().Warn("skipping page", "url", pageURL, "err", err)
		return "", false
	}
	return html, true
}
