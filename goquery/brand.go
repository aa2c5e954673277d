package goquery

import "strings"

// titleSeparators split "Store Name | Tagline" style titles.
var titleSeparators = []string{" | ", " – ", " — ", " - ", " : "}

// BrandName guesses the store name from og:site_name, then the
// application-name meta tag, then the leading segment of the title.
func (s *Scraper) BrandName(html string) string {
	doc := parse(html)
	if doc == nil {
		return ""
	}

	for _, selector := range []string{`meta[property="og:site_name"]`, `meta[name="application-name"]`} {
		if content, ok := doc.Find(selector).First().Attr("content"); ok {
			if name := strings.TrimSpace(content); name != "" {
				return name
			}
		}
	}

	title := text(doc.Find("title").First())
	for _, sep := range titleSeparators {
		if i := strings.Index(title, sep); i > 0 {
			title = title[:i]
		}
	}
	return strings.TrimSpace(title)
}
