package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// privacyKeywords identify privacy policy links by href.
var privacyKeywords = []string{"privacy", "privacy-policy"}

// PrivacyPolicyURL returns the first anchor whose href contains "privacy"
// (case-insensitive), resolved against baseURL. Anchors that do not resolve
// to an http(s) URL, such as mailto:privacy@..., are skipped.
func (s *Scraper) PrivacyPolicyURL(html, baseURL string) string {
	return s.PolicyURL(html, baseURL, privacyKeywords...)
}

// PolicyURL returns the first anchor whose lowercased href contains any of
// the keywords, resolved against baseURL, or "" if none match.
func (s *Scraper) PolicyURL(html, baseURL string, keywords ...string) string {
	doc := parse(html)
	if doc == nil || len(keywords) == 0 {
		return ""
	}
	base := parseBase(baseURL)

	var found string
	doc.Find("a[href]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		href, _ := sel.Attr("href")
		lower := strings.ToLower(href)
		for _, keyword := range keywords {
			if !strings.Contains(lower, keyword) {
				continue
			}
			if resolved := resolveURL(base, href); resolved != "" {
				found = resolved
				return false
			}
			break
		}
		return true
	})
	return found
}

// PolicyText returns the visible text of the page's primary content region:
// the first main element, else body, else the whole document. Text blocks
// are joined with newlines.
func (s *Scraper) PolicyText(html string) string {
	doc := parse(html)
	if doc == nil {
		return ""
	}

	region := doc.Find("main").First()
	if region.Length() == 0 {
		region = doc.Find("body").First()
	}
	if region.Length() == 0 {
		region = doc.Selection
	}
	return visibleText(region.Nodes, "\n")
}
