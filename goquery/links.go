package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// importantLinkKeywords mark links to store information pages.
var importantLinkKeywords = []string{
	"about",
	"contact",
	"faq",
	"help",
	"shipping",
	"track",
	"return",
	"refund",
	"privacy",
	"terms",
	"blog",
	"size-chart",
	"warranty",
}

// AnchorHrefs returns the unique, trimmed href values of all anchors in
// document order. Hrefs are returned raw, without resolution.
func (s *Scraper) AnchorHrefs(html string) []string {
	hrefs := []string{}
	doc := parse(html)
	if doc == nil {
		return hrefs
	}

	seen := make(map[string]bool)
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		href = strings.TrimSpace(href)
		if href == "" || seen[href] {
			return
		}
		seen[href] = true
		hrefs = append(hrefs, href)
	})
	return hrefs
}

// ImportantLinks returns resolved links whose href or anchor text mentions
// a store information keyword (about, contact, shipping, returns, ...).
func (s *Scraper) ImportantLinks(html, baseURL string) []string {
	links := []string{}
	doc := parse(html)
	if doc == nil {
		return links
	}
	base := parseBase(baseURL)

	seen := make(map[string]bool)
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if !containsAny(strings.ToLower(href+" "+text(sel)), importantLinkKeywords) {
			return
		}
		resolved := resolveURL(base, href)
		if resolved == "" || seen[resolved] {
			return
		}
		seen[resolved] = true
		links = append(links, resolved)
	})
	return links
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
