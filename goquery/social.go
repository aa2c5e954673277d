package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// socialPlatform maps a registrable domain to a platform label.
type socialPlatform struct {
	Domain   string
	Platform string
}

// socialPlatforms is checked in order; the first domain match wins per link.
var socialPlatforms = []socialPlatform{
	{"instagram.com", "Instagram"},
	{"facebook.com", "Facebook"},
	{"tiktok.com", "TikTok"},
	{"youtube.com", "YouTube"},
	{"twitter.com", "Twitter"},
	{"x.com", "Twitter"},
	{"pinterest.com", "Pinterest"},
	{"linkedin.com", "LinkedIn"},
}

// SocialHandles returns links whose host is one of the known social
// platform domains or a subdomain of one. Results are deduplicated and
// keep document order.
func (s *Scraper) SocialHandles(html, baseURL string) []string {
	handles := []string{}
	doc := parse(html)
	if doc == nil {
		return handles
	}
	base := parseBase(baseURL)

	seen := make(map[string]bool)
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		resolved := resolveSocialURL(base, href)
		if resolved == "" || seen[resolved] {
			return
		}
		if socialPlatformFor(resolved) == "" {
			return
		}
		seen[resolved] = true
		handles = append(handles, resolved)
	})
	return handles
}

// resolveSocialURL resolves href, treating scheme-less hosts such as
// "instagram.com/brand" as https URLs rather than relative paths.
func resolveSocialURL(base *url.URL, href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}
	lower := strings.ToLower(href)
	if !strings.Contains(lower, "://") && !strings.HasPrefix(lower, "/") && !strings.HasPrefix(lower, "#") {
		for _, p := range socialPlatforms {
			if strings.HasPrefix(lower, p.Domain) || strings.HasPrefix(lower, "www."+p.Domain) {
				return resolveURL(nil, "https://"+href)
			}
		}
	}
	return resolveURL(base, href)
}

// socialPlatformFor returns the platform label for rawURL's host, or "".
func socialPlatformFor(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	host := strings.ToLower(u.Hostname())
	for _, p := range socialPlatforms {
		if host == p.Domain || strings.HasSuffix(host, "."+p.Domain) {
			return p.Platform
		}
	}
	return ""
}
