package shopinsight

// Scraper extracts structured data from storefront HTML using fixed
// selector and pattern heuristics. Every method tolerates missing or
// malformed markup and returns empty results rather than failing.
type Scraper interface {
	// PrivacyPolicyURL returns the first anchor whose href mentions
	// "privacy", resolved against baseURL, or "" if there is none.
	PrivacyPolicyURL(html, baseURL string) string

	// PolicyURL is like PrivacyPolicyURL but matches any of the keywords.
	PolicyURL(html, baseURL string, keywords ...string) string

	// PolicyText returns the visible text of the page's primary content
	// region, one text block per line.
	PolicyText(html string) string

	// ContactDetails scans the visible text for emails and phone numbers.
	ContactDetails(html string) ContactDetail

	// SocialHandles returns deduplicated links to known social platforms.
	SocialHandles(html, baseURL string) []string

	// Products extracts product cards from a listing page.
	Products(html, baseURL string) []Product

	// HeroProducts extracts featured product cards from a homepage-style page.
	HeroProducts(html, baseURL string) []Product

	// AnchorHrefs returns the unique raw href values in document order.
	AnchorHrefs(html string) []string

	// BrandName guesses the store name from page metadata.
	BrandName(html string) string

	// ImportantLinks returns resolved links to common store information pages.
	ImportantLinks(html, baseURL string) []string
}
