package discover

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/goccy/go-json"
)

// BuildEndpointPrompt builds the combined hero-product and product-endpoint
// discovery prompt from the page's unique hrefs and its leading HTML.
func BuildEndpointPrompt(links []string, html string) string {
	var sb strings.Builder
	sb.WriteString("You are an expert web analyst for Shopify storefronts. ")
	sb.WriteString("Analyze the homepage HTML and anchor links below.\n\n")

	sb.WriteString("1. Hero products: products displayed directly on the homepage ")
	sb.WriteString("(featured products, new arrivals, best sellers). For each, give name, ")
	sb.WriteString("price as a string or null, image_url or null, and product_url or null. ")
	sb.WriteString("URLs may be absolute or relative. Use an empty list if there are none.\n")

	sb.WriteString("2. Product listing endpoints: links likely to list many products, such as ")
	sb.WriteString("/products.json, /products, /collections, /collections/<handle>, /shop, /store, ")
	sb.WriteString("/items, /categories, or links mentioning shop, products, collections, store, ")
	sb.WriteString("items, categories or all. For each, give url, a short description and an ")
	sb.WriteString("integer confidence from 0 to 100. Exclude single product pages, cart, checkout ")
	sb.WriteString("and account pages.\n")

	sb.WriteString("3. overall_confidence (integer 0-100) and a short analysis_summary.\n\n")

	sb.WriteString("Respond with a single line of JSON starting with { and ending with }, ")
	sb.WriteString("with no other text, in exactly this shape:\n")
	sb.WriteString(`{"hero_products":[{"name":"string","price":"string|null","image_url":"string|null","product_url":"string|null"}],`)
	sb.WriteString(`"potential_product_endpoints":[{"url":"string","description":"string","confidence":0}],`)
	sb.WriteString(`"analysis_summary":"string","overall_confidence":0}`)
	sb.WriteString("\n\n")

	writeLinks(&sb, links)
	sb.WriteString("\nHomepage HTML:\n```\n")
	sb.WriteString(Truncate(html, DiscoveryHTMLLimit))
	sb.WriteString("\n```\n")
	return sb.String()
}

// BuildFAQLinksPrompt builds the prompt asking for FAQ/help page links.
func BuildFAQLinksPrompt(links []string, html string) string {
	var sb strings.Builder
	sb.WriteString("You are a web analyst. The anchor hrefs and HTML below come from the homepage of a Shopify store.\n\n")
	sb.WriteString("Return the URLs (relative or absolute) most likely to lead to a page with FAQs, ")
	sb.WriteString("a Help Center, Customer Service or similar information. Use link text such as ")
	sb.WriteString("'FAQs', 'Help' or 'Support' and the surrounding HTML as clues.\n\n")
	sb.WriteString("Respond with a single line of JSON starting with { and ending with }, with no other text:\n")
	sb.WriteString(`{"faq_links":["/pages/faqs","/pages/help"]}`)
	sb.WriteString("\n\n")

	writeLinks(&sb, links)
	sb.WriteString("\nHomepage HTML:\n")
	sb.WriteString(Truncate(html, DiscoveryHTMLLimit))
	sb.WriteString("\n")
	return sb.String()
}

// BuildFAQPrompt builds the prompt asking for question/answer pairs on an
// FAQ-like page.
func BuildFAQPrompt(pageURL, html string) string {
	var sb strings.Builder
	sb.WriteString("You are an expert web extractor.\n\n")
	sb.WriteString("The HTML below comes from a Shopify store page that likely contains FAQs or Help Center content. ")
	sb.WriteString("Extract every question and answer pair. Each object has:\n")
	sb.WriteString("- \"question\": the FAQ question\n")
	sb.WriteString("- \"answer\": the full answer text\n\n")
	fmt.Fprintf(&sb, "HTML content from %s:\n", pageURL)
	sb.WriteString(Truncate(html, FAQHTMLLimit))
	sb.WriteString("\n\nRespond ONLY with a JSON array in this format:\n")
	sb.WriteString(`[{"question":"...","answer":"..."}]`)
	sb.WriteString("\n")
	return sb.String()
}

func writeLinks(sb *strings.Builder, links []string) {
	if links == nil {
		links = []string{}
	}
	encoded, err := json.Marshal(links)
	if err != nil {
		encoded = []byte("[]")
	}
	sb.WriteString("Links:\n")
	sb.Write(encoded)
	sb.WriteString("\n")
}

// Truncate returns at most limit characters of s, never splitting a rune.
func Truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	n := 0
	for i := range s {
		if n == limit {
			return s[:i]
		}
		n++
	}
	return s
}
