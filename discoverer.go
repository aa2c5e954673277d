package shopinsight

import "context"

// Page is the context handed to a Discoverer: the raw HTML and the URL it
// was fetched from.
type Page struct {
	URL  string
	HTML string
}

// HeroCandidate is a product the model saw directly on the homepage.
// URLs may be relative; callers resolve them against the page URL.
type HeroCandidate struct {
	Name       string `json:"name"`
	Price      string `json:"price"`
	ImageURL   string `json:"image_url"`
	ProductURL string `json:"product_url"`
}

// EndpointCandidate is a URL the model believes lists products.
type EndpointCandidate struct {
	URL         string `json:"url"`
	Description string `json:"description"`
	Confidence  int    `json:"confidence"`
}

// EndpointDiscovery is the combined hero-product and endpoint proposal for a page.
type EndpointDiscovery struct {
	HeroProducts      []HeroCandidate
	Endpoints         []EndpointCandidate
	Summary           string
	OverallConfidence int
}

// Discoverer proposes candidate URLs and structured data from raw page
// context using a language model. Failures are fatal to the caller:
// implementations do not retry or fall back.
type Discoverer interface {
	// DiscoverProductEndpoints proposes hero products and product listing endpoints.
	DiscoverProductEndpoints(ctx context.Context, page Page) (*EndpointDiscovery, error)

	// DiscoverFAQLinks proposes links likely to lead to FAQ or help pages.
	DiscoverFAQLinks(ctx context.Context, page Page) ([]string, error)

	// ExtractFAQs extracts question/answer pairs from an FAQ-like page.
	ExtractFAQs(ctx context.Context, page Page) ([]FAQ, error)
}

// Completer sends a single-message prompt to a chat-completion service and
// returns the raw text of the first reply.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
