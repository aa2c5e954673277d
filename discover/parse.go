package discover

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/fwojciec/shopinsight"
	"github.com/goccy/go-json"
)

// StripCodeFence removes surrounding whitespace and an optional ```json
// (or bare ```) fence that models often wrap around JSON replies.
func StripCodeFence(content string) string {
	s := strings.TrimSpace(content)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimSpace(strings.TrimPrefix(s, "```json"))
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimSpace(strings.TrimPrefix(s, "```"))
	}
	if strings.HasSuffix(s, "```") {
		s = strings.TrimSpace(strings.TrimSuffix(s, "```"))
	}
	return s
}

func decode(content string, v any) error {
	if err := json.Unmarshal([]byte(StripCodeFence(content)), v); err != nil {
		return shopinsight.Errorf(shopinsight.EINTERNAL, "unparsable model response: %v", err)
	}
	return nil
}

// decodeObject is decode for replies that must be a single JSON object.
func decodeObject(content string, v any) error {
	s := StripCodeFence(content)
	if !strings.HasPrefix(s, "{") {
		return shopinsight.Errorf(shopinsight.EINTERNAL, "model response is not a JSON object")
	}
	return decode(s, v)
}

type heroItem struct {
	Name       flexString `json:"name"`
	Price      flexString `json:"price"`
	ImageURL   flexString `json:"image_url"`
	ProductURL flexString `json:"product_url"`
}

// List fields are pointers so an absent key can be told apart from an empty list.
type endpointResponse struct {
	HeroProducts      *[]heroItem     `json:"hero_products"`
	HeroProductLinks  *[]endpointItem `json:"hero_product_links"`
	Endpoints         *[]endpointItem `json:"potential_product_endpoints"`
	Summary           flexString      `json:"analysis_summary"`
	OverallConfidence flexInt         `json:"overall_confidence"`
}

// ParseEndpointDiscovery parses the combined discovery reply. Candidates
// with an empty URL are dropped; order is preserved. The older
// hero_product_links shape (a list of URLs) is read as URL-only heroes.
// Returns EINTERNAL when the reply is not an object carrying
// potential_product_endpoints and one of the hero lists.
func ParseEndpointDiscovery(content string) (*shopinsight.EndpointDiscovery, error) {
	var resp endpointResponse
	if err := decodeObject(content, &resp); err != nil {
		return nil, err
	}
	if resp.Endpoints == nil {
		return nil, shopinsight.Errorf(shopinsight.EINTERNAL, "model response missing potential_product_endpoints")
	}
	if resp.HeroProducts == nil && resp.HeroProductLinks == nil {
		return nil, shopinsight.Errorf(shopinsight.EINTERNAL, "model response missing hero_products")
	}

	discovery := &shopinsight.EndpointDiscovery{
		HeroProducts:      []shopinsight.HeroCandidate{},
		Endpoints:         []shopinsight.EndpointCandidate{},
		Summary:           string(resp.Summary),
		OverallConfidence: int(resp.OverallConfidence),
	}
	for _, p := range deref(resp.HeroProducts) {
		if strings.TrimSpace(string(p.ProductURL)) == "" {
			continue
		}
		discovery.HeroProducts = append(discovery.HeroProducts, shopinsight.HeroCandidate{
			Name:       string(p.Name),
			Price:      string(p.Price),
			ImageURL:   string(p.ImageURL),
			ProductURL: strings.TrimSpace(string(p.ProductURL)),
		})
	}
	for _, l := range deref(resp.HeroProductLinks) {
		if strings.TrimSpace(l.URL) == "" {
			continue
		}
		discovery.HeroProducts = append(discovery.HeroProducts, shopinsight.HeroCandidate{
			ProductURL: strings.TrimSpace(l.URL),
		})
	}
	for _, e := range *resp.Endpoints {
		if strings.TrimSpace(e.URL) == "" {
			continue
		}
		discovery.Endpoints = append(discovery.Endpoints, shopinsight.EndpointCandidate{
			URL:         strings.TrimSpace(e.URL),
			Description: e.Description,
			Confidence:  e.Confidence,
		})
	}
	return discovery, nil
}

func deref[T any](p *[]T) []T {
	if p == nil {
		return nil
	}
	return *p
}

// ParseFAQLinks parses a {"faq_links": [...]} reply, dropping empty links.
// Returns EINTERNAL when faq_links is absent.
func ParseFAQLinks(content string) ([]string, error) {
	var resp struct {
		FAQLinks *[]flexString `json:"faq_links"`
	}
	if err := decodeObject(content, &resp); err != nil {
		return nil, err
	}
	if resp.FAQLinks == nil {
		return nil, shopinsight.Errorf(shopinsight.EINTERNAL, "model response missing faq_links")
	}

	links := []string{}
	for _, l := range *resp.FAQLinks {
		if s := strings.TrimSpace(string(l)); s != "" {
			links = append(links, s)
		}
	}
	return links, nil
}

// ParseFAQs parses an array of question/answer objects. A {"faqs": [...]}
// wrapper object is accepted as well. Pairs without a question are dropped.
func ParseFAQs(content string) ([]shopinsight.FAQ, error) {
	type pair struct {
		Question flexString `json:"question"`
		Answer   flexString `json:"answer"`
	}

	var pairs []pair
	stripped := StripCodeFence(content)
	if strings.HasPrefix(stripped, "{") {
		var wrapper struct {
			FAQs []pair `json:"faqs"`
		}
		if err := decode(stripped, &wrapper); err != nil {
			return nil, err
		}
		pairs = wrapper.FAQs
	} else if err := decode(stripped, &pairs); err != nil {
		return nil, err
	}

	faqs := []shopinsight.FAQ{}
	for _, p := range pairs {
		q := strings.TrimSpace(string(p.Question))
		if q == "" {
			continue
		}
		faqs = append(faqs, shopinsight.FAQ{Question: q, Answer: strings.TrimSpace(string(p.Answer))})
	}
	return faqs, nil
}

// endpointItem accepts either an endpoint object or a bare URL string.
type endpointItem struct {
	URL         string
	Description string
	Confidence  int
}

func (e *endpointItem) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		return json.Unmarshal(b, &e.URL)
	}
	var obj struct {
		URL         flexString `json:"url"`
		Description flexString `json:"description"`
		Confidence  flexInt    `json:"confidence"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}
	e.URL = string(obj.URL)
	e.Description = string(obj.Description)
	e.Confidence = int(obj.Confidence)
	return nil
}

// flexString decodes strings, numbers and null; null becomes "".
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if string(b) == "null" {
		*f = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = flexString(s)
		return nil
	}
	*f = flexString(b)
	return nil
}

// flexInt decodes integers, floats and numeric strings; anything else is 0.
type flexInt int

func (f *flexInt) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = flexInt(v)
	return nil
}
