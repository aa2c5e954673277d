package shopinsight

import "context"

// BrandInsights is the structured record extracted from one storefront.
// Optional text fields are nil when no stage produced them; collections are
// never nil so they serialize as empty arrays.
type BrandInsights struct {
	BrandName      *string         `json:"brand_name"`
	ProductCatalog []Product       `json:"product_catalog"`
	HeroProducts   []Product       `json:"hero_products"`
	PrivacyPolicy  *string         `json:"privacy_policy"`
	ReturnPolicy   *string         `json:"return_policy"`
	RefundPolicy   *string         `json:"refund_policy"`
	FAQs           []FAQ           `json:"faqs"`
	ContactDetails []ContactDetail `json:"contact_details"`
	SocialHandles  []string        `json:"social_handles"`
	BrandAbout     *string         `json:"brand_about"`
	ImportantLinks []string        `json:"important_links"`
}

// NewBrandInsights returns an empty record with all collections initialized.
func NewBrandInsights() *BrandInsights {
	return &BrandInsights{
		ProductCatalog: []Product{},
		HeroProducts:   []Product{},
		FAQs:           []FAQ{},
		ContactDetails: []ContactDetail{},
		SocialHandles:  []string{},
		ImportantLinks: []string{},
	}
}

// Product is a single product card scraped from a listing or homepage.
// Name and ProductURL are always set; extractors drop cards missing either.
type Product struct {
	Name       string  `json:"name"`
	Price      *string `json:"price"`
	ImageURL   *string `json:"image_url"`
	ProductURL string  `json:"product_url"`
}

// FAQ is a question/answer pair.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// ContactDetail holds deduplicated emails and phone candidates found on a page.
// Phone candidates come from a deliberately loose pattern and are not validated.
type ContactDetail struct {
	Emails []string `json:"emails"`
	Phones []string `json:"phones"`
}

// InsightExtractor runs the full extraction for one storefront URL.
type InsightExtractor interface {
	// ExtractBrandInsights fetches the storefront and assembles its insights.
	// Returns EUNREACHABLE if the homepage cannot be loaded successfully.
	ExtractBrandInsights(ctx context.Context, websiteURL string) (*BrandInsights, error)
}

// OptionalString returns a pointer to s, or nil when s is empty.
func OptionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// ReportWriter persists an extraction result for later inspection.
type ReportWriter interface {
	// WriteReport stores insights for websiteURL and returns where they went.
	WriteReport(ctx context.Context, websiteURL string, insights *BrandInsights) (string, error)
}
