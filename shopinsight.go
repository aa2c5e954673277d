// Package shopinsight extracts structured brand insights (product catalog,
// hero products, policies, contact details, social handles) from a public
// Shopify storefront using only its public HTML.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, openrouter/, gin/).
package shopinsight
