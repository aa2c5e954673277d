package goquery

import (
	"net/url"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/shopinsight"
)

// Product card containers used by common Shopify themes on listing pages.
const productCardSelector = ".product-card, .grid-product, .product-item"

// Homepage featured-product containers. Listing-card classes are included
// because many themes reuse them for featured collections.
const heroCardSelector = ".featured-collection, .homepage-products, .product-card, .grid-product, .product-item"

const (
	productNameSelector = "a, .product-title, h2"
	productLinkSelector = "a[href]"
	heroLinkSelector    = "a[href*='/products/']"
	priceSelector       = ".price, .product-price, .grid-product__price"
)

// Products extracts product cards from a listing page. A card is kept only
// when it has both a name and a resolvable product URL; missing price or
// image leave those fields nil. Cards are deduplicated by product URL.
func (s *Scraper) Products(html, baseURL string) []shopinsight.Product {
	return extractCards(html, baseURL, productCardSelector, func(card *goquery.Selection) (name, href string) {
		name = text(card.Find(productNameSelector).First())
		href, _ = card.Find(productLinkSelector).First().Attr("href")
		return name, href
	})
}

// HeroProducts extracts featured product cards. The product link is the
// first anchor pointing at /products/ and its text is the product name.
func (s *Scraper) HeroProducts(html, baseURL string) []shopinsight.Product {
	return extractCards(html, baseURL, heroCardSelector, func(card *goquery.Selection) (name, href string) {
		link := card.Find(heroLinkSelector).First()
		href, _ = link.Attr("href")
		return text(link), href
	})
}

// cardIdentity returns the raw name and product href of a card.
type cardIdentity func(card *goquery.Selection) (name, href string)

func extractCards(html, baseURL, selector string, identify cardIdentity) []shopinsight.Product {
	products := []shopinsight.Product{}
	doc := parse(html)
	if doc == nil {
		return products
	}
	base := parseBase(baseURL)

	seen := make(map[string]bool)
	doc.Find(selector).Each(func(_ int, card *goquery.Selection) {
		product, ok := cardProduct(card, base, identify)
		if !ok || seen[product.ProductURL] {
			return
		}
		seen[product.ProductURL] = true
		products = append(products, product)
	})
	return products
}

// cardProduct builds a Product from one card. It reports false when the
// card lacks a name or its link does not resolve to an http(s) URL.
func cardProduct(card *goquery.Selection, base *url.URL, identify cardIdentity) (shopinsight.Product, bool) {
	name, href := identify(card)
	productURL := resolveURL(base, href)
	if name == "" || productURL == "" {
		return shopinsight.Product{}, false
	}

	return shopinsight.Product{
		Name:       name,
		Price:      shopinsight.OptionalString(text(card.Find(priceSelector).First())),
		ImageURL:   shopinsight.OptionalString(resolveURL(base, imageSource(card.Find("img").First()))),
		ProductURL: productURL,
	}, true
}

// imageSource returns the img src, falling back to the data-src attribute
// lazy-loading themes use.
func imageSource(img *goquery.Selection) string {
	if src, ok := img.Attr("src"); ok && src != "" {
		return src
	}
	src, _ := img.Attr("data-src")
	return src
}
