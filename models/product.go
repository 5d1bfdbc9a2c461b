package models

import "strings"

// ═══════════════════════════════════════════════════════════
// Catalog Product Model
// ═══════════════════════════════════════════════════════════

// Product is a single catalog entry as scraped from the Mercadona store.
// It is immutable after load; the display name doubles as the product
// identifier across favorites, compare, shopping list and recently-viewed.
type Product struct {
	Name              string `json:"name"`
	Category          string `json:"category"`
	Subtitle          string `json:"subtitle,omitempty"`
	Price             string `json:"price,omitempty"`
	DiscountPrice     string `json:"discount_price,omitempty"`
	MainImageURL      string `json:"main_image_url"`
	SecondaryImageURL string `json:"secondary_image_url,omitempty"`
}

// CSV column names produced by the scraper.
const (
	ColCategory          = "Category"
	ColName              = "name"
	ColSubtitle          = "subtitle"
	ColPrice             = "price"
	ColDiscountPrice     = "discount_price"
	ColMainImageURL      = "main_image_url"
	ColSecondaryImageURL = "secondary_image_url"
)

// NewProductFromRow builds a validated Product from a header-keyed CSV row.
// A row is admitted only when category, name and main image URL are all
// non-empty; everything else is optional.
func NewProductFromRow(row map[string]string) (Product, bool) {
	p := Product{
		Name:              strings.TrimSpace(row[ColName]),
		Category:          strings.TrimSpace(row[ColCategory]),
		Subtitle:          strings.TrimSpace(row[ColSubtitle]),
		Price:             strings.TrimSpace(row[ColPrice]),
		DiscountPrice:     strings.TrimSpace(row[ColDiscountPrice]),
		MainImageURL:      strings.TrimSpace(row[ColMainImageURL]),
		SecondaryImageURL: strings.TrimSpace(row[ColSecondaryImageURL]),
	}
	if p.Name == "" || p.Category == "" || p.MainImageURL == "" {
		return Product{}, false
	}
	return p, true
}

// HasMacros reports whether the product carries a nutrition-detail image
// (the "Ver macros" view in the UI).
func (p Product) HasMacros() bool {
	return strings.TrimSpace(p.SecondaryImageURL) != ""
}

// CategoryCount is a storefront category with its product count.
type CategoryCount struct {
	Name         string `json:"name"`
	ProductCount int    `json:"product_count"`
}

// StorefrontProduct is the product shape returned by the browse endpoints.
type StorefrontProduct struct {
	Product
	HasMacros bool `json:"has_macros"`
}
