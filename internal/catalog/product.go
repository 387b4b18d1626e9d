package catalog

import (
	"fmt"
	"time"
)

// PriceQuote is one retailer's offer for a product.
type PriceQuote struct {
	Source string  `json:"source"`
	Price  float64 `json:"price"`
	URL    string  `json:"url"`
}

// PriceHistoryPoint is a single observation in a product's price trace.
type PriceHistoryPoint struct {
	Date  time.Time `json:"date"`
	Price float64   `json:"price"`
}

// Product is a catalog entry with offers from multiple retailers.
// Prices is never empty; the best price is always derived from it.
type Product struct {
	ID           string              `json:"id"`
	Title        string              `json:"title"`
	Description  string              `json:"description"`
	Brand        string              `json:"brand"`
	Category     string              `json:"category"`
	Image        string              `json:"image"`
	Rating       float64             `json:"rating"`
	ReviewCount  int                 `json:"reviewCount"`
	Prices       []PriceQuote        `json:"prices"`
	PriceHistory []PriceHistoryPoint `json:"priceHistory"`
	CreatedAt    time.Time           `json:"createdAt"`
}

// BestPrice returns the minimum price across the product's quotes.
// It is recomputed on every call, never cached.
func (p *Product) BestPrice() float64 {
	best := p.Prices[0].Price
	for _, quote := range p.Prices[1:] {
		if quote.Price < best {
			best = quote.Price
		}
	}
	return best
}

// validate enforces the structural invariants a product must hold
// before it is admitted into the catalog.
func (p *Product) validate() error {
	if p.ID == "" {
		return fmt.Errorf("product has no ID")
	}
	if p.Title == "" {
		return fmt.Errorf("product %s has no title", p.ID)
	}
	if len(p.Prices) == 0 {
		return fmt.Errorf("product %s has no price quotes", p.ID)
	}
	for _, quote := range p.Prices {
		if quote.Price < 0 {
			return fmt.Errorf("product %s has a negative quote from %s", p.ID, quote.Source)
		}
	}
	if p.Rating < 0 || p.Rating > 5 {
		return fmt.Errorf("product %s has rating %v outside [0, 5]", p.ID, p.Rating)
	}
	if p.ReviewCount < 0 {
		return fmt.Errorf("product %s has negative review count", p.ID)
	}
	return nil
}

// Category groups products for browsing. Count is derived from the live
// catalog, never stored.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Count int    `json:"count"`
}

// categories is the fixed browsing taxonomy, in display order.
var categories = []Category{
	{ID: "electronics", Name: "Electronics", Icon: "💻"},
	{ID: "fashion", Name: "Fashion", Icon: "👕"},
	{ID: "home-garden", Name: "Home & Garden", Icon: "🏡"},
	{ID: "books", Name: "Books", Icon: "📚"},
	{ID: "sports", Name: "Sports", Icon: "⚽"},
	{ID: "toys-games", Name: "Toys & Games", Icon: "🎮"},
}
