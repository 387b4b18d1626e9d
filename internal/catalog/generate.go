package catalog

import (
	"fmt"
	"math"
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

// retailers whose quotes a synthesized product can carry.
var retailers = []string{"Amazon", "Best Buy", "Walmart", "Target", "Apple Store"}

const historyDays = 30

// generate synthesizes a catalog of size products. The same seed yields the
// same catalog; seed 0 lets the faker pick its own.
func generate(size int, seed uint64) []Product {
	f := gofakeit.New(seed)
	now := time.Now()

	products := make([]Product, 0, size)
	for range size {
		category := categories[f.IntRange(0, len(categories)-1)]
		basePrice := f.Price(10, 2000)
		id := f.UUID()

		products = append(products, Product{
			ID:           id,
			Title:        f.ProductName(),
			Description:  f.ProductDescription(),
			Brand:        f.Company(),
			Category:     category.ID,
			Image:        fmt.Sprintf("https://picsum.photos/seed/%s/640/480", id),
			Rating:       math.Round(f.Float64Range(2.5, 5)*10) / 10,
			ReviewCount:  f.IntRange(10, 5000),
			Prices:       generateQuotes(f, basePrice),
			PriceHistory: generateHistory(f, basePrice, now),
			CreatedAt:    now.AddDate(0, 0, -f.IntRange(0, 90)),
		})
	}
	return products
}

// generateQuotes produces 2-4 quotes from distinct retailers, each within
// ±20% of the base price.
func generateQuotes(f *gofakeit.Faker, basePrice float64) []PriceQuote {
	sources := make([]string, len(retailers))
	copy(sources, retailers)
	f.ShuffleStrings(sources)

	count := f.IntRange(2, 4)
	quotes := make([]PriceQuote, 0, count)
	for _, source := range sources[:count] {
		quotes = append(quotes, PriceQuote{
			Source: source,
			Price:  roundCents(basePrice * f.Float64Range(0.8, 1.2)),
			URL:    "#",
		})
	}
	return quotes
}

// generateHistory produces a 30-point price trace in chronological order,
// ending at the current day.
func generateHistory(f *gofakeit.Faker, basePrice float64, now time.Time) []PriceHistoryPoint {
	history := make([]PriceHistoryPoint, 0, historyDays)
	for day := historyDays - 1; day >= 0; day-- {
		history = append(history, PriceHistoryPoint{
			Date:  now.AddDate(0, 0, -day),
			Price: roundCents(basePrice * f.Float64Range(0.85, 1.25)),
		})
	}
	return history
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
