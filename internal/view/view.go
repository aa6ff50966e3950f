// Package view computes the derived projections of the product collection:
// the search-filtered subset and the aggregate statistics shown in the
// console header. Both are pure functions and are recomputed on every
// render instead of cached, so they can never drift from the collection.
package view

import (
	"strconv"
	"strings"

	"github.com/rogerio-castellano/inventory-console/internal/models"
)

// Stats aggregates the full product collection.
type Stats struct {
	Products   int
	TotalValue float64
	TotalStock int
	Categories int
}

// Filter returns the products whose name, category, or description contains
// query, matched case-insensitively. An empty or whitespace-only query
// returns the collection unchanged. Order is preserved and the input slice
// is never mutated.
func Filter(products []models.Product, query string) []models.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return products
	}

	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Category), q) ||
			strings.Contains(strings.ToLower(p.Description), q) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// ComputeStats aggregates the collection. Products with an empty category
// do not count toward the distinct-category total.
func ComputeStats(products []models.Product) Stats {
	s := Stats{Products: len(products)}
	categories := make(map[string]struct{})
	for _, p := range products {
		s.TotalValue += p.Price * float64(p.Quantity)
		s.TotalStock += p.Quantity
		if p.Category != "" {
			categories[p.Category] = struct{}{}
		}
	}
	s.Categories = len(categories)
	return s
}

// FormatUSD renders an amount as US dollars with two decimals and
// thousands separators, e.g. 1234.5 -> "$1,234.50".
func FormatUSD(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	s := strconv.FormatFloat(amount, 'f', 2, 64)
	whole, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	out := "$" + b.String() + "." + frac
	if neg {
		out = "-" + out
	}
	return out
}
