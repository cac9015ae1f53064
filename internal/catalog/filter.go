// Package catalog derives read-only views (search results, market summaries)
// from a product list. Every function is pure and keeps the input order.
package catalog

import (
	"strings"

	"bazar-dor-api/internal/model"
)

// Filter returns the products whose Bangla or English name contains query
// (case-insensitive) and, when categoryID is non-empty, whose category matches.
// An empty query or category matches everything. The result is never nil.
func Filter(products []model.Product, query, categoryID string) []model.Product {
	q := strings.ToLower(query)
	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		if MatchesQuery(p, q) && MatchesCategory(p, categoryID) {
			out = append(out, p)
		}
	}
	return out
}

// MatchesQuery expects q already lowercased.
func MatchesQuery(p model.Product, q string) bool {
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name.BN), q) ||
		strings.Contains(strings.ToLower(p.Name.EN), q)
}

func MatchesCategory(p model.Product, categoryID string) bool {
	return categoryID == "" || p.CategoryID == categoryID
}
