// Package search implements free-text and category matching over the
// catalog. Matching is case-insensitive substring against the entry's
// searchable text; there is no ranking — results keep catalog order.
package search

import (
	"strings"

	"food-delivery-app/models"
)

// MatchesRestaurant reports whether the query hits the restaurant's
// name or tags. A blank query matches everything.
func MatchesRestaurant(r models.Restaurant, query string) bool {
	query = normalize(query)
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(r.Name), query) ||
		strings.Contains(strings.ToLower(r.Tags), query)
}

// MatchesDish reports whether the query hits the dish's name,
// description or tags. A blank query matches everything.
func MatchesDish(m models.MenuItem, query string) bool {
	query = normalize(query)
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(m.Name), query) ||
		strings.Contains(strings.ToLower(m.Description), query) ||
		strings.Contains(strings.ToLower(m.Tags), query)
}

// Restaurants filters the slice by query, preserving order.
func Restaurants(all []models.Restaurant, query string) []models.Restaurant {
	out := make([]models.Restaurant, 0, len(all))
	for _, r := range all {
		if MatchesRestaurant(r, query) {
			out = append(out, r)
		}
	}
	return out
}

// Dishes filters the slice by query, preserving order.
func Dishes(all []models.MenuItem, query string) []models.MenuItem {
	out := make([]models.MenuItem, 0, len(all))
	for _, m := range all {
		if MatchesDish(m, query) {
			out = append(out, m)
		}
	}
	return out
}

// RestaurantsByCategory keeps restaurants whose tag set contains the
// category. Unlike free-text search this is an exact tag match, not a
// substring one.
func RestaurantsByCategory(all []models.Restaurant, category string) []models.Restaurant {
	out := make([]models.Restaurant, 0, len(all))
	for _, r := range all {
		if r.HasTag(category) {
			out = append(out, r)
		}
	}
	return out
}

// DishesByCategory keeps menu items whose category or tag set
// contains the category, exact match.
func DishesByCategory(all []models.MenuItem, category string) []models.MenuItem {
	out := make([]models.MenuItem, 0, len(all))
	for _, m := range all {
		if m.HasTag(category) {
			out = append(out, m)
		}
	}
	return out
}

func normalize(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}
