// Package shopping implements shopping-list generation over the meal
// plan.
package shopping

import (
	"sort"

	"fridgesavvy/internal/planner"
	"fridgesavvy/internal/recipe"
)

// LineItem is one aggregated shopping entry. Quantities for an
// ingredient are summed only when the unit strings are identical; the
// same name with two different units yields two independent line items.
type LineItem struct {
	Name     string
	Unit     string
	Quantity float64
}

// Missing aggregates the quantities of planned-meal ingredients that are
// absent from the availability set, keyed by (name, unit). Entries whose
// recipe no longer exists or has no ingredients are skipped defensively.
// The result is sorted by ingredient name, ties by unit.
func Missing(book *recipe.Book, plan *planner.MealPlan, available map[string]struct{}) []LineItem {
	type key struct {
		name string
		unit string
	}
	totals := make(map[key]float64)

	for _, entry := range plan.Entries() {
		rec, ok := book.Get(entry.RecipeName)
		if !ok || rec.Len() == 0 {
			continue
		}
		for _, ing := range rec.Ingredients() {
			if _, have := available[ing.Name]; have {
				continue
			}
			totals[key{ing.Name, ing.Unit}] += ing.Quantity
		}
	}

	items := make([]LineItem, 0, len(totals))
	for k, qty := range totals {
		items = append(items, LineItem{Name: k.name, Unit: k.unit, Quantity: qty})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Name != items[j].Name {
			return items[i].Name < items[j].Name
		}
		return items[i].Unit < items[j].Unit
	})
	return items
}
