package recipe

import "sort"

// Suggest returns the names of recipes whose entire ingredient set is
// covered by the availability set, sorted lexicographically ascending.
// Matching is presence-only: quantities and units are ignored. Recipes
// with zero ingredients are never suggested.
func Suggest(b *Book, available map[string]struct{}) []string {
	var matches []string
	for _, name := range b.Names() {
		r, ok := b.Get(name)
		if !ok || r.Len() == 0 {
			continue
		}
		covered := true
		for _, ing := range r.Ingredients() {
			if _, have := available[ing.Name]; !have {
				covered = false
				break
			}
		}
		if covered {
			matches = append(matches, name)
		}
	}
	sort.Strings(matches)
	return matches
}
