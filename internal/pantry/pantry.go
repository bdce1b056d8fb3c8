// Package pantry holds the in-memory pantry inventory.
package pantry

import (
	"sort"
	"time"
)

// Item is a single entry in the pantry. Identity is name-only: several
// items may share a name and coexist as distinct entries.
type Item struct {
	Name     string
	Category string
	Expiry   time.Time
}

// Pantry is the ordered sequence of stored items. Removal semantics
// depend on insertion order, so the backing store stays a slice.
type Pantry struct {
	items []Item
}

// New returns an empty pantry.
func New() *Pantry {
	return &Pantry{}
}

// Add appends an item. Duplicate names are allowed.
func (p *Pantry) Add(item Item) {
	p.items = append(p.items, item)
}

// RemoveFirst deletes the first item whose name matches, scanning in
// insertion order (not necessarily the soonest-expiring one). It reports
// whether anything was removed.
func (p *Pantry) RemoveFirst(name string) bool {
	for i, it := range p.items {
		if it.Name == name {
			p.items = append(p.items[:i], p.items[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of items.
func (p *Pantry) Len() int {
	return len(p.items)
}

// Items returns a copy of the items in insertion order.
func (p *Pantry) Items() []Item {
	out := make([]Item, len(p.items))
	copy(out, p.items)
	return out
}

// SortedByExpiry returns the items ordered by ascending expiry date. The
// sort is stable: ties keep insertion order.
func (p *Pantry) SortedByExpiry() []Item {
	out := p.Items()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Expiry.Before(out[j].Expiry)
	})
	return out
}

// ExpiringWithin returns items whose expiry falls in the inclusive window
// [today, today+days], ordered by ascending expiry.
func (p *Pantry) ExpiringWithin(today time.Time, days int) []Item {
	cutoff := today.AddDate(0, 0, days)
	var out []Item
	for _, it := range p.items {
		if !it.Expiry.Before(today) && !it.Expiry.After(cutoff) {
			out = append(out, it)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Expiry.Before(out[j].Expiry)
	})
	return out
}

// AvailableNames returns the set of item names whose expiry is on or
// after today. Both derived views consume this availability set.
func (p *Pantry) AvailableNames(today time.Time) map[string]struct{} {
	avail := make(map[string]struct{})
	for _, it := range p.items {
		if !it.Expiry.Before(today) {
			avail[it.Name] = struct{}{}
		}
	}
	return avail
}
