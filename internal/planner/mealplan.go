// Package planner holds the meal plan calendar.
package planner

import "time"

// Entry is a planned occurrence of a recipe on a date. Entries are not
// unique: the same recipe may be planned repeatedly, on the same or
// different dates.
type Entry struct {
	RecipeName    string
	ScheduledDate time.Time
}

// MealPlan is the ordered sequence of planning entries. First-match
// removal depends on insertion order.
type MealPlan struct {
	entries []Entry
}

// New returns an empty meal plan.
func New() *MealPlan {
	return &MealPlan{}
}

// Append adds a planning entry.
func (m *MealPlan) Append(e Entry) {
	m.entries = append(m.entries, e)
}

// RemoveFirst deletes the first entry matching both recipe name and
// scheduled date, reporting whether one was found.
func (m *MealPlan) RemoveFirst(recipeName string, date time.Time) bool {
	for i, e := range m.entries {
		if e.RecipeName == recipeName && e.ScheduledDate.Equal(date) {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveAllFor deletes every entry referencing the recipe and returns
// how many were removed. Used by the recipe-deletion cascade.
func (m *MealPlan) RemoveAllFor(recipeName string) int {
	kept := m.entries[:0]
	removed := 0
	for _, e := range m.entries {
		if e.RecipeName == recipeName {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	m.entries = kept
	return removed
}

// Len returns the number of entries.
func (m *MealPlan) Len() int {
	return len(m.entries)
}

// Entries returns a copy of the entries in insertion order.
func (m *MealPlan) Entries() []Entry {
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}
