package recipe

// Book is the recipe book: a mapping from recipe name to recipe, with
// creation order retained for deterministic iteration.
type Book struct {
	recipes map[string]*Recipe
	order   []string
}

// NewBook returns an empty recipe book.
func NewBook() *Book {
	return &Book{recipes: make(map[string]*Recipe)}
}

// Create adds an empty recipe. It reports false without modifying the
// book when the name is already taken.
func (b *Book) Create(name string) bool {
	if _, ok := b.recipes[name]; ok {
		return false
	}
	b.recipes[name] = newRecipe(name)
	b.order = append(b.order, name)
	return true
}

// Remove deletes the named recipe, reporting whether it existed.
// Cascading removal of meal-plan entries is the caller's responsibility.
func (b *Book) Remove(name string) bool {
	if _, ok := b.recipes[name]; !ok {
		return false
	}
	delete(b.recipes, name)
	for i, n := range b.order {
		if n == name {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	return true
}

// Get looks up a recipe by name.
func (b *Book) Get(name string) (*Recipe, bool) {
	r, ok := b.recipes[name]
	return r, ok
}

// Len returns the number of recipes.
func (b *Book) Len() int {
	return len(b.recipes)
}

// Names returns the recipe names in creation order.
func (b *Book) Names() []string {
	out := make([]string, len(b.order))
	copy(out, b.order)
	return out
}
