// Package recipe holds the recipe book and the recipe-suggestion
// algorithm.
package recipe

// Ingredient is one required ingredient of a recipe.
type Ingredient struct {
	Name     string
	Quantity float64
	Unit     string
}

// Recipe owns an order-preserving mapping from ingredient name to
// Ingredient. Upserting an existing name replaces the entry in place so
// listing order stays stable.
type Recipe struct {
	Name string

	ingredients []Ingredient
	index       map[string]int
}

func newRecipe(name string) *Recipe {
	return &Recipe{Name: name, index: make(map[string]int)}
}

// Upsert adds the ingredient or replaces an existing one with the same
// name. Last write wins; there is no quantity merging.
func (r *Recipe) Upsert(ing Ingredient) {
	if i, ok := r.index[ing.Name]; ok {
		r.ingredients[i] = ing
		return
	}
	r.index[ing.Name] = len(r.ingredients)
	r.ingredients = append(r.ingredients, ing)
}

// Remove deletes the named ingredient, reporting whether it was present.
func (r *Recipe) Remove(name string) bool {
	i, ok := r.index[name]
	if !ok {
		return false
	}
	r.ingredients = append(r.ingredients[:i], r.ingredients[i+1:]...)
	delete(r.index, name)
	for j := i; j < len(r.ingredients); j++ {
		r.index[r.ingredients[j].Name] = j
	}
	return true
}

// Len returns the number of ingredients.
func (r *Recipe) Len() int {
	return len(r.ingredients)
}

// Ingredients returns a copy of the ingredients in insertion order.
func (r *Recipe) Ingredients() []Ingredient {
	out := make([]Ingredient, len(r.ingredients))
	copy(out, r.ingredients)
	return out
}
