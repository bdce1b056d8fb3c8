package app

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"fridgesavvy/internal/command"
	"fridgesavvy/internal/metrics"
	"fridgesavvy/internal/pantry"
	"fridgesavvy/internal/planner"
	"fridgesavvy/internal/recipe"
	"fridgesavvy/internal/shopping"
)

// add <ItemName> <Category> <ExpiryDate>
func (a *App) addItem(tokens []string) (string, error) {
	if len(tokens) != 4 {
		return "", errors.New("Usage: add <ItemName> <Category> <ExpiryDate>")
	}
	name, category := tokens[1], tokens[2]
	expiry, err := command.ParseDate(tokens[3])
	if err != nil {
		return "", err
	}
	a.pantry.Add(pantry.Item{Name: name, Category: category, Expiry: expiry})
	return fmt.Sprintf("Added item '%s' in category '%s' with expiry %s.",
		name, category, expiry.Format(command.DateLayout)), nil
}

// add ingredient <RecipeName> <IngredientName> <Quantity> <Unit>
func (a *App) addIngredient(tokens []string) (string, error) {
	if len(tokens) != 6 {
		return "", errors.New("Usage: add ingredient <RecipeName> <IngredientName> <Quantity> <Unit>")
	}
	recipeName, ingredientName, quantityStr, unit := tokens[2], tokens[3], tokens[4], tokens[5]

	rec, ok := a.book.Get(recipeName)
	if !ok {
		return "", fmt.Errorf("Recipe '%s' does not exist. Create it first.", recipeName)
	}
	quantity, err := command.ParseQuantity(quantityStr)
	if err != nil {
		return "", err
	}
	rec.Upsert(recipe.Ingredient{Name: ingredientName, Quantity: quantity, Unit: unit})
	return fmt.Sprintf("Added ingredient '%s' to recipe '%s': %s %s.",
		ingredientName, recipeName, formatQuantity(quantity), unit), nil
}

// remove <ItemName>
func (a *App) removeItem(tokens []string) (string, error) {
	if len(tokens) != 2 {
		return "", errors.New("Usage: remove <ItemName>")
	}
	name := tokens[1]
	if a.pantry.RemoveFirst(name) {
		return fmt.Sprintf("Removed item '%s' from pantry.", name), nil
	}
	return fmt.Sprintf("No pantry item named '%s' found.", name), nil
}

// remove recipe <RecipeName>
func (a *App) removeRecipe(tokens []string) (string, error) {
	if len(tokens) != 3 {
		return "", errors.New("Usage: remove recipe <RecipeName>")
	}
	name := tokens[2]
	if !a.book.Remove(name) {
		return fmt.Sprintf("No recipe named '%s' found.", name), nil
	}
	removedFromPlan := a.plan.RemoveAllFor(name)
	msg := fmt.Sprintf("Removed recipe '%s'.", name)
	if removedFromPlan > 0 {
		msg += fmt.Sprintf(" Also removed %d planned occurrence(s).", removedFromPlan)
	}
	return msg, nil
}

// remove ingredient <RecipeName> <IngredientName>
func (a *App) removeIngredient(tokens []string) (string, error) {
	if len(tokens) != 4 {
		return "", errors.New("Usage: remove ingredient <RecipeName> <IngredientName>")
	}
	recipeName, ingredientName := tokens[2], tokens[3]

	rec, ok := a.book.Get(recipeName)
	if !ok {
		return fmt.Sprintf("No recipe named '%s' found.", recipeName), nil
	}
	if rec.Remove(ingredientName) {
		return fmt.Sprintf("Removed ingredient '%s' from recipe '%s'.", ingredientName, recipeName), nil
	}
	return fmt.Sprintf("Recipe '%s' has no ingredient named '%s'.", recipeName, ingredientName), nil
}

// create recipe <RecipeName>
func (a *App) createRecipe(tokens []string) (string, error) {
	if len(tokens) != 3 {
		return "", errors.New("Usage: create recipe <RecipeName>")
	}
	name := tokens[2]
	if !a.book.Create(name) {
		return fmt.Sprintf("Recipe '%s' already exists.", name), nil
	}
	return fmt.Sprintf("Created empty recipe '%s'.", name), nil
}

// plan <RecipeName> <Date>
func (a *App) planRecipe(tokens []string) (string, error) {
	if len(tokens) != 3 {
		return "", errors.New("Usage: plan <RecipeName> <Date>")
	}
	recipeName := tokens[1]
	if _, ok := a.book.Get(recipeName); !ok {
		return "", fmt.Errorf("Recipe '%s' does not exist.", recipeName)
	}
	scheduled, err := command.ParseDate(tokens[2])
	if err != nil {
		return "", err
	}
	a.plan.Append(planner.Entry{RecipeName: recipeName, ScheduledDate: scheduled})
	return fmt.Sprintf("Planned recipe '%s' on %s.",
		recipeName, scheduled.Format(command.DateLayout)), nil
}

// unplan <RecipeName> <Date>
func (a *App) unplanRecipe(tokens []string) (string, error) {
	if len(tokens) != 3 {
		return "", errors.New("Usage: unplan <RecipeName> <Date>")
	}
	recipeName := tokens[1]
	scheduled, err := command.ParseDate(tokens[2])
	if err != nil {
		return "", err
	}
	dateStr := scheduled.Format(command.DateLayout)
	if a.plan.RemoveFirst(recipeName, scheduled) {
		return fmt.Sprintf("Removed planned recipe '%s' on %s.", recipeName, dateStr), nil
	}
	return fmt.Sprintf("No planned recipe '%s' on %s found.", recipeName, dateStr), nil
}

// list pantry
func (a *App) listPantry(tokens []string) (string, error) {
	if len(tokens) != 2 {
		return "", errors.New("Usage: list pantry")
	}
	if a.pantry.Len() == 0 {
		return "Pantry is empty.", nil
	}
	var sb strings.Builder
	sb.WriteString("Pantry items:")
	for _, item := range a.pantry.SortedByExpiry() {
		sb.WriteString(fmt.Sprintf("\n- %s (%s) – Expires %s",
			item.Name, item.Category, item.Expiry.Format(command.DateLayout)))
	}
	return sb.String(), nil
}

// list recipe <RecipeName>
func (a *App) listRecipe(tokens []string) (string, error) {
	if len(tokens) != 3 {
		return "", errors.New("Usage: list recipe <RecipeName>")
	}
	name := tokens[2]
	rec, ok := a.book.Get(name)
	if !ok {
		return fmt.Sprintf("No recipe named '%s' found.", name), nil
	}
	if rec.Len() == 0 {
		return fmt.Sprintf("Recipe '%s' has no ingredients.", name), nil
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Ingredients for recipe '%s':", name))
	for _, ing := range rec.Ingredients() {
		sb.WriteString(fmt.Sprintf("\n%s – %s %s", ing.Name, formatQuantity(ing.Quantity), ing.Unit))
	}
	return sb.String(), nil
}

// list expiring
func (a *App) listExpiring(tokens []string) (string, error) {
	if len(tokens) != 2 {
		return "", errors.New("Usage: list expiring")
	}
	today := a.today()
	days := a.cfg.ExpiringWindowDays
	items := a.pantry.ExpiringWithin(today, days)
	if len(items) == 0 {
		return fmt.Sprintf("No items expiring within the next %d days.", days), nil
	}
	cutoff := today.AddDate(0, 0, days)
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Items expiring between %s and %s:",
		today.Format(command.DateLayout), cutoff.Format(command.DateLayout)))
	for _, item := range items {
		daysLeft := int(item.Expiry.Sub(today).Hours() / 24)
		sb.WriteString(fmt.Sprintf("\n- %s (%s) – Expires %s (in %d day(s))",
			item.Name, item.Category, item.Expiry.Format(command.DateLayout), daysLeft))
	}
	return sb.String(), nil
}

// suggest recipes
func (a *App) suggestRecipes() (string, error) {
	if a.book.Len() == 0 {
		return "No recipes available.", nil
	}
	available := a.pantry.AvailableNames(a.today())
	if len(available) == 0 {
		return "Pantry is empty or all items are expired. No recipe suggestions.", nil
	}
	matches := recipe.Suggest(a.book, available)
	if len(matches) == 0 {
		return "No recipes can be fully prepared with current pantry items.", nil
	}
	var sb strings.Builder
	sb.WriteString("You can prepare the following recipes with your current pantry:")
	for _, name := range matches {
		sb.WriteString("\n- " + name)
	}
	return sb.String(), nil
}

// generate list
func (a *App) generateList() (string, error) {
	if a.book.Len() == 0 {
		return "No recipes defined. Shopping list is empty.", nil
	}
	if a.plan.Len() == 0 {
		return "No meals planned. Shopping list is empty.", nil
	}
	available := a.pantry.AvailableNames(a.today())
	items := shopping.Missing(a.book, a.plan, available)
	if len(items) == 0 {
		return "All planned ingredients are already available in your pantry. No shopping needed!", nil
	}
	var sb strings.Builder
	sb.WriteString("Shopping list (missing ingredients for planned meals):")
	for _, item := range items {
		// Totals render truncated to an integer, matching the original.
		sb.WriteString(fmt.Sprintf("\n- %s – %d %s", item.Name, int64(item.Quantity), item.Unit))
	}
	return sb.String(), nil
}

// stats
func (a *App) stats() (string, error) {
	if a.store == nil {
		return "Command metrics are disabled for this session.", nil
	}
	usage, err := a.store.SessionUsage(a.sessionID)
	if err != nil {
		return "", fmt.Errorf("failed to read session usage: %v", err)
	}
	var sb strings.Builder
	sb.WriteString("Session usage:")
	if len(usage) == 0 {
		sb.WriteString("\nNo commands recorded yet.")
	}
	for _, u := range usage {
		sb.WriteString(fmt.Sprintf("\n- %s: %d run(s), %d error(s)", u.Command, u.Total, u.Errors))
	}
	health := metrics.GetSysHealth()
	sb.WriteString(fmt.Sprintf("\nSystem health: %dMB alloc / %dMB sys, %d goroutine(s)",
		health.AllocMB, health.SysMB, health.Goroutines))
	return sb.String(), nil
}

// formatQuantity renders a quantity without trailing zeros (200, 2.5).
func formatQuantity(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}
