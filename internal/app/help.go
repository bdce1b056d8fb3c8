package app

import "strings"

func helpText() string {
	lines := []string{
		"Available commands:",
		"  add <ItemName> <Category> <ExpiryDate>",
		"  remove <ItemName>",
		"  create recipe <RecipeName>",
		"  remove recipe <RecipeName>",
		"  add ingredient <RecipeName> <IngredientName> <Quantity> <Unit>",
		"  remove ingredient <RecipeName> <IngredientName>",
		"  plan <RecipeName> <Date>",
		"  unplan <RecipeName> <Date>",
		"  list pantry",
		"  list recipe <RecipeName>",
		"  list expiring",
		"  suggest recipes",
		"  generate list",
		"  stats",
		"  help",
		"  exit | quit",
	}
	return strings.Join(lines, "\n")
}
