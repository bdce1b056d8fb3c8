// Package command turns raw input lines into classified interpreter
// commands. Tokenization and classification are purely syntactic; arity
// and value validation happen in the handlers.
package command

import (
	"errors"
	"fmt"
	"strings"
)

// Kind identifies one of the interpreter's operations.
type Kind int

const (
	KindAddItem Kind = iota
	KindAddIngredient
	KindRemoveItem
	KindRemoveRecipe
	KindRemoveIngredient
	KindCreateRecipe
	KindPlan
	KindUnplan
	KindListPantry
	KindListRecipe
	KindListExpiring
	KindSuggestRecipes
	KindGenerateList
	KindStats
	KindHelp
	KindExit
)

// String returns the user-facing command name, as recorded in metrics.
func (k Kind) String() string {
	switch k {
	case KindAddItem:
		return "add"
	case KindAddIngredient:
		return "add ingredient"
	case KindRemoveItem:
		return "remove"
	case KindRemoveRecipe:
		return "remove recipe"
	case KindRemoveIngredient:
		return "remove ingredient"
	case KindCreateRecipe:
		return "create recipe"
	case KindPlan:
		return "plan"
	case KindUnplan:
		return "unplan"
	case KindListPantry:
		return "list pantry"
	case KindListRecipe:
		return "list recipe"
	case KindListExpiring:
		return "list expiring"
	case KindSuggestRecipes:
		return "suggest recipes"
	case KindGenerateList:
		return "generate list"
	case KindStats:
		return "stats"
	case KindHelp:
		return "help"
	case KindExit:
		return "exit"
	}
	return "unknown"
}

// Command is a classified input line. Tokens keeps the full raw token
// sequence so handlers can validate arity themselves.
type Command struct {
	Kind   Kind
	Tokens []string
}

// Tokenize splits a line on single spaces. Consecutive spaces are not
// collapsed; the resulting empty tokens surface as arity errors
// downstream, which is the documented contract.
func Tokenize(line string) []string {
	return strings.Split(line, " ")
}

// Parse classifies a non-empty token sequence into a Command. The
// returned error carries the exact user-facing message for unknown or
// structurally broken commands.
func Parse(tokens []string) (Command, error) {
	switch tokens[0] {
	case "exit", "quit":
		return Command{Kind: KindExit, Tokens: tokens}, nil
	case "help":
		return Command{Kind: KindHelp, Tokens: tokens}, nil
	case "stats":
		return Command{Kind: KindStats, Tokens: tokens}, nil
	case "add":
		if len(tokens) < 2 {
			return Command{}, errors.New("Incomplete 'add' command.")
		}
		if tokens[1] == "ingredient" {
			return Command{Kind: KindAddIngredient, Tokens: tokens}, nil
		}
		return Command{Kind: KindAddItem, Tokens: tokens}, nil
	case "remove":
		if len(tokens) < 2 {
			return Command{}, errors.New("Incomplete 'remove' command.")
		}
		switch tokens[1] {
		case "ingredient":
			return Command{Kind: KindRemoveIngredient, Tokens: tokens}, nil
		case "recipe":
			return Command{Kind: KindRemoveRecipe, Tokens: tokens}, nil
		}
		return Command{Kind: KindRemoveItem, Tokens: tokens}, nil
	case "create":
		if len(tokens) < 2 || tokens[1] != "recipe" {
			return Command{}, errors.New("Usage: create recipe <RecipeName>")
		}
		return Command{Kind: KindCreateRecipe, Tokens: tokens}, nil
	case "plan":
		return Command{Kind: KindPlan, Tokens: tokens}, nil
	case "unplan":
		return Command{Kind: KindUnplan, Tokens: tokens}, nil
	case "list":
		if len(tokens) < 2 {
			return Command{}, errors.New("Usage: list pantry | list recipe <RecipeName> | list expiring")
		}
		switch tokens[1] {
		case "pantry":
			return Command{Kind: KindListPantry, Tokens: tokens}, nil
		case "recipe":
			return Command{Kind: KindListRecipe, Tokens: tokens}, nil
		case "expiring":
			return Command{Kind: KindListExpiring, Tokens: tokens}, nil
		}
		return Command{}, errors.New("Unknown 'list' command. Use 'pantry', 'recipe', or 'expiring'.")
	case "suggest":
		if len(tokens) != 2 || tokens[1] != "recipes" {
			return Command{}, errors.New("Usage: suggest recipes")
		}
		return Command{Kind: KindSuggestRecipes, Tokens: tokens}, nil
	case "generate":
		if len(tokens) != 2 || tokens[1] != "list" {
			return Command{}, errors.New("Usage: generate list")
		}
		return Command{Kind: KindGenerateList, Tokens: tokens}, nil
	}
	return Command{}, fmt.Errorf("Unknown command '%s'. Type 'help' for a list of commands.", tokens[0])
}
