package app

import (
	"strings"
	"testing"
	"time"

	"fridgesavvy/internal/command"
)

// testApp returns a session with a fixed civil date and metrics disabled.
func testApp(t *testing.T, today string) *App {
	t.Helper()
	d, err := command.ParseDate(today)
	if err != nil {
		t.Fatalf("Bad test date %q: %v", today, err)
	}
	return New(nil, nil, func() time.Time { return d })
}

// runCmds feeds each line to the session and returns the joined output.
func runCmds(t *testing.T, a *App, lines []string) string {
	t.Helper()
	var out []string
	for _, line := range lines {
		resp, _ := a.HandleLine(line)
		out = append(out, resp)
	}
	return strings.Join(out, "\n")
}

func TestAddItem(t *testing.T) {
	a := testApp(t, "2025-01-01")

	t.Run("Valid", func(t *testing.T) {
		out := runCmds(t, a, []string{"add Milk Dairy 2025-11-01"})
		if !strings.Contains(out, "Added item 'Milk' in category 'Dairy' with expiry 2025-11-01.") {
			t.Errorf("Unexpected output: %s", out)
		}
		if a.pantry.Len() != 1 {
			t.Errorf("Expected 1 pantry item, got %d", a.pantry.Len())
		}
	})

	t.Run("DuplicatesNotMerged", func(t *testing.T) {
		runCmds(t, a, []string{"add Milk Dairy 2025-12-01"})
		if a.pantry.Len() != 2 {
			t.Errorf("Expected duplicate names to coexist, got %d items", a.pantry.Len())
		}
	})

	t.Run("MalformedDate", func(t *testing.T) {
		out := runCmds(t, a, []string{"add Milk Dairy 2025-02-30"})
		if !strings.Contains(out, "Error: Invalid date '2025-02-30'. Expected format: YYYY-MM-DD.") {
			t.Errorf("Expected date error naming the string, got: %s", out)
		}
		if a.pantry.Len() != 2 {
			t.Errorf("Expected state unchanged on error, got %d items", a.pantry.Len())
		}
	})

	t.Run("WrongArity", func(t *testing.T) {
		out := runCmds(t, a, []string{"add Milk Dairy"})
		if !strings.Contains(out, "Error: Usage: add <ItemName> <Category> <ExpiryDate>") {
			t.Errorf("Expected usage hint, got: %s", out)
		}
	})
}

func TestRemoveItem(t *testing.T) {
	a := testApp(t, "2025-01-01")
	out := runCmds(t, a, []string{
		"add Milk Dairy 2025-11-01",
		"remove Milk",
		"remove Milk",
	})
	if !strings.Contains(out, "Removed item 'Milk' from pantry.") {
		t.Errorf("Expected removal confirmation, got: %s", out)
	}
	if !strings.Contains(out, "No pantry item named 'Milk' found.") {
		t.Errorf("Expected not-found notice, got: %s", out)
	}
	if a.pantry.Len() != 0 {
		t.Errorf("Expected empty pantry, got %d items", a.pantry.Len())
	}
}

func TestCreateRecipe(t *testing.T) {
	a := testApp(t, "2025-01-01")
	out := runCmds(t, a, []string{
		"create recipe Pasta",
		"create recipe Pasta",
	})
	if !strings.Contains(out, "Created empty recipe 'Pasta'.") {
		t.Errorf("Expected creation confirmation, got: %s", out)
	}
	if !strings.Contains(out, "Recipe 'Pasta' already exists.") {
		t.Errorf("Expected already-exists notice, got: %s", out)
	}
	if a.book.Len() != 1 {
		t.Errorf("Expected 1 recipe, got %d", a.book.Len())
	}
}

func TestAddIngredient(t *testing.T) {
	a := testApp(t, "2025-01-01")

	t.Run("RecipeMustExist", func(t *testing.T) {
		out := runCmds(t, a, []string{"add ingredient Pasta Tomato 200 ml"})
		if !strings.Contains(out, "Error: Recipe 'Pasta' does not exist. Create it first.") {
			t.Errorf("Expected missing-recipe error, got: %s", out)
		}
	})

	t.Run("ReplaceKeepsSize", func(t *testing.T) {
		runCmds(t, a, []string{
			"create recipe Pasta",
			"add ingredient Pasta Tomato 200 ml",
			"add ingredient Pasta Tomato 300 g",
		})
		rec, _ := a.book.Get("Pasta")
		if rec.Len() != 1 {
			t.Fatalf("Expected replacement, not merge; got %d ingredients", rec.Len())
		}
		ing := rec.Ingredients()[0]
		if ing.Quantity != 300 || ing.Unit != "g" {
			t.Errorf("Expected latest values to win, got %v %s", ing.Quantity, ing.Unit)
		}
	})

	t.Run("BadQuantity", func(t *testing.T) {
		out := runCmds(t, a, []string{"add ingredient Pasta Tomato lots ml"})
		if !strings.Contains(out, "Error: Invalid quantity 'lots'. Expected a number.") {
			t.Errorf("Expected quantity error, got: %s", out)
		}
	})
}

func TestRemoveIngredient(t *testing.T) {
	a := testApp(t, "2025-01-01")
	out := runCmds(t, a, []string{
		"remove ingredient Pasta Tomato",
		"create recipe Pasta",
		"remove ingredient Pasta Tomato",
		"add ingredient Pasta Tomato 200 ml",
		"remove ingredient Pasta Tomato",
	})
	if !strings.Contains(out, "No recipe named 'Pasta' found.") {
		t.Errorf("Expected recipe-not-found notice, got: %s", out)
	}
	if !strings.Contains(out, "Recipe 'Pasta' has no ingredient named 'Tomato'.") {
		t.Errorf("Expected ingredient-not-found notice, got: %s", out)
	}
	if !strings.Contains(out, "Removed ingredient 'Tomato' from recipe 'Pasta'.") {
		t.Errorf("Expected removal confirmation, got: %s", out)
	}
}

func TestRemoveRecipeCascades(t *testing.T) {
	a := testApp(t, "2025-01-01")
	out := runCmds(t, a, []string{
		"create recipe Pasta",
		"create recipe Salad",
		"plan Pasta 2025-02-01",
		"plan Pasta 2025-02-02",
		"plan Salad 2025-02-01",
		"remove recipe Pasta",
	})
	if !strings.Contains(out, "Removed recipe 'Pasta'. Also removed 2 planned occurrence(s).") {
		t.Errorf("Expected cascade count in message, got: %s", out)
	}
	if a.plan.Len() != 1 {
		t.Errorf("Expected exactly the Salad entry to survive, got %d entries", a.plan.Len())
	}

	t.Run("NoCascadeSuffixWhenUnplanned", func(t *testing.T) {
		out := runCmds(t, a, []string{"remove recipe Salad"})
		// One Salad entry was still planned, so the suffix appears.
		if !strings.Contains(out, "Also removed 1 planned occurrence(s).") {
			t.Errorf("Expected cascade suffix for Salad, got: %s", out)
		}
		out = runCmds(t, a, []string{"create recipe Soup", "remove recipe Soup"})
		if strings.Contains(out, "Also removed") {
			t.Errorf("Expected no cascade suffix for unplanned recipe, got: %s", out)
		}
	})
}

func TestPlanAndUnplan(t *testing.T) {
	a := testApp(t, "2025-01-01")

	t.Run("PlanUnknownRecipe", func(t *testing.T) {
		out := runCmds(t, a, []string{"plan Pasta 2025-02-01"})
		if !strings.Contains(out, "Error: Recipe 'Pasta' does not exist.") {
			t.Errorf("Expected error, got: %s", out)
		}
		if a.plan.Len() != 0 {
			t.Error("Expected no plan entry on error")
		}
	})

	t.Run("RoundTrip", func(t *testing.T) {
		runCmds(t, a, []string{"create recipe Pasta"})
		before := a.plan.Len()
		out := runCmds(t, a, []string{
			"plan Pasta 2025-02-01",
			"unplan Pasta 2025-02-01",
		})
		if !strings.Contains(out, "Planned recipe 'Pasta' on 2025-02-01.") {
			t.Errorf("Expected plan confirmation, got: %s", out)
		}
		if !strings.Contains(out, "Removed planned recipe 'Pasta' on 2025-02-01.") {
			t.Errorf("Expected unplan confirmation, got: %s", out)
		}
		if a.plan.Len() != before {
			t.Errorf("Expected plan size restored to %d, got %d", before, a.plan.Len())
		}
	})

	t.Run("UnplanNotFound", func(t *testing.T) {
		out := runCmds(t, a, []string{"unplan Pasta 2025-03-01"})
		if !strings.Contains(out, "No planned recipe 'Pasta' on 2025-03-01 found.") {
			t.Errorf("Expected not-found notice, got: %s", out)
		}
	})
}

func TestListPantry(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		a := testApp(t, "2025-01-01")
		out := runCmds(t, a, []string{"list pantry"})
		if !strings.Contains(out, "Pantry is empty.") {
			t.Errorf("Expected empty-pantry message, got: %s", out)
		}
	})

	t.Run("SortedByExpiry", func(t *testing.T) {
		a := testApp(t, "2025-01-01")
		out := runCmds(t, a, []string{
			"add Bread Bakery 2025-03-01",
			"add Milk Dairy 2025-02-01",
			"list pantry",
		})
		milk := strings.Index(out, "- Milk")
		bread := strings.Index(out, "- Bread")
		if milk == -1 || bread == -1 || milk > bread {
			t.Errorf("Expected Milk before Bread in listing:\n%s", out)
		}
	})
}

func TestListRecipe(t *testing.T) {
	a := testApp(t, "2025-01-01")
	out := runCmds(t, a, []string{"list recipe Empty"})
	if !strings.Contains(out, "No recipe named 'Empty' found.") {
		t.Errorf("Expected not-found message, got: %s", out)
	}

	out = runCmds(t, a, []string{"create recipe Empty", "list recipe Empty"})
	if !strings.Contains(out, "Recipe 'Empty' has no ingredients.") {
		t.Errorf("Expected has-no-ingredients message, got: %s", out)
	}

	out = runCmds(t, a, []string{
		"add ingredient Empty Flour 500 g",
		"add ingredient Empty Water 250 ml",
		"list recipe Empty",
	})
	if !strings.Contains(out, "Ingredients for recipe 'Empty':") {
		t.Errorf("Expected ingredient header, got: %s", out)
	}
	flour := strings.Index(out, "Flour – 500 g")
	water := strings.Index(out, "Water – 250 ml")
	if flour == -1 || water == -1 || flour > water {
		t.Errorf("Expected insertion order Flour then Water:\n%s", out)
	}
}

func TestListExpiring(t *testing.T) {
	t.Run("BoundaryToday", func(t *testing.T) {
		a := testApp(t, "2025-01-01")
		out := runCmds(t, a, []string{
			"add Milk Dairy 2025-01-01",
			"list expiring",
		})
		if !strings.Contains(out, "Milk") || !strings.Contains(out, "(in 0 day(s))") {
			t.Errorf("Expected Milk with 0 days remaining, got: %s", out)
		}
	})

	t.Run("FarBoundary", func(t *testing.T) {
		a := testApp(t, "2025-01-01")
		out := runCmds(t, a, []string{
			"add Yogurt Dairy 2025-01-04",
			"list expiring",
		})
		if !strings.Contains(out, "(in 3 day(s))") {
			t.Errorf("Expected 3 days remaining at the far boundary, got: %s", out)
		}
	})

	t.Run("ExpiredExcluded", func(t *testing.T) {
		a := testApp(t, "2025-01-05")
		out := runCmds(t, a, []string{
			"add Milk Dairy 2025-01-01",
			"list expiring",
		})
		if !strings.Contains(out, "No items expiring within the next 3 days.") {
			t.Errorf("Expected expired item to be excluded, got: %s", out)
		}
	})
}

func TestSuggestRecipes(t *testing.T) {
	t.Run("NoRecipes", func(t *testing.T) {
		a := testApp(t, "2025-01-01")
		out := runCmds(t, a, []string{"suggest recipes"})
		if !strings.Contains(out, "No recipes available.") {
			t.Errorf("Expected no-recipes message, got: %s", out)
		}
	})

	t.Run("ExpiredPantry", func(t *testing.T) {
		a := testApp(t, "2025-01-01")
		out := runCmds(t, a, []string{
			"create recipe Pasta",
			"add ingredient Pasta Tomato 200 ml",
			"add Tomato Veg 2024-12-01",
			"suggest recipes",
		})
		if !strings.Contains(out, "Pantry is empty or all items are expired. No recipe suggestions.") {
			t.Errorf("Expected expired-pantry message, got: %s", out)
		}
	})

	t.Run("Monotonic", func(t *testing.T) {
		a := testApp(t, "2025-01-01")
		out := runCmds(t, a, []string{
			"create recipe Pasta",
			"add ingredient Pasta Tomato 200 ml",
			"add ingredient Pasta Cheese 50 g",
			"add Tomato Veg 2025-06-01",
			"suggest recipes",
		})
		if !strings.Contains(out, "No recipes can be fully prepared with current pantry items.") {
			t.Errorf("Expected partial coverage to exclude Pasta, got: %s", out)
		}

		out = runCmds(t, a, []string{"add Cheese Dairy 2025-06-01", "suggest recipes"})
		if !strings.Contains(out, "You can prepare the following recipes with your current pantry:") ||
			!strings.Contains(out, "- Pasta") {
			t.Errorf("Expected Pasta suggested once completed, got: %s", out)
		}

		out = runCmds(t, a, []string{"remove Cheese", "suggest recipes"})
		if strings.Contains(out, "- Pasta") {
			t.Errorf("Expected Pasta to disappear after removal, got: %s", out)
		}
	})

	t.Run("EmptyRecipeExcluded", func(t *testing.T) {
		a := testApp(t, "2025-01-01")
		out := runCmds(t, a, []string{
			"create recipe Nothing",
			"add Tomato Veg 2025-06-01",
			"suggest recipes",
		})
		if !strings.Contains(out, "No recipes can be fully prepared with current pantry items.") {
			t.Errorf("Expected empty recipe to never match, got: %s", out)
		}
	})
}

func TestGenerateList(t *testing.T) {
	t.Run("PreconditionOrder", func(t *testing.T) {
		a := testApp(t, "2025-01-01")
		out := runCmds(t, a, []string{"generate list"})
		if !strings.Contains(out, "No recipes defined. Shopping list is empty.") {
			t.Errorf("Expected no-recipes message first, got: %s", out)
		}

		out = runCmds(t, a, []string{"create recipe Pasta", "generate list"})
		if !strings.Contains(out, "No meals planned. Shopping list is empty.") {
			t.Errorf("Expected no-meals message, got: %s", out)
		}
	})

	t.Run("NoShoppingNeeded", func(t *testing.T) {
		a := testApp(t, "2025-01-01")
		out := runCmds(t, a, []string{
			"create recipe Pasta",
			"add ingredient Pasta Tomato 200 ml",
			"add Tomato Veg 2099-01-01",
			"plan Pasta 2030-01-01",
			"generate list",
		})
		if !strings.Contains(out, "All planned ingredients are already available in your pantry. No shopping needed!") {
			t.Errorf("Expected no-shopping message, got: %s", out)
		}
	})

	t.Run("AggregatesAcrossPlans", func(t *testing.T) {
		a := testApp(t, "2025-01-01")
		out := runCmds(t, a, []string{
			"create recipe Pasta",
			"add ingredient Pasta Tomato 200 ml",
			"plan Pasta 2025-02-01",
			"plan Pasta 2025-02-02",
			"generate list",
		})
		if !strings.Contains(out, "Shopping list (missing ingredients for planned meals):") {
			t.Errorf("Expected shopping header, got: %s", out)
		}
		if !strings.Contains(out, "- Tomato – 400 ml") {
			t.Errorf("Expected summed quantity 400 ml, got: %s", out)
		}
	})

	t.Run("UnitMismatchSplitsLines", func(t *testing.T) {
		a := testApp(t, "2025-01-01")
		out := runCmds(t, a, []string{
			"create recipe Soup",
			"create recipe Stew",
			"add ingredient Soup Tomato 200 ml",
			"add ingredient Stew Tomato 3 pieces",
			"plan Soup 2025-02-01",
			"plan Stew 2025-02-01",
			"generate list",
		})
		if !strings.Contains(out, "- Tomato – 200 ml") || !strings.Contains(out, "- Tomato – 3 pieces") {
			t.Errorf("Expected two independent Tomato lines, got: %s", out)
		}
	})

	t.Run("TruncatesFractionalTotals", func(t *testing.T) {
		a := testApp(t, "2025-01-01")
		out := runCmds(t, a, []string{
			"create recipe Cake",
			"add ingredient Cake Vanilla 1.35 tsp",
			"plan Cake 2025-02-01",
			"plan Cake 2025-02-02",
			"generate list",
		})
		if !strings.Contains(out, "- Vanilla – 2 tsp") {
			t.Errorf("Expected 2.7 to display truncated as 2, got: %s", out)
		}
	})

	t.Run("CascadeEmptiesPlan", func(t *testing.T) {
		a := testApp(t, "2025-01-01")
		out := runCmds(t, a, []string{
			"create recipe Pasta",
			"create recipe Salad",
			"plan Pasta 2025-02-01",
			"remove recipe Pasta",
			"generate list",
		})
		if !strings.Contains(out, "No meals planned. Shopping list is empty.") {
			t.Errorf("Expected empty plan after cascade, got: %s", out)
		}
	})
}

func TestRouterBasics(t *testing.T) {
	a := testApp(t, "2025-01-01")

	t.Run("EmptyLine", func(t *testing.T) {
		resp, cont := a.HandleLine("   ")
		if resp != "Enter a command" || !cont {
			t.Errorf("Expected prompt message and continue, got %q, %v", resp, cont)
		}
	})

	t.Run("UnknownCommand", func(t *testing.T) {
		resp, cont := a.HandleLine("sing")
		if !strings.Contains(resp, "Error: Unknown command 'sing'. Type 'help' for a list of commands.") || !cont {
			t.Errorf("Expected unknown-command error, got %q, %v", resp, cont)
		}
	})

	t.Run("DoubleSpaceBreaksArity", func(t *testing.T) {
		resp, _ := a.HandleLine("remove  Milk")
		// "remove" "" "Milk": the empty token routes to remove-item with 3 tokens.
		if !strings.Contains(resp, "Error: Usage: remove <ItemName>") {
			t.Errorf("Expected arity error for double space, got %q", resp)
		}
	})

	t.Run("Help", func(t *testing.T) {
		resp, cont := a.HandleLine("help")
		if !strings.Contains(resp, "Available commands:") || !cont {
			t.Errorf("Expected help summary, got %q, %v", resp, cont)
		}
	})

	t.Run("ExitAndQuit", func(t *testing.T) {
		resp, cont := a.HandleLine("exit")
		if resp != "Goodbye!" || cont {
			t.Errorf("Expected farewell and terminate, got %q, %v", resp, cont)
		}
		resp, cont = a.HandleLine("quit")
		if resp != "Goodbye!" || cont {
			t.Errorf("Expected farewell and terminate, got %q, %v", resp, cont)
		}
	})

	t.Run("UppercaseExitRejected", func(t *testing.T) {
		resp, cont := a.HandleLine("EXIT")
		if !strings.Contains(resp, "Unknown command 'EXIT'") || !cont {
			t.Errorf("Expected case-sensitive rejection, got %q, %v", resp, cont)
		}
	})

	t.Run("StatsWithoutStore", func(t *testing.T) {
		resp, _ := a.HandleLine("stats")
		if !strings.Contains(resp, "Command metrics are disabled for this session.") {
			t.Errorf("Expected disabled-metrics notice, got %q", resp)
		}
	})
}
