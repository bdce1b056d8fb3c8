// Package app implements the interpreter session: the three collections,
// the command router, and the operation handlers.
package app

import (
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"fridgesavvy/internal/command"
	"fridgesavvy/internal/config"
	"fridgesavvy/internal/metrics"
	"fridgesavvy/internal/pantry"
	"fridgesavvy/internal/planner"
	"fridgesavvy/internal/recipe"
)

// App owns one interpreter session: the pantry, the recipe book and the
// meal plan. State lives for the session lifetime only and is mutated by
// exactly one caller at a time.
type App struct {
	pantry *pantry.Pantry
	book   *recipe.Book
	plan   *planner.MealPlan

	cfg       *config.Config
	store     *metrics.Store // optional; nil disables command metrics
	sessionID string
	today     func() time.Time
}

// New creates a fresh session. cfg may be nil, falling back to defaults;
// store may be nil to disable command metrics; today may be nil,
// defaulting to the current civil date.
func New(cfg *config.Config, store *metrics.Store, today func() time.Time) *App {
	if cfg == nil {
		cfg = config.Default()
	}
	if today == nil {
		today = func() time.Time {
			y, m, d := time.Now().Date()
			return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		}
	}
	return &App{
		pantry:    pantry.New(),
		book:      recipe.NewBook(),
		plan:      planner.New(),
		cfg:       cfg,
		store:     store,
		sessionID: uuid.NewString(),
		today:     today,
	}
}

// HandleLine interprets one input line and returns the textual response
// together with a signal telling the host whether to keep reading.
func (a *App) HandleLine(line string) (string, bool) {
	start := time.Now()

	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return "Enter a command", true
	}

	tokens := command.Tokenize(trimmed)
	cmd, err := command.Parse(tokens)
	if err != nil {
		a.record("unknown", metrics.OutcomeError, start)
		return "Error: " + err.Error(), true
	}

	switch cmd.Kind {
	case command.KindExit:
		a.record(cmd.Kind.String(), metrics.OutcomeOK, start)
		return "Goodbye!", false
	case command.KindHelp:
		a.record(cmd.Kind.String(), metrics.OutcomeOK, start)
		return helpText(), true
	}

	resp, herr := a.dispatch(cmd)
	if herr != nil {
		a.record(cmd.Kind.String(), metrics.OutcomeError, start)
		return "Error: " + herr.Error(), true
	}
	a.record(cmd.Kind.String(), metrics.OutcomeOK, start)
	return resp, true
}

// dispatch routes a classified command to its handler. Handlers return
// an error only for the user-input error class; domain-state negatives
// come back as plain response text.
func (a *App) dispatch(cmd command.Command) (string, error) {
	switch cmd.Kind {
	case command.KindAddItem:
		return a.addItem(cmd.Tokens)
	case command.KindAddIngredient:
		return a.addIngredient(cmd.Tokens)
	case command.KindRemoveItem:
		return a.removeItem(cmd.Tokens)
	case command.KindRemoveRecipe:
		return a.removeRecipe(cmd.Tokens)
	case command.KindRemoveIngredient:
		return a.removeIngredient(cmd.Tokens)
	case command.KindCreateRecipe:
		return a.createRecipe(cmd.Tokens)
	case command.KindPlan:
		return a.planRecipe(cmd.Tokens)
	case command.KindUnplan:
		return a.unplanRecipe(cmd.Tokens)
	case command.KindListPantry:
		return a.listPantry(cmd.Tokens)
	case command.KindListRecipe:
		return a.listRecipe(cmd.Tokens)
	case command.KindListExpiring:
		return a.listExpiring(cmd.Tokens)
	case command.KindSuggestRecipes:
		return a.suggestRecipes()
	case command.KindGenerateList:
		return a.generateList()
	case command.KindStats:
		return a.stats()
	}
	// Unreachable: Parse only yields the kinds above.
	return "", nil
}

func (a *App) record(cmdName, outcome string, start time.Time) {
	if a.store == nil {
		return
	}
	err := a.store.Record(metrics.CommandMetric{
		SessionID: a.sessionID,
		Command:   cmdName,
		Outcome:   outcome,
		LatencyMS: time.Since(start).Milliseconds(),
	})
	if err != nil {
		log.Printf("Warning: failed to record command metric: %v", err)
	}
}
