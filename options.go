package muskingum

import (
	"log/slog"

	"github.com/katalvlaran/muskingum/routing"
)

// config holds construction-time options, resolved before New builds the
// Engine's component chain.
type config struct {
	calcMethod routing.CalcMethod
	budgetType string
	verbose    bool
	logger     *slog.Logger
}

// Option configures an Engine at construction time.
type Option func(*config)

// WithCalcMethod selects the numeric kernel variant. Reference and
// Optimized run the same arithmetic, so the choice does not change
// results; New rejects any other value with ErrInvalidConfig.
func WithCalcMethod(m routing.CalcMethod) Option {
	return func(c *config) { c.calcMethod = m }
}

// WithBudgetType stores an opaque budget-type tag on the Engine, returned
// by Engine.BudgetType for consumption by an external mass-budget
// collaborator. The engine itself never interprets this value.
func WithBudgetType(budgetType string) Option {
	return func(c *config) { c.budgetType = budgetType }
}

// WithVerbose enables per-tick and startup diagnostic logging at
// slog.LevelDebug / slog.LevelInfo respectively.
func WithVerbose(verbose bool) Option {
	return func(c *config) { c.verbose = verbose }
}

// WithLogger attaches a structured logger. A nil logger is replaced with
// slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

func defaultConfig() config {
	return config{
		calcMethod: routing.Reference,
		logger:     slog.Default(),
	}
}
