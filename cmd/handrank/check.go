package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/handrank/evaluator/bitwise"
	"github.com/lox/handrank/evaluator/phash"
	"github.com/lox/handrank/evaluator/transition"
	"github.com/lox/handrank/internal/artifact"
	"github.com/lox/handrank/internal/automaton"
	"github.com/lox/handrank/internal/crosscheck"
	"github.com/lox/handrank/poker"
)

// CheckCmd deals random hands and compares every engine with the reference
// evaluator.
type CheckCmd struct {
	Hands    int    `help:"Number of hands (overrides check.hands)"`
	Seed     *int64 `help:"RNG seed (overrides check.seed)"`
	HandSize int    `short:"n" help:"Cards per hand, 5 to 7 (overrides check.hand_size)"`
	Workers  int    `help:"Worker goroutines (overrides check.workers)"`
	Table    string `help:"Transition table to include (defaults to automaton.path when present)"`
	Generate bool   `default:"true" negatable:"" help:"Generate a transition table in memory when none is on disk"`
}

func (c *CheckCmd) Run(g *Globals) error {
	cfg, err := g.load()
	if err != nil {
		return err
	}
	logger := g.logger(cfg)

	run := crosscheck.Config{
		Hands:    cfg.Check.Hands,
		Seed:     cfg.Check.Seed,
		HandSize: cfg.Check.HandSize,
		Workers:  cfg.Check.Workers,
	}
	if c.Hands != 0 {
		run.Hands = c.Hands
	}
	if c.Seed != nil {
		run.Seed = *c.Seed
	}
	if c.HandSize != 0 {
		run.HandSize = c.HandSize
	}
	if c.Workers != 0 {
		run.Workers = c.Workers
	}

	tables, err := loadTables(cfg.Tables.Path, logger)
	if err != nil {
		return err
	}
	engines := []crosscheck.Engine{
		crosscheck.Adapt("bitwise", bitwise.New()),
		crosscheck.Adapt("phash", phash.NewWithTables(tables)),
	}

	ctx, cancel := signalContext(logger)
	defer cancel()

	tablePath := cfg.Automaton.Path
	if c.Table != "" {
		tablePath = c.Table
	}
	tr, err := openTransition(tablePath, cfg.Automaton.HandSize, tables)
	switch {
	case err == nil && tr.HandSize() >= run.HandSize:
		engines = append(engines, crosscheck.Adapt("transition", tr))
	case err == nil:
		logger.Warn("Transition table is too small for the hand size, skipping",
			"table_hand_size", tr.HandSize(), "hand_size", run.HandSize)
	case errors.Is(err, fs.ErrNotExist) && c.Generate:
		gen, err := automaton.New(
			automaton.WithHandSize(run.HandSize),
			automaton.WithLogger(logger),
			automaton.WithEvaluator(phash.NewWithTables(tables)),
		)
		if err != nil {
			return err
		}
		res, err := gen.Generate(ctx)
		if err != nil {
			return err
		}
		tr, err := transition.New(res.Words, transition.WithHandSize(res.HandSize), transition.WithTables(tables))
		if err != nil {
			return err
		}
		engines = append(engines, crosscheck.Adapt("transition", tr))
	case errors.Is(err, fs.ErrNotExist):
		logger.Info("No transition table, skipping", "path", tablePath)
	default:
		return err
	}

	checker, err := crosscheck.New(engines,
		crosscheck.WithLogger(logger),
		crosscheck.WithClock(quartz.NewReal()))
	if err != nil {
		return err
	}
	report, err := checker.Run(ctx, run)
	if err != nil {
		return err
	}

	for cat := poker.HighCard; cat <= poker.StraightFlush; cat++ {
		logger.Debug("Dealt", "category", cat, "hands", report.Categories[cat])
	}
	for _, m := range report.Mismatches {
		logger.Error("Mismatch", "detail", m.String())
	}
	if !report.OK() {
		return fmt.Errorf("%d disagreements in %d hands", report.Disagreements, report.Hands)
	}
	return nil
}

// loadTables reads the tables artifact at path, falling back to generated
// tables when it does not exist.
func loadTables(path string, logger *log.Logger) (*phash.Tables, error) {
	t, err := phash.LoadTables(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Debug("No tables artifact, generating", "path", path)
		return phash.Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load tables: %w", err)
	}
	return t, nil
}

// openTransition loads the table at path. The manifest's hand size wins over
// fallback when a manifest is present.
func openTransition(path string, fallback int, tables *phash.Tables) (*transition.Evaluator, error) {
	handSize := fallback
	if m, err := artifact.ReadManifest(path); err == nil {
		handSize = m.HandSize
	}
	return transition.Open(path, transition.WithHandSize(handSize), transition.WithTables(tables))
}
