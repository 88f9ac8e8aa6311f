package main

import (
	"fmt"

	"github.com/coder/quartz"

	"github.com/lox/handrank/evaluator/phash"
	"github.com/lox/handrank/internal/artifact"
	"github.com/lox/handrank/internal/automaton"
)

// TablesCmd writes the Cactus Kev tables as a word artifact.
type TablesCmd struct {
	Out string `short:"o" help:"Output path (overrides tables.path)"`
}

func (c *TablesCmd) Run(g *Globals) error {
	cfg, err := g.load()
	if err != nil {
		return err
	}
	logger := g.logger(cfg).WithPrefix("tables")
	clock := quartz.NewReal()

	out := cfg.Tables.Path
	if c.Out != "" {
		out = c.Out
	}

	start := clock.Now()
	t, err := phash.GenerateTables()
	if err != nil {
		return fmt.Errorf("generate tables: %w", err)
	}
	words := t.Words()
	if err := phash.SaveTables(out, t); err != nil {
		return fmt.Errorf("save tables: %w", err)
	}

	m := artifact.NewManifest(clock, artifact.KindTables, words)
	if err := artifact.WriteManifest(out, m); err != nil {
		return err
	}
	logger.Info("Wrote tables",
		"path", out,
		"words", len(words),
		"build_id", m.BuildID,
		"elapsed", clock.Since(start))
	return nil
}

// AutomatonCmd generates a transition table for one hand size.
type AutomatonCmd struct {
	Out      string `short:"o" help:"Output path (overrides automaton.path)"`
	HandSize int    `short:"n" help:"Hand size, 5 to 7 (overrides automaton.hand_size)"`
}

func (c *AutomatonCmd) Run(g *Globals) error {
	cfg, err := g.load()
	if err != nil {
		return err
	}
	logger := g.logger(cfg)
	clock := quartz.NewReal()

	out := cfg.Automaton.Path
	if c.Out != "" {
		out = c.Out
	}
	handSize := cfg.Automaton.HandSize
	if c.HandSize != 0 {
		handSize = c.HandSize
	}

	gen, err := automaton.New(
		automaton.WithHandSize(handSize),
		automaton.WithLogger(logger),
		automaton.WithClock(clock),
		automaton.WithProgressEvery(cfg.Automaton.ProgressEvery),
	)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext(logger)
	defer cancel()

	res, err := gen.Generate(ctx)
	if err != nil {
		return fmt.Errorf("generate automaton: %w", err)
	}
	if err := artifact.WriteWords(out, res.Words); err != nil {
		return fmt.Errorf("write automaton: %w", err)
	}

	m := artifact.NewManifest(clock, artifact.KindTransition, res.Words)
	m.HandSize = res.HandSize
	m.States = res.States
	if err := artifact.WriteManifest(out, m); err != nil {
		return err
	}
	logger.Info("Wrote transition table",
		"path", out,
		"hand_size", res.HandSize,
		"states", res.States,
		"words", len(res.Words),
		"build_id", m.BuildID)
	return nil
}
