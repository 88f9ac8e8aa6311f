package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/handrank/evaluator/phash"
	"github.com/lox/handrank/evaluator/transition"
	"github.com/lox/handrank/internal/artifact"
	"github.com/lox/handrank/internal/automaton"
	"github.com/lox/handrank/poker"
)

// VerifyCmd checks an artifact's manifest and, for transition tables, walks
// every hand to confirm the category census.
type VerifyCmd struct {
	Path   string `arg:"" help:"Artifact to verify"`
	Census bool   `default:"true" negatable:"" help:"Walk every hand of a transition table"`
}

func (c *VerifyCmd) Run(g *Globals) error {
	cfg, err := g.load()
	if err != nil {
		return err
	}
	logger := g.logger(cfg).WithPrefix("verify")

	m, err := artifact.ReadManifest(c.Path)
	if err != nil {
		return err
	}
	words, err := artifact.ReadWords(c.Path)
	if err != nil {
		return err
	}
	if err := m.Verify(words); err != nil {
		return err
	}
	logger.Info("Checksum matches", "path", c.Path, "kind", m.Kind, "build_id", m.BuildID, "created_at", m.CreatedAt)

	switch m.Kind {
	case artifact.KindTables:
		if _, err := phash.TablesFromWords(words); err != nil {
			return err
		}
		logger.Info("Tables are well formed", "words", len(words))
		return nil

	case artifact.KindTransition:
		if _, err := transition.New(words, transition.WithHandSize(m.HandSize)); err != nil {
			return err
		}
		if !c.Census {
			return nil
		}

		ctx, cancel := signalContext(logger)
		defer cancel()

		counts, err := automaton.Census(ctx, words, m.HandSize)
		if err != nil {
			return err
		}
		var want *automaton.Counts
		if m.HandSize == 7 {
			want = &automaton.Expected7CardCensus
		}
		renderCensus(os.Stdout, counts, want)
		if counts[0] != 0 {
			return fmt.Errorf("%d hands reached an invalid rank", counts[0])
		}
		if m.HandSize == 7 && counts != automaton.Expected7CardCensus {
			return fmt.Errorf("seven card census does not match the known distribution")
		}
		logger.Info("Census complete", "hands", counts.Total())
		return nil
	}
	return fmt.Errorf("unknown artifact kind %q", m.Kind)
}

var mismatchStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("9"))

// renderCensus prints one line per category. Counts that differ from want
// are highlighted when want is known.
func renderCensus(w io.Writer, counts automaton.Counts, want *automaton.Counts) {
	fmt.Fprintln(w, headerStyle.Render("Census"))
	for cat := poker.HighCard; cat <= poker.StraightFlush; cat++ {
		line := fmt.Sprintf("%-16s %12d", cat, counts[cat])
		switch {
		case want == nil:
			fmt.Fprintln(w, "  "+categoryStyle.Render(line))
		case want[cat] == counts[cat]:
			fmt.Fprintln(w, "  "+winStyle.Render(line))
		default:
			fmt.Fprintln(w, "  "+mismatchStyle.Render(fmt.Sprintf("%s  want %d", line, want[cat])))
		}
	}
	fmt.Fprintf(w, "  %-16s %12d\n", "Total", counts.Total())
}
