package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/handrank/evaluator/bitwise"
	"github.com/lox/handrank/evaluator/phash"
	"github.com/lox/handrank/internal/crosscheck"
	"github.com/lox/handrank/poker"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	handStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	engineStyle = lipgloss.NewStyle().
			Width(12).
			Foreground(lipgloss.Color("8"))

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))
)

// EvalCmd scores hands with every engine and shows the winner.
type EvalCmd struct {
	Hands []string `arg:"" help:"Hands of 5 to 7 cards, e.g. 'AsKsQsJsTs' '7h7d5s5c3h3d2c'"`
	Table string   `help:"Transition table to include (defaults to automaton.path when present)"`
}

func (c *EvalCmd) Run(g *Globals) error {
	cfg, err := g.load()
	if err != nil {
		return err
	}
	logger := g.logger(cfg)

	hands, err := parseHands(c.Hands)
	if err != nil {
		return err
	}

	tables, err := loadTables(cfg.Tables.Path, logger)
	if err != nil {
		return err
	}
	engines := []crosscheck.Engine{
		crosscheck.Adapt("bitwise", bitwise.New()),
		crosscheck.Adapt("phash", phash.NewWithTables(tables)),
	}

	tablePath := cfg.Automaton.Path
	if c.Table != "" {
		tablePath = c.Table
	}
	tr, err := openTransition(tablePath, cfg.Automaton.HandSize, tables)
	switch {
	case err == nil:
		engines = append(engines, crosscheck.Adapt("transition", tr))
	case errors.Is(err, fs.ErrNotExist):
		logger.Debug("No transition table", "path", tablePath)
	default:
		return err
	}

	return renderHands(os.Stdout, hands, engines)
}

// parseHands parses each argument as one hand of 5 to 7 distinct cards.
func parseHands(args []string) ([][]poker.Card, error) {
	hands := make([][]poker.Card, 0, len(args))
	for i, arg := range args {
		hand, err := poker.ParseCards(strings.TrimSpace(arg))
		if err != nil {
			return nil, fmt.Errorf("hand %d: %w", i+1, err)
		}
		if len(hand) < 5 || len(hand) > 7 {
			return nil, fmt.Errorf("hand %d: must contain 5 to 7 cards, got %d", i+1, len(hand))
		}
		var seen uint64
		for _, card := range hand {
			if seen&(1<<card) != 0 {
				return nil, fmt.Errorf("hand %d: duplicate card %s", i+1, card)
			}
			seen |= 1 << card
		}
		hands = append(hands, hand)
	}
	return hands, nil
}

// renderHands prints each hand with every engine's score and decoding, then
// the strongest hand by the reference evaluator.
func renderHands(w io.Writer, hands [][]poker.Card, engines []crosscheck.Engine) error {
	fmt.Fprintln(w, headerStyle.Render("Hand Evaluation"))

	var bestScore int16
	for i, hand := range hands {
		fmt.Fprintf(w, "\n%s\n", handStyle.Render(poker.FormatCards(hand)))
		for _, e := range engines {
			score := e.Score(hand)
			if score == 0 {
				fmt.Fprintf(w, "  %s %s\n", engineStyle.Render(e.Name), "unsupported hand size")
				continue
			}
			d, ok := e.Decode(score)
			if !ok {
				return fmt.Errorf("%s: score %#x does not decode", e.Name, uint32(score))
			}
			fmt.Fprintf(w, "  %s %-10s %s\n",
				engineStyle.Render(e.Name),
				fmt.Sprintf("%#x", uint32(score)),
				categoryStyle.Render(d.String()))
		}

		ref, err := crosscheck.Oracle(hand)
		if err != nil {
			return err
		}
		if i == 0 || ref > bestScore {
			bestScore = ref
		}
	}

	if len(hands) > 1 {
		var winners []string
		for _, hand := range hands {
			if ref, _ := crosscheck.Oracle(hand); ref == bestScore {
				winners = append(winners, poker.FormatCards(hand))
			}
		}
		label := "Winner"
		if len(winners) > 1 {
			label = "Split"
		}
		fmt.Fprintf(w, "\n%s %s\n", headerStyle.Render(label+":"), winStyle.Render(strings.Join(winners, ", ")))
	}
	return nil
}
