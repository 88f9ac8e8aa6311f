package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/handrank/evaluator/bitwise"
	"github.com/lox/handrank/evaluator/phash"
	"github.com/lox/handrank/internal/artifact"
	"github.com/lox/handrank/internal/automaton"
	"github.com/lox/handrank/internal/config"
	"github.com/lox/handrank/internal/crosscheck"
	"github.com/lox/handrank/poker"
)

func TestParseHands(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected int
		hasError bool
	}{
		{"single hand", []string{"AsKsQsJsTs"}, 1, false},
		{"seven cards with spaces", []string{"7h 7d 5s 5c 3h 3d 2c"}, 1, false},
		{"multiple hands", []string{"AsKsQsJsTs", "2c3d5h7s9c8d"}, 2, false},
		{"too few cards", []string{"AsKs"}, 0, true},
		{"too many cards", []string{"AsKsQsJsTs9s8s7s"}, 0, true},
		{"duplicate card", []string{"AsAsQsJsTs"}, 0, true},
		{"invalid card", []string{"AsKsQsJsXx"}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hands, err := parseHands(tt.input)
			if tt.hasError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, hands, tt.expected)
		})
	}
}

func evalEngines() []crosscheck.Engine {
	return []crosscheck.Engine{
		crosscheck.Adapt("bitwise", bitwise.New()),
		crosscheck.Adapt("phash", phash.New()),
	}
}

func TestRenderHands(t *testing.T) {
	hands, err := parseHands([]string{"AsKsQsJsTs", "7h7d5s5c3h3d2c"})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, renderHands(&buf, hands, evalEngines()))

	out := buf.String()
	assert.Contains(t, out, "Hand Evaluation")
	assert.Contains(t, out, "Straight Flush [A K Q J T]")
	assert.Contains(t, out, "Two Pair [7 7 5 5 3]")
	assert.Contains(t, out, "bitwise")
	assert.Contains(t, out, "phash")
	assert.Contains(t, out, "Winner:")
	assert.Contains(t, out, "AsKsQsJsTs")
}

func TestRenderHandsSplit(t *testing.T) {
	hands, err := parseHands([]string{"AsKdQh7c2s", "AhKcQd7s2h"})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, renderHands(&buf, hands, evalEngines()))
	assert.Contains(t, buf.String(), "Split:")
}

func TestRenderCensus(t *testing.T) {
	var buf bytes.Buffer
	renderCensus(&buf, automaton.Expected7CardCensus, &automaton.Expected7CardCensus)
	out := buf.String()
	assert.Contains(t, out, "Straight Flush")
	assert.Contains(t, out, "41584")
	assert.Contains(t, out, "133784560")
	assert.NotContains(t, out, "want")

	off := automaton.Expected7CardCensus
	off[poker.Flush]++
	buf.Reset()
	renderCensus(&buf, off, &automaton.Expected7CardCensus)
	assert.Contains(t, buf.String(), "want 4047644")
}

func TestNewLoggerLevel(t *testing.T) {
	cfg := config.Default()
	var buf bytes.Buffer

	newLogger(&buf, cfg, false).Debug("hidden")
	assert.Empty(t, buf.String())

	newLogger(&buf, cfg, true).Debug("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestBuildAndVerify(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "handrank.hcl")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
log_level = "error"

tables {
  path = "`+filepath.Join(dir, "phash.dat")+`"
}

automaton {
  path      = "`+filepath.Join(dir, "hr5.dat")+`"
  hand_size = 5
}

check {
  hands     = 2000
  hand_size = 5
}
`), 0o644))
	g := &Globals{Config: cfgPath}

	require.NoError(t, (&TablesCmd{}).Run(g))
	require.NoError(t, (&AutomatonCmd{}).Run(g))

	m, err := artifact.ReadManifest(filepath.Join(dir, "hr5.dat"))
	require.NoError(t, err)
	assert.Equal(t, artifact.KindTransition, m.Kind)
	assert.Equal(t, 5, m.HandSize)

	require.NoError(t, (&VerifyCmd{Path: filepath.Join(dir, "phash.dat"), Census: true}).Run(g))
	require.NoError(t, (&VerifyCmd{Path: filepath.Join(dir, "hr5.dat"), Census: true}).Run(g))
	require.NoError(t, (&CheckCmd{}).Run(g))

	// A corrupted artifact no longer matches its manifest.
	words, err := artifact.ReadWords(filepath.Join(dir, "phash.dat"))
	require.NoError(t, err)
	words[0] ^= 1
	require.NoError(t, artifact.WriteWords(filepath.Join(dir, "phash.dat"), words))
	err = (&VerifyCmd{Path: filepath.Join(dir, "phash.dat")}).Run(g)
	assert.ErrorIs(t, err, artifact.ErrChecksum)
}
