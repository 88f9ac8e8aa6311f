package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Parallel()

	c, err := Load(filepath.Join(t.TempDir(), "missing.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
	require.NoError(t, c.Validate())

	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, 7, c.Automaton.HandSize)
	assert.Equal(t, "handranks.dat", c.Automaton.Path)
	assert.Equal(t, "phash.dat", c.Tables.Path)
	assert.Equal(t, 5, c.Check.HandSize)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
log_level = "debug"

automaton {
  path      = "/var/lib/handrank/hr6.dat"
  hand_size = 6
}

check {
  hands = 500
  seed  = 42
}
`)
	c, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, c.Validate())

	assert.Equal(t, log.DebugLevel, c.Level())
	assert.Equal(t, "/var/lib/handrank/hr6.dat", c.Automaton.Path)
	assert.Equal(t, 6, c.Automaton.HandSize)
	assert.Equal(t, 100_000, c.Automaton.ProgressEvery)
	assert.Equal(t, 500, c.Check.Hands)
	assert.Equal(t, int64(42), c.Check.Seed)
	assert.Equal(t, "phash.dat", c.Tables.Path, "missing block gets defaults")
}

func TestLoadRejectsMalformed(t *testing.T) {
	t.Parallel()

	_, err := Load(writeConfig(t, `automaton {`))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, `unknown_attr = 1`))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }},
		{"automaton hand size", func(c *Config) { c.Automaton.HandSize = 8 }},
		{"progress", func(c *Config) { c.Automaton.ProgressEvery = -1 }},
		{"check hands", func(c *Config) { c.Check.Hands = -5 }},
		{"check hand size", func(c *Config) { c.Check.HandSize = 4 }},
		{"workers", func(c *Config) { c.Check.Workers = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.modify(c)
			assert.Error(t, c.Validate())
		})
	}
}
