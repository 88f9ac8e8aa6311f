// Package config loads the handrank build configuration from HCL.
package config

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// DefaultFile is the configuration file read when none is given.
const DefaultFile = "handrank.hcl"

// Config is the complete build configuration.
type Config struct {
	LogLevel  string             `hcl:"log_level,optional"`
	Tables    *TablesSettings    `hcl:"tables,block"`
	Automaton *AutomatonSettings `hcl:"automaton,block"`
	Check     *CheckSettings     `hcl:"check,block"`
}

// TablesSettings configures the perfect hash table artifact.
type TablesSettings struct {
	Path string `hcl:"path,optional"`
}

// AutomatonSettings configures the transition table build.
type AutomatonSettings struct {
	Path          string `hcl:"path,optional"`
	HandSize      int    `hcl:"hand_size,optional"`
	ProgressEvery int    `hcl:"progress_every,optional"`
}

// CheckSettings configures random cross-engine checks.
type CheckSettings struct {
	Hands    int   `hcl:"hands,optional"`
	Seed     int64 `hcl:"seed,optional"`
	HandSize int   `hcl:"hand_size,optional"`
	Workers  int   `hcl:"workers,optional"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads filename, returning defaults when it does not exist.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var c Config
	diags = gohcl.DecodeBody(file.Body, nil, &c)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	c.applyDefaults()
	return &c, nil
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Tables == nil {
		c.Tables = &TablesSettings{}
	}
	if c.Tables.Path == "" {
		c.Tables.Path = "phash.dat"
	}
	if c.Automaton == nil {
		c.Automaton = &AutomatonSettings{}
	}
	if c.Automaton.Path == "" {
		c.Automaton.Path = "handranks.dat"
	}
	if c.Automaton.HandSize == 0 {
		c.Automaton.HandSize = 7
	}
	if c.Automaton.ProgressEvery == 0 {
		c.Automaton.ProgressEvery = 100_000
	}
	if c.Check == nil {
		c.Check = &CheckSettings{}
	}
	if c.Check.Hands == 0 {
		c.Check.Hands = 100_000
	}
	if c.Check.Seed == 0 {
		c.Check.Seed = 1
	}
	if c.Check.HandSize == 0 {
		c.Check.HandSize = 5
	}
}

// Validate checks the configuration for values no build can use.
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	if c.Automaton.HandSize < 5 || c.Automaton.HandSize > 7 {
		return fmt.Errorf("automaton: hand size must be between 5 and 7, got %d", c.Automaton.HandSize)
	}
	if c.Automaton.ProgressEvery < 1 {
		return fmt.Errorf("automaton: progress_every must be positive")
	}
	if c.Check.Hands < 1 {
		return fmt.Errorf("check: hands must be positive")
	}
	if c.Check.HandSize < 5 || c.Check.HandSize > 7 {
		return fmt.Errorf("check: hand size must be between 5 and 7, got %d", c.Check.HandSize)
	}
	if c.Check.Workers < 0 {
		return fmt.Errorf("check: workers must not be negative")
	}
	return nil
}

// Level returns the parsed log level. Call Validate first.
func (c *Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
