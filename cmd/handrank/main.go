package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/lox/handrank/internal/config"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command.
type Globals struct {
	Config string `short:"c" default:"handrank.hcl" help:"HCL config file (defaults apply when missing)"`
	Debug  bool   `help:"Enable debug logging"`
}

type CLI struct {
	Globals

	Version   kong.VersionFlag `short:"v" help:"Show version"`
	Tables    TablesCmd        `cmd:"" help:"Generate the perfect hash tables"`
	Automaton AutomatonCmd     `cmd:"" help:"Generate a transition table"`
	Verify    VerifyCmd        `cmd:"" help:"Verify an artifact against its manifest"`
	Check     CheckCmd         `cmd:"" help:"Cross check the engines on random hands"`
	Eval      EvalCmd          `cmd:"" help:"Evaluate hands with every engine"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("handrank"),
		kong.Description("Poker hand evaluators and their lookup table generators"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}

// load reads and validates the config file.
func (g *Globals) load() (*config.Config, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// logger builds the stderr logger for cfg. --debug wins over the file.
func (g *Globals) logger(cfg *config.Config) *log.Logger {
	return newLogger(os.Stderr, cfg, g.Debug)
}

func newLogger(w io.Writer, cfg *config.Config, debug bool) *log.Logger {
	level := cfg.Level()
	if debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
	})
}

// signalContext is cancelled on interrupt or SIGTERM.
func signalContext(logger *log.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigChan:
			logger.Info("Received signal, shutting down", "signal", sig.String())
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigChan)
	}()

	return ctx, cancel
}
