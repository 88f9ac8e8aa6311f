// Package crosscheck compares hand ranking engines against each other and
// against an independent reference evaluator on random hands.
package crosscheck

import (
	"cmp"
	"context"
	"fmt"
	rand "math/rand/v2"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/handrank/internal/randutil"
	"github.com/lox/handrank/poker"
)

// maxMismatches bounds the mismatches kept in a Report.
const maxMismatches = 20

// Engine is an evaluator with its card encoding hidden.
type Engine struct {
	Name   string
	Score  func([]poker.Card) poker.Score
	Decode func(poker.Score) (poker.Decoded, bool)
}

// Adapt wraps a typed evaluator as an Engine.
func Adapt[C any](name string, e poker.Evaluator[C]) Engine {
	return Engine{
		Name: name,
		Score: func(cards []poker.Card) poker.Score {
			return poker.SimpleEval(e, cards)
		},
		Decode: e.Decode,
	}
}

// Config controls a run.
type Config struct {
	Hands    int
	HandSize int
	Seed     int64
	// Workers defaults to GOMAXPROCS when zero.
	Workers int
}

// Mismatch records a hand, or a pair of hands, on which an engine disagreed.
type Mismatch struct {
	Engine string
	Hand   []poker.Card
	Prev   []poker.Card
	Reason string
}

func (m Mismatch) String() string {
	if m.Prev != nil {
		return fmt.Sprintf("%s: %s vs %s: %s", m.Engine, poker.FormatCards(m.Prev), poker.FormatCards(m.Hand), m.Reason)
	}
	return fmt.Sprintf("%s: %s: %s", m.Engine, poker.FormatCards(m.Hand), m.Reason)
}

// Report summarises a run.
type Report struct {
	Hands      int
	Categories [poker.NumCategories + 1]int
	Mismatches []Mismatch
	// Disagreements counts every mismatch, including those not kept.
	Disagreements int
	Elapsed       time.Duration
}

// OK reports whether every engine agreed on every hand.
func (r *Report) OK() bool {
	return r.Disagreements == 0
}

// Checker runs cross checks.
type Checker struct {
	engines []Engine
	logger  *log.Logger
	clock   quartz.Clock
}

// Option configures a Checker.
type Option func(*Checker)

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(c *Checker) {
		c.logger = l
	}
}

// WithClock sets the clock used to time runs.
func WithClock(clock quartz.Clock) Option {
	return func(c *Checker) {
		c.clock = clock
	}
}

// New returns a Checker over engines. The first engine decodes the category
// counted in the report.
func New(engines []Engine, opts ...Option) (*Checker, error) {
	if len(engines) == 0 {
		return nil, fmt.Errorf("crosscheck: no engines")
	}
	c := &Checker{
		engines: engines,
		logger:  log.Default(),
		clock:   quartz.NewReal(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.WithPrefix("crosscheck")
	return c, nil
}

// Run deals cfg.Hands random hands and checks that every engine decodes each
// one identically and orders consecutive hands the way the reference
// evaluator does.
func (c *Checker) Run(ctx context.Context, cfg Config) (*Report, error) {
	if cfg.HandSize < 5 || cfg.HandSize > 7 {
		return nil, fmt.Errorf("crosscheck: hand size %d not in [5, 7]", cfg.HandSize)
	}
	if cfg.Hands < 1 {
		return nil, fmt.Errorf("crosscheck: hands must be positive")
	}
	workers := cfg.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, cfg.Hands)

	start := c.clock.Now()
	c.logger.Info("Starting cross check",
		"hands", cfg.Hands,
		"hand_size", cfg.HandSize,
		"engines", len(c.engines),
		"workers", workers,
		"seed", cfg.Seed)

	perWorker := cfg.Hands / workers
	remainder := cfg.Hands % workers

	g, ctx := errgroup.WithContext(ctx)
	results := make(chan *Report, workers)

	for w := range workers {
		hands := perWorker
		if w < remainder {
			hands++
		}
		g.Go(func() error {
			r, err := c.worker(ctx, randutil.Stream(cfg.Seed, w), hands, cfg.HandSize)
			if err != nil {
				return err
			}
			select {
			case results <- r:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}

	go func() {
		defer close(results)
		_ = g.Wait()
	}()

	total := &Report{}
	for r := range results {
		total.merge(r)
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	total.Elapsed = c.clock.Since(start)

	if total.OK() {
		c.logger.Info("Engines agree", "hands", total.Hands, "elapsed", total.Elapsed)
	} else {
		c.logger.Warn("Engines disagree",
			"hands", total.Hands,
			"disagreements", total.Disagreements,
			"first", total.Mismatches[0].String())
	}
	return total, nil
}

func (r *Report) merge(o *Report) {
	r.Hands += o.Hands
	for i, n := range o.Categories {
		r.Categories[i] += n
	}
	r.Disagreements += o.Disagreements
	for _, m := range o.Mismatches {
		if len(r.Mismatches) < maxMismatches {
			r.Mismatches = append(r.Mismatches, m)
		}
	}
}

func (r *Report) add(m Mismatch) {
	r.Disagreements++
	if len(r.Mismatches) < maxMismatches {
		m.Hand = append([]poker.Card(nil), m.Hand...)
		if m.Prev != nil {
			m.Prev = append([]poker.Card(nil), m.Prev...)
		}
		r.Mismatches = append(r.Mismatches, m)
	}
}

// worker checks hands random hands drawn from rng.
func (c *Checker) worker(ctx context.Context, rng *rand.Rand, hands, size int) (*Report, error) {
	r := &Report{}
	hand := make([]poker.Card, size)
	prev := make([]poker.Card, size)
	scores := make([]poker.Score, len(c.engines))
	prevScores := make([]poker.Score, len(c.engines))
	var prevOracle int16

	for i := range hands {
		if i%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		hand = randutil.Hand(rng, hand, size)

		oracle, err := Oracle(hand)
		if err != nil {
			return nil, err
		}

		var want poker.Decoded
		for j, e := range c.engines {
			scores[j] = e.Score(hand)
			d, ok := e.Decode(scores[j])
			if !ok {
				r.add(Mismatch{Engine: e.Name, Hand: hand, Reason: fmt.Sprintf("score %#x does not decode", uint32(scores[j]))})
				continue
			}
			if j == 0 {
				want = d
				r.Categories[d.Category]++
				continue
			}
			if d != want {
				r.add(Mismatch{Engine: e.Name, Hand: hand, Reason: fmt.Sprintf("decoded %s, %s decoded %s", d, c.engines[0].Name, want)})
			}
		}

		if i > 0 {
			ref := cmp.Compare(prevOracle, oracle)
			for j, e := range c.engines {
				if got := cmp.Compare(prevScores[j], scores[j]); got != ref {
					r.add(Mismatch{Engine: e.Name, Hand: hand, Prev: prev, Reason: fmt.Sprintf("ordering %d, reference %d", got, ref)})
				}
			}
		}

		copy(prev, hand)
		copy(prevScores, scores)
		prevOracle = oracle
		r.Hands++
	}
	return r, nil
}
