// Package engine ties the opening book, the MCTS search and a time budget
// together behind a single BestMove call, and owns the ambient concerns
// (configuration, logging, arena lifetime) the algorithmic core itself
// stays free of.
package engine

import (
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/nullmove/uttt-engine/pkg/arena"
	"github.com/nullmove/uttt-engine/pkg/board"
	"github.com/nullmove/uttt-engine/pkg/book"
	"github.com/nullmove/uttt-engine/pkg/mcts"
)

// Config collects the engine's tunables. DefaultConfig returns a fully
// populated Config; New uses the fields as given, except that a
// non-positive CheckInterval falls back to mcts.DefaultCheckInterval.
type Config struct {
	C             float64
	FPU           float64
	DeadlineMs    int
	ArenaBytes    int64
	CheckInterval int
	Seed          int64
}

// DefaultConfig returns the recommended tunables: a 490ms per-move budget
// leaves headroom inside an external 500ms turn deadline.
func DefaultConfig() Config {
	return Config{
		C:             mcts.DefaultC,
		FPU:           mcts.DefaultFPU,
		DeadlineMs:    490,
		ArenaBytes:    arena.DefaultBytes,
		CheckInterval: mcts.DefaultCheckInterval,
		Seed:          time.Now().UnixNano(),
	}
}

// WithC sets the exploration constant and returns the receiver for
// chaining.
func (c Config) WithC(v float64) Config { c.C = v; return c }

// WithFPU sets the first-play-urgency constant and returns the receiver
// for chaining.
func (c Config) WithFPU(v float64) Config { c.FPU = v; return c }

// WithDeadlineMs sets the per-move budget in milliseconds and returns the
// receiver for chaining.
func (c Config) WithDeadlineMs(v int) Config { c.DeadlineMs = v; return c }

// WithSeed sets the RNG seed and returns the receiver for chaining.
func (c Config) WithSeed(v int64) Config { c.Seed = v; return c }

// Engine wraps a long-lived arena and search across many BestMove calls.
type Engine struct {
	cfg    Config
	search *mcts.Search
	log    zerolog.Logger
}

// New builds an Engine from cfg, logging through log.
func New(cfg Config, log zerolog.Logger) *Engine {
	a := arena.New(cfg.ArenaBytes, log)
	return &Engine{
		cfg:    cfg,
		search: mcts.New(a, cfg.C, cfg.FPU, cfg.Seed, cfg.CheckInterval),
		log:    log,
	}
}

// BestMove returns the engine's chosen move for b given lastMove and side
// to move. It consults the opening book first, falling back to a
// time-bounded MCTS search. b is left bitwise-unchanged on return.
func (e *Engine) BestMove(b *board.Board, lastMove board.Move, side board.Player) (board.Move, error) {
	if mv, ok := book.Lookup(b, lastMove); ok {
		e.log.Debug().
			Str("source", "book").
			Int("move", int(mv)).
			Msg("bestmove")
		return mv, nil
	}

	deadline := time.Now().Add(time.Duration(e.cfg.DeadlineMs) * time.Millisecond)
	start := time.Now()

	mv, stats, err := e.search.Run(b, lastMove, side, deadline)
	if err != nil {
		return board.NoMove, errors.Wrap(err, "engine: search failed")
	}

	e.log.Debug().
		Str("source", "search").
		Int("move", int(mv)).
		Int("playouts", stats.Playouts).
		Dur("elapsed", time.Since(start)).
		Msg("bestmove")

	return mv, nil
}
