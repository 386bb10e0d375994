// Command uttt-engine runs the Ultimate Tic-Tac-Toe engine against the
// line-oriented turn protocol on stdin/stdout.
package main

import (
	"flag"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/nullmove/uttt-engine/internal/protocol"
	"github.com/nullmove/uttt-engine/pkg/board"
	"github.com/nullmove/uttt-engine/pkg/engine"
)

func main() {
	var (
		c          = flag.Float64("c", engine.DefaultConfig().C, "UCT exploration constant")
		fpu        = flag.Float64("fpu", engine.DefaultConfig().FPU, "first-play-urgency bound for unvisited children")
		deadlineMs = flag.Int("deadline-ms", engine.DefaultConfig().DeadlineMs, "per-move search budget in milliseconds")
		arenaBytes = flag.Int64("arena-bytes", engine.DefaultConfig().ArenaBytes, "node arena size in bytes")
		seed       = flag.Int64("seed", time.Now().UnixNano(), "RNG seed")
		side       = flag.String("side", "x", "which side this engine plays: x or o")
		logLevel   = flag.String("log-level", "info", "zerolog level: debug, info, warn, error")
	)
	flag.Parse()

	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	cfg := engine.Config{
		C:             *c,
		FPU:           *fpu,
		DeadlineMs:    *deadlineMs,
		ArenaBytes:    *arenaBytes,
		CheckInterval: 100,
		Seed:          *seed,
	}
	eng := engine.New(cfg, log)

	playerSide := parseSide(*side)
	loop := protocol.New(eng, playerSide, os.Stdin, os.Stdout)

	for {
		if err := loop.Step(); err != nil {
			if err == io.EOF {
				return
			}
			log.Error().Err(err).Msg("engine loop failed")
			os.Exit(1)
		}
	}
}

func parseSide(s string) board.Player {
	if s == "o" || s == "O" {
		return board.O
	}
	return board.X
}
