// Command uttt-bench reproduces the reference engine's fixed-scenario
// throughput benchmark: search a known position for an escalating number
// of playouts and report playouts per second.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/nullmove/uttt-engine/pkg/arena"
	"github.com/nullmove/uttt-engine/pkg/board"
	"github.com/nullmove/uttt-engine/pkg/mcts"
	"github.com/nullmove/uttt-engine/pkg/tables"
	"github.com/nullmove/uttt-engine/pkg/textboard"
)

// benchPosition is the S3 boundary-scenario position from SPEC_FULL.md §8:
// nine local-board encodings, last move 61, side to move O.
var benchPosition = [9]uint16{0, 0, 0, 0, 891, 0, 12393, 729, 6}

func main() {
	verifyTables := flag.Bool("verify-tables", false, "run tables.SelfCheck() and exit")
	flag.Parse()

	if *verifyTables {
		if err := tables.SelfCheck(); err != nil {
			fmt.Fprintln(os.Stderr, "table self-check failed:")
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println("tables: all self-checks passed")
		return
	}

	log := zerolog.Nop()

	var b board.Board
	copy(b[:], benchPosition[:])
	lastMove := board.Move(61)
	side := board.O

	fmt.Println("position:")
	textboard.Fprint(os.Stdout, &b)
	fmt.Println()

	for _, target := range []int{1_000, 10_000, 100_000, 1_000_000} {
		a := arena.New(arena.DefaultBytes, log)
		s := mcts.New(a, mcts.DefaultC, mcts.DefaultFPU, 1, mcts.DefaultCheckInterval)

		start := time.Now()
		mv, stats, err := s.RunPlayouts(&b, lastMove, side, target)
		elapsed := time.Since(start)
		if err != nil {
			fmt.Fprintf(os.Stderr, "search failed: %v\n", err)
			os.Exit(1)
		}

		kpps := float64(stats.Playouts) / elapsed.Seconds() / 1000
		fmt.Printf("playouts=%d elapsed=%v kpps=%.1f move=%d\n",
			stats.Playouts, elapsed, kpps, mv)
	}
}
