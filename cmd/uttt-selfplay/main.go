// Command uttt-selfplay runs a tournament of independent self-play games
// between two engine configurations and prints a JSON summary.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/nullmove/uttt-engine/pkg/engine"
	"github.com/nullmove/uttt-engine/pkg/selfplay"
)

func main() {
	games := flag.Int("games", 100, "number of games to play")
	workers := flag.Int("workers", 4, "number of concurrent games in flight")

	p1C := flag.Float64("p1-c", engine.DefaultConfig().C, "player 1 exploration constant")
	p1FPU := flag.Float64("p1-fpu", engine.DefaultConfig().FPU, "player 1 first-play-urgency")
	p1DeadlineMs := flag.Int("p1-deadline-ms", engine.DefaultConfig().DeadlineMs, "player 1 per-move budget")

	p2C := flag.Float64("p2-c", engine.DefaultConfig().C, "player 2 exploration constant")
	p2FPU := flag.Float64("p2-fpu", engine.DefaultConfig().FPU, "player 2 first-play-urgency")
	p2DeadlineMs := flag.Int("p2-deadline-ms", engine.DefaultConfig().DeadlineMs, "player 2 per-move budget")

	flag.Parse()

	log := zerolog.Nop()

	cfg1 := engine.DefaultConfig().WithC(*p1C).WithFPU(*p1FPU).WithDeadlineMs(*p1DeadlineMs)
	cfg2 := engine.DefaultConfig().WithC(*p2C).WithFPU(*p2FPU).WithDeadlineMs(*p2DeadlineMs)

	stats := selfplay.Run(cfg1, cfg2, *games, *workers, log)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(stats.Summary()); err != nil {
		fmt.Fprintln(os.Stderr, "failed to encode summary:", err)
		os.Exit(1)
	}
}
