// Package selfplay runs many independent Ultimate Tic-Tac-Toe games
// between two engine configurations concurrently, tallying results with
// atomic counters. Each game drives its own single-threaded search; the
// concurrency here is strictly at the game level, never inside one
// search's tree.
package selfplay

import (
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/nullmove/uttt-engine/pkg/board"
	"github.com/nullmove/uttt-engine/pkg/engine"
)

// MatchResult is the outcome of one game from player 1's perspective.
type MatchResult uint8

const (
	Player1Win MatchResult = iota
	Player2Win
	MatchDraw
)

// Stats accumulates outcomes across a run of games with atomic counters, so
// worker goroutines can update it without a lock.
type Stats struct {
	GamesPlayed      uint32
	Player1Wins      uint32
	Player2Wins      uint32
	Draws            uint32
	FirstToMoveWins  uint32
	SecondToMoveWins uint32
}

func (s *Stats) record(result MatchResult, player1MovedFirst bool) {
	atomic.AddUint32(&s.GamesPlayed, 1)
	switch result {
	case Player1Win:
		atomic.AddUint32(&s.Player1Wins, 1)
	case Player2Win:
		atomic.AddUint32(&s.Player2Wins, 1)
	default:
		atomic.AddUint32(&s.Draws, 1)
	}

	firstWon := (result == Player1Win && player1MovedFirst) || (result == Player2Win && !player1MovedFirst)
	if result == MatchDraw {
		return
	}
	if firstWon {
		atomic.AddUint32(&s.FirstToMoveWins, 1)
	} else {
		atomic.AddUint32(&s.SecondToMoveWins, 1)
	}
}

// Summary is a JSON-friendly snapshot of Stats, suitable for
// cmd/uttt-selfplay's output.
type Summary struct {
	GamesPlayed      uint32  `json:"games_played"`
	Player1Wins      uint32  `json:"player1_wins"`
	Player2Wins      uint32  `json:"player2_wins"`
	Draws            uint32  `json:"draws"`
	FirstToMoveWins  uint32  `json:"first_to_move_wins"`
	SecondToMoveWins uint32  `json:"second_to_move_wins"`
	Player1WinRate   float64 `json:"player1_win_rate"`
}

func (s *Stats) Summary() Summary {
	games := atomic.LoadUint32(&s.GamesPlayed)
	var rate float64
	if games > 0 {
		rate = float64(atomic.LoadUint32(&s.Player1Wins)) / float64(games)
	}
	return Summary{
		GamesPlayed:      games,
		Player1Wins:      atomic.LoadUint32(&s.Player1Wins),
		Player2Wins:      atomic.LoadUint32(&s.Player2Wins),
		Draws:            atomic.LoadUint32(&s.Draws),
		FirstToMoveWins:  atomic.LoadUint32(&s.FirstToMoveWins),
		SecondToMoveWins: atomic.LoadUint32(&s.SecondToMoveWins),
		Player1WinRate:   rate,
	}
}

// Run plays n games between cfg1 and cfg2 across workers concurrent
// goroutines, alternating who moves first, and returns the accumulated
// Stats. Each goroutine owns its own Engine (and therefore its own Arena),
// so no state is shared between games beyond the Stats counters.
func Run(cfg1, cfg2 engine.Config, n, workers int, log zerolog.Logger) *Stats {
	stats := &Stats{}
	if workers < 1 {
		workers = 1
	}

	var wg sync.WaitGroup
	games := make(chan int, n)
	for i := 0; i < n; i++ {
		games <- i
	}
	close(games)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for gameIdx := range games {
				player1MovedFirst := gameIdx%2 == 0
				result := playOne(cfg1, cfg2, player1MovedFirst, log)
				stats.record(result, player1MovedFirst)
			}
		}()
	}
	wg.Wait()

	return stats
}

// playOne plays a single game to completion between two engines built from
// cfg1 and cfg2, returning the outcome from player 1's perspective.
func playOne(cfg1, cfg2 engine.Config, player1MovedFirst bool, log zerolog.Logger) MatchResult {
	e1 := engine.New(cfg1, log)
	e2 := engine.New(cfg2, log)

	var b board.Board
	last := board.NoMove
	side := board.X

	// player1Side is which Player value player 1 is playing as this game.
	player1Side := board.X
	if !player1MovedFirst {
		player1Side = board.O
	}

	for {
		status := b.GlobalStatus()
		if status != board.Undecided {
			return statusToResult(status, player1Side)
		}

		var mv board.Move
		var err error
		if side == player1Side {
			mv, err = e1.BestMove(&b, last, side)
		} else {
			mv, err = e2.BestMove(&b, last, side)
		}
		if err != nil {
			// A search-level invariant violation mid self-play is fatal to
			// that one game only; score it as a draw rather than crash the
			// whole run.
			return MatchDraw
		}

		b.Apply(mv, side)
		last = mv
		side = side.Opponent()
	}
}

func statusToResult(status board.Status, player1Side board.Player) MatchResult {
	switch status {
	case board.Draw:
		return MatchDraw
	case board.XWon:
		if player1Side == board.X {
			return Player1Win
		}
		return Player2Win
	case board.OWon:
		if player1Side == board.O {
			return Player1Win
		}
		return Player2Win
	default:
		return MatchDraw
	}
}

