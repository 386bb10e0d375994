package selfplay

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/nullmove/uttt-engine/pkg/engine"
)

func TestRunPlaysAllGames(t *testing.T) {
	cfg := engine.DefaultConfig().WithDeadlineMs(5)
	stats := Run(cfg, cfg, 4, 2, zerolog.Nop())

	summary := stats.Summary()
	if summary.GamesPlayed != 4 {
		t.Fatalf("GamesPlayed = %d, want 4", summary.GamesPlayed)
	}
	total := summary.Player1Wins + summary.Player2Wins + summary.Draws
	if total != 4 {
		t.Fatalf("wins+draws = %d, want 4", total)
	}
}

func TestStatsRecordAccumulates(t *testing.T) {
	s := &Stats{}
	s.record(Player1Win, true)
	s.record(Player2Win, false)
	s.record(MatchDraw, true)

	summary := s.Summary()
	if summary.GamesPlayed != 3 {
		t.Fatalf("GamesPlayed = %d, want 3", summary.GamesPlayed)
	}
	if summary.Player1Wins != 1 || summary.Player2Wins != 1 || summary.Draws != 1 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	if summary.FirstToMoveWins != 2 {
		t.Fatalf("FirstToMoveWins = %d, want 2", summary.FirstToMoveWins)
	}
}
