// Package board implements the Ultimate Tic-Tac-Toe position model: the
// nine local boards, move application, and global status reduction. It is
// pure over its own types and performs no I/O.
package board

import "github.com/nullmove/uttt-engine/pkg/tables"

// Move is a full-grid position in [0, 81), row*9+col. NoMove is the
// sentinel meaning "the game has not started".
type Move int16

const NoMove Move = -1

// Outer is the local board the move lands in.
func (m Move) Outer() int { return int(tables.Outer[m]) }

// Inner is the cell within that local board, and also names the local
// board the opponent is forced into next.
func (m Move) Inner() int { return int(tables.Inner[m]) }

// Player is a side to move: +1 for the first player (X), -1 for the second
// (O).
type Player int8

const (
	X Player = 1
	O Player = -1
)

// stoneID maps a Player to the base-3 digit used inside a local board's
// encoding (1 for X, 2 for O), matching tables' decode/winner conventions.
func (p Player) stoneID() uint16 {
	if p == X {
		return 1
	}
	return 2
}

// Opponent returns the other side.
func (p Player) Opponent() Player { return -p }

// Status is the outcome of the whole game (or, internally, of one local
// board), shared with tables.Status.
type Status = tables.Status

const (
	Undecided = tables.Undecided
	XWon      = tables.XWon
	OWon      = tables.OWon
	Draw      = tables.Drawn
)

// Board holds the nine local boards' base-3 encodings, indexed 0..8
// row-major over the 3x3 grid of local boards.
type Board [9]uint16

// Apply plays player's stone at move. Callers must ensure the target cell
// is empty; this is not checked on the hot path.
func (b *Board) Apply(m Move, p Player) {
	b[m.Outer()] += p.stoneID() * tables.Pow3[m.Inner()]
}

// Undo reverses a prior Apply with the same move and player.
func (b *Board) Undo(m Move, p Player) {
	b[m.Outer()] -= p.stoneID() * tables.Pow3[m.Inner()]
}

// LocalStatus returns the Status of one of the nine local boards.
func (b *Board) LocalStatus(i int) Status {
	return tables.StateOf[b[i]]
}

// virtualDigit reduces a decided local board to the digit the global
// status's virtual board uses: 0 for undecided-or-drawn, 1 for X, 2 for O.
// Drawn boards count as neither side's control, same as undecided ones, for
// the purposes of detecting a 3-in-a-row at the meta level.
func virtualDigit(s Status) uint8 {
	switch s {
	case tables.XWon:
		return 1
	case tables.OWon:
		return 2
	default:
		return 0
	}
}

var metaLines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// GlobalStatus computes the outcome of the whole game by reducing each
// local board to a virtual digit, checking for a meta 3-in-a-row, and
// falling back to a control-count comparison once every local board is
// decided.
func (b *Board) GlobalStatus() Status {
	var virtual [9]uint8
	allDecided := true
	xBoards, oBoards := 0, 0

	for i := 0; i < 9; i++ {
		s := b.LocalStatus(i)
		if s == tables.Undecided {
			allDecided = false
		}
		virtual[i] = virtualDigit(s)
		switch s {
		case tables.XWon:
			xBoards++
		case tables.OWon:
			oBoards++
		}
	}

	for _, line := range metaLines {
		a, c, e := virtual[line[0]], virtual[line[1]], virtual[line[2]]
		if a != 0 && a == c && c == e {
			if a == 1 {
				return tables.XWon
			}
			return tables.OWon
		}
	}

	if !allDecided {
		return tables.Undecided
	}

	switch {
	case xBoards > oBoards:
		return tables.XWon
	case oBoards > xBoards:
		return tables.OWon
	default:
		return tables.Drawn
	}
}

// StonesPlayed counts the total number of stones on the board, summed
// across all nine local boards. Used by pkg/book to infer the turn number
// without a separate counter.
func (b *Board) StonesPlayed() int {
	n := 0
	for i := 0; i < 9; i++ {
		n += 9 - int(tables.EmptyCount[b[i]])
	}
	return n
}
