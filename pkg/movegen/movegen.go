// Package movegen generates legal Ultimate Tic-Tac-Toe moves from a board
// and the last move played. It offers a slow, allocating form for callers
// that want an ordered slice (expansion, API consumers) and a fast,
// allocation-free bitmask form for the random-playout hot path.
package movegen

import (
	"github.com/pkg/errors"

	"github.com/nullmove/uttt-engine/pkg/board"
	"github.com/nullmove/uttt-engine/pkg/tables"
)

// Slow returns the legal moves for b after lastMove was played, as an
// ordered slice. It returns an invariant-violation error (built with
// github.com/pkg/errors) if b is already a decided position.
func Slow(b *board.Board, lastMove board.Move) ([]board.Move, error) {
	if status := b.GlobalStatus(); status != board.Undecided {
		return nil, errors.Errorf("movegen: called on decided position, status=%v", status)
	}

	boards := forcedBoards(b, lastMove)

	var moves []board.Move
	for _, bd := range boards {
		mini := b[bd]
		for _, cell := range tables.EmptyCells[mini] {
			gridBit := 9*bd + int(cell)
			moves = append(moves, board.Move(tables.MoveFromGridBit[gridBit]))
		}
	}
	return moves, nil
}

// IsLegal reports whether m appears in the slow-form move list for b after
// lastMove. It builds the full slow-form list on every call and is not used
// on the search hot path; nothing in this module calls it.
func IsLegal(b *board.Board, lastMove, m board.Move) bool {
	moves, err := Slow(b, lastMove)
	if err != nil {
		return false
	}
	for _, cand := range moves {
		if cand == m {
			return true
		}
	}
	return false
}

// forcedBoards returns the local board indices a player must choose from:
// just the forced board if it is still undecided, or the sentinel "game has
// not started" case, or every undecided board otherwise.
func forcedBoards(b *board.Board, lastMove board.Move) []int {
	if lastMove == board.NoMove {
		all := make([]int, 9)
		for i := range all {
			all[i] = i
		}
		return all
	}

	forced := lastMove.Inner()
	if b.LocalStatus(forced) == tables.Undecided {
		return []int{forced}
	}

	var undecided []int
	for i := 0; i < 9; i++ {
		if b.LocalStatus(i) == tables.Undecided {
			undecided = append(undecided, i)
		}
	}
	return undecided
}

// Fast returns the legal moves for b after lastMove as an 81-bit set packed
// into (lo, hi): bits 0..62 of lo cover local boards 0..6, bits 0..17 of hi
// cover local boards 7..8. count is the number of set bits. It performs no
// heap allocation and is meant for the random-playout inner loop.
func Fast(b *board.Board, lastMove board.Move) (lo uint64, hi uint32, count int, err error) {
	if status := b.GlobalStatus(); status != board.Undecided {
		return 0, 0, 0, errors.Errorf("movegen: called on decided position, status=%v", status)
	}

	addBoard := func(bd int) {
		mask := uint64(tables.EmptyMask[b[bd]])
		bitpos := 9 * bd
		if bd < 7 {
			// boards 0..6 occupy bits 0..62 of lo, never crossing into hi.
			lo |= mask << uint(bitpos)
		} else {
			hi |= uint32(mask) << uint(bitpos-63)
		}
		count += int(tables.EmptyCount[b[bd]])
	}

	if lastMove == board.NoMove {
		for bd := 0; bd < 9; bd++ {
			addBoard(bd)
		}
		return lo, hi, count, nil
	}

	forced := lastMove.Inner()
	if b.LocalStatus(forced) == tables.Undecided {
		addBoard(forced)
		return lo, hi, count, nil
	}

	for bd := 0; bd < 9; bd++ {
		if b.LocalStatus(bd) == tables.Undecided {
			addBoard(bd)
		}
	}
	return lo, hi, count, nil
}
