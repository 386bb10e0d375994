// Package tables holds the precomputed lookup tables that back O(1) move
// generation, empty-cell enumeration and win detection for a single 3x3
// local board. Everything here is keyed by a local board's base-3 encoding,
// an integer in [0, BoardPositions).
package tables

import (
	"fmt"
	"math/bits"

	"github.com/hashicorp/go-multierror"
)

// BoardPositions is the number of distinct encodings of a single 3x3 local
// board: 3^9.
const BoardPositions = 19683

// Status describes the outcome of a local board (or, after reduction, of
// the whole game).
type Status uint8

const (
	Undecided Status = iota
	XWon
	OWon
	Drawn
)

func (s Status) String() string {
	switch s {
	case Undecided:
		return "undecided"
	case XWon:
		return "x-won"
	case OWon:
		return "o-won"
	case Drawn:
		return "drawn"
	default:
		return "invalid"
	}
}

// Pow3 holds 3^0..3^8, used both to build encodings and to add/remove a
// single stone from a board's base-3 digit.
var Pow3 [9]uint16

// StateOf[m] is the Status of the local board encoded as m.
var StateOf [BoardPositions]Status

// EmptyMask[m] has bit j set iff cell j (row-major, 0..8) is empty in board m.
var EmptyMask [BoardPositions]uint16

// EmptyCount[m] is the popcount of EmptyMask[m].
var EmptyCount [BoardPositions]uint8

// EmptyCells[m] lists the empty cell indices of board m in ascending order.
var EmptyCells [BoardPositions][]uint8

// Outer[move] is the local board (0..8) a full-grid move lands in.
var Outer [81]uint8

// Inner[move] is the cell within that local board, which also names the
// local board the opponent is forced into next.
var Inner [81]uint8

// MoveFromGridBit maps a bit position 9*board+cell (0..80) back to the
// canonical move integer row*9+col.
var MoveFromGridBit [81]int16

// PopCount9[mask] is the number of set bits in a 9-bit mask.
var PopCount9 [512]uint8

// NthSetBit9[mask][k] is the index (0..8) of the k-th set bit of mask, or -1
// if mask has fewer than k+1 set bits.
var NthSetBit9 [512][9]int8

// Log2Floor[n] is floor(log2(n)) for n in [0, 1024). Log2Floor[0] is 0, used
// defensively; callers in pkg/mcts only ever query visits+1 >= 1.
var Log2Floor [1024]uint8

func init() {
	buildPow3()
	buildStateAndEmpty()
	buildMoveTables()
	buildPopCountAndNthBit()
	buildLog2Floor()
}

func buildPow3() {
	Pow3[0] = 1
	for i := 1; i < 9; i++ {
		Pow3[i] = Pow3[i-1] * 3
	}
}

// decode expands a board encoding into its 9 digits (0=empty, 1=X, 2=O),
// row-major.
func decode(m int) [9]uint8 {
	var d [9]uint8
	for j := 0; j < 9; j++ {
		d[j] = uint8(m % 3)
		m /= 3
	}
	return d
}

// encode is the inverse of decode.
func encode(d [9]uint8) int {
	m := 0
	for j := 8; j >= 0; j-- {
		m = m*3 + int(d[j])
	}
	return m
}

// winningLines enumerates the 8 standard 3-in-a-row lines over a 3x3 grid,
// cell indices row-major.
var winningLines = [8][3]uint8{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// winner checks the 8 lines directly against the decoded digits, returning
// Undecided if no side has three in a row.
func winner(d [9]uint8) Status {
	for _, line := range winningLines {
		a, b, c := d[line[0]], d[line[1]], d[line[2]]
		if a != 0 && a == b && b == c {
			if a == 1 {
				return XWon
			}
			return OWon
		}
	}
	return Undecided
}

func buildStateAndEmpty() {
	for m := 0; m < BoardPositions; m++ {
		d := decode(m)

		if w := winner(d); w != Undecided {
			StateOf[m] = w
		}

		var mask uint16
		var cells []uint8
		for j := 0; j < 9; j++ {
			if d[j] == 0 {
				mask |= 1 << uint(j)
				cells = append(cells, uint8(j))
			}
		}
		EmptyMask[m] = mask
		EmptyCount[m] = uint8(len(cells))
		EmptyCells[m] = cells

		if StateOf[m] == Undecided && len(cells) == 0 {
			StateOf[m] = Drawn
		}
	}
}

func buildMoveTables() {
	for mv := 0; mv < 81; mv++ {
		row, col := mv/9, mv%9
		outer := (row/3)*3 + col/3
		inner := (row%3)*3 + col%3
		Outer[mv] = uint8(outer)
		Inner[mv] = uint8(inner)
		MoveFromGridBit[9*outer+inner] = int16(mv)
	}
}

func buildPopCountAndNthBit() {
	for mask := 0; mask < 512; mask++ {
		PopCount9[mask] = uint8(bits.OnesCount16(uint16(mask)))

		var idx [9]int8
		for k := 0; k < 9; k++ {
			idx[k] = -1
		}
		k := 0
		for j := 0; j < 9; j++ {
			if mask&(1<<uint(j)) != 0 {
				idx[k] = int8(j)
				k++
			}
		}
		NthSetBit9[mask] = idx
	}
}

func buildLog2Floor() {
	for n := 1; n < 1024; n++ {
		Log2Floor[n] = uint8(bits.Len(uint(n)) - 1)
	}
}

// Log2Floor32 returns floor(log2(n)) for any n >= 1, using the Log2Floor
// table below 1024 and math/bits.Len32 above it.
func Log2Floor32(n uint32) uint8 {
	if n < 1024 {
		return Log2Floor[n]
	}
	return uint8(bits.Len32(n) - 1)
}

// SelfCheck re-derives the local-board tables (encode/decode round trip,
// StateOf, EmptyCount, and the popcount of EmptyMask) and the move tables
// (Outer, Inner, MoveFromGridBit) from first principles, and reports every
// mismatch found rather than failing on the first one. It does not check
// EmptyCells, PopCount9, NthSetBit9 or Log2Floor. It is exercised by the
// package tests and by cmd/uttt-bench -verify-tables.
func SelfCheck() error {
	var result *multierror.Error

	for m := 0; m < BoardPositions; m++ {
		d := decode(m)
		if got := encode(d); got != m {
			result = multierror.Append(result, &roundTripError{m, got})
		}

		want := winner(d)
		emptyCount := 0
		for j := 0; j < 9; j++ {
			if d[j] == 0 {
				emptyCount++
			}
		}
		if want == Undecided && emptyCount == 0 {
			want = Drawn
		}
		if StateOf[m] != want {
			result = multierror.Append(result, &statusError{m, want, StateOf[m]})
		}

		if int(EmptyCount[m]) != emptyCount {
			result = multierror.Append(result, &emptyCountError{m, emptyCount, int(EmptyCount[m])})
		}
		if bits.OnesCount16(EmptyMask[m]) != emptyCount {
			result = multierror.Append(result, &emptyMaskError{m})
		}
	}

	for mv := 0; mv < 81; mv++ {
		row, col := mv/9, mv%9
		wantOuter := uint8((row/3)*3 + col/3)
		wantInner := uint8((row%3)*3 + col%3)
		if Outer[mv] != wantOuter || Inner[mv] != wantInner {
			result = multierror.Append(result, &moveTableError{mv})
		}
		gridBit := 9*int(wantOuter) + int(wantInner)
		if int(MoveFromGridBit[gridBit]) != mv {
			result = multierror.Append(result, &gridBitError{gridBit, mv})
		}
	}

	return result.ErrorOrNil()
}

type roundTripError struct{ m, got int }

func (e *roundTripError) Error() string {
	return fmt.Sprintf("tables: round-trip failed for encoding %d, got %d", e.m, e.got)
}

type statusError struct {
	m         int
	want, got Status
}

func (e *statusError) Error() string {
	return fmt.Sprintf("tables: StateOf[%d] = %v, want %v", e.m, e.got, e.want)
}

type emptyCountError struct {
	m, want, got int
}

func (e *emptyCountError) Error() string {
	return fmt.Sprintf("tables: EmptyCount[%d] = %d, want %d", e.m, e.got, e.want)
}

type emptyMaskError struct{ m int }

func (e *emptyMaskError) Error() string {
	return fmt.Sprintf("tables: EmptyMask[%d] popcount mismatch", e.m)
}

type moveTableError struct{ mv int }

func (e *moveTableError) Error() string {
	return fmt.Sprintf("tables: Outer/Inner mismatch for move %d", e.mv)
}

type gridBitError struct{ gridBit, mv int }

func (e *gridBitError) Error() string {
	return fmt.Sprintf("tables: MoveFromGridBit[%d] != %d", e.gridBit, e.mv)
}
