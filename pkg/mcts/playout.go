package mcts

import (
	"github.com/nullmove/uttt-engine/pkg/board"
	"github.com/nullmove/uttt-engine/pkg/movegen"
	"github.com/nullmove/uttt-engine/pkg/tables"
)

// xorshiftRNG is a three-word xorshift generator used on the random-playout
// hot path, where math/rand's locking and generality cost more than this
// search can afford across hundreds of thousands of playouts per second.
type xorshiftRNG struct {
	x, y, z uint32
}

// newXorshiftRNG seeds the generator from a caller-supplied seed, folding
// it into three nonzero words.
func newXorshiftRNG(seed uint32) *xorshiftRNG {
	if seed == 0 {
		seed = 0x9e3779b9
	}
	return &xorshiftRNG{
		x: 123456789 ^ seed,
		y: 362436069 ^ (seed << 13),
		z: 521288629 ^ (seed >> 7),
	}
}

// next returns the generator's next 32-bit word.
func (r *xorshiftRNG) next() uint32 {
	r.x ^= r.x << 16
	r.x ^= r.x >> 5
	r.x ^= r.x << 1

	t := r.x
	r.x = r.y
	r.y = r.z
	r.z = t ^ r.x ^ r.y
	return r.z
}

// intn returns a uniform value in [0, n).
func (r *xorshiftRNG) intn(n int) int {
	return int(r.next() % uint32(n))
}

// rolloutStep records one move applied during a random playout so it can
// be undone afterward.
type rolloutStep struct {
	move   board.Move
	player board.Player
}

// rollout plays uniformly random legal moves from b (whose last move was
// lastMove, side toMove) until the game reaches a terminal status, then
// restores b to its pre-rollout state before returning that status. scratch
// is reused across calls to avoid allocating a history buffer per playout.
func rollout(b *board.Board, lastMove board.Move, toMove board.Player, rng *xorshiftRNG, scratch []rolloutStep) (board.Status, error) {
	history := scratch[:0]
	cur := toMove
	last := lastMove

	var status board.Status
	for {
		status = b.GlobalStatus()
		if status != board.Undecided {
			break
		}

		lo, hi, count, err := movegen.Fast(b, last)
		if err != nil {
			return board.Undecided, err
		}

		mv := kthLegalMove(lo, hi, rng.intn(count))
		b.Apply(mv, cur)
		history = append(history, rolloutStep{mv, cur})
		last = mv
		cur = cur.Opponent()
	}

	for i := len(history) - 1; i >= 0; i-- {
		b.Undo(history[i].move, history[i].player)
	}
	return status, nil
}

// kthLegalMove walks the nine 9-bit board slices of a (lo, hi) legality
// mask and returns the k-th set bit overall, via the precomputed popcount
// and nth-set-bit tables.
func kthLegalMove(lo uint64, hi uint32, k int) board.Move {
	cumulative := 0
	for bd := 0; bd < 9; bd++ {
		var slice uint16
		if bd < 7 {
			slice = uint16(lo>>uint(9*bd)) & 0x1FF
		} else {
			slice = uint16(hi>>uint(9*(bd-7))) & 0x1FF
		}

		popcount := int(tables.PopCount9[slice])
		if cumulative+popcount > k {
			cell := tables.NthSetBit9[slice][k-cumulative]
			gridBit := 9*bd + int(cell)
			return board.Move(tables.MoveFromGridBit[gridBit])
		}
		cumulative += popcount
	}
	// Unreachable when k < total legal-move count, which callers guarantee.
	return board.NoMove
}
