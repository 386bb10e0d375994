// Package mcts implements the Monte Carlo Tree Search loop: selection via
// a cached UCT bound, lazy expansion from a node arena, random playouts,
// and incremental backpropagation. The search is single-threaded by
// design; concurrency in this codebase happens at the level of independent
// games (pkg/selfplay), never inside one search tree.
package mcts

import (
	"math"
	"math/rand"
	"time"

	"github.com/pkg/errors"

	"github.com/nullmove/uttt-engine/pkg/arena"
	"github.com/nullmove/uttt-engine/pkg/board"
	"github.com/nullmove/uttt-engine/pkg/movegen"
	"github.com/nullmove/uttt-engine/pkg/tables"
)

// errNoChildren signals that the search stopped before any playout ran, so
// the root was never expanded and no move could be selected. A terminal
// root is rejected earlier with its own error.
var errNoChildren = errors.New("mcts: search produced no root children, no playout ran")

// Stats summarizes one Run call.
type Stats struct {
	Playouts int
	Elapsed  time.Duration
}

// Search owns the tunables and RNGs for one engine instance. It holds no
// position state between calls; callers pass the board fresh each time.
type Search struct {
	Arena *arena.Arena

	C   float64
	FPU float64

	CheckInterval int

	jitter   *rand.Rand
	xorshift *xorshiftRNG

	rolloutScratch []rolloutStep
}

// New builds a Search using a, with tunables c and fpu, seeded from seed.
func New(a *arena.Arena, c, fpu float64, seed int64, checkInterval int) *Search {
	if checkInterval <= 0 {
		checkInterval = DefaultCheckInterval
	}
	return &Search{
		Arena:          a,
		C:              c,
		FPU:            fpu,
		CheckInterval:  checkInterval,
		jitter:         rand.New(rand.NewSource(seed)),
		xorshift:       newXorshiftRNG(uint32(seed)),
		rolloutScratch: make([]rolloutStep, 81),
	}
}

// Run searches from b (after lastMove, to move: side) until deadline,
// returning the move with the highest mean reward among root's children.
// b is left bitwise-unchanged on return.
func (s *Search) Run(b *board.Board, lastMove board.Move, side board.Player, deadline time.Time) (board.Move, Stats, error) {
	return s.run(b, lastMove, side, func(playouts int) bool {
		return playouts%s.CheckInterval == 0 && !time.Now().Before(deadline)
	})
}

// RunPlayouts searches from b (after lastMove, to move: side) for exactly
// maxPlayouts playouts, returning the move with the highest mean reward
// among root's children. Unlike Run, it ignores the wall clock; it exists
// for throughput benchmarking against a fixed playout count rather than a
// fixed time budget. b is left bitwise-unchanged on return.
func (s *Search) RunPlayouts(b *board.Board, lastMove board.Move, side board.Player, maxPlayouts int) (board.Move, Stats, error) {
	return s.run(b, lastMove, side, func(playouts int) bool {
		return playouts >= maxPlayouts
	})
}

// run is the shared selection/stop-condition loop behind Run and
// RunPlayouts: stop is polled once per playout and reports whether the
// search should end before running another one.
func (s *Search) run(b *board.Board, lastMove board.Move, side board.Player, stop func(playouts int) bool) (board.Move, Stats, error) {
	if status := b.GlobalStatus(); status != board.Undecided {
		return board.NoMove, Stats{}, errors.Errorf("mcts: Run called on decided position, status=%v", status)
	}

	root := &arena.Node{Move: lastMove, Player: side.Opponent()}

	playouts := 0
	for {
		if stop(playouts) {
			break
		}
		if err := s.playout(b, root); err != nil {
			return board.NoMove, Stats{Playouts: playouts}, err
		}
		playouts++
	}

	best := bestByMean(root)
	if best == nil {
		return board.NoMove, Stats{Playouts: playouts}, errNoChildren
	}
	return best.Move, Stats{Playouts: playouts}, nil
}

// playout runs one selection -> expansion -> simulation -> backpropagation
// cycle, leaving b unchanged on return.
func (s *Search) playout(b *board.Board, root *arena.Node) error {
	leaf := root
	for leaf.Child != nil {
		leaf = selectBestChild(leaf)
		b.Apply(leaf.Move, leaf.Player)
	}

	status := b.GlobalStatus()

	var rewardNode *arena.Node
	var reward float64

	if status != board.Undecided {
		rewardNode = leaf
		reward = outcomeFor(status, leaf.Player)
	} else {
		moves, err := movegen.Slow(b, leaf.Move)
		if err != nil {
			return err
		}

		var first, prev *arena.Node
		for _, m := range moves {
			child := s.Arena.Allocate()
			child.Parent = leaf
			child.Move = m
			child.Player = leaf.Player.Opponent()
			child.Upper = s.FPU + s.jitter.Float64()*fpuJitterScale
			if first == nil {
				first = child
			} else {
				prev.Next = child
			}
			prev = child
		}
		leaf.Child = first

		chosen := nthSibling(first, s.jitter.Intn(len(moves)))
		b.Apply(chosen.Move, chosen.Player)

		terminal, err := rollout(b, chosen.Move, chosen.Player.Opponent(), s.xorshift, s.rolloutScratch)
		if err != nil {
			return err
		}

		rewardNode = chosen
		reward = outcomeFor(terminal, chosen.Player)
	}

	s.backpropagate(b, root, rewardNode, reward)
	return nil
}

// backpropagate walks from rewardNode up to and including root, updating
// each node's visit/mean/bound statistics and flipping the reward's
// perspective at each level, and undoing each non-root node's move. root's
// own move was already on the board before the search began and is never
// undone here.
func (s *Search) backpropagate(b *board.Board, root, rewardNode *arena.Node, reward float64) {
	node := rewardNode
	for node != nil {
		if node != root {
			b.Undo(node.Move, node.Player)
		}

		node.Visits++
		node.Mean += (reward - node.Mean) / float64(node.Visits)
		node.InvSqrtVisits = 1 / math.Sqrt(float64(node.Visits))

		if parent := node.Parent; parent != nil {
			bound := s.C * math.Sqrt(log2(parent.Visits+1))
			for sib := parent.Child; sib != nil; sib = sib.Next {
				if sib.Visits > 0 {
					sib.Upper = sib.Mean + bound*sib.InvSqrtVisits
				}
			}
		}

		reward = 1 - reward
		node = node.Parent
	}
}

// log2 returns floor(log2(n)) as a float64 (0 for n == 0), using the
// precomputed table below 1024 and
// math/bits above it (see tables.Log2Floor32); the playout loop only ever
// calls this with small visit counts in practice, but correctness must
// hold for arbitrarily long searches too.
func log2(n uint32) float64 {
	if n == 0 {
		return 0
	}
	floor := tables.Log2Floor32(n)
	return float64(floor)
}

// selectBestChild walks node's sibling-linked children and returns the one
// with the highest cached Upper bound.
func selectBestChild(node *arena.Node) *arena.Node {
	best := node.Child
	for c := best.Next; c != nil; c = c.Next {
		if c.Upper > best.Upper {
			best = c
		}
	}
	return best
}

// bestByMean returns root's child with the highest mean reward, the
// criterion the final move selection uses instead of raw visit count.
func bestByMean(root *arena.Node) *arena.Node {
	var best *arena.Node
	for c := root.Child; c != nil; c = c.Next {
		if best == nil || c.Mean > best.Mean {
			best = c
		}
	}
	return best
}

// nthSibling walks k steps into a sibling-linked list starting at first.
func nthSibling(first *arena.Node, k int) *arena.Node {
	n := first
	for i := 0; i < k; i++ {
		n = n.Next
	}
	return n
}

// outcomeFor converts a terminal status into a reward from p's
// perspective: win 1.0, draw 0.5, loss 0.0.
func outcomeFor(status board.Status, p board.Player) float64 {
	switch status {
	case board.Draw:
		return 0.5
	case board.XWon:
		if p == board.X {
			return 1.0
		}
		return 0.0
	case board.OWon:
		if p == board.O {
			return 1.0
		}
		return 0.0
	default:
		return 0.5
	}
}
