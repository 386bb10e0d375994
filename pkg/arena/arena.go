// Package arena implements a fixed-capacity node pool for the search tree
// in pkg/mcts: a contiguous backing slice with a cursor that wraps instead
// of a per-node allocator. Nodes are never freed individually.
package arena

import (
	"sync"

	"github.com/nullmove/uttt-engine/pkg/board"
	"github.com/rs/zerolog"
)

// Node is one search-tree node. Children are linked as a singly-linked
// sibling list rooted at Child, rather than a slice, so expansion is a
// sequence of O(1) allocations with no intermediate resizing.
type Node struct {
	Parent *Node
	Child  *Node
	Next   *Node

	Move   board.Move
	Player board.Player

	Visits        uint32
	Mean          float64
	Upper         float64
	InvSqrtVisits float64
}

// DefaultBytes is the default arena budget: ~500MB, matching the
// reference implementation's MEMSIZE, which comfortably holds well over a
// million nodes at sub-second search deadlines.
const DefaultBytes = 500_000_000

// Arena is a fixed-capacity pool of Nodes with a circular allocation
// cursor. It is not safe for concurrent use by more than one search at a
// time; pkg/selfplay gives each concurrent game its own Arena.
type Arena struct {
	nodes          []Node
	cursor         int
	totalAllocated int64

	warnOnce sync.Once
	log      zerolog.Logger
}

// New creates an Arena sized to hold approximately byteBudget bytes worth
// of Node values.
func New(byteBudget int64, log zerolog.Logger) *Arena {
	capacity := int(byteBudget / int64(nodeSize))
	if capacity < 1 {
		capacity = 1
	}
	return &Arena{
		nodes: make([]Node, capacity),
		log:   log,
	}
}

// nodeSize approximates unsafe.Sizeof(Node{}) without importing unsafe
// here; the exact figure only affects how many nodes fit in the budget, not
// correctness, so a conservative estimate (pointers + 2 ints + 3 floats on
// a 64-bit platform) is used.
const nodeSize = 3*8 + 4 + 8 + 8 + 8 + 8

// Capacity returns the number of nodes the arena can hold.
func (a *Arena) Capacity() int { return len(a.nodes) }

// Allocate returns a pointer to a fresh node slot, resets its fields, and
// advances the cursor, wrapping modulo capacity. If the cursor laps the
// whole arena within a single top-level search, previously allocated nodes
// from that same search would be silently overwritten; callers size the
// arena so this cannot happen for realistic per-move deadlines (see
// DefaultBytes).
func (a *Arena) Allocate() *Node {
	if a.cursor == 0 && a.allocatedOnce() {
		a.warnOnce.Do(func() {
			a.log.Warn().Msg("arena: allocation cursor wrapped, reusing node storage")
		})
	}
	n := &a.nodes[a.cursor]
	*n = Node{}
	a.cursor++
	a.totalAllocated++
	if a.cursor == len(a.nodes) {
		a.cursor = 0
	}
	return n
}

// allocatedOnce reports whether Allocate has been called at least once
// before this wrap check; guards against warning on the very first call
// when cursor starts at 0.
func (a *Arena) allocatedOnce() bool {
	return a.totalAllocated > 0
}

// Reset rewinds the allocation cursor to the start without zeroing memory;
// old node contents are semantically dead once unreachable from the next
// search's root.
func (a *Arena) Reset() {
	a.cursor = 0
	a.totalAllocated = 0
}
