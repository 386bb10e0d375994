package mcts

// Tunable constants. Defaults mirror the reference engine's recommended
// ranges; callers override them through engine.Config.
const (
	// DefaultC is the UCT exploration constant, recommended range 0.5-0.7.
	DefaultC = 0.6

	// DefaultFPU is the first-play-urgency bound given to newly expanded,
	// unvisited children so they can be selected without a prior visit.
	DefaultFPU = 1.2

	// DefaultCheckInterval is how many playouts run between wall-clock
	// deadline checks.
	DefaultCheckInterval = 100

	// fpuJitterScale bounds the tiny random nudge added to FPU so ties
	// between freshly expanded siblings break deterministically given a
	// seeded RNG, without affecting which child is preferred once either
	// has real visits.
	fpuJitterScale = 0.01
)
