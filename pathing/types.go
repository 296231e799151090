package pathing

// Node is the dense, zero-based index of a map cell. The whole engine
// addresses arrays, bitmaps and heaps by Node in O(1); the alias keeps that
// plumbing cast-free.
type Node = uint32

// Arrival records the best-known way a search has reached a cell.
//
// Turn counts how many turn boundaries were crossed to get there; Committed
// is the movement expenditure accounted within the arrival turn. Parent is
// an index into the same arrival table, never a pointer. Walking the parent
// chain from any reached cell decreases-or-holds Turn and terminates at the
// start cell (turn 0).
type Arrival struct {
	Cell      Node
	Parent    Node
	Turn      int
	Committed float64
}

// Grid is the topology contract the engine consumes. The map representation
// itself (tile adjacency, coordinates) lives outside the engine.
type Grid interface {
	// Len returns the number of cells; valid indices are [0, Len).
	Len() int

	// Neighbors appends the cells adjacent to n to buf and returns it.
	Neighbors(n Node, buf []Node) []Node

	// Distance returns the straight-line distance between two cells, used
	// only to scale the search heuristic.
	Distance(a, b Node) float64
}

// Policy bundles the domain rules a search needs. Implementations must be
// immutable for the lifetime of a Pathfinder: the relaxed-consistency
// concurrency design relies on racing passes computing interchangeable
// results for the same cell.
type Policy interface {
	// Traversable reports whether the agent may occupy n at all. A false
	// result is cached permanently as a negative.
	Traversable(n Node) bool

	// EdgeCost returns the movement points spent moving from from to to.
	EdgeCost(from, to Node) float64

	// EndOfTurnPenalty returns how many whole extra turns the agent loses
	// when a turn boundary lands on n (e.g. damaging terrain forcing a
	// pause).
	EndOfTurnPenalty(n Node) int

	// HasConnection reports whether n is on cheap infrastructure (road,
	// rail); connected cells scale the heuristic down.
	HasConnection(n Node) bool

	// CurrentPosition returns the agent's cell right now. Re-read on every
	// public operation; a change invalidates all cached search state.
	CurrentPosition() Node

	// RemainingBudget returns the movement points the agent still has this
	// turn. Re-read on every public operation; a change invalidates all
	// cached search state.
	RemainingBudget() float64
}
