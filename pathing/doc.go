// Package pathing provides an incremental, cache-reusing A* engine over a
// finite grid graph with turn-quantized movement budgets.
//
// An agent spends fractional movement points that reset at discrete turn
// boundaries; paths are ranked by turns-to-arrive first, raw movement spent
// second. A Pathfinder amortizes repeated queries for the same agent by
// keeping the search frontier, the visited set, and a dense table of
// best-known arrival records alive across calls, and it permits multiple
// concurrent searches against that shared state.
//
// # Quick Start
//
//	pf := pathing.New(grid, pathing.UnitMovement(unit, nil), unit.MaxMovement())
//
//	if path, ok := pf.ShortestPath(dest); ok {
//	    // path holds the turn-ending cells only, destination last
//	}
//	for cell, arrival := range pf.ReachableThisTurn() {
//	    // every cell the unit can end this turn on
//	}
//
// One-shot helpers build a throwaway Pathfinder:
//
//	path, ok := pathing.RoadPath(grid, rules, from, to)
//	joined := pathing.Connected(grid, rules, from, to)
//
// # Concurrency
//
// ShortestPath and ReachableThisTurn may be called from multiple goroutines
// against the same Pathfinder. Each query snapshots the frontier/visited
// sets under a short-lived lock, runs its expansion pass to completion on
// the calling goroutine, and merges the result back. The shared arrival
// table is written without locking: concurrent passes may duplicate work on
// the same cell and the last writer wins, which trades global optimality
// under contention for lock-free throughput. Reset must never race with an
// in-flight query; callers serialize structural invalidation externally.
//
// # Failure model
//
// The engine raises no errors. An unreachable destination, a destination
// beyond the turn horizon, and a blocked destination all yield the same
// comma-ok absence.
package pathing
