package pathing

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// UnitPath runs a single point-to-point query for a unit, building a fresh
// Pathfinder and discarding it afterwards. escort may be nil.
func UnitPath(g Grid, unit, escort UnitRules, dest Node, optFns ...func(o *SearchOptions)) ([]Node, bool) {
	pf := New(g, UnitMovement(unit, escort), unit.MaxMovement())
	return pf.ShortestPath(dest, optFns...)
}

// UnitPaths resolves paths to several destinations concurrently against one
// shared store, so the queries reuse each other's discovered structure. The
// result is indexed like dests; nil marks an unreachable destination.
func UnitPaths(g Grid, unit, escort UnitRules, dests []Node) [][]Node {
	pf := New(g, UnitMovement(unit, escort), unit.MaxMovement())
	paths := make([][]Node, len(dests))

	var eg errgroup.Group
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i, dest := range dests {
		i, dest := i, dest
		eg.Go(func() error {
			if path, ok := pf.ShortestPath(dest); ok {
				paths[i] = path
			}
			return nil
		})
	}
	_ = eg.Wait() // queries report absence, never errors

	return paths
}

// RoadPath plans a road route between two cells, preferring stretches that
// already carry infrastructure. One-shot: no search state survives the call.
func RoadPath(g Grid, rules RoadRules, from, to Node) ([]Node, bool) {
	pf := New(g, RoadConstruction(rules, from), roadBaseCost,
		WithHeuristicCosts(roadConnectedCost, roadBaseCost))
	return pf.ShortestPath(to)
}

// Connected reports whether from and to are joined by an unbroken chain of
// connected cells, ignoring movement cost entirely.
func Connected(g Grid, rules RoadRules, from, to Node) bool {
	if !rules.HasConnection(from) || !rules.HasConnection(to) {
		return false
	}
	if from == to {
		return true
	}
	pf := New(g, &connectionPolicy{rules: rules, start: from}, 1)
	_, ok := pf.ShortestPath(to)
	return ok
}
