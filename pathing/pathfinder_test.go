package pathing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ambeco/Unciv/pathing"
	"github.com/Ambeco/Unciv/testutil"
)

var (
	_ pathing.Grid      = (*testutil.RectGrid)(nil)
	_ pathing.UnitRules = (*testutil.Unit)(nil)
	_ pathing.RoadRules = (*testutil.RectGrid)(nil)
)

func newUnitPathfinder(g *testutil.RectGrid, u *testutil.Unit, optFns ...func(o *pathing.Options)) *pathing.Pathfinder {
	return pathing.New(g, pathing.UnitMovement(u, nil), u.MaxMovement(), optFns...)
}

// A flat lane with two cost-2 cells and a budget of 1 per turn: every hop
// overflows the budget, so each cell costs a whole turn. Three hops beat any
// detour, and every traversed cell is a turn-ending waypoint.
func TestShortestPath_TurnCountBeatsMovementSum(t *testing.T) {
	g := testutil.NewRectGrid(4, 1)
	g.SetCost(1, 0, 2)
	g.SetCost(2, 0, 2)
	u := testutil.NewUnit(g, 0, 0, 1)
	pf := newUnitPathfinder(g, u)

	dest := g.At(3, 0)
	path, ok := pf.ShortestPath(dest)
	require.True(t, ok)
	assert.Equal(t, []pathing.Node{g.At(1, 0), g.At(2, 0), g.At(3, 0)}, path)

	arrival, ok := pf.Inspect(dest)
	require.True(t, ok)
	assert.Equal(t, 3, arrival.Turn)
}

// A cheap rail row against a full-price shortcut: the rail route wins on
// turn count even though it visits more cells, and the returned path holds
// only turn-ending cells.
func TestShortestPath_PrefersInfrastructure(t *testing.T) {
	g := testutil.NewRectGrid(5, 2)
	for x := 0; x < 5; x++ {
		g.AddRoad(x, 1)
	}
	g.AddRoad(4, 0)
	u := testutil.NewUnit(g, 0, 0, 1)
	pf := newUnitPathfinder(g, u, pathing.WithHeuristicCosts(0.1, 1.0))

	dest := g.At(4, 0)
	path, ok := pf.ShortestPath(dest)
	require.True(t, ok)
	require.NotEmpty(t, path)
	assert.Equal(t, dest, path[len(path)-1])

	arrival, ok := pf.Inspect(dest)
	require.True(t, ok)
	assert.Equal(t, 1, arrival.Turn, "rail route should arrive in one turn; the unpaved shortcut needs four")
	assert.Equal(t, g.At(4, 1), arrival.Parent, "destination should be entered from the rail")
}

func TestShortestPath_UnreachableDestination(t *testing.T) {
	g := testutil.NewRectGrid(3, 3)
	g.Block(2, 2)
	u := testutil.NewUnit(g, 0, 0, 2)
	pf := newUnitPathfinder(g, u)

	dest := g.At(2, 2)
	path, ok := pf.ShortestPath(dest)
	assert.False(t, ok)
	assert.Nil(t, path)

	_, ok = pf.Inspect(dest)
	assert.False(t, ok, "a blocked cell must never acquire an arrival record")
}

func TestShortestPath_DestinationIsStart(t *testing.T) {
	g := testutil.NewRectGrid(3, 3)
	u := testutil.NewUnit(g, 1, 1, 2)
	pf := newUnitPathfinder(g, u)

	path, ok := pf.ShortestPath(g.At(1, 1))
	require.True(t, ok)
	assert.NotNil(t, path)
	assert.Empty(t, path, "no turn boundary is crossed standing still")
}

func TestShortestPath_TurnsStrictlyIncreaseAlongPath(t *testing.T) {
	g := testutil.NewRectGrid(6, 1)
	u := testutil.NewUnit(g, 0, 0, 1)
	pf := newUnitPathfinder(g, u)

	path, ok := pf.ShortestPath(g.At(5, 0))
	require.True(t, ok)
	require.NotEmpty(t, path)
	assert.Equal(t, g.At(5, 0), path[len(path)-1])
	assert.NotContains(t, path, g.At(0, 0), "the start cell never appears in a path")

	prevTurn := 0
	for _, cell := range path {
		arrival, ok := pf.Inspect(cell)
		require.True(t, ok)
		assert.Greater(t, arrival.Turn, prevTurn)
		prevTurn = arrival.Turn
	}
}

func TestShortestPath_Idempotent(t *testing.T) {
	g := testutil.NewRectGrid(4, 1)
	g.SetCost(1, 0, 2)
	g.SetCost(2, 0, 2)
	u := testutil.NewUnit(g, 0, 0, 1)
	pf := newUnitPathfinder(g, u)

	dest := g.At(3, 0)
	first, ok := pf.ShortestPath(dest)
	require.True(t, ok)
	before, _ := pf.Inspect(dest)
	passes := pf.Stats().Passes

	second, ok := pf.ShortestPath(dest)
	require.True(t, ok)
	after, _ := pf.Inspect(dest)

	assert.Equal(t, first, second)
	assert.Equal(t, before, after)
	assert.Equal(t, passes, pf.Stats().Passes, "an answered query must not expand again")
}

// Bounding the horizon gives up gracefully; a later unbounded call resumes
// from the surviving frontier instead of starting over.
func TestShortestPath_HorizonBoundedThenResumed(t *testing.T) {
	g := testutil.NewRectGrid(6, 1)
	u := testutil.NewUnit(g, 0, 0, 1)
	pf := newUnitPathfinder(g, u)

	dest := g.At(5, 0)
	path, ok := pf.ShortestPath(dest, pathing.WithMaxTurns(2))
	assert.False(t, ok)
	assert.Nil(t, path)

	path, ok = pf.ShortestPath(dest)
	require.True(t, ok)
	assert.Equal(t, dest, path[len(path)-1])
	assert.Equal(t, 2, pf.Stats().Passes)
}

// Turn-boundary penalties can push a destination's turn count past the cell
// count of the map; the default horizon must still find it.
func TestShortestPath_DefaultHorizonOutlastsPenalties(t *testing.T) {
	g := testutil.NewRectGrid(6, 1)
	for x := 0; x < 6; x++ {
		g.SetDamaging(x, 0)
	}
	u := testutil.NewUnit(g, 0, 0, 1)
	pf := newUnitPathfinder(g, u)

	dest := g.At(5, 0)
	path, ok := pf.ShortestPath(dest)
	require.True(t, ok)
	assert.Equal(t, dest, path[len(path)-1])

	arrival, ok := pf.Inspect(dest)
	require.True(t, ok)
	assert.Equal(t, 10, arrival.Turn, "each of the five hops crosses a boundary and pauses a turn")
}

func TestInspect_RootRecord(t *testing.T) {
	g := testutil.NewRectGrid(3, 3)
	u := testutil.NewUnit(g, 1, 1, 2)
	pf := newUnitPathfinder(g, u)

	// Any public operation seeds the store first.
	pf.ReachableThisTurn()

	root, ok := pf.Inspect(g.At(1, 1))
	require.True(t, ok)
	assert.Equal(t, g.At(1, 1), root.Cell)
	assert.Equal(t, g.At(1, 1), root.Parent)
	assert.Equal(t, 0, root.Turn)
	assert.Equal(t, 2.0, root.Committed)
}

func TestReachableThisTurn(t *testing.T) {
	g := testutil.NewRectGrid(3, 3)
	u := testutil.NewUnit(g, 1, 1, 2)
	pf := newUnitPathfinder(g, u)

	reachable := pf.ReachableThisTurn()
	assert.Len(t, reachable, 8, "budget 2 covers the whole 3x3 ring")
	for cell, arrival := range reachable {
		assert.Equal(t, 1, arrival.Turn)
		assert.NotEqual(t, g.At(1, 1), cell)
		assert.GreaterOrEqual(t, arrival.Committed, 0.0)
		assert.LessOrEqual(t, arrival.Committed, u.MaxMovement())
	}
}

func TestReachableThisTurn_Cached(t *testing.T) {
	g := testutil.NewRectGrid(3, 3)
	u := testutil.NewUnit(g, 1, 1, 2)
	pf := newUnitPathfinder(g, u)

	first := pf.ReachableThisTurn()
	passes := pf.Stats().Passes

	second := pf.ReachableThisTurn()
	assert.Equal(t, passes, pf.Stats().Passes, "the cached turn set must not trigger a pass")
	assert.Equal(t, first, second)
}

func TestRefresh_BudgetChangeResets(t *testing.T) {
	g := testutil.NewRectGrid(6, 1)
	u := testutil.NewUnit(g, 0, 0, 1)
	pf := newUnitPathfinder(g, u)

	far := g.At(5, 0)
	_, ok := pf.ShortestPath(far)
	require.True(t, ok)
	_, ok = pf.Inspect(far)
	require.True(t, ok)

	u.Left = 0.5
	reachable := pf.ReachableThisTurn()

	_, ok = pf.Inspect(far)
	assert.False(t, ok, "stale records must vanish after the implicit reset")

	root, ok := pf.Inspect(g.At(0, 0))
	require.True(t, ok)
	assert.Equal(t, 0.5, root.Committed)
	assert.Len(t, reachable, 1)
}

func TestRefresh_PositionChangeResets(t *testing.T) {
	g := testutil.NewRectGrid(6, 1)
	u := testutil.NewUnit(g, 0, 0, 1)
	pf := newUnitPathfinder(g, u)

	_, ok := pf.ShortestPath(g.At(5, 0))
	require.True(t, ok)

	u.Pos = g.At(2, 0)
	path, ok := pf.ShortestPath(g.At(3, 0))
	require.True(t, ok)
	assert.Equal(t, []pathing.Node{g.At(3, 0)}, path)

	root, ok := pf.Inspect(g.At(2, 0))
	require.True(t, ok)
	assert.Equal(t, 0, root.Turn)

	_, ok = pf.Inspect(g.At(5, 0))
	assert.False(t, ok, "records premised on the old position must vanish")
}

func TestReset_Explicit(t *testing.T) {
	g := testutil.NewRectGrid(4, 1)
	u := testutil.NewUnit(g, 0, 0, 1)
	pf := newUnitPathfinder(g, u)

	_, ok := pf.ShortestPath(g.At(3, 0))
	require.True(t, ok)

	pf.Reset()

	_, ok = pf.Inspect(g.At(3, 0))
	assert.False(t, ok)
	stats := pf.Stats()
	assert.Equal(t, 0, stats.Visited)
	assert.Equal(t, 1, stats.Frontier, "only the reseeded root remains")
}

// A unit that has committed nothing this turn still advances across an edge
// costing more than a whole turn's budget, without an extra boundary.
func TestShortestPath_ForcedProgressOnExpensiveEdge(t *testing.T) {
	g := testutil.NewRectGrid(2, 1)
	g.SetCost(1, 0, 3)
	u := testutil.NewUnit(g, 0, 0, 1)
	u.Left = 0
	pf := newUnitPathfinder(g, u)

	_, ok := pf.ShortestPath(g.At(1, 0))
	require.True(t, ok)

	arrival, ok := pf.Inspect(g.At(1, 0))
	require.True(t, ok)
	assert.Equal(t, 0, arrival.Turn)
	assert.Equal(t, 3.0, arrival.Committed)
}
