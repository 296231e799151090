package testutil

import "math"

// RectGrid is a W×H grid with 4-way adjacency and dense indices y*W+x.
// It doubles as the road-rules stub: terrain flags are toggled per cell.
//
// Every cell defaults to enter cost 1.0, passable, explored, dry, buildable.
type RectGrid struct {
	W, H int

	costs    map[uint32]float64
	blocked  map[uint32]bool
	roads    map[uint32]bool
	water    map[uint32]bool
	hidden   map[uint32]bool
	nobuild  map[uint32]bool
	damaging map[uint32]bool
}

// NewRectGrid creates a flat w×h grid.
func NewRectGrid(w, h int) *RectGrid {
	return &RectGrid{
		W:        w,
		H:        h,
		costs:    make(map[uint32]float64),
		blocked:  make(map[uint32]bool),
		roads:    make(map[uint32]bool),
		water:    make(map[uint32]bool),
		hidden:   make(map[uint32]bool),
		nobuild:  make(map[uint32]bool),
		damaging: make(map[uint32]bool),
	}
}

// At returns the dense index of (x, y).
func (g *RectGrid) At(x, y int) uint32 { return uint32(y*g.W + x) }

// Len returns the number of cells.
func (g *RectGrid) Len() int { return g.W * g.H }

// Neighbors appends the 4-way neighbors of n to buf.
func (g *RectGrid) Neighbors(n uint32, buf []uint32) []uint32 {
	x := int(n) % g.W
	y := int(n) / g.W
	if x > 0 {
		buf = append(buf, g.At(x-1, y))
	}
	if x < g.W-1 {
		buf = append(buf, g.At(x+1, y))
	}
	if y > 0 {
		buf = append(buf, g.At(x, y-1))
	}
	if y < g.H-1 {
		buf = append(buf, g.At(x, y+1))
	}
	return buf
}

// Distance returns the Euclidean distance between two cells.
func (g *RectGrid) Distance(a, b uint32) float64 {
	ax, ay := int(a)%g.W, int(a)/g.W
	bx, by := int(b)%g.W, int(b)/g.W
	dx := float64(ax - bx)
	dy := float64(ay - by)
	return math.Sqrt(dx*dx + dy*dy)
}

// SetCost sets the cost of entering (x, y).
func (g *RectGrid) SetCost(x, y int, cost float64) { g.costs[g.At(x, y)] = cost }

// Block makes (x, y) impassable.
func (g *RectGrid) Block(x, y int) { g.blocked[g.At(x, y)] = true }

// AddRoad lays a road on (x, y) and, unless a cost was set explicitly,
// makes entering it cheap.
func (g *RectGrid) AddRoad(x, y int) {
	n := g.At(x, y)
	g.roads[n] = true
	if _, ok := g.costs[n]; !ok {
		g.costs[n] = 0.1
	}
}

// SetWater floods (x, y).
func (g *RectGrid) SetWater(x, y int) { g.water[g.At(x, y)] = true }

// Hide marks (x, y) unexplored.
func (g *RectGrid) Hide(x, y int) { g.hidden[g.At(x, y)] = true }

// ForbidRoad makes (x, y) ineligible for road building.
func (g *RectGrid) ForbidRoad(x, y int) { g.nobuild[g.At(x, y)] = true }

// SetDamaging makes ending a turn on (x, y) damaging.
func (g *RectGrid) SetDamaging(x, y int) { g.damaging[g.At(x, y)] = true }

// CostOf returns the cost of entering n, defaulting to 1.0.
func (g *RectGrid) CostOf(n uint32) float64 {
	if c, ok := g.costs[n]; ok {
		return c
	}
	return 1.0
}

// Road-rules contract.

func (g *RectGrid) CanPassThrough(n uint32) bool { return !g.blocked[n] }
func (g *RectGrid) IsExplored(n uint32) bool     { return !g.hidden[n] }
func (g *RectGrid) IsWater(n uint32) bool        { return g.water[n] }
func (g *RectGrid) IsImpassable(n uint32) bool   { return g.blocked[n] }
func (g *RectGrid) HasConnection(n uint32) bool  { return g.roads[n] }
func (g *RectGrid) CanBuildRoad(n uint32) bool   { return !g.nobuild[n] && !g.water[n] && !g.blocked[n] }

// Unit is a stub agent whose rules come from the grid's terrain flags.
// Mutate Pos or Left between queries to exercise staleness detection.
type Unit struct {
	Grid *RectGrid
	Pos  uint32
	Left float64
	Max  float64

	// CostFactor scales terrain costs for this unit; an escort with a lower
	// factor makes edges cheaper for the pair.
	CostFactor float64
}

// NewUnit places a unit at (x, y) with a full movement budget.
func NewUnit(g *RectGrid, x, y int, maxMovement float64) *Unit {
	return &Unit{
		Grid:       g,
		Pos:        g.At(x, y),
		Left:       maxMovement,
		Max:        maxMovement,
		CostFactor: 1.0,
	}
}

func (u *Unit) Position() uint32             { return u.Pos }
func (u *Unit) MovementLeft() float64        { return u.Left }
func (u *Unit) MaxMovement() float64         { return u.Max }
func (u *Unit) CanPassThrough(n uint32) bool { return u.Grid.CanPassThrough(n) }
func (u *Unit) TakesDamage(n uint32) bool    { return u.Grid.damaging[n] }
func (u *Unit) HasConnection(n uint32) bool  { return u.Grid.roads[n] }

func (u *Unit) MovementCost(_, to uint32) float64 {
	cost := u.Grid.CostOf(to)
	if u.CostFactor > 0 {
		cost *= u.CostFactor
	}
	return cost
}
