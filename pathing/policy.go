package pathing

const (
	// roadConnectedCost is the per-cell cost of extending a road along
	// existing road or rail infrastructure.
	roadConnectedCost = 0.5

	// roadBaseCost is the per-cell cost of breaking new ground. It also
	// serves as the road planner's per-turn budget.
	roadBaseCost = 1.0

	// defaultDamagePenalty is the number of extra turns a unit loses when
	// it ends a turn on damaging terrain.
	defaultDamagePenalty = 1
)

// UnitRules is the domain contract unit-movement pathfinding consumes.
// Terrain rules, unit abilities and exploration state all live behind it.
type UnitRules interface {
	// Position returns the unit's current cell.
	Position() Node

	// MovementLeft returns the movement points remaining this turn.
	MovementLeft() float64

	// MaxMovement returns the unit's full per-turn movement budget.
	MaxMovement() float64

	// CanPassThrough reports whether the unit may traverse n.
	CanPassThrough(n Node) bool

	// MovementCost returns the movement points the unit spends entering to
	// from from.
	MovementCost(from, to Node) float64

	// TakesDamage reports whether ending a turn on n damages the unit.
	TakesDamage(n Node) bool

	// HasConnection reports whether n carries a road or rail connection.
	HasConnection(n Node) bool
}

type unitPolicy struct {
	unit          UnitRules
	escort        UnitRules
	damagePenalty int
}

// UnitMovement returns the movement policy for a unit. escort may be nil;
// when present, each edge costs the cheaper of the two units' rates so the
// pair travels at the escorted price.
func UnitMovement(unit, escort UnitRules) Policy {
	return &unitPolicy{
		unit:          unit,
		escort:        escort,
		damagePenalty: defaultDamagePenalty,
	}
}

func (up *unitPolicy) Traversable(n Node) bool { return up.unit.CanPassThrough(n) }

func (up *unitPolicy) EdgeCost(from, to Node) float64 {
	cost := up.unit.MovementCost(from, to)
	if up.escort != nil {
		if c := up.escort.MovementCost(from, to); c < cost {
			cost = c
		}
	}
	return cost
}

func (up *unitPolicy) EndOfTurnPenalty(n Node) int {
	if up.unit.TakesDamage(n) {
		return up.damagePenalty
	}
	return 0
}

func (up *unitPolicy) HasConnection(n Node) bool { return up.unit.HasConnection(n) }
func (up *unitPolicy) CurrentPosition() Node     { return up.unit.Position() }
func (up *unitPolicy) RemainingBudget() float64  { return up.unit.MovementLeft() }

// RoadRules is the domain contract road-construction pathfinding consumes.
type RoadRules interface {
	// CanPassThrough reports whether a worker could stand on n.
	CanPassThrough(n Node) bool

	// IsExplored reports whether n has been revealed.
	IsExplored(n Node) bool

	// IsWater reports whether n is a water cell.
	IsWater(n Node) bool

	// IsImpassable reports whether n can never be entered.
	IsImpassable(n Node) bool

	// HasConnection reports whether n already carries a road or rail.
	HasConnection(n Node) bool

	// CanBuildRoad reports whether a road could be laid on n.
	CanBuildRoad(n Node) bool
}

type roadPolicy struct {
	rules RoadRules
	start Node
}

// RoadConstruction returns the policy used to plan a road route from start.
// Cells already carrying infrastructure cost half price, so the planner
// prefers reusing what exists over breaking new ground.
func RoadConstruction(rules RoadRules, start Node) Policy {
	return &roadPolicy{rules: rules, start: start}
}

func (rp *roadPolicy) Traversable(n Node) bool {
	r := rp.rules
	if r.IsWater(n) || r.IsImpassable(n) || !r.IsExplored(n) || !r.CanPassThrough(n) {
		return false
	}
	return r.HasConnection(n) || r.CanBuildRoad(n)
}

func (rp *roadPolicy) EdgeCost(_, to Node) float64 {
	if rp.rules.HasConnection(to) {
		return roadConnectedCost
	}
	return roadBaseCost
}

func (rp *roadPolicy) EndOfTurnPenalty(Node) int { return 0 }
func (rp *roadPolicy) HasConnection(n Node) bool { return rp.rules.HasConnection(n) }
func (rp *roadPolicy) CurrentPosition() Node     { return rp.start }
func (rp *roadPolicy) RemainingBudget() float64  { return roadBaseCost }

// connectionPolicy walks only cells that already carry a connection, with a
// flat cost, so the Connected query ignores movement entirely.
type connectionPolicy struct {
	rules RoadRules
	start Node
}

func (cp *connectionPolicy) Traversable(n Node) bool    { return cp.rules.HasConnection(n) }
func (cp *connectionPolicy) EdgeCost(_, _ Node) float64 { return 1 }
func (cp *connectionPolicy) EndOfTurnPenalty(Node) int  { return 0 }
func (cp *connectionPolicy) HasConnection(Node) bool    { return true }
func (cp *connectionPolicy) CurrentPosition() Node      { return cp.start }
func (cp *connectionPolicy) RemainingBudget() float64   { return 1 }
