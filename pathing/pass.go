package pathing

import (
	"github.com/Ambeco/Unciv/internal/arena"
	"github.com/Ambeco/Unciv/internal/nodeset"
	"github.com/Ambeco/Unciv/internal/queue"
)

// pass is a single run-to-completion expansion over a snapshot of the
// shared search state. It owns cloned frontier/visited sets taken under the
// store's lock, writes newly discovered arrival records straight into the
// shared arena without locking, and hands its sets back as the merge delta.
//
// A pass is NOT thread-safe; it runs on the goroutine that invoked the
// query. Several passes may run concurrently against the same arena.
type pass struct {
	grid    Grid
	policy  Policy
	budget  float64
	dest    Node
	hasDest bool
	horizon int

	arrivals *arena.Arena[Arrival]
	frontier *nodeset.Set
	visited  *nodeset.Set
	pq       *queue.PriorityQueue

	connectedCost   float64
	unconnectedCost float64
	queueCapacity   int

	neighbors []Node
	expanded  int
}

func (ps *pass) run() {
	ps.pq = queue.NewMin(ps.queueCapacity)
	ps.seed()
	for {
		// Another pass may have produced the destination's record while
		// this one ran; either way the search is over.
		if ps.hasDest && ps.arrivals.Load(ps.dest) != nil {
			return
		}
		item, ok := ps.pq.PopItem()
		if !ok {
			return
		}
		ps.expand(item.Node)
	}
}

// seed enqueues every snapshot frontier node whose known arrival is within
// the horizon.
func (ps *pass) seed() {
	ps.frontier.Iterate(func(n uint32) bool {
		if rec := ps.arrivals.Load(n); rec != nil && rec.Turn <= ps.horizon {
			ps.pq.PushItem(queue.Item{Node: n, Priority: ps.priority(rec)})
		}
		return true
	})
}

func (ps *pass) expand(n Node) {
	ps.visited.Add(n)
	ps.frontier.Remove(n)
	cur := ps.arrivals.Load(n)
	if cur == nil {
		return
	}
	ps.expanded++

	ps.neighbors = ps.grid.Neighbors(n, ps.neighbors[:0])
	for _, nb := range ps.neighbors {
		if ps.visited.Contains(nb) || ps.frontier.Contains(nb) {
			continue
		}
		if !ps.policy.Traversable(nb) {
			// Cached negative: the cell is never examined again.
			ps.visited.Add(nb)
			continue
		}
		rec := ps.arrivals.Load(nb)
		if rec == nil {
			next := ps.next(cur, nb)
			// Unsynchronized write into the shared table: a racing pass may
			// overwrite this slot with its own record.
			ps.arrivals.Store(nb, &next)
			rec = &next
		}
		ps.frontier.Add(nb)
		// Enqueue even when a concurrent pass already computed the record;
		// this pass still has to expand its neighbors.
		if rec.Turn <= ps.horizon {
			ps.pq.PushItem(queue.Item{Node: nb, Priority: ps.priority(rec)})
		}
	}
}

// next applies the turn-boundary rule. The neighbor stays in the current
// turn when the edge fits the remaining budget, or when nothing has been
// committed this turn yet: the forced-progress case that keeps a unit from
// starving on a single edge costing more than a whole turn's budget.
func (ps *pass) next(cur *Arrival, nb Node) Arrival {
	edge := ps.policy.EdgeCost(cur.Cell, nb)
	if cur.Committed+edge <= ps.budget || cur.Committed == 0 {
		return Arrival{
			Cell:      nb,
			Parent:    cur.Cell,
			Turn:      cur.Turn,
			Committed: cur.Committed + edge,
		}
	}
	return Arrival{
		Cell:      nb,
		Parent:    cur.Cell,
		Turn:      cur.Turn + 1 + ps.policy.EndOfTurnPenalty(nb),
		Committed: edge,
	}
}

// priority is movement spent so far, turn-normalized, plus the heuristic
// estimate to the destination. Lower sorts first.
func (ps *pass) priority(rec *Arrival) float64 {
	return float64(rec.Turn-1)*ps.budget + rec.Committed + ps.heuristic(rec.Cell)
}

func (ps *pass) heuristic(n Node) float64 {
	if !ps.hasDest || n == ps.dest {
		return 0
	}
	d := ps.grid.Distance(n, ps.dest)
	if ps.policy.HasConnection(n) {
		return d * ps.connectedCost
	}
	// The final unconnected hop costs full price even under an optimistic
	// connectivity assumption for the rest of the route.
	return (d-1)*ps.connectedCost + ps.unconnectedCost
}
