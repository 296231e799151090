package pathing

import (
	"math"
	"sync"

	"github.com/Ambeco/Unciv/internal/arena"
	"github.com/Ambeco/Unciv/internal/nodeset"
)

// Pathfinder is a long-lived, per-agent store of partial search results.
//
// It holds the frontier set (discovered, not yet expanded), the visited set
// (fully expanded, or proven untraversable), and a dense table of best-known
// arrival records, all of which survive across queries so repeated searches
// for the same agent reuse previously discovered structure.
//
// Every public operation first re-reads the policy's CurrentPosition and
// RemainingBudget; if either differs from the last-seen value the store
// rebuilds itself from scratch before proceeding. Neither that implicit
// rebuild nor the explicit Reset may run concurrently with an in-flight
// query; the queries themselves may race freely.
type Pathfinder struct {
	grid   Grid
	policy Policy
	budget float64
	opts   Options

	mu        sync.Mutex
	frontier  *nodeset.Set
	visited   *nodeset.Set
	arrivals  *arena.Arena[Arrival]
	turnCache map[Node]Arrival

	lastPos    Node
	lastBudget float64
	seeded     bool

	passes   int
	expanded int
}

// New creates a Pathfinder bound to an agent through pol's accessors, with
// the given fixed per-turn movement budget.
func New(g Grid, pol Policy, budget float64, optFns ...func(o *Options)) *Pathfinder {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = NoopLogger()
	}
	if opts.QueueCapacity <= 0 {
		opts.QueueCapacity = DefaultOptions.QueueCapacity
	}

	return &Pathfinder{
		grid:     g,
		policy:   pol,
		budget:   budget,
		opts:     opts,
		frontier: nodeset.New(),
		visited:  nodeset.New(),
		arrivals: arena.New[Arrival](g.Len()),
	}
}

// ShortestPath returns the path to dest as the sequence of turn-ending cells
// only: intermediate cells traversed within the same turn are omitted, the
// destination is always the last element, and the start cell never appears.
// A destination equal to the current position yields an empty, present path.
//
// If dest has not been reached yet and the frontier is non-empty, one
// bounded expansion pass runs toward it first. Absence means dest is
// unreachable within the turn horizon, or blocked.
func (p *Pathfinder) ShortestPath(dest Node, optFns ...func(o *SearchOptions)) ([]Node, bool) {
	so := SearchOptions{}
	for _, fn := range optFns {
		fn(&so)
	}
	// End-of-turn penalties can push a reachable cell's turn count past any
	// bound derived from the map size, so the default is truly unbounded;
	// the pass still terminates when its queue exhausts the finite grid.
	horizon := so.MaxTurns
	if horizon <= 0 {
		horizon = math.MaxInt
	}

	p.mu.Lock()
	p.refreshLocked()
	start := p.lastPos
	if dest == start {
		p.mu.Unlock()
		return []Node{}, true
	}
	if p.arrivals.Load(dest) == nil && p.frontier.Len() > 0 {
		ps := p.newPassLocked(dest, true, horizon)
		p.mu.Unlock()
		ps.run()
		p.mu.Lock()
		p.mergeLocked(ps)
		p.opts.Logger.LogPass(dest, true, ps.expanded)
	}
	p.mu.Unlock()

	// Extraction reads the now-updated shared table without further locking.
	path, ok := p.extractPath(dest, start)
	p.opts.Logger.LogPath(dest, len(path), ok)
	return path, ok
}

// ReachableThisTurn returns every cell the agent can end the current turn
// on, keyed by cell, with its arrival record. The result is cached until the
// frontier/visited sets are rebuilt; callers must treat it as read-only.
func (p *Pathfinder) ReachableThisTurn() map[Node]Arrival {
	p.mu.Lock()
	p.refreshLocked()
	if p.turnCache != nil {
		cache := p.turnCache
		p.mu.Unlock()
		return cache
	}
	if p.frontier.Len() > 0 {
		ps := p.newPassLocked(0, false, 1)
		p.mu.Unlock()
		ps.run()
		p.mu.Lock()
		p.mergeLocked(ps)
		p.opts.Logger.LogPass(0, false, ps.expanded)
	}
	cache := make(map[Node]Arrival)
	p.visited.Iterate(func(n uint32) bool {
		if rec := p.arrivals.Load(n); rec != nil && rec.Turn == 1 {
			cache[n] = *rec
		}
		return true
	})
	p.turnCache = cache
	p.mu.Unlock()
	return cache
}

// Reset rebuilds all cached search state from the current accessor values
// and reseeds the root record.
//
// Reset is NOT safe to call concurrently with in-flight queries; the caller
// must serialize structural invalidation externally.
func (p *Pathfinder) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.resetLocked(p.policy.CurrentPosition(), p.policy.RemainingBudget())
}

// Inspect returns the arrival record currently cached for n, for
// diagnostics and tests.
func (p *Pathfinder) Inspect(n Node) (Arrival, bool) {
	if rec := p.arrivals.Load(n); rec != nil {
		return *rec, true
	}
	return Arrival{}, false
}

// refreshLocked re-reads the agent accessors and rebuilds all cached state
// when the premises of that state (start position, remaining budget) no
// longer hold.
func (p *Pathfinder) refreshLocked() {
	pos := p.policy.CurrentPosition()
	rem := p.policy.RemainingBudget()
	if p.seeded && pos == p.lastPos && rem == p.lastBudget {
		return
	}
	p.resetLocked(pos, rem)
}

func (p *Pathfinder) resetLocked(pos Node, rem float64) {
	p.frontier.Clear()
	p.visited.Clear()
	p.arrivals.Reset()
	p.turnCache = nil

	root := Arrival{Cell: pos, Parent: pos, Turn: 0, Committed: rem}
	p.arrivals.Store(pos, &root)
	p.frontier.Add(pos)

	p.lastPos = pos
	p.lastBudget = rem
	p.seeded = true
	p.opts.Logger.LogReset(pos, rem)
}

// newPassLocked snapshots the frontier/visited sets into a fresh pass.
func (p *Pathfinder) newPassLocked(dest Node, hasDest bool, horizon int) *pass {
	return &pass{
		grid:            p.grid,
		policy:          p.policy,
		budget:          p.budget,
		dest:            dest,
		hasDest:         hasDest,
		horizon:         horizon,
		arrivals:        p.arrivals,
		frontier:        p.frontier.Clone(),
		visited:         p.visited.Clone(),
		connectedCost:   p.opts.ConnectedCost,
		unconnectedCost: p.opts.UnconnectedCost,
		queueCapacity:   p.opts.QueueCapacity,
	}
}

// mergeLocked reconciles a completed pass back into the shared sets.
func (p *Pathfinder) mergeLocked(ps *pass) {
	p.visited.Union(ps.visited)
	p.frontier.Union(ps.frontier)
	// Anything a concurrent pass finalized while this one ran drops out of
	// the frontier here. A node can still transiently reappear in the
	// frontier after being popped when two merges interleave; the passes
	// tolerate re-expansion.
	p.frontier.Subtract(p.visited)
	p.passes++
	p.expanded += ps.expanded
}

// extractPath walks the parent chain backward from dest, keeping only the
// cells whose predecessor arrived on an earlier turn (the turn-ending
// positions), then reverses into chronological order.
func (p *Pathfinder) extractPath(dest, start Node) ([]Node, bool) {
	rec := p.arrivals.Load(dest)
	if rec == nil {
		return nil, false
	}
	path := []Node{dest}
	cur := rec
	// Bounded by the arena size so a parent chain damaged by a racing reset
	// cannot loop forever.
	for steps := 0; cur.Cell != start; {
		if steps++; steps > p.arrivals.Len() {
			return nil, false
		}
		parent := p.arrivals.Load(cur.Parent)
		if parent == nil {
			return nil, false
		}
		if parent.Cell != start && parent.Turn < cur.Turn {
			path = append(path, parent.Cell)
		}
		cur = parent
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, true
}
