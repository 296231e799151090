package pathing

// Stats reports counters about the cached search state, for diagnostics.
type Stats struct {
	// Passes is the number of expansion passes merged so far.
	Passes int

	// Expanded is the total number of node expansions across those passes.
	Expanded int

	// Visited is the current size of the visited set, including cached
	// negatives for untraversable cells.
	Visited int

	// Frontier is the number of discovered cells awaiting expansion.
	Frontier int
}

// Stats returns a snapshot of the store's counters.
func (p *Pathfinder) Stats() Stats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return Stats{
		Passes:   p.passes,
		Expanded: p.expanded,
		Visited:  p.visited.Len(),
		Frontier: p.frontier.Len(),
	}
}
