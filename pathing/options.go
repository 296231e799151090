package pathing

// Options configures a Pathfinder at construction time.
type Options struct {
	// Logger receives diagnostic events. Defaults to the noop logger; the
	// search loop is a hot path.
	Logger *Logger

	// ConnectedCost is the cheapest per-cell movement cost the heuristic
	// assumes along connected infrastructure.
	ConnectedCost float64

	// UnconnectedCost is the cheapest per-cell movement cost the heuristic
	// assumes off infrastructure. The final unconnected hop of a route is
	// always charged at this rate.
	UnconnectedCost float64

	// QueueCapacity is the initial capacity of each pass's priority queue.
	QueueCapacity int
}

// DefaultOptions contains the default options for a Pathfinder.
var DefaultOptions = Options{
	ConnectedCost:   1.0,
	UnconnectedCost: 1.0,
	QueueCapacity:   128,
}

// WithLogger configures the diagnostic logger.
func WithLogger(l *Logger) func(o *Options) {
	return func(o *Options) { o.Logger = l }
}

// WithHeuristicCosts configures the per-cell cost floor the heuristic uses
// for connected and unconnected cells.
func WithHeuristicCosts(connected, unconnected float64) func(o *Options) {
	return func(o *Options) {
		o.ConnectedCost = connected
		o.UnconnectedCost = unconnected
	}
}

// SearchOptions configures a single ShortestPath call.
type SearchOptions struct {
	// MaxTurns bounds the expansion horizon of the pass; 0 means unbounded.
	// The horizon is the only bound on search effort, acting as a soft
	// timeout.
	MaxTurns int
}

// WithMaxTurns bounds a single query to the given turn horizon.
func WithMaxTurns(n int) func(o *SearchOptions) {
	return func(o *SearchOptions) { o.MaxTurns = n }
}
