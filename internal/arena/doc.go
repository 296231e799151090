// Package arena provides a dense table of optional records with one atomic
// slot per index.
//
// It backs the shared arrival table of the pathfinding engine: concurrent
// search passes write newly discovered records into the same arena without
// locking. The relaxed write semantics (last writer wins, no keep-if-better
// check) trade global optimality under contention for lock-free throughput;
// parent back-references are stored as indices into the same arena, never as
// pointers, so records stay self-contained.
package arena
