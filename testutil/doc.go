// Package testutil provides deterministic rectangular grids and stub
// unit/road rules for pathfinding tests.
package testutil
