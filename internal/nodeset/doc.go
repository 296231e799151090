// Package nodeset wraps Roaring bitmaps as frontier/visited sets over dense
// node indices.
package nodeset
