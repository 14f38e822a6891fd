// Package network builds the frozen, zero-based connectivity view of a
// stream segment network from raw 1-based parameter-file indices.
//
// Build rebases to_segment and hru_segment to zero-based indices (where a
// raw value of 0 means "no downstream"/"no segment", rebased to -1), derives
// the outflow mask, and computes a topological order over the segment DAG.
// The result is immutable; callers hold it for the lifetime of an Engine.
package network
