package network

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/muskingum/internal/topo"
)

// ErrInvalidNetwork indicates the connectivity graph is not a valid DAG:
// a cycle, a self-loop, or a downstream index out of range. Use errors.Is
// against this sentinel; the wrapped cause is topo.ErrCycleDetected,
// topo.ErrSelfLoop, or topo.ErrOutOfRange.
var ErrInvalidNetwork = errors.New("network: invalid network")

// SegmentType distinguishes behaviorally-relevant segment kinds. Only Lake
// forces a fixed travel time in the preconditioner; Swale is carried through
// for fidelity with the source parameter files but has no routing effect of
// its own.
type SegmentType int

const (
	// Normal is an ordinary stream segment.
	Normal SegmentType = iota
	// Swale is a low-gradient drainage segment; routed identically to
	// Normal. Recovered from the original parameter file's SegmentType
	// enum, which distinguishes it from Normal even though no downstream
	// computation treats it differently.
	Swale
	// Lake forces K = 24h regardless of computed geometry.
	Lake
)

// Network is the immutable, zero-based connectivity view of a segment DAG.
type Network struct {
	toSegment   []int32 // zero-based downstream index, or -1
	hruSegment  []int32 // zero-based segment index per HRU, or -1
	outflowMask []bool  // true iff toSegment[i] < 0
	order       []int32 // topological order of [0, n)
}

// Build rebases 1-based toSegment/hruSegment to zero-based, validates the
// resulting graph is a DAG, and computes a topological order.
//
// A raw value of 0 in either array denotes "no downstream"/"no segment" and
// rebases to -1; all other raw values are decremented by one.
func Build(toSegmentRaw, hruSegmentRaw []int32, n int) (*Network, error) {
	if len(toSegmentRaw) != n {
		return nil, fmt.Errorf("%w: len(toSegment)=%d != nsegment=%d", ErrInvalidNetwork, len(toSegmentRaw), n)
	}

	to := make([]int32, n)
	mask := make([]bool, n)
	for i, raw := range toSegmentRaw {
		d := raw - 1
		to[i] = d
		mask[i] = d < 0
	}

	hru := make([]int32, len(hruSegmentRaw))
	for h, raw := range hruSegmentRaw {
		hru[h] = raw - 1
	}

	order, err := topo.BuildOrder(to)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidNetwork, err)
	}

	return &Network{
		toSegment:   to,
		hruSegment:  hru,
		outflowMask: mask,
		order:       order,
	}, nil
}

// Len returns the number of segments, N.
func (n *Network) Len() int { return len(n.toSegment) }

// Order returns the topological order of segment indices [0, N).
func (n *Network) Order() []int32 { return n.order }

// OutflowMask returns, per segment, whether it flows out of the domain.
func (n *Network) OutflowMask() []bool { return n.outflowMask }

// Downstream returns the zero-based downstream index of segment i, or -1
// if segment i has no downstream within the network.
func (n *Network) Downstream(i int) int32 { return n.toSegment[i] }

// HRUSegment returns the zero-based segment index that HRU h drains to, or
// -1 if HRU h drains outside the modeled network.
func (n *Network) HRUSegment(h int) int32 { return n.hruSegment[h] }

// NumHRU returns the number of HRUs mapped by this network.
func (n *Network) NumHRU() int { return len(n.hruSegment) }
