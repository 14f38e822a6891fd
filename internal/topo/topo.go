// Package topo computes a topological order over a segment-to-segment
// connectivity array, and reports a cycle if one exists.
//
// Unlike a general-purpose graph library, the caller already holds
// connectivity as a dense `to[i] -> downstream index` array, so there is no
// adjacency-list construction step exposed to callers: BuildOrder builds its
// own internal adjacency from `to` and discards it on return.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V + E)
package topo

import (
	"errors"
	"fmt"
)

// ErrCycleDetected indicates the connectivity graph is not acyclic.
var ErrCycleDetected = errors.New("topo: cycle detected")

// ErrOutOfRange indicates a downstream index falls outside [0, n).
var ErrOutOfRange = errors.New("topo: downstream index out of range")

// ErrSelfLoop indicates a segment flows into itself.
var ErrSelfLoop = errors.New("topo: segment flows into itself")

// BuildOrder computes a topological order of [0, n) given to[i], the
// downstream index of segment i, or -1 if segment i has no downstream.
//
// Validates that every to[i] with to[i] >= 0 satisfies to[i] < n and
// to[i] != i, then runs Kahn's algorithm: repeatedly peel vertices with
// in-degree zero. If the queue drains before every vertex is emitted, the
// remainder forms a cycle and ErrCycleDetected is returned.
func BuildOrder(to []int32) ([]int32, error) {
	n := len(to)
	if n == 1 && to[0] < 0 {
		return []int32{0}, nil
	}

	// 1) Validate and build adjacency (out-edges) + in-degree counts.
	children := make([][]int32, n)
	indegree := make([]int32, n)
	for i, d := range to {
		if d < 0 {
			continue
		}
		if int(d) >= n {
			return nil, fmt.Errorf("%w: segment %d -> %d (n=%d)", ErrOutOfRange, i, d, n)
		}
		if int(d) == i {
			return nil, fmt.Errorf("%w: segment %d", ErrSelfLoop, i)
		}
		children[i] = append(children[i], d)
		indegree[d]++
	}

	// 2) Seed the queue with every zero-indegree vertex, in index order so
	//    ties resolve deterministically.
	queue := make([]int32, 0, n)
	for i := 0; i < n; i++ {
		if indegree[i] == 0 {
			queue = append(queue, int32(i))
		}
	}

	// 3) Peel vertices, decrementing indegree of their children.
	order := make([]int32, 0, n)
	for head := 0; head < len(queue); head++ {
		v := queue[head]
		order = append(order, v)
		for _, c := range children[v] {
			indegree[c]--
			if indegree[c] == 0 {
				queue = append(queue, c)
			}
		}
	}

	// 4) If fewer than n vertices were emitted, a cycle consumed the rest.
	if len(order) != n {
		return nil, fmt.Errorf("%w: %d of %d segments unreachable from a source", ErrCycleDetected, n-len(order), n)
	}

	return order, nil
}
