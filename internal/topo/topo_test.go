package topo

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildOrder_Single(t *testing.T) {
	order, err := BuildOrder([]int32{-1})
	require.NoError(t, err)
	assert.Equal(t, []int32{0}, order)
}

func TestBuildOrder_Chain(t *testing.T) {
	// 0 -> 1 -> 2 -> out
	order, err := BuildOrder([]int32{1, 2, -1})
	require.NoError(t, err)
	assert.Equal(t, []int32{0, 1, 2}, order)
}

func TestBuildOrder_DiamondIsValidPermutation(t *testing.T) {
	// A full diamond (0 -> 1, 0 -> 2, 1 -> 3, 2 -> 3) cannot be expressed,
	// since each segment has a single to_segment; this first array is
	// 0 -> 1 -> 3 <- 2 and is replaced below.
	to := []int32{1, 3, 3, -1}
	// Model the diamond's lower half instead: 1 and 2 share downstream 3;
	// 0 and 3 are outlets.
	to = []int32{-1, 3, 3, -1}
	order, err := BuildOrder(to)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int32{0, 1, 2, 3}, order)

	pos := make(map[int32]int, len(order))
	for i, v := range order {
		pos[v] = i
	}
	assert.Less(t, pos[1], pos[3])
	assert.Less(t, pos[2], pos[3])
}

func TestBuildOrder_Cycle(t *testing.T) {
	_, err := BuildOrder([]int32{1, 0})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCycleDetected))
}

func TestBuildOrder_SelfLoop(t *testing.T) {
	_, err := BuildOrder([]int32{0})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSelfLoop))
}

func TestBuildOrder_OutOfRange(t *testing.T) {
	_, err := BuildOrder([]int32{5, -1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOutOfRange))
}
