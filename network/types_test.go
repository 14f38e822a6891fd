package network

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_SingleOutlet(t *testing.T) {
	net, err := Build([]int32{0}, []int32{1}, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, net.Len())
	assert.Equal(t, []int32{0}, net.Order())
	assert.Equal(t, []bool{true}, net.OutflowMask())
	assert.EqualValues(t, -1, net.Downstream(0))
	assert.EqualValues(t, 0, net.HRUSegment(0))
}

func TestBuild_Chain(t *testing.T) {
	// raw 1-based: segment 1 -> 2, segment 2 -> 0 (outlet)
	net, err := Build([]int32{2, 0}, nil, 2)
	require.NoError(t, err)
	assert.Equal(t, []int32{0, 1}, net.Order())
	assert.Equal(t, []bool{false, true}, net.OutflowMask())
}

func TestBuild_Cycle(t *testing.T) {
	_, err := Build([]int32{2, 1}, nil, 2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidNetwork))
}

func TestBuild_OrphanHRU(t *testing.T) {
	net, err := Build([]int32{0}, []int32{0}, 1)
	require.NoError(t, err)
	assert.EqualValues(t, -1, net.HRUSegment(0))
}
