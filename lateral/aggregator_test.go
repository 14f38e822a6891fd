package lateral

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/muskingum/network"
)

func TestAggregate_Basic(t *testing.T) {
	// 1 segment, 2 HRUs draining into it.
	net, err := network.Build([]int32{0}, []int32{1, 1}, 1)
	require.NoError(t, err)
	agg := NewAggregator(net)

	sroff := []float64{3600, 3600}
	ssres := []float64{0, 0}
	gwres := []float64{0, 0}
	out := agg.Aggregate(sroff, ssres, gwres, 3600)

	assert.Equal(t, []float64{2.0}, out)
}

func TestAggregate_OrphanHRUZeroedAndDiscarded(t *testing.T) {
	net, err := network.Build([]int32{0}, []int32{0, 1}, 1)
	require.NoError(t, err)
	agg := NewAggregator(net)

	sroff := []float64{100, 200}
	ssres := []float64{10, 20}
	gwres := []float64{1, 2}
	out := agg.Aggregate(sroff, ssres, gwres, 1)

	// HRU 0 maps to segment -1 (orphan): zeroed in place, not counted.
	assert.Equal(t, 0.0, sroff[0])
	assert.Equal(t, 0.0, ssres[0])
	assert.Equal(t, 0.0, gwres[0])
	assert.Equal(t, []float64{222}, out) // only HRU 1's 200+20+2
}

func TestAggregate_ResetsEachCall(t *testing.T) {
	net, err := network.Build([]int32{0}, []int32{1}, 1)
	require.NoError(t, err)
	agg := NewAggregator(net)

	agg.Aggregate([]float64{100}, []float64{0}, []float64{0}, 1)
	out := agg.Aggregate([]float64{0}, []float64{0}, []float64{0}, 1)
	assert.Equal(t, []float64{0}, out)
}
