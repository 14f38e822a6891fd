package budget

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewState_InitializesPrevAsNaN(t *testing.T) {
	s := NewState(3, []float64{1, 2, 3})
	for _, v := range s.SegInflowPrev {
		assert.True(t, math.IsNaN(v))
	}
	assert.Equal(t, []float64{1, 2, 3}, s.SegOutflow)
}

func TestResetStep_ClearsScratchNotPersistent(t *testing.T) {
	s := NewState(2, nil)
	s.SegInflow[0] = 5
	s.SegOutflow[0] = 7
	s.InflowTs[0] = 9
	s.SegCurrentSum[0] = 11
	s.OutflowTs[0] = 13
	s.ResetStep()
	assert.Equal(t, 0.0, s.SegInflow[0])
	assert.Equal(t, 0.0, s.SegOutflow[0])
	assert.Equal(t, 0.0, s.InflowTs[0])
	assert.Equal(t, 0.0, s.SegCurrentSum[0])
	assert.Equal(t, 13.0, s.OutflowTs[0]) // persistent, untouched
}

func TestStorageChange(t *testing.T) {
	s := NewState(1, nil)
	s.SegInflow[0] = 10
	s.SegOutflow[0] = 4
	got := s.StorageChange(86400)
	assert.Equal(t, []float64{6 * 86400}, got)
}

func TestChannelOutflowVolume(t *testing.T) {
	s := NewState(2, nil)
	s.SegOutflow[0] = 2
	s.SegOutflow[1] = 3
	got := s.ChannelOutflowVolume([]bool{false, true}, 100)
	assert.Equal(t, []float64{0, 300}, got)
}

func TestHasNonFinite(t *testing.T) {
	s := NewState(1, nil)
	assert.False(t, s.HasNonFinite())
	s.OutflowTs[0] = math.Inf(1)
	assert.True(t, s.HasNonFinite())
}
