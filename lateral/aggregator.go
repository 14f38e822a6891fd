package lateral

import "github.com/katalvlaran/muskingum/network"

// Aggregator reduces per-HRU volumetric inflows to per-segment lateral
// inflow rates for a fixed network, reusing its output buffer across
// outer-step calls.
type Aggregator struct {
	net *network.Network
	out []float64
}

// NewAggregator constructs an Aggregator bound to net's HRU-to-segment
// mapping.
func NewAggregator(net *network.Network) *Aggregator {
	return &Aggregator{net: net, out: make([]float64, net.Len())}
}

// Aggregate accumulates sroffVol, ssresFlowVol, and gwresFlowVol (cubic
// feet over the outer step) into per-segment lateral inflow rates (cfs),
// dividing by sPerTime. The three input slices are read-only views with
// one documented exception: any HRU whose mapped segment is -1 has its
// three entries zeroed in place, signaling to the caller that the HRU's
// mass was discarded rather than silently dropped.
//
// The returned slice is owned by the Aggregator and is overwritten by the
// next call; callers that need to retain a step's values must copy it.
func (a *Aggregator) Aggregate(sroffVol, ssresFlowVol, gwresFlowVol []float64, sPerTime float64) []float64 {
	for i := range a.out {
		a.out[i] = 0
	}

	for h := 0; h < a.net.NumHRU(); h++ {
		seg := a.net.HRUSegment(h)
		if seg < 0 {
			sroffVol[h] = 0
			ssresFlowVol[h] = 0
			gwresFlowVol[h] = 0
			continue
		}
		a.out[seg] += (sroffVol[h] + ssresFlowVol[h] + gwresFlowVol[h]) / sPerTime
	}

	return a.out
}
