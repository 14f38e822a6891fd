package precondition

import "github.com/katalvlaran/muskingum/network"

// Geometry is the raw, per-segment hydraulic input to Precondition.
type Geometry struct {
	MannN     float64
	SegDepth  float64
	SegLength float64
	SegSlope  float64 // raw; may be non-positive
	XCoef     float64
	SegType   network.SegmentType
}

// Coefficients holds the frozen, per-segment output of Precondition, one
// slice entry per segment index.
type Coefficients struct {
	// SegSlope is the stored (possibly floored) slope, surfaced so the
	// floor quirk (spec: slopes below 1e-7 are replaced with 1e-4 after
	// velocity is computed from the raw value) is observable without
	// mutating caller-owned storage.
	SegSlope []float64
	// SegSlopeRaw is the original, unmodified input slope.
	SegSlopeRaw []float64

	K   []float64 // travel time, hours, in [0.01, 24.0]
	Ts  []float64 // sub-step duration, hours, in {1,2,3,4,6,8,12,24}
	Tsi []int32   // sub-step stride; -1 marks sub-hourly bypass

	C0 []float64
	C1 []float64
	C2 []float64
}
