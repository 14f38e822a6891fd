package muskingum

import "github.com/katalvlaran/muskingum/network"

// Params is the full per-construction input set, as loaded from upstream
// parameter-file data sources with 1-based indices; the engine rebases
// indices internally. Of these fields, routing uses only Nsegment, Nhru,
// HruSegment, MannN, SegDepth, SegLength, SegSlope, SegmentType,
// ToSegment, XCoef, and SegmentFlowInit. The remainder are accepted and
// stored on Engine.Reserved but never read by routing logic.
type Params struct {
	Nhru       int
	Nssr       int
	Ngw        int
	Nsegment   int
	HruArea    []float64
	HruSegment []int32 // raw, 1-based; 0 means "drains outside network"

	MannN       []float64
	SegDepth    []float64
	SegLength   []float64
	SegSlope    []float64
	SegmentType []network.SegmentType

	ToSegment       []int32 // raw, 1-based; 0 means "flows out of domain"
	ToSegmentNhm    []int32
	XCoef           []float64
	SegmentFlowInit []float64

	// ObsinSegment and ObsoutSegment are reserved hook points for a future
	// observed-flow override at gauged inlets/outlets. Their positions and
	// semantics are declared but never read by this engine.
	ObsinSegment  []int32
	ObsoutSegment []int32
}

// Reserved holds the Params fields routing never reads, preserved for a
// future collaborator (observed-data substitution, mass-budget bookkeeping
// outside this module) without widening the routing-facing surface.
type Reserved struct {
	Nssr          int
	Ngw           int
	HruArea       []float64
	ToSegmentNhm  []int32
	ObsinSegment  []int32
	ObsoutSegment []int32
}

// StepInput is the per-outer-step input: three per-HRU volumetric rate
// arrays (cubic feet over the step) and the step's duration in seconds.
type StepInput struct {
	SroffVol     []float64
	SsresFlowVol []float64
	GwresFlowVol []float64
	SPerTime     float64
}

// StepOutput is the per-outer-step output, all length Nsegment, all daily
// means or daily volumes.
type StepOutput struct {
	SegUpstreamInflow []float64
	SegLateralInflow  []float64
	SegOutflow        []float64
	SegStorChange     []float64
	ChannelOutflowVol []float64
}
