package muskingum_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/muskingum"
	"github.com/katalvlaran/muskingum/network"
)

// ExampleEngine_Advance builds a single outlet segment, applies a constant
// 1 cfs lateral inflow, and shows the daily-mean outflow converge after a
// handful of outer-day steps.
func ExampleEngine_Advance() {
	params := muskingum.Params{
		Nhru:            1,
		Nsegment:        1,
		HruSegment:      []int32{1},
		MannN:           []float64{0.05},
		SegDepth:        []float64{1},
		SegLength:       []float64{3600},
		SegSlope:        []float64{0.01},
		XCoef:           []float64{0.2},
		SegmentType:     []network.SegmentType{network.Normal},
		ToSegment:       []int32{0}, // 0 rebases to -1: flows out of domain
		SegmentFlowInit: []float64{0},
	}

	engine, err := muskingum.New(params)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	const sPerTime = 86400.0
	var out muskingum.StepOutput
	for day := 0; day < 5; day++ {
		out, err = engine.Advance(context.Background(), muskingum.StepInput{
			SroffVol:     []float64{1.0 * sPerTime},
			SsresFlowVol: []float64{0},
			GwresFlowVol: []float64{0},
			SPerTime:     sPerTime,
		})
		if err != nil {
			fmt.Println("error:", err)
			return
		}
	}

	fmt.Printf("%.0f\n", out.SegOutflow[0])
	// Output: 1
}
