// File: api.go
// Role: thin, deterministic public facade exposing construction and the
// single per-outer-step entry point.
// Policy: no algorithms live here; they live in network/, precondition/,
// lateral/, routing/, and budget/. This file only wires them together.

package muskingum

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/muskingum/budget"
	"github.com/katalvlaran/muskingum/lateral"
	"github.com/katalvlaran/muskingum/network"
	"github.com/katalvlaran/muskingum/precondition"
	"github.com/katalvlaran/muskingum/routing"
)

// Engine composes a frozen network and its preconditioned coefficients
// with the lateral aggregator, routing kernel, and persistent state, and
// exposes the single Advance entry point for one outer-day step.
type Engine struct {
	net    *network.Network
	coef   *precondition.Coefficients
	agg    *lateral.Aggregator
	kernel *routing.Kernel
	state  *budget.State

	budgetType string
	logger     *slog.Logger

	// Reserved holds construction inputs the routing core never reads.
	Reserved Reserved
}

// New constructs an Engine from Params, validating network connectivity
// and hydraulic geometry. Construction-time errors (ErrInvalidConfig,
// ErrInvalidNetwork, ErrInvalidGeometry) are fatal: the engine does not
// construct.
func New(p Params, opts ...Option) (*Engine, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.calcMethod != routing.Reference && cfg.calcMethod != routing.Optimized {
		return nil, fmt.Errorf("%w: calc method %d", ErrInvalidConfig, cfg.calcMethod)
	}

	net, err := network.Build(p.ToSegment, p.HruSegment, p.Nsegment)
	if err != nil {
		return nil, err
	}

	geoms := make([]precondition.Geometry, p.Nsegment)
	for i := 0; i < p.Nsegment; i++ {
		geoms[i] = precondition.Geometry{
			MannN:     p.MannN[i],
			SegDepth:  p.SegDepth[i],
			SegLength: p.SegLength[i],
			SegSlope:  p.SegSlope[i],
			XCoef:     p.XCoef[i],
			SegType:   segType(p.SegmentType, i),
		}
	}
	coef, err := precondition.Precondition(net, geoms)
	if err != nil {
		return nil, err
	}

	if cfg.verbose {
		cfg.logger.Info("muskingum: preconditioned network", "segments", p.Nsegment)
		cfg.logger.Info("muskingum: travel-time summary\n" + coef.Summary())
	}

	kernelOpts := []routing.Option{routing.WithCalcMethod(cfg.calcMethod)}
	if cfg.verbose {
		kernelOpts = append(kernelOpts, routing.WithLogger(cfg.logger))
	}

	e := &Engine{
		net:    net,
		coef:   coef,
		agg:    lateral.NewAggregator(net),
		kernel: routing.NewKernel(net, coef, kernelOpts...),
		state:  budget.NewState(p.Nsegment, p.SegmentFlowInit),

		budgetType: cfg.budgetType,
		logger:     cfg.logger,

		Reserved: Reserved{
			Nssr:          p.Nssr,
			Ngw:           p.Ngw,
			HruArea:       p.HruArea,
			ToSegmentNhm:  p.ToSegmentNhm,
			ObsinSegment:  p.ObsinSegment,
			ObsoutSegment: p.ObsoutSegment,
		},
	}
	return e, nil
}

// segType returns types[i] if present, else Normal (the zero value).
func segType(types []network.SegmentType, i int) network.SegmentType {
	if i < len(types) {
		return types[i]
	}
	return network.Normal
}

// Advance runs one outer-day step: lateral aggregation, routing, and
// derived-output computation, in that order. It returns that step's
// StepOutput and never mutates the caller's StepInput slices except for
// the documented orphan-HRU zeroing performed by the lateral aggregator.
func (e *Engine) Advance(ctx context.Context, in StepInput) (StepOutput, error) {
	lateralInflow := e.agg.Aggregate(in.SroffVol, in.SsresFlowVol, in.GwresFlowVol, in.SPerTime)

	if err := e.kernel.Advance(ctx, e.state, lateralInflow); err != nil {
		return StepOutput{}, err
	}

	out := StepOutput{
		SegUpstreamInflow: append([]float64(nil), e.state.SegUpstreamInflow...),
		SegLateralInflow:  append([]float64(nil), lateralInflow...),
		SegOutflow:        append([]float64(nil), e.state.SegOutflow...),
		SegStorChange:     e.state.StorageChange(in.SPerTime),
		ChannelOutflowVol: e.state.ChannelOutflowVolume(e.net.OutflowMask(), in.SPerTime),
	}
	return out, nil
}

// Coefficients exposes the frozen Muskingum coefficients for inspection
// (e.g. by a CLI diagnostic command or a test fixture comparison).
func (e *Engine) Coefficients() *precondition.Coefficients { return e.coef }

// Network exposes the frozen network for inspection.
func (e *Engine) Network() *network.Network { return e.net }

// State exposes the persistent routing state for inspection. Callers must
// not mutate the returned State; only Advance may.
func (e *Engine) State() *budget.State { return e.state }

// BudgetType returns the opaque budget-type tag passed via
// WithBudgetType, for consumption by an external budget collaborator.
func (e *Engine) BudgetType() string { return e.budgetType }
