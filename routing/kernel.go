package routing

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/muskingum/budget"
	"github.com/katalvlaran/muskingum/network"
	"github.com/katalvlaran/muskingum/precondition"
)

// CalcMethod selects a numeric kernel variant. Reference is the only
// implemented arithmetic; Optimized is accepted for interface parity with
// the configuration surface but currently aliases Reference, since every
// variant must be numerically identical by design.
type CalcMethod int

const (
	Reference CalcMethod = iota
	Optimized
)

// hoursPerDay is the fixed outer-step tick count; every valid tsi divides
// it evenly (property enforced by the ts/tsi banding table).
const hoursPerDay = 24

// Kernel advances a fixed network and its preconditioned coefficients one
// outer day at a time.
type Kernel struct {
	net        *network.Network
	coef       *precondition.Coefficients
	calcMethod CalcMethod
	logger     *slog.Logger
}

// Option configures a Kernel at construction.
type Option func(*Kernel)

// WithCalcMethod selects the numeric kernel variant.
func WithCalcMethod(m CalcMethod) Option {
	return func(k *Kernel) { k.calcMethod = m }
}

// WithLogger attaches a structured logger for per-tick diagnostics. A nil
// logger is replaced with slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(k *Kernel) {
		if l != nil {
			k.logger = l
		}
	}
}

// NewKernel constructs a Kernel bound to a frozen network and its
// preconditioned coefficients.
func NewKernel(net *network.Network, coef *precondition.Coefficients, opts ...Option) *Kernel {
	k := &Kernel{
		net:    net,
		coef:   coef,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

// Advance consumes lateralInflow (rates, held constant over the 24 hourly
// ticks) and the persistent state in s, and advances the whole network by
// exactly one outer day: writing s.SegUpstreamInflow, s.SegInflow, and
// s.SegOutflow as daily means, and updating s.SegInflowPrev and
// s.OutflowTs for the next outer step.
//
// Advance checks ctx for cancellation once per hourly tick (never mid-tick:
// the inner segment loop has no suspension points). A cancellation leaves
// s in a partially-advanced state; callers that cancel should discard the
// engine rather than resume it.
func (k *Kernel) Advance(ctx context.Context, s *budget.State, lateralInflow []float64) error {
	n := k.net.Len()
	if len(lateralInflow) != n {
		return fmt.Errorf("routing: len(lateralInflow)=%d != nsegment=%d", len(lateralInflow), n)
	}

	s.ResetStep()
	order := k.net.Order()

	for h := 0; h < hoursPerDay; h++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		for i := range s.SegUpstreamInflowTick {
			s.SegUpstreamInflowTick[i] = 0
		}

		for _, j32 := range order {
			j := int(j32)

			qIn := lateralInflow[j] + s.SegUpstreamInflowTick[j]
			s.SegInflow[j] += qIn
			s.InflowTs[j] += qIn
			s.SegCurrentSum[j] += s.SegUpstreamInflowTick[j]

			tsi := k.coef.Tsi[j]
			if (h+1)%int(absInt32(tsi)) == 0 {
				s.InflowTs[j] /= k.coef.Ts[j]

				if tsi > 0 {
					s.OutflowTs[j] = k.coef.C0[j]*s.InflowTs[j] +
						k.coef.C1[j]*resolvePrev(s.SegInflowPrev[j], s.InflowTs[j]) +
						k.coef.C2[j]*s.OutflowTs[j]
				} else {
					s.OutflowTs[j] = s.InflowTs[j]
				}

				s.SegInflowPrev[j] = s.InflowTs[j]
				s.InflowTs[j] = 0
			}

			s.SegOutflow[j] += s.OutflowTs[j]

			if d := k.net.Downstream(j); d >= 0 {
				s.SegUpstreamInflowTick[d] += s.OutflowTs[j]
			}
		}

		if k.logger.Enabled(ctx, slog.LevelDebug) {
			k.logger.DebugContext(ctx, "routing: tick complete", "hour", h, "segments", n)
		}
	}

	for i := 0; i < n; i++ {
		s.SegOutflow[i] /= hoursPerDay
		s.SegInflow[i] /= hoursPerDay
		s.SegUpstreamInflow[i] = s.SegCurrentSum[i] / hoursPerDay
	}

	return nil
}

// resolvePrev implements the "present/absent" treatment of seg_inflow_prev
// recommended in design notes: before a segment's first sub-step closure,
// SegInflowPrev is NaN ("absent"); treating it as equal to the
// just-computed inflowTs degenerates the c1 term to a no-op rather than
// propagating NaN, matching the original cold-start behavior.
func resolvePrev(prev, inflowTs float64) float64 {
	if prev != prev { // NaN check without importing math for a single comparison
		return inflowTs
	}
	return prev
}

func absInt32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
