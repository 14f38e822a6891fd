package precondition

import (
	"fmt"
	"math"

	"github.com/katalvlaran/muskingum/network"
)

// slopeFloor is the replacement value for any seg_slope below slopeFloorMin.
// Recovered verbatim from the original parameter preprocessing: velocity is
// computed from the raw slope first, then the stored slope is floored. This
// is a documented input-mutation quirk, not a physical constant.
const (
	slopeFloorMin = 1e-7
	slopeFloor    = 0.0001

	kMin = 0.01
	kMax = 24.0

	degeneracyGuard = 1e-4
	degeneracyEps   = 1e-6
)

// tsBand maps a K value (hours) to its (ts, tsi) pair via the exclusive
// upper-bound banding table. Order matters: the first matching band wins.
var tsBand = []struct {
	upper float64 // exclusive upper bound on K; math.Inf(1) for the last band
	ts    float64
	tsi   int32
}{
	{1, 1.0, -1},
	{2, 1.0, 1},
	{3, 2.0, 2},
	{4, 3.0, 3},
	{6, 4.0, 4},
	{8, 6.0, 6},
	{12, 8.0, 8},
	{24, 12.0, 12},
	{math.Inf(1), 24.0, 24},
}

// Precondition computes Muskingum-Mann coefficients for every segment in
// net from its raw hydraulic geometry. geoms must have exactly net.Len()
// entries, index-aligned with the network's segment indices.
func Precondition(net *network.Network, geoms []Geometry) (*Coefficients, error) {
	n := net.Len()
	if len(geoms) != n {
		return nil, fmt.Errorf("%w: len(geoms)=%d != nsegment=%d", ErrInvalidGeometry, len(geoms), n)
	}

	out := &Coefficients{
		SegSlope:    make([]float64, n),
		SegSlopeRaw: make([]float64, n),
		K:           make([]float64, n),
		Ts:          make([]float64, n),
		Tsi:         make([]int32, n),
		C0:          make([]float64, n),
		C1:          make([]float64, n),
		C2:          make([]float64, n),
	}

	for i, g := range geoms {
		if g.MannN <= 0 {
			return nil, fmt.Errorf("%w: segment %d: mann_n=%g must be > 0", ErrInvalidGeometry, i, g.MannN)
		}
		if g.SegDepth <= 0 {
			return nil, fmt.Errorf("%w: segment %d: seg_depth=%g must be > 0", ErrInvalidGeometry, i, g.SegDepth)
		}
		if g.SegLength <= 0 {
			return nil, fmt.Errorf("%w: segment %d: seg_length=%g must be > 0", ErrInvalidGeometry, i, g.SegLength)
		}

		out.SegSlopeRaw[i] = g.SegSlope

		// 1) Bank-full velocity (ft/h), from the RAW slope; NaN for
		//    negative slope propagates into K below and is masked by the
		//    v > 0 guard, never surfacing as a NaN K.
		v := (1.0 / g.MannN) * math.Sqrt(g.SegSlope) * math.Pow(g.SegDepth, 2.0/3.0) * 3600.0

		// 2) Slope floor, applied AFTER velocity is computed (documented
		//    quirk: the stored slope is not the slope velocity was derived
		//    from when the raw value was below the floor).
		slope := g.SegSlope
		if slope < slopeFloorMin {
			slope = slopeFloor
		}
		out.SegSlope[i] = slope

		// 3) Travel time K, hours.
		k := kMax
		if v > 0 {
			k = g.SegLength / v
		}
		if g.SegType == network.Lake {
			k = kMax
		}
		k = math.Min(kMax, math.Max(kMin, k))
		out.K[i] = k

		// 4) Sub-step stride off the banding table.
		ts, tsi := bandFor(k)
		out.Ts[i] = ts
		out.Tsi[i] = tsi

		// 5) Muskingum coefficients, with degeneracy guard.
		x := g.XCoef
		d := k - k*x + 0.5*ts
		if math.Abs(d) < degeneracyEps {
			d = degeneracyGuard
		}
		c0 := (-k*x + 0.5*ts) / d
		c1 := (k*x + 0.5*ts) / d
		c2 := (k - k*x - 0.5*ts) / d

		// 6) Non-negativity corrections, in order: short-travel-time then
		//    long-travel-time. Each redistributes the negative term's mass
		//    into c1 before zeroing it.
		if c2 < 0 {
			c1 += c2
			c2 = 0
		}
		if c0 < 0 {
			c1 += c0
			c0 = 0
		}

		out.C0[i] = c0
		out.C1[i] = c1
		out.C2[i] = c2
	}

	return out, nil
}

func bandFor(k float64) (ts float64, tsi int32) {
	for _, b := range tsBand {
		if k < b.upper {
			return b.ts, b.tsi
		}
	}
	// Unreachable: the last band's upper bound is +Inf.
	return 24.0, 24
}

// Summary renders a one-line-per-segment K/ts/tsi table, surfaced by the
// root Engine at verbose startup. Recovered from the original
// implementation's one-time verbose travel-time diagnostic.
func (c *Coefficients) Summary() string {
	s := "segment  K(h)      ts(h)  tsi\n"
	for i := range c.K {
		s += fmt.Sprintf("%7d  %8.4f  %5.1f  %4d\n", i, c.K[i], c.Ts[i], c.Tsi[i])
	}
	return s
}
