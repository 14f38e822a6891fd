// Package precondition derives per-segment Muskingum-Mann routing
// coefficients from raw hydraulic geometry.
//
// Precondition computes, once at construction time and frozen thereafter:
// bank-full velocity via Manning's equation, travel time K (hours), the
// sub-step stride (ts, tsi) off the fixed banding table, and the three
// Muskingum recurrence coefficients c0, c1, c2 with their degeneracy guard
// and non-negativity corrections.
package precondition
