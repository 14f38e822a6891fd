// Package lateral collapses per-HRU volumetric inflow contributions into
// per-segment lateral inflow rates, once per outer step.
//
// Aggregate zeroes its output buffer, then for every HRU either discards
// its contribution (zeroing the caller's three input slices in place, a
// documented mutation) when the HRU drains outside the modeled network, or
// adds its rate contribution to the HRU's mapped segment.
package lateral
