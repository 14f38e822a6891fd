// Package routing implements the Muskingum-Mann routing kernel: one
// Advance call walks the whole segment network through 24 hourly ticks,
// honoring each segment's own sub-step stride, and produces daily-mean
// inflow, outflow, and upstream-inflow values.
//
// The kernel owns no state of its own; it reads network.Network and
// precondition.Coefficients (both frozen at construction) and mutates the
// budget.State passed to Advance. A Kernel is safe to reuse across outer
// steps and across Engines that share the same network and coefficients.
package routing
