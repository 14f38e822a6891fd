// Package muskingum implements a stream-network flow routing engine using
// the Muskingum-Mann method.
//
// 🌊 What is muskingum?
//
//	A single-threaded, deterministic routing engine that, given a directed
//	acyclic stream network, per-segment hydraulic geometry, and daily
//	per-HRU lateral inflow contributions, produces daily-mean inflow,
//	outflow, upstream-inflow, and storage-change values for every segment —
//	while internally sub-stepping each segment at its own natural
//	travel-time resolution (1 to 24 hours within a one-day outer step).
//
// Construction is driven by New, which builds the network (network
// package), preconditions hydraulic coefficients (precondition package),
// and wires an Engine ready to Advance one outer day at a time. Advance
// runs the lateral aggregator, the routing kernel, and the budget adapter
// in sequence, and returns that outer step's StepOutput.
//
// Under the hood:
//
//	network/      — zero-based connectivity, outflow mask, topological order
//	precondition/ — Manning's-equation K, sub-step stride, Muskingum coefficients
//	lateral/      — per-HRU volumetric inflow aggregation
//	routing/      — the 24-hourly-tick routing kernel
//	budget/       — persistent state ownership and derived-output computation
//
//	go get github.com/katalvlaran/muskingum
package muskingum
