// Package budget owns the persistent and scratch per-segment state that
// the routing kernel reads and mutates across outer steps, and derives the
// storage-change and channel-outflow-volume outputs from the kernel's daily
// means.
//
// A State is constructed once (NewState) and then advanced in place, once
// per outer step, by routing.Kernel.Advance. Callers never write to its
// fields directly outside construction.
package budget
