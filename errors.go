package muskingum

import (
	"errors"

	"github.com/katalvlaran/muskingum/network"
	"github.com/katalvlaran/muskingum/precondition"
)

// ErrInvalidNetwork is re-exported for callers that only import the root
// package; it is identical to network.ErrInvalidNetwork.
var ErrInvalidNetwork = network.ErrInvalidNetwork

// ErrInvalidGeometry is re-exported for callers that only import the root
// package; it is identical to precondition.ErrInvalidGeometry.
var ErrInvalidGeometry = precondition.ErrInvalidGeometry

// ErrInvalidConfig indicates an unrecognized CalcMethod or other
// construction-time option value.
var ErrInvalidConfig = errors.New("muskingum: invalid config")
