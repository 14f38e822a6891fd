package precondition

import "errors"

// ErrInvalidGeometry indicates a non-positive mann_n, seg_depth, or
// seg_length was supplied for some segment. Use errors.Is against this
// sentinel; context (which segment, which field) is attached with %w at
// the call site.
var ErrInvalidGeometry = errors.New("precondition: invalid geometry")
