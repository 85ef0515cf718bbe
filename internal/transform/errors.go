package transform

import "errors"

// ErrInvariantViolation is returned by SelfTest when a post-condition fails.
var ErrInvariantViolation = errors.New("transform: invariant violation")
