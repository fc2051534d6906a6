package sumtree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("sumtree: invalid configuration")
	// ErrIndexOutOfBounds signals an invalid positional index.
	ErrIndexOutOfBounds = errors.New("sumtree: index out of bounds")
	// ErrInvariant signals a violated structural or summary invariant.
	ErrInvariant = errors.New("sumtree: invariant violated")
)
