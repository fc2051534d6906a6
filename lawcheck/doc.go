/*
Package lawcheck drives the law predicates of package structure with random
samples and reports violations.

A Check bundles the laws of one registered (type, tag) pair together with a
Sampler for the type. A Runner executes checks concurrently and publishes every
Finding to its subscribers as soon as it is available; the collected Report can
be rendered for a console or as HTML.

Law violations are findings, not errors. Run returns an error only if the run
itself could not complete (e.g., its context was cancelled).

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package lawcheck

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'alga.lawcheck'
func tracer() tracing.Trace {
	return tracing.Select("alga.lawcheck")
}

// ErrInvalidConfig signals an invalid law check configuration.
var ErrInvalidConfig = errors.New("lawcheck: invalid configuration")
