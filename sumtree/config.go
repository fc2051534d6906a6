package sumtree

import (
	"fmt"

	"github.com/npillmayer/alga/ops"
	"github.com/npillmayer/alga/structure"
)

const (
	// DefaultDegree is the max fanout used if Config.Degree is unset.
	DefaultDegree = 12
	// MinDegree is the smallest fanout accepted.
	MinDegree = 4
)

// Config configures a sum-tree.
type Config[T any, O ops.Op] struct {
	// Monoid sums values up the tree.
	Monoid structure.MonoidApprox[T, O]
	// Degree is the max number of items per leaf and children per inner node.
	Degree int
}

func (cfg Config[T, O]) normalized() Config[T, O] {
	if cfg.Degree == 0 {
		cfg.Degree = DefaultDegree
	}
	return cfg
}

func (cfg Config[T, O]) validate() error {
	cfg = cfg.normalized()
	if cfg.Monoid == nil {
		return fmt.Errorf("%w: monoid is required", ErrInvalidConfig)
	}
	if cfg.Degree < MinDegree {
		return fmt.Errorf("%w: degree must be >= %d", ErrInvalidConfig, MinDegree)
	}
	return nil
}
