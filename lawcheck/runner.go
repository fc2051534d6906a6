package lawcheck

import (
	"context"
	"fmt"
	"math/rand"
	"sync"

	"github.com/guiguan/caster"
	"golang.org/x/sync/errgroup"
)

// Runner executes checks concurrently. Findings are broadcast to subscribers
// while the run is in progress. A Runner runs once; after Run returns, all
// subscriber channels are closed.
type Runner struct {
	cfg  Config
	cast *caster.Caster // broadcaster for findings
	once sync.Once
}

// NewRunner creates a runner for cfg.
func NewRunner(cfg Config) (*Runner, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Runner{
		cfg:  cfg.normalized(),
		cast: caster.New(nil),
	}, nil
}

// Config returns the configuration of r.
func (r *Runner) Config() Config {
	return r.cfg
}

// Subscribe returns a channel which receives every Finding of the run as soon
// as it is found. The channel is closed when the run ends or ctx is done.
// Subscribers have to drain their channel, otherwise the run stalls.
func (r *Runner) Subscribe(ctx context.Context) (<-chan Finding, error) {
	sub, ok := r.cast.Sub(ctx, 16)
	if !ok {
		return nil, fmt.Errorf("lawcheck: cannot subscribe to a finished run")
	}
	ch := make(chan Finding)
	go func() {
		defer close(ch)
		for m := range sub {
			ch <- m.(Finding)
		}
	}()
	return ch, nil
}

// Run executes checks, at most cfg.Workers at a time. Check i draws its
// samples from a source seeded with cfg.Seed+i, so a run is reproducible
// regardless of scheduling. The findings of the report are in check order.
func (r *Runner) Run(ctx context.Context, runID string, checks []Check) (*Report, error) {
	defer r.once.Do(func() { r.cast.Close() })
	results := make([][]Finding, len(checks))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Workers)
	for i, check := range checks {
		g.Go(func() error {
			rnd := rand.New(rand.NewSource(r.cfg.Seed + int64(i)))
			findings, err := check.run(ctx, rnd, r.cfg.Samples)
			if err != nil {
				return fmt.Errorf("check %s: %w", check.Registration, err)
			}
			for _, f := range findings {
				if !f.Passed {
					tracer().Infof("%s violates %s law: %s", f.Structure, f.Law, f.Counterexample)
				}
				r.cast.Pub(f)
			}
			results[i] = findings
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	report := &Report{RunID: runID}
	for _, findings := range results {
		report.Findings = append(report.Findings, findings...)
	}
	tracer().Debugf("run %s: %d findings, %d failed", runID, len(report.Findings), len(report.Failed()))
	return report, nil
}
