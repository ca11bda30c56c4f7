// compare.go — bounded-concurrency execution of a solver roster.
package compare

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/qospath/core"
	"github.com/katalvlaran/qospath/route"
)

// Run executes every solver against the same graph and request, each on its
// own worker, and returns one Report entry per solver. Run itself fails only
// on an invalid roster or an unusable worker pool; individual solver errors
// land in their Outcome.
//
// Complexity: dominated by the slowest solver at the configured parallelism.
func Run(ctx context.Context, g *core.Graph, req route.Request, solvers []route.Solver, opts ...Option) (Report, error) {
	if len(solvers) == 0 {
		return Report{}, ErrNoSolvers
	}

	cfg := defaultRunOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	report := Report{
		RunID:    uuid.NewString(),
		Outcomes: make(map[string]Outcome, len(solvers)),
	}
	for _, s := range solvers {
		if _, dup := report.Outcomes[s.Name()]; dup {
			return Report{}, fmt.Errorf("%q: %w", s.Name(), ErrDuplicateSolver)
		}
		report.Outcomes[s.Name()] = Outcome{}
	}

	pool, err := ants.NewPool(cfg.parallelism)
	if err != nil {
		return Report{}, fmt.Errorf("compare: worker pool: %w", err)
	}
	defer pool.Release()

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	for _, s := range solvers {
		solver := s
		wg.Add(1)

		if err = pool.Submit(func() {
			defer wg.Done()

			outcome := runOne(ctx, g, req, solver)
			if cfg.logger != nil {
				logOutcome(cfg.logger, report.RunID, solver.Name(), outcome)
			}

			mu.Lock()
			report.Outcomes[solver.Name()] = outcome
			mu.Unlock()
		}); err != nil {
			wg.Done()
			// Drain workers already running: they write report.Outcomes and
			// must not outlive this call.
			wg.Wait()

			return Report{}, fmt.Errorf("compare: submit %q: %w", solver.Name(), err)
		}
	}
	wg.Wait()

	return report, nil
}

// runOne times a single Solve call and folds its result into an Outcome.
func runOne(ctx context.Context, g *core.Graph, req route.Request, s route.Solver) Outcome {
	start := time.Now()
	res, err := s.Solve(ctx, g, req)
	elapsed := time.Since(start)

	if err != nil {
		return Outcome{Duration: elapsed, Err: err}
	}

	return Outcome{
		Path:     res.Path,
		Fitness:  res.Fitness,
		Trace:    res.Trace,
		Duration: elapsed,
	}
}

// logOutcome emits one telemetry line per finished solver.
func logOutcome(l *logrus.Logger, runID, name string, o Outcome) {
	entry := l.WithFields(logrus.Fields{
		"run":      runID,
		"solver":   name,
		"duration": o.Duration,
	})
	if o.Failed() {
		entry.WithError(o.Err).Warn("solver failed")

		return
	}
	entry.WithFields(logrus.Fields{
		"fitness": o.Fitness.Scalar,
		"hops":    len(o.Path) - 1,
	}).Info("solver finished")
}
