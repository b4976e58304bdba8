package expand

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Outcome is the result of one request in a batch. Exactly one of
// Expansion and Err is set.
type Outcome struct {
	Expansion *Expansion
	Err       error
}

// ExpandAll expands reqs with at most jobs concurrent workers (GOMAXPROCS
// when jobs <= 0). Outcomes are returned in request order. A failing request
// does not stop the others; only a cancelled context aborts the batch.
func ExpandAll(ctx context.Context, engine *Engine, reqs []*Request, jobs int) ([]Outcome, error) {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	out := make([]Outcome, len(reqs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, req := range reqs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			exp, err := engine.Expand(req)
			out[i] = Outcome{Expansion: exp, Err: err}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
