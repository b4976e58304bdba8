package cli

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"macro-synth/internal/common"
	"macro-synth/internal/expand"
	"macro-synth/internal/logger"
	"macro-synth/internal/render"
)

// Batch is the set of requests read from one source: a request file or a
// Go package.
type Batch struct {
	Source   string
	Requests []*expand.Request
}

// Result pairs an outcome with the request and the source it came from.
type Result struct {
	Source  string
	Index   int // 1-based position within Source
	Request *expand.Request
	Outcome expand.Outcome
}

// Failed reports whether the request did not reach its rule or produced an
// error diagnostic.
func (r Result) Failed() bool {
	return r.Outcome.Err != nil || r.Outcome.Expansion.HasErrors()
}

// dumpRequests logs a spew dump of the batches when --dump is set.
func dumpRequests(cmd *cobra.Command, batches []Batch) {
	dump, _ := cmd.Root().PersistentFlags().GetBool("dump")
	if !dump {
		return
	}

	log := logger.FromContext(cmd.Context())
	for _, b := range batches {
		log.Debug("loaded requests", "source", b.Source, "dump", spew.Sdump(b.Requests))
	}
}

// runBatches expands every request of every batch and reports the results.
// It returns ErrExpansionFailed when any result failed.
func runBatches(cmd *cobra.Command, batches []Batch) error {
	ctx := cmd.Context()
	cfg := GetConfig(ctx)
	log := logger.FromContext(ctx)

	dumpRequests(cmd, batches)

	var (
		reqs    []*expand.Request
		results []Result
	)

	for _, b := range batches {
		if common.IsEmpty(b.Requests) {
			log.Warn("no requests", "source", b.Source)
		}

		for i, req := range b.Requests {
			reqs = append(reqs, req)
			results = append(results, Result{Source: b.Source, Index: i + 1, Request: req})
		}
	}

	engine := expand.New(cfg.Engine(log))

	outcomes, err := expand.ExpandAll(ctx, engine, reqs, cfg.Jobs)
	if err != nil {
		return fmt.Errorf("expanding requests: %w", err)
	}

	failed := 0

	for i := range results {
		results[i].Outcome = outcomes[i]
		if results[i].Failed() {
			failed++
		}
	}

	rep := newReporter(cmd)

	if cfg.OutDir != "" {
		files, err := rep.Files(results)
		if err != nil {
			return err
		}

		if err := render.WriteFiles(files, cfg.OutDir); err != nil {
			return err
		}

		log.Info("wrote generated files", "count", len(files), "dir", cfg.OutDir)
	} else if err := rep.Results(results); err != nil {
		return err
	}

	log.Debug("expansion finished", "requests", len(results), "failed", failed)

	if failed > 0 {
		return ErrExpansionFailed
	}

	return nil
}
