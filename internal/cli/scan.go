package cli

import (
	"github.com/spf13/cobra"

	"macro-synth/internal/analyze"
	"macro-synth/internal/logger"
)

// NewScanCommand creates the scan command.
func NewScanCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "scan PATTERN...",
		Short: "Expand //synth: directives found in Go packages",
		Long: `Load Go packages, collect every declaration annotated with a
//synth: directive and expand the directives in source order.

Example:
  macro-synth scan ./examples/models`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.FromContext(cmd.Context())

			a := analyze.NewAnalyzer()
			a.Dir = dir

			scan, err := a.LoadPackages(args...)
			if err != nil {
				return err
			}

			log.Debug("scanned packages", "packages", scan.Packages, "annotated", len(scan.Annotated))

			return runBatches(cmd, scanBatches(scan))
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "Directory patterns are resolved from")

	return cmd
}

// scanBatches groups the requests of a scan by package, in load order.
func scanBatches(scan *analyze.Scan) []Batch {
	batches := make([]Batch, 0, len(scan.Packages))
	index := make(map[string]int, len(scan.Packages))

	for _, pkg := range scan.Packages {
		index[pkg] = len(batches)
		batches = append(batches, Batch{Source: pkg})
	}

	for i := range scan.Annotated {
		a := &scan.Annotated[i]

		n, ok := index[a.ID.PkgPath]
		if !ok {
			n = len(batches)
			index[a.ID.PkgPath] = n
			batches = append(batches, Batch{Source: a.ID.PkgPath})
		}

		batches[n].Requests = append(batches[n].Requests, a.Requests()...)
	}

	return batches
}
